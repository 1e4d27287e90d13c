package http

import (
	"net/http"
	"strings"

	"github.com/jmehdipour/notify-gateway/internal/dispatcher"
	"github.com/jmehdipour/notify-gateway/internal/model"
	"github.com/jmehdipour/notify-gateway/internal/util"
	"github.com/labstack/echo/v4"
)

type sendEmailReq struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func sendEmailHandler(sender dispatcher.EmailSender) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req sendEmailReq
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad request"})
		}

		req.To = strings.TrimSpace(req.To)
		if !util.ValidEmail(req.To) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid email"})
		}
		if strings.TrimSpace(req.Subject) == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad request"})
		}

		id, err := sender.SendEmail(c.Request().Context(), req.To, req.Subject, req.Body)
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": "provider error"})
		}

		return c.JSON(http.StatusAccepted, model.Receipt{ID: id, Channel: model.ChannelEmail})
	}
}
