package http

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/jmehdipour/notify-gateway/internal/dispatcher"
	"github.com/jmehdipour/notify-gateway/internal/model"
	"github.com/jmehdipour/notify-gateway/internal/util"
	"github.com/labstack/echo/v4"
)

// maxSMSRunes is the SNS ceiling for a single publish; longer text is rejected, not split.
const maxSMSRunes = 1600

type sendSMSReq struct {
	To   string `json:"to"`
	Text string `json:"text"`
}

func sendSMSHandler(sender dispatcher.SMSSender) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req sendSMSReq
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad request"})
		}

		req.To = strings.TrimSpace(req.To)
		if !util.ValidPhone(req.To) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid phone"})
		}
		if strings.TrimSpace(req.Text) == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad request"})
		}
		if utf8.RuneCountInString(req.Text) > maxSMSRunes {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "text too long"})
		}

		id, err := sender.SendSMS(c.Request().Context(), req.To, req.Text)
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": "provider error"})
		}

		return c.JSON(http.StatusAccepted, model.Receipt{ID: id, Channel: model.ChannelSMS})
	}
}
