package dispatcher

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/jmehdipour/notify-gateway/internal/logger"
	"github.com/jmehdipour/notify-gateway/internal/metrics"
	"github.com/jmehdipour/notify-gateway/internal/model"
	"go.uber.org/zap"
)

// SESMailer sends plain-text email through Amazon SES.
type SESMailer struct {
	client SESAPI // nil in development
	from   string
	dev    bool
}

// NewSESMailer returns a mailer; client may be nil only when dev is true.
func NewSESMailer(client SESAPI, from string, dev bool) *SESMailer {
	return &SESMailer{client: client, from: from, dev: dev}
}

func (m *SESMailer) SendEmail(ctx context.Context, to, subject, body string) (string, error) {
	if m.dev {
		logger.Log.Info("development mode: email not sent",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.String("body", body),
		)
		metrics.DispatchTotal.WithLabelValues(model.ChannelEmail.String(), metrics.OutcomeSkipped).Inc()
		return DevEmailID, nil
	}

	in := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
	}
	if m.from != "" {
		in.Source = aws.String(m.from)
	}

	out, err := m.client.SendEmail(ctx, in)
	if err != nil {
		logger.Log.Error("error sending email", zap.String("to", to), zap.Error(err))
		metrics.DispatchTotal.WithLabelValues(model.ChannelEmail.String(), metrics.OutcomeFailed).Inc()
		return "", err
	}

	metrics.DispatchTotal.WithLabelValues(model.ChannelEmail.String(), metrics.OutcomeSent).Inc()
	return aws.ToString(out.MessageId), nil
}
