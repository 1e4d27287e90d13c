package dispatcher

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/jmehdipour/notify-gateway/internal/logger"
	"github.com/jmehdipour/notify-gateway/internal/metrics"
	"github.com/jmehdipour/notify-gateway/internal/model"
	"go.uber.org/zap"
)

// SNSTexter sends SMS through Amazon SNS direct-to-phone publish.
type SNSTexter struct {
	client SNSAPI // nil in development
	dev    bool
}

func NewSNSTexter(client SNSAPI, dev bool) *SNSTexter {
	return &SNSTexter{client: client, dev: dev}
}

func (t *SNSTexter) SendSMS(ctx context.Context, to, message string) (string, error) {
	if t.dev {
		logger.Log.Info("development mode: SMS not sent",
			zap.String("to", to),
			zap.String("message", message),
		)
		metrics.DispatchTotal.WithLabelValues(model.ChannelSMS.String(), metrics.OutcomeSkipped).Inc()
		return DevMessageID, nil
	}

	out, err := t.client.Publish(ctx, &sns.PublishInput{
		Message:     aws.String(message),
		PhoneNumber: aws.String(to),
	})
	if err != nil {
		logger.Log.Error("error sending SMS", zap.String("to", to), zap.Error(err))
		metrics.DispatchTotal.WithLabelValues(model.ChannelSMS.String(), metrics.OutcomeFailed).Inc()
		return "", err
	}

	metrics.DispatchTotal.WithLabelValues(model.ChannelSMS.String(), metrics.OutcomeSent).Inc()
	return aws.ToString(out.MessageId), nil
}
