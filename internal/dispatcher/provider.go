package dispatcher

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

const (
	DevEmailID   = "dev-email-id"
	DevMessageID = "dev-message-id"
)

// EmailSender delivers one plain-text email and returns the provider message id.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) (string, error)
}

// SMSSender delivers one text message and returns the provider message id.
type SMSSender interface {
	SendSMS(ctx context.Context, to, message string) (string, error)
}

// SESAPI is the slice of *ses.Client the mailer needs.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SNSAPI is the slice of *sns.Client the texter needs.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

var (
	_ SESAPI = (*ses.Client)(nil)
	_ SNSAPI = (*sns.Client)(nil)

	_ EmailSender = (*SESMailer)(nil)
	_ SMSSender   = (*SNSTexter)(nil)
)

type Options struct {
	Development bool
	From        string // SES source address
	AWS         AWSConfig
}

type Senders struct {
	Email *SESMailer
	SMS   *SNSTexter
}

// New builds both senders. In development no AWS client is created at all.
func New(ctx context.Context, opts Options) (Senders, error) {
	if opts.Development {
		return Senders{
			Email: NewSESMailer(nil, opts.From, true),
			SMS:   NewSNSTexter(nil, true),
		}, nil
	}

	awsCfg, err := LoadAWSConfig(ctx, opts.AWS)
	if err != nil {
		return Senders{}, err
	}

	return Senders{
		Email: NewSESMailer(ses.NewFromConfig(awsCfg), opts.From, false),
		SMS:   NewSNSTexter(sns.NewFromConfig(awsCfg), false),
	}, nil
}
