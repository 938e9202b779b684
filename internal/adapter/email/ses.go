package email

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/heartmarshall/pantrywatch-backend/internal/config"
	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
)

type sesClient interface {
	SendEmail(ctx context.Context, in *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SES sends messages through the Amazon SES v2 API.
type SES struct {
	client   sesClient
	fromName string
}

// NewSES loads AWS credentials from the default chain and creates an SES transport.
func NewSES(ctx context.Context, cfg config.SESConfig, fromName string) (*SES, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &SES{client: sesv2.NewFromConfig(awsCfg), fromName: fromName}, nil
}

// Name identifies the transport in logs.
func (s *SES) Name() string { return "ses" }

// Send delivers msg as a simple SES message carrying both bodies.
func (s *SES) Send(ctx context.Context, msg domain.EmailMessage) error {
	from := (&mail.Address{Name: s.fromName, Address: msg.From}).String()

	body := &types.Body{
		Text: &types.Content{Data: aws.String(msg.Text), Charset: aws.String("UTF-8")},
	}
	if msg.HTML != "" {
		body.Html = &types.Content{Data: aws.String(msg.HTML), Charset: aws.String("UTF-8")}
	}

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination:      &types.Destination{ToAddresses: []string{msg.To}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body:    body,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("ses send to %s: %w: %w", msg.To, domain.ErrTransport, err)
	}

	return nil
}
