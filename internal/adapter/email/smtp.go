// Package email provides the outbound email transports: an SMTP relay and
// Amazon SES. Both honour context cancellation so a slow relay is reported
// as a transport failure once the caller's deadline passes.
package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/heartmarshall/pantrywatch-backend/internal/config"
	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
)

type smtpDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTP sends multipart text/HTML messages through an SMTP relay.
type SMTP struct {
	dialer   smtpDialer
	fromName string
}

// NewSMTP creates an SMTP transport from config.
func NewSMTP(cfg config.SMTPConfig, fromName string) *SMTP {
	return &SMTP{
		dialer:   gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		fromName: fromName,
	}
}

// Name identifies the transport in logs.
func (s *SMTP) Name() string { return "smtp" }

// Send delivers msg. gomail has no context support, so the dial runs in its
// own goroutine and Send returns as soon as ctx is done; the abandoned dial
// finishes in the background.
func (s *SMTP) Send(ctx context.Context, msg domain.EmailMessage) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", msg.From, s.fromName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send to %s: %w: %w", msg.To, domain.ErrTransport, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp send to %s: %w: %w", msg.To, domain.ErrTransport, ctx.Err())
	}
}
