// Package delivery is the notification delivery gateway: it renders messages
// and hands them to the configured email transport, falling back to a
// structured log record when the transport fails and fallback is enabled.
package delivery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
)

// transport is the outbound email channel.
type transport interface {
	Send(ctx context.Context, msg domain.EmailMessage) error
	Name() string
}

// Config controls sender identity, per-send timeout and fallback behaviour.
type Config struct {
	From            string
	SendTimeout     time.Duration
	FallbackEnabled bool
}

// Gateway sends rendered notifications. It never deduplicates: every call
// attempts a send.
type Gateway struct {
	log       *slog.Logger
	transport transport
	cfg       Config
	validate  *validator.Validate
}

// NewGateway creates a gateway. A nil transport is allowed and behaves as a
// transport that always fails.
func NewGateway(logger *slog.Logger, t transport, cfg Config) *Gateway {
	return &Gateway{
		log:       logger.With("service", "delivery"),
		transport: t,
		cfg:       cfg,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

var errNoTransport = fmt.Errorf("no email transport configured: %w", domain.ErrTransport)

// SendExpirationDigest sends the list of expired and expiring-soon items.
func (g *Gateway) SendExpirationDigest(ctx context.Context, to string, expired, expiringSoon []domain.ItemStatus) (Outcome, error) {
	msg, err := renderDigest(digestData{Expired: expired, ExpiringSoon: expiringSoon})
	if err != nil {
		return Outcome{}, err
	}
	return g.send(ctx, to, msg)
}

// SendWeeklySummary sends the full inventory with per-item status.
func (g *Gateway) SendWeeklySummary(ctx context.Context, to string, items []domain.ItemStatus) (Outcome, error) {
	msg, err := renderSummary(newSummaryData(items))
	if err != nil {
		return Outcome{}, err
	}
	return g.send(ctx, to, msg)
}

// SendGenericMessage sends caller-provided content as is.
func (g *Gateway) SendGenericMessage(ctx context.Context, to, subject, text, html string) (Outcome, error) {
	return g.send(ctx, to, domain.EmailMessage{Subject: subject, Text: text, HTML: html})
}

// SendVerificationCode sends a one-time code for the given purpose.
func (g *Gateway) SendVerificationCode(ctx context.Context, to, code string, purpose domain.VerificationPurpose, ttl time.Duration) (Outcome, error) {
	msg, err := renderCode(codeData{Code: code, Purpose: purpose, Minutes: int(ttl.Round(time.Minute) / time.Minute)})
	if err != nil {
		return Outcome{}, err
	}
	return g.send(ctx, to, msg)
}

// send validates the recipient, attempts the transport under the configured
// timeout and applies the fallback policy. The only error it returns is a
// validation error for a malformed recipient.
func (g *Gateway) send(ctx context.Context, to string, msg domain.EmailMessage) (Outcome, error) {
	to = strings.TrimSpace(to)
	if err := g.validate.Var(to, "required,email"); err != nil {
		return Outcome{}, domain.NewValidationError("to", "must be a valid email address")
	}

	msg.To = to
	msg.From = g.cfg.From

	err := g.attempt(ctx, msg)
	if err == nil {
		g.log.InfoContext(ctx, "email sent",
			slog.String("to", to),
			slog.String("subject", msg.Subject),
			slog.String("transport", g.transportName()),
		)
		return Outcome{Sent: true}, nil
	}

	if g.cfg.FallbackEnabled {
		g.log.WarnContext(ctx, "email transport failed, message written to fallback log",
			slog.String("to", to),
			slog.String("from", msg.From),
			slog.String("subject", msg.Subject),
			slog.String("text", msg.Text),
			slog.String("error", err.Error()),
		)
		return Outcome{Sent: true, UsedFallback: true}, nil
	}

	g.log.ErrorContext(ctx, "email delivery failed",
		slog.String("to", to),
		slog.String("subject", msg.Subject),
		slog.String("transport", g.transportName()),
		slog.String("error", err.Error()),
	)
	return Outcome{Err: err}, nil
}

func (g *Gateway) attempt(ctx context.Context, msg domain.EmailMessage) (err error) {
	if g.transport == nil {
		return errNoTransport
	}

	sendCtx := ctx
	if g.cfg.SendTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, g.cfg.SendTimeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transport panic: %v: %w", r, domain.ErrTransport)
		}
	}()

	if err := g.transport.Send(sendCtx, msg); err != nil {
		if !errors.Is(err, domain.ErrTransport) {
			err = fmt.Errorf("%w: %w", domain.ErrTransport, err)
		}
		return err
	}
	return nil
}

func (g *Gateway) transportName() string {
	if g.transport == nil {
		return "none"
	}
	return g.transport.Name()
}
