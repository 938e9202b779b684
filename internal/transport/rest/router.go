package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/pantrywatch-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterDeps holds everything the HTTP surface is built from. Limiter may be
// nil to disable rate limiting.
type RouterDeps struct {
	Logger        *slog.Logger
	Health        *HealthHandler
	Auth          *AuthHandler
	Notifications *NotificationHandler
	Tokens        tokenValidator
	Limiter       *middleware.RateLimiter
	// VerificationPerMinute bounds each unauthenticated verification route per client IP.
	VerificationPerMinute int
}

// NewRouter registers every route and wraps the mux in the shared middleware.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)

	limit := func(name string) middleware.Middleware {
		if d.Limiter == nil {
			return nil
		}
		return d.Limiter.Limit(name, d.VerificationPerMinute)
	}

	mux.Handle("POST /auth/register/start", middleware.Wrap(d.Auth.StartRegistration, limit("register_start")))
	mux.Handle("POST /auth/register/verify", middleware.Wrap(d.Auth.CompleteRegistration, limit("register_verify")))
	mux.Handle("POST /auth/password-reset/request", middleware.Wrap(d.Auth.RequestPasswordReset, limit("reset_request")))
	mux.Handle("POST /auth/password-reset/verify", middleware.Wrap(d.Auth.ConfirmPasswordReset, limit("reset_verify")))

	authed := middleware.RequireAuth(d.Tokens)
	mux.Handle("POST /notifications/test", middleware.Wrap(d.Notifications.SendTest, authed))
	mux.Handle("POST /notifications/expiring", middleware.Wrap(d.Notifications.TriggerExpiring, authed))
	mux.Handle("POST /notifications/summary", middleware.Wrap(d.Notifications.TriggerSummary, authed))
	mux.Handle("GET /notifications/preferences", middleware.Wrap(d.Notifications.GetPreferences, authed))
	mux.Handle("PUT /notifications/preferences", middleware.Wrap(d.Notifications.UpdatePreferences, authed))

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
	)(mux)
}
