package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/pantrywatch-backend/internal/adapter/email"
	"github.com/heartmarshall/pantrywatch-backend/internal/adapter/postgres"
	inventoryrepo "github.com/heartmarshall/pantrywatch-backend/internal/adapter/postgres/inventory"
	preferencerepo "github.com/heartmarshall/pantrywatch-backend/internal/adapter/postgres/preference"
	userrepo "github.com/heartmarshall/pantrywatch-backend/internal/adapter/postgres/user"
	verificationrepo "github.com/heartmarshall/pantrywatch-backend/internal/adapter/postgres/verification"
	"github.com/heartmarshall/pantrywatch-backend/internal/auth"
	"github.com/heartmarshall/pantrywatch-backend/internal/config"
	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
	authsvc "github.com/heartmarshall/pantrywatch-backend/internal/service/auth"
	"github.com/heartmarshall/pantrywatch-backend/internal/service/delivery"
	"github.com/heartmarshall/pantrywatch-backend/internal/service/notification"
	"github.com/heartmarshall/pantrywatch-backend/internal/service/verification"
	"github.com/heartmarshall/pantrywatch-backend/internal/transport/middleware"
	"github.com/heartmarshall/pantrywatch-backend/internal/transport/rest"
)

// emailTransport is what the delivery gateway needs from an outbound adapter.
type emailTransport interface {
	Send(ctx context.Context, msg domain.EmailMessage) error
	Name() string
}

// Run is the application entry point. It loads configuration, connects to
// the database, wires the services, starts the scheduler and the HTTP
// server, and blocks until ctx is cancelled or the server fails. Shutdown
// stops the scheduler first so no new pass starts while requests drain.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("email_driver", cfg.Email.Driver),
		slog.Bool("notifications_enabled", cfg.Notifications.Enabled),
		slog.String("timezone", cfg.Notifications.Location.String()),
	)

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	transport, err := newEmailTransport(ctx, cfg.Email)
	if err != nil {
		return err
	}
	if transport == nil {
		logger.Warn("no email transport configured, every send is treated as a transport failure",
			slog.Bool("fallback_enabled", cfg.Email.FallbackEnabled),
		)
	}

	// Repositories.
	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	prefs := preferencerepo.New(pool)
	items := inventoryrepo.New(pool)
	codes := verificationrepo.New(pool)

	// Services.
	gateway := delivery.NewGateway(logger, transport, delivery.Config{
		From:            cfg.Email.FromAddress,
		SendTimeout:     cfg.Email.SendTimeout,
		FallbackEnabled: cfg.Email.FallbackEnabled,
	})
	verifier := verification.NewService(logger, codes, txm, cfg.Verification)
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	accounts := authsvc.NewService(logger, users, prefs, verifier, gateway, txm, tokens, cfg.Auth)
	notifier := notification.NewService(logger, prefs, items, users, gateway, cfg.Notifications)

	scheduler := notification.NewScheduler(logger, notifier, cfg.Notifications,
		codeCleanupJob(logger, verifier, cfg.Verification.CleanupSchedule),
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	server := &http.Server{
		Addr: net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler: rest.NewRouter(rest.RouterDeps{
			Logger:                logger,
			Health:                rest.NewHealthHandler(pool, scheduler, BuildVersion()),
			Auth:                  rest.NewAuthHandler(accounts, logger),
			Notifications:         rest.NewNotificationHandler(notifier, logger),
			Tokens:                tokens,
			Limiter:               limiter,
			VerificationPerMinute: cfg.RateLimit.VerificationPerMinute,
		}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	if err := scheduler.Initialize(ctx); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			runErr = fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := scheduler.Stop(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("stop scheduler: %w", err))
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("shutdown http server: %w", err))
	}

	logger.Info("application stopped")
	return runErr
}

// newEmailTransport builds the adapter selected by cfg.Driver. Driver "none"
// returns a nil transport.
func newEmailTransport(ctx context.Context, cfg config.EmailConfig) (emailTransport, error) {
	switch cfg.Driver {
	case config.EmailDriverSMTP:
		return email.NewSMTP(cfg.SMTP, cfg.FromName), nil
	case config.EmailDriverSES:
		t, err := email.NewSES(ctx, cfg.SES, cfg.FromName)
		if err != nil {
			return nil, fmt.Errorf("ses transport: %w", err)
		}
		return t, nil
	case config.EmailDriverNone, "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown email driver %q", cfg.Driver)
	}
}

type codeCleaner interface {
	CleanupStale(ctx context.Context) (int, error)
}

// codeCleanupJob purges consumed and expired verification codes on the
// scheduler's clock.
func codeCleanupJob(logger *slog.Logger, cleaner codeCleaner, spec string) notification.Job {
	return notification.Job{
		Name: "verification_cleanup",
		Spec: spec,
		Run: func(ctx context.Context) error {
			n, err := cleaner.CleanupStale(ctx)
			if err != nil {
				return err
			}
			if n > 0 {
				logger.InfoContext(ctx, "stale verification codes removed", slog.Int("count", n))
			}
			return nil
		},
	}
}
