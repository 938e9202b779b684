// Command cleanup-codes removes consumed and expired verification codes. The
// server already runs the same cleanup on its scheduler; this command is for
// deployments that run with notifications disabled or prefer an external
// cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/pantrywatch-backend/internal/adapter/postgres"
	verificationrepo "github.com/heartmarshall/pantrywatch-backend/internal/adapter/postgres/verification"
	"github.com/heartmarshall/pantrywatch-backend/internal/app"
	"github.com/heartmarshall/pantrywatch-backend/internal/config"
	"github.com/heartmarshall/pantrywatch-backend/internal/service/verification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := verification.NewService(logger, verificationrepo.New(pool), postgres.NewTxManager(pool), cfg.Verification)

	deleted, err := svc.CleanupStale(ctx)
	if err != nil {
		logger.Error("verification cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("verification cleanup completed", slog.Int("deleted", deleted))
}
