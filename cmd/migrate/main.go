// Command migrate applies every pending embedded schema migration.
//
// Usage:
//
//	migrate
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/pantrywatch-backend/internal/adapter/postgres"
)

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	applied, err := postgres.Migrate(ctx, dsn)
	if err != nil {
		log.Fatalf("migrate: %v", err)
	}

	log.Printf("Applied %d migration(s).", applied)
}
