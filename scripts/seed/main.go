// Package main provides a standalone seed script that loads follow pairs
// from a JSON lines file into the sociograph PostgreSQL database.
//
// Usage:
//
//	SEED_FILE=follows.jsonl DATABASE_URL=postgres://... go run ./scripts/seed
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
)

// config holds environment-driven seed settings.
type config struct {
	SeedFile    string
	DatabaseURL string
	DryRun      bool
}

// skippedPair records an input pair that was not loaded. Line is set for
// skips found while reading the file, zero for skips during insert.
type skippedPair struct {
	Line     int
	Follower int64
	Followee int64
	Reason   string
}

// report holds the final seed summary.
type report struct {
	Source          string
	Target          string
	PairsRead       int
	UsersEnsured    int
	FollowsInserted int
	FollowsInTable  int
	SkippedPairs    []skippedPair
	Duration        time.Duration
	DryRun          bool
	Err             error
}

func main() {
	cfg := loadConfig()
	if cfg.DatabaseURL == "" {
		slog.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	slog.Info("starting seed",
		"file", cfg.SeedFile,
		"dry_run", cfg.DryRun,
	)

	start := time.Now()
	r, err := runSeed(context.Background(), cfg)
	r.Duration = time.Since(start)
	if err != nil {
		r.Err = err
		slog.Error("seed failed", "error", err)
	}
	printReport(&r)
	if err != nil {
		os.Exit(1)
	}
}

// loadConfig reads configuration from environment variables.
func loadConfig() config {
	return config{
		SeedFile:    envOr("SEED_FILE", "follows.jsonl"),
		DatabaseURL: envOr("DATABASE_URL", ""),
		DryRun:      os.Getenv("DRY_RUN") == "true" || os.Getenv("DRY_RUN") == "1",
	}
}

// runSeed executes the full seed pipeline.
func runSeed(ctx context.Context, cfg config) (report, error) {
	r := report{
		Source: cfg.SeedFile,
		Target: sanitizeURL(cfg.DatabaseURL),
		DryRun: cfg.DryRun,
	}

	pairs, skipped, err := readPairs(cfg.SeedFile)
	if err != nil {
		return r, fmt.Errorf("read pairs: %w", err)
	}
	r.PairsRead = len(pairs) + len(skipped)
	r.SkippedPairs = skipped
	slog.Info("read follow pairs", "count", len(pairs), "skipped", len(skipped))

	if cfg.DryRun {
		slog.Info("dry run, skipping PostgreSQL writes")
		r.FollowsInserted = len(pairs)
		r.UsersEnsured = len(distinctUsers(pairs))
		return r, nil
	}

	// Connect to PostgreSQL and run in a transaction.
	conn, err := pgx.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return r, fmt.Errorf("connect postgres: %w", err)
	}
	defer conn.Close(ctx)

	tx, err := conn.Begin(ctx)
	if err != nil {
		return r, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	// Users must exist before follows; the follows table references them.
	users := distinctUsers(pairs)
	if err := ensureUsers(ctx, tx, users); err != nil {
		return r, fmt.Errorf("ensure users: %w", err)
	}
	r.UsersEnsured = len(users)
	slog.Info("ensured users", "count", r.UsersEnsured)

	inserted, insertSkipped := insertFollows(ctx, tx, pairs)
	r.FollowsInserted = inserted
	r.SkippedPairs = append(r.SkippedPairs, insertSkipped...)
	slog.Info("inserted follows", "count", inserted, "skipped", len(insertSkipped))

	// Verify counts.
	r.FollowsInTable, err = countFollows(ctx, tx)
	if err != nil {
		return r, fmt.Errorf("verify follow count: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return r, fmt.Errorf("commit: %w", err)
	}
	slog.Info("transaction committed")
	return r, nil
}
