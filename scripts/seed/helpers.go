package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"github.com/jackc/pgx/v5"
)

// sanitizeURL removes credentials from a database URL for display.
func sanitizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "[unparseable URL]"
	}
	u.User = nil
	return u.String()
}

// envOr returns the environment variable value or a default.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ensureUsers creates a row for every referenced user id.
func ensureUsers(ctx context.Context, tx pgx.Tx, users []int64) error {
	for _, id := range users {
		_, err := tx.Exec(ctx,
			"INSERT INTO users (id) VALUES ($1) ON CONFLICT (id) DO NOTHING", id)
		if err != nil {
			return fmt.Errorf("user %d: %w", id, err)
		}
	}
	return nil
}

// insertFollows inserts pairs one at a time, skipping any the database
// rejects so one bad pair cannot abort the whole load.
func insertFollows(ctx context.Context, tx pgx.Tx, pairs []pair) (int, []skippedPair) {
	var skipped []skippedPair
	inserted := 0

	for _, p := range pairs {
		tag, err := tx.Exec(ctx,
			`INSERT INTO follows (follower_id, followee_id)
			 VALUES ($1, $2)
			 ON CONFLICT (follower_id, followee_id) DO NOTHING`,
			p.FollowerID, p.FolloweeID,
		)
		if err != nil {
			slog.Warn("follow insert failed, skipping", "follower", p.FollowerID, "followee", p.FolloweeID, "error", err)
			skipped = append(skipped, skippedPair{Follower: p.FollowerID, Followee: p.FolloweeID, Reason: err.Error()})
			continue
		}
		if tag.RowsAffected() == 0 {
			skipped = append(skipped, skippedPair{Follower: p.FollowerID, Followee: p.FolloweeID, Reason: "already following"})
			continue
		}
		inserted++
	}
	return inserted, skipped
}

// countFollows counts rows in the follows table.
func countFollows(ctx context.Context, tx pgx.Tx) (int, error) {
	var count int
	err := tx.QueryRow(ctx, "SELECT count(*) FROM follows").Scan(&count)
	return count, err
}

// printReport outputs the final seed summary.
func printReport(r *report) {
	fmt.Println()
	fmt.Println("=== Sociograph Seed Report ===")
	if r.DryRun {
		fmt.Println("MODE: DRY RUN (no changes made)")
	}
	fmt.Printf("Source: %s\n", r.Source)
	fmt.Printf("Target: %s\n", r.Target)
	fmt.Println()
	fmt.Printf("Users:   %d ensured\n", r.UsersEnsured)
	fmt.Printf("Follows: %d read → %d inserted → %d in table %s\n",
		r.PairsRead, r.FollowsInserted, r.FollowsInTable,
		statusIcon(r.FollowsInserted, r.FollowsInTable))

	if len(r.SkippedPairs) > 0 {
		fmt.Println("\nSkipped pairs:")
		for _, s := range r.SkippedPairs {
			if s.Line > 0 {
				fmt.Printf("  - line %d: %s\n", s.Line, s.Reason)
			} else {
				fmt.Printf("  - %d → %d (reason: %s)\n", s.Follower, s.Followee, s.Reason)
			}
		}
	}

	fmt.Printf("\nDuration: %.1fs\n", r.Duration.Seconds())
	if r.Err != nil {
		fmt.Printf("Status: FAILED: %v\n", r.Err)
	} else {
		fmt.Println("Status: SUCCESS")
	}
}

// statusIcon returns a check or X based on whether the table holds at least
// the inserted rows. The table may already contain follows from earlier
// loads, so equality is not required.
func statusIcon(inserted, inTable int) string {
	if inTable == 0 && inserted > 0 {
		return "⏳"
	}
	if inTable >= inserted {
		return "✅"
	}
	return "❌"
}
