// Package store provides data access for follow relationships.
//
// The follows table is assumed to exist; schema management happens
// outside this service:
//
//	CREATE TABLE follows (
//	    follower_id BIGINT NOT NULL,
//	    followee_id BIGINT NOT NULL,
//	    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
//	    PRIMARY KEY (follower_id, followee_id)
//	);
//
// Deployments that own a users table typically add foreign keys on both
// id columns; the store maps those violations to models.ErrUserNotFound.
//
// Writes are single statements. The caller applies the same change to
// the in-memory graph synchronously after a write returns, and every
// committed write is announced on the follow_changes channel so other
// replicas converge too.
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sociograph/sociograph/internal/dbpool"
	"github.com/sociograph/sociograph/internal/models"
)

const defaultQueryTimeout = 30 * time.Second

// NotifyChannel is the pg_notify channel carrying follow mutations to
// every running replica.
const NotifyChannel = "follow_changes"

// Base contains shared dependencies for all stores.
// Embed this in each store struct.
type Base struct {
	Pool *dbpool.Pool
	Log  *logrus.Logger
}

// withTimeout creates a context with the default query timeout.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultQueryTimeout)
}

// notify sends a pg_notify on the follow_changes channel (best-effort,
// post-commit).
func (b *Base) notify(op string, followerID, followeeID models.UserID) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	payload, _ := json.Marshal(models.FollowEvent{ //nolint:errcheck // static fields, cannot fail.
		Op:         op,
		FollowerID: followerID,
		FolloweeID: followeeID,
	})
	if _, err := b.Pool.Exec(ctx, "SELECT pg_notify($1, $2)", NotifyChannel, string(payload)); err != nil {
		b.Log.WithError(err).Warn("failed to send " + op + " notification")
	}
}
