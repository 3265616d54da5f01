// Package db bridges PostgreSQL LISTEN/NOTIFY into the process: every
// committed follow mutation, local or from another replica, arrives
// here and is folded into the in-memory graph and rebroadcast to
// WebSocket clients.
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"net"
	"regexp"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"

	"github.com/sociograph/sociograph/internal/dbpool"
	"github.com/sociograph/sociograph/internal/models"
	"github.com/sociograph/sociograph/internal/store"
)

// validChannel matches safe PostgreSQL LISTEN channel names.
var validChannel = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

const (
	initialBackoff    = 1 * time.Second
	maxBackoff        = 30 * time.Second
	backoffMultiplier = 2
)

// Broadcaster sends events to connected WebSocket clients.
type Broadcaster interface {
	BroadcastEvent(eventType string, data json.RawMessage)
}

// Applier folds replicated follow events into the local graph and can
// rebuild it wholesale after a gap in the notification stream.
type Applier interface {
	ApplyFollow(followerID, followeeID models.UserID)
	ApplyUnfollow(followerID, followeeID models.UserID)
	Resync(ctx context.Context) (int, error)
}

// NotifyBridge subscribes to PostgreSQL LISTEN/NOTIFY on the
// follow_changes channel, applies each event to the local graph, and
// forwards it to the WebSocket hub. Re-applying a locally originated
// event is a no-op thanks to idempotent graph mutations.
type NotifyBridge struct {
	log     *logrus.Logger
	pool    *dbpool.Pool
	applier Applier
	hub     Broadcaster
}

// NewNotifyBridge creates a NotifyBridge wired to the given pool,
// applier and hub.
func NewNotifyBridge(log *logrus.Logger, pool *dbpool.Pool, applier Applier, hub Broadcaster) *NotifyBridge {
	return &NotifyBridge{
		log:     log,
		pool:    pool,
		applier: applier,
		hub:     hub,
	}
}

// Start launches the LISTEN/NOTIFY loop in a background goroutine.
// It verifies the initial connection before returning. If the initial
// LISTEN fails, it returns an error. The background goroutine handles
// reconnection for subsequent failures.
func (b *NotifyBridge) Start(ctx context.Context) error {
	if !validChannel.MatchString(store.NotifyChannel) {
		return fmt.Errorf("notify bridge: invalid channel name %q", store.NotifyChannel)
	}

	if err := b.pool.Ping(ctx); err != nil {
		return fmt.Errorf("notify bridge: database not reachable: %w", err)
	}

	go b.listen(ctx)

	return nil
}

// listen is the main loop that acquires a connection, subscribes to the
// channel, and processes notifications until the context is cancelled.
func (b *NotifyBridge) listen(ctx context.Context) {
	backoff := initialBackoff

	for {
		if ctx.Err() != nil {
			return
		}

		err := b.subscribeAndForward(ctx)
		if err == nil || ctx.Err() != nil {
			return
		}

		b.log.WithError(err).WithField("retry_in", backoff).
			Warn("notify bridge connection lost, reconnecting")

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		backoff = nextBackoff(backoff)
	}
}

// subscribeAndForward acquires a connection, issues LISTEN, reloads the
// graph to cover the window when no listener was attached, and blocks
// on notifications until the connection fails or the context is
// cancelled.
func (b *NotifyBridge) subscribeAndForward(ctx context.Context) error {
	conn, err := b.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquiring connection: %w", err)
	}
	defer conn.Release()

	// LISTEN requires the channel name inline (not a parameter), so we use
	// pgx.Identifier to safely quote/sanitize the channel name.
	sanitizedChannel := pgx.Identifier{store.NotifyChannel}.Sanitize()
	if _, err := conn.Exec(ctx, "LISTEN "+sanitizedChannel); err != nil {
		return fmt.Errorf("executing LISTEN: %w", err)
	}

	b.log.WithField("channel", store.NotifyChannel).Info("notify bridge listening")

	// Events missed before LISTEN attached are healed by a full reload.
	// Notifications delivered from here on queue on this connection and
	// are applied after the reload, so the graph converges either way.
	if _, err := b.applier.Resync(ctx); err != nil {
		return fmt.Errorf("resyncing after listen: %w", err)
	}

	for {
		// Set a 2-minute read deadline so we periodically check ctx cancellation.
		if err := conn.Conn().PgConn().Conn().SetReadDeadline(time.Now().Add(2 * time.Minute)); err != nil {
			return fmt.Errorf("setting read deadline: %w", err)
		}

		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			// On timeout, loop back to check context and retry.
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}

			return fmt.Errorf("waiting for notification: %w", err)
		}

		b.handleNotification(notification)
	}
}

// handleNotification applies a single follow event to the local graph
// and forwards it to the hub.
func (b *NotifyBridge) handleNotification(n *pgconn.Notification) {
	b.log.WithFields(logrus.Fields{
		"channel": n.Channel,
		"pid":     n.PID,
	}).Debug("notification received")

	var ev models.FollowEvent
	if err := json.Unmarshal([]byte(n.Payload), &ev); err != nil {
		b.log.WithError(err).Warn("dropping malformed follow notification")
		return
	}

	if ev.FollowerID <= 0 || ev.FolloweeID <= 0 {
		b.log.Warn("dropping follow notification without user ids")
		return
	}

	switch ev.Op {
	case models.OpFollow:
		b.applier.ApplyFollow(ev.FollowerID, ev.FolloweeID)
		b.hub.BroadcastEvent(models.EventFollowCreated, json.RawMessage(n.Payload))
	case models.OpUnfollow:
		b.applier.ApplyUnfollow(ev.FollowerID, ev.FolloweeID)
		b.hub.BroadcastEvent(models.EventFollowRemoved, json.RawMessage(n.Payload))
	default:
		b.log.WithField("op", ev.Op).Warn("dropping follow notification with unknown op")
	}
}

// nextBackoff doubles the current backoff duration with random jitter (±25%),
// capped at maxBackoff. Jitter prevents thundering herd on reconnect.
func nextBackoff(current time.Duration) time.Duration {
	next := current * backoffMultiplier
	if next > maxBackoff {
		next = maxBackoff
	}

	// Add ±25% jitter.
	jitter := float64(next) * (0.75 + rand.Float64()*0.5) //nolint:gosec // jitter doesn't need crypto rand.

	return time.Duration(jitter)
}
