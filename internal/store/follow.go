package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sociograph/sociograph/internal/models"
)

// foreignKeyViolation is the Postgres error code raised when a follow
// references a user id the users table does not contain.
const foreignKeyViolation = "23503"

// FollowStore persists follow relationships.
type FollowStore struct {
	Base
}

// NewFollowStore creates a new FollowStore.
func NewFollowStore(base Base) *FollowStore {
	return &FollowStore{Base: base}
}

// Insert records a follow relationship. Inserting an existing pair
// fails with models.ErrAlreadyFollowing; referencing an unknown user
// fails with models.ErrUserNotFound.
func (s *FollowStore) Insert(ctx context.Context, followerID, followeeID models.UserID) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := s.Pool.Exec(ctx,
		`INSERT INTO follows (follower_id, followee_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, followee_id) DO NOTHING`,
		followerID, followeeID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return models.ErrUserNotFound
		}

		return fmt.Errorf("inserting follow: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrAlreadyFollowing
	}

	s.notify(models.OpFollow, followerID, followeeID)

	return nil
}

// Delete removes a follow relationship. Deleting an absent pair fails
// with models.ErrFollowNotFound.
func (s *FollowStore) Delete(ctx context.Context, followerID, followeeID models.UserID) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := s.Pool.Exec(ctx,
		"DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2",
		followerID, followeeID,
	)
	if err != nil {
		return fmt.Errorf("deleting follow: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrFollowNotFound
	}

	s.notify(models.OpUnfollow, followerID, followeeID)

	return nil
}

// List enumerates every follow relationship for bulk graph loads.
func (s *FollowStore) List(ctx context.Context) ([]models.Follow, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.Pool.Query(ctx,
		"SELECT follower_id, followee_id, created_at FROM follows ORDER BY follower_id, followee_id",
	)
	if err != nil {
		return nil, fmt.Errorf("listing follows: %w", err)
	}
	defer rows.Close()

	follows := make([]models.Follow, 0, 1024)

	for rows.Next() {
		var f models.Follow
		if err := rows.Scan(&f.FollowerID, &f.FolloweeID, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning follow: %w", err)
		}

		follows = append(follows, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating follows: %w", err)
	}

	return follows, nil
}
