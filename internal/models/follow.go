package models

import "time"

// Follow represents a directed relationship: follower follows followee.
type Follow struct {
	FollowerID UserID    `json:"follower_id"`
	FolloweeID UserID    `json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateFollowRequest is the payload for creating a follow relationship.
type CreateFollowRequest struct {
	FollowerID UserID `json:"follower_id"`
	FolloweeID UserID `json:"followee_id"`
}

// Validate checks that both ids are present, positive and distinct.
func (r *CreateFollowRequest) Validate() error {
	if r.FollowerID == 0 {
		return ErrMissingFollowerID
	}

	if r.FolloweeID == 0 {
		return ErrMissingFolloweeID
	}

	if r.FollowerID < 0 || r.FolloweeID < 0 {
		return ErrInvalidUserID
	}

	if r.FollowerID == r.FolloweeID {
		return ErrSelfFollow
	}

	return nil
}

// FollowResult reports the outcome of a follow mutation, including
// whether the relationship is now reciprocal.
type FollowResult struct {
	FollowerID UserID `json:"follower_id"`
	FolloweeID UserID `json:"followee_id"`
	IsMutual   bool   `json:"is_mutual"`
}

// Follow event operations carried on the notification channel.
const (
	OpFollow   = "follow"
	OpUnfollow = "unfollow"
)

// WebSocket event types derived from follow operations.
const (
	EventFollowCreated = "follow.created"
	EventFollowRemoved = "follow.removed"
)

// FollowEvent is the payload published on the follow_changes pg_notify
// channel after a relational write commits, and rebroadcast on the
// WebSocket stream.
type FollowEvent struct {
	Op         string `json:"op"`
	FollowerID UserID `json:"follower_id"`
	FolloweeID UserID `json:"followee_id"`
}

