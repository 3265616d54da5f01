package models

import "errors"

// Sentinel errors for validation.
var (
	ErrMissingFollowerID = errors.New("follower_id is required")
	ErrMissingFolloweeID = errors.New("followee_id is required")
	ErrInvalidUserID     = errors.New("user id must be a positive integer")
	ErrSelfFollow        = errors.New("a user cannot follow themselves")
)

// Sentinel errors for relationship lookups.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrFollowNotFound = errors.New("follow relationship not found")
)

// ErrAlreadyFollowing indicates the relationship already exists
// (maps to HTTP 409 Conflict).
var ErrAlreadyFollowing = errors.New("already following")
