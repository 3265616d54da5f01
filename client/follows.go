package client

import (
	"context"
	"fmt"
)

// FollowService handles follow relationship mutations.
type FollowService struct {
	c *Client
}

// createFollowRequest is the payload for creating a follow relationship.
type createFollowRequest struct {
	FollowerID int64 `json:"follower_id"`
	FolloweeID int64 `json:"followee_id"`
}

// Create makes follower follow followee.
func (s *FollowService) Create(ctx context.Context, followerID, followeeID int64) (*FollowResult, error) {
	var res FollowResult
	req := createFollowRequest{FollowerID: followerID, FolloweeID: followeeID}
	if err := s.c.post(ctx, "/api/v1/follows", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Delete removes the follow relationship from follower to followee.
func (s *FollowService) Delete(ctx context.Context, followerID, followeeID int64) error {
	path := fmt.Sprintf("/api/v1/follows/%d/%d", followerID, followeeID)
	return s.c.del(ctx, path, nil, nil)
}
