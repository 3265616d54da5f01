package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// UserService handles per-user listings, recommendations, and statistics.
type UserService struct {
	c *Client
}

// Followers returns the users following the given user, ascending by id.
func (s *UserService) Followers(ctx context.Context, id int64) (*UserList, error) {
	var list UserList
	path := fmt.Sprintf("/api/v1/users/%d/followers", id)
	if err := s.c.get(ctx, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Following returns the users the given user follows, ascending by id.
func (s *UserService) Following(ctx context.Context, id int64) (*UserList, error) {
	var list UserList
	path := fmt.Sprintf("/api/v1/users/%d/following", id)
	if err := s.c.get(ctx, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Suggestions returns follow recommendations for the given user. A limit of
// zero uses the server default.
func (s *UserService) Suggestions(ctx context.Context, id int64, limit int) (*SuggestionResult, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var res SuggestionResult
	path := fmt.Sprintf("/api/v1/users/%d/suggestions", id)
	if err := s.c.get(ctx, path, params, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Mutual returns the connection intersections between two users.
func (s *UserService) Mutual(ctx context.Context, id, otherID int64) (*MutualResult, error) {
	var res MutualResult
	path := fmt.Sprintf("/api/v1/users/%d/mutual/%d", id, otherID)
	if err := s.c.get(ctx, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// popularResponse wraps the popular-followees listing.
type popularResponse struct {
	UserID  int64        `json:"user_id"`
	Popular []Influencer `json:"popular"`
}

// Popular returns the user's followees ranked by follower count.
func (s *UserService) Popular(ctx context.Context, id int64, limit int) ([]Influencer, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var res popularResponse
	path := fmt.Sprintf("/api/v1/users/%d/popular", id)
	if err := s.c.get(ctx, path, params, &res); err != nil {
		return nil, err
	}
	return res.Popular, nil
}

// Stats returns follower, following, and community counts for the given
// user. A depth of zero uses the server default.
func (s *UserService) Stats(ctx context.Context, id int64, depth int) (*UserStats, error) {
	params := url.Values{}
	if depth > 0 {
		params.Set("depth", strconv.Itoa(depth))
	}
	var stats UserStats
	path := fmt.Sprintf("/api/v1/users/%d/stats", id)
	if err := s.c.get(ctx, path, params, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
