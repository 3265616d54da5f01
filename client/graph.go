package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GraphService handles graph traversal and network-wide analytics.
type GraphService struct {
	c *Client
}

// ShortestPath returns the shortest follow chain between two users. A
// maxDepth of zero uses the server's configured ceiling.
func (s *GraphService) ShortestPath(ctx context.Context, fromID, toID int64, maxDepth int) (*PathResult, error) {
	params := url.Values{}
	if maxDepth > 0 {
		params.Set("max_depth", strconv.Itoa(maxDepth))
	}
	var res PathResult
	path := fmt.Sprintf("/api/v1/graph/path/%d/%d", fromID, toID)
	if err := s.c.get(ctx, path, params, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Community returns the size of a user's extended network. A depth of zero
// uses the server default.
func (s *GraphService) Community(ctx context.Context, id int64, depth int) (*CommunityResult, error) {
	params := url.Values{}
	if depth > 0 {
		params.Set("depth", strconv.Itoa(depth))
	}
	var res CommunityResult
	path := fmt.Sprintf("/api/v1/graph/community/%d", id)
	if err := s.c.get(ctx, path, params, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Influencers returns users ranked by follower count. A negative
// minFollowers or zero limit uses the server defaults.
func (s *GraphService) Influencers(ctx context.Context, minFollowers, limit int) ([]Influencer, error) {
	params := url.Values{}
	if minFollowers >= 0 {
		params.Set("min_followers", strconv.Itoa(minFollowers))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var list []Influencer
	if err := s.c.get(ctx, "/api/v1/graph/influencers", params, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// NetworkStats returns whole-network counters.
func (s *GraphService) NetworkStats(ctx context.Context) (*NetworkStats, error) {
	var stats NetworkStats
	if err := s.c.get(ctx, "/api/v1/graph/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
