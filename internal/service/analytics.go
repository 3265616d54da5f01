package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sociograph/sociograph/internal/domain"
	"github.com/sociograph/sociograph/internal/graph"
	"github.com/sociograph/sociograph/internal/metrics"
	"github.com/sociograph/sociograph/internal/models"
)

// Compile-time check: *AnalyticsService must satisfy domain.AnalyticsService.
var _ domain.AnalyticsService = (*AnalyticsService)(nil)

// AnalyticsService serves network-wide rankings and per-user
// statistics from the in-memory graph.
type AnalyticsService struct {
	graph          *graph.Graph
	communityDepth int
	log            *logrus.Logger
}

// NewAnalyticsService creates an AnalyticsService. communityDepth is
// the horizon used for the community size in per-user stats when the
// caller does not name one.
func NewAnalyticsService(g *graph.Graph, communityDepth int, log *logrus.Logger) *AnalyticsService {
	if communityDepth <= 0 {
		communityDepth = 2
	}

	return &AnalyticsService{graph: g, communityDepth: communityDepth, log: log}
}

// Influencers ranks users by follower count, keeping those with at
// least minFollowers followers.
func (s *AnalyticsService) Influencers(ctx context.Context, minFollowers, limit int) ([]models.Influencer, error) {
	s.log.WithFields(logrus.Fields{
		"min_followers": minFollowers,
		"limit":         limit,
	}).Debug("analytics.influencers")

	defer metrics.ObserveGraphQuery("influencers", time.Now())

	return s.graph.Influencers(minFollowers, limit), nil
}

// NetworkStats aggregates whole-network counters.
func (s *AnalyticsService) NetworkStats(ctx context.Context) (*models.NetworkStats, error) {
	s.log.Debug("analytics.network_stats")

	defer metrics.ObserveGraphQuery("network_stats", time.Now())

	stats := s.graph.Stats()

	return &stats, nil
}

// UserStats summarizes one user's place in the network. depth <= 0
// falls back to the configured community horizon.
func (s *AnalyticsService) UserStats(ctx context.Context, id models.UserID, depth int) (*models.UserStats, error) {
	if id <= 0 {
		return nil, models.ErrInvalidUserID
	}

	if depth <= 0 {
		depth = s.communityDepth
	}

	s.log.WithFields(logrus.Fields{
		"user_id": id,
		"depth":   depth,
	}).Debug("analytics.user_stats")

	defer metrics.ObserveGraphQuery("user_stats", time.Now())

	return &models.UserStats{
		UserID:        id,
		Followers:     s.graph.FollowerCount(id),
		Following:     s.graph.FollowingCount(id),
		CommunitySize: s.graph.CommunitySize(id, depth),
	}, nil
}
