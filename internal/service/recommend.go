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

// Compile-time check: *RecommendService must satisfy domain.RecommendService.
var _ domain.RecommendService = (*RecommendService)(nil)

// RecommendService ranks friends-of-friends candidates and mutual
// connections from the in-memory graph.
type RecommendService struct {
	graph *graph.Graph
	log   *logrus.Logger
}

// NewRecommendService creates a RecommendService.
func NewRecommendService(g *graph.Graph, log *logrus.Logger) *RecommendService {
	return &RecommendService{graph: g, log: log}
}

// Suggestions returns who-to-follow candidates for id, best first.
func (s *RecommendService) Suggestions(ctx context.Context, id models.UserID, limit int) (*models.SuggestionResult, error) {
	if id <= 0 {
		return nil, models.ErrInvalidUserID
	}

	s.log.WithFields(logrus.Fields{
		"user_id": id,
		"limit":   limit,
	}).Debug("recommend.suggestions")

	defer metrics.ObserveGraphQuery("suggestions", time.Now())

	return &models.SuggestionResult{
		UserID:      id,
		Suggestions: s.graph.Suggestions(id, limit),
	}, nil
}

// Mutual returns both intersections for a pair: the users both follow,
// and the users following both.
func (s *RecommendService) Mutual(ctx context.Context, id, otherID models.UserID) (*models.MutualResult, error) {
	if id <= 0 || otherID <= 0 {
		return nil, models.ErrInvalidUserID
	}

	s.log.WithFields(logrus.Fields{
		"user_id":  id,
		"other_id": otherID,
	}).Debug("recommend.mutual")

	defer metrics.ObserveGraphQuery("mutual", time.Now())

	following := s.graph.MutualConnections(id, otherID)
	followers := s.graph.MutualFollowers(id, otherID)

	return &models.MutualResult{
		MutualFollowing:      following,
		MutualFollowingCount: len(following),
		MutualFriends:        followers,
		MutualFriendsCount:   len(followers),
	}, nil
}

// Popular ranks the users id follows by their global follower counts.
func (s *RecommendService) Popular(ctx context.Context, id models.UserID, limit int) ([]models.Influencer, error) {
	if id <= 0 {
		return nil, models.ErrInvalidUserID
	}

	s.log.WithFields(logrus.Fields{
		"user_id": id,
		"limit":   limit,
	}).Debug("recommend.popular")

	defer metrics.ObserveGraphQuery("popular", time.Now())

	return s.graph.PopularAmongFollowing(id, limit), nil
}
