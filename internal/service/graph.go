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

// Compile-time check: *GraphService must satisfy domain.GraphService.
var _ domain.GraphService = (*GraphService)(nil)

// GraphService serves path and reachability queries from the in-memory
// graph. Caller-supplied path depths are clamped to the configured
// ceiling so a single request cannot widen the search beyond it.
type GraphService struct {
	graph          *graph.Graph
	maxPathDepth   int
	communityDepth int
	log            *logrus.Logger
}

// NewGraphService creates a GraphService. maxPathDepth caps every path
// search; communityDepth is the horizon used when a community query
// does not name one.
func NewGraphService(g *graph.Graph, maxPathDepth, communityDepth int, log *logrus.Logger) *GraphService {
	if maxPathDepth <= 0 {
		maxPathDepth = graph.DefaultMaxDepth
	}

	if communityDepth <= 0 {
		communityDepth = 2
	}

	return &GraphService{
		graph:          g,
		maxPathDepth:   maxPathDepth,
		communityDepth: communityDepth,
		log:            log,
	}
}

// ShortestPath finds the shortest follow chain from one user to
// another. maxDepth values outside 1..ceiling fall back to the
// ceiling. An unconnected pair is a result, not an error.
func (s *GraphService) ShortestPath(ctx context.Context, fromID, toID models.UserID, maxDepth int) (*models.PathResult, error) {
	if fromID <= 0 || toID <= 0 {
		return nil, models.ErrInvalidUserID
	}

	if maxDepth <= 0 || maxDepth > s.maxPathDepth {
		maxDepth = s.maxPathDepth
	}

	s.log.WithFields(logrus.Fields{
		"from_id":   fromID,
		"to_id":     toID,
		"max_depth": maxDepth,
	}).Debug("graph.shortest_path")

	defer metrics.ObserveGraphQuery("shortest_path", time.Now())

	res := s.graph.ShortestPath(fromID, toID, maxDepth)

	return &res, nil
}

// CommunitySize counts the users reachable from id within maxDepth
// hops, id included. maxDepth <= 0 falls back to the configured
// community horizon.
func (s *GraphService) CommunitySize(ctx context.Context, id models.UserID, maxDepth int) (int, error) {
	if id <= 0 {
		return 0, models.ErrInvalidUserID
	}

	if maxDepth <= 0 {
		maxDepth = s.communityDepth
	}

	s.log.WithFields(logrus.Fields{
		"user_id":   id,
		"max_depth": maxDepth,
	}).Debug("graph.community_size")

	defer metrics.ObserveGraphQuery("community_size", time.Now())

	return s.graph.CommunitySize(id, maxDepth), nil
}
