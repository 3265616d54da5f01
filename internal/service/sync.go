package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/sociograph/sociograph/internal/domain"
	"github.com/sociograph/sociograph/internal/graph"
	"github.com/sociograph/sociograph/internal/metrics"
	"github.com/sociograph/sociograph/internal/models"
)

// FollowLister enumerates the durable follow set for bulk graph loads.
// *store.FollowStore implements it.
type FollowLister interface {
	List(ctx context.Context) ([]models.Follow, error)
}

// Compile-time check: *SyncService must satisfy domain.AdminService.
var _ domain.AdminService = (*SyncService)(nil)

// SyncService owns the in-memory graph's lifecycle: the initial
// bootstrap load, full reloads, and incremental applies from the
// notification stream. It also publishes the graph size gauges.
type SyncService struct {
	repo  FollowLister
	graph *graph.Graph
	log   *logrus.Logger
	group singleflight.Group
}

// NewSyncService creates a SyncService.
func NewSyncService(repo FollowLister, g *graph.Graph, log *logrus.Logger) *SyncService {
	return &SyncService{repo: repo, graph: g, log: log}
}

// Bootstrap performs the initial graph load. It is Resync under a
// clearer name for call sites that run before the server accepts
// traffic.
func (s *SyncService) Bootstrap(ctx context.Context) (int, error) {
	return s.Resync(ctx)
}

// Resync reloads the whole graph from the durable store, replacing the
// adjacency wholesale. Concurrent callers collapse into a single List
// query and share its outcome.
func (s *SyncService) Resync(ctx context.Context) (int, error) {
	val, err, shared := s.group.Do("resync", func() (any, error) {
		follows, err := s.repo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing follows: %w", err)
		}

		edges := s.graph.Replace(follows)
		s.updateGauges()
		metrics.ResyncsTotal.Inc()

		s.log.WithFields(logrus.Fields{
			"rows":  len(follows),
			"edges": edges,
		}).Info("graph reloaded")

		return edges, nil
	})
	if err != nil {
		return 0, err
	}

	if shared {
		s.log.Debug("resync joined an in-flight reload")
	}

	edges, ok := val.(int)
	if !ok {
		return 0, fmt.Errorf("service: unexpected resync result type %T", val)
	}

	return edges, nil
}

// ApplyFollow folds a replicated follow into the graph. Locally
// originated events arrive here a second time via LISTEN/NOTIFY;
// AddEdge treats existing edges as no-ops so the replay is harmless.
func (s *SyncService) ApplyFollow(followerID, followeeID models.UserID) {
	if err := s.graph.AddEdge(followerID, followeeID); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"follower_id": followerID,
			"followee_id": followeeID,
		}).Warn("dropping replicated follow")

		return
	}

	metrics.FollowEventsApplied.WithLabelValues(models.OpFollow).Inc()
	s.updateGauges()
}

// ApplyUnfollow folds a replicated unfollow into the graph. Removing
// an edge the graph does not hold is a no-op.
func (s *SyncService) ApplyUnfollow(followerID, followeeID models.UserID) {
	s.graph.RemoveEdge(followerID, followeeID)

	metrics.FollowEventsApplied.WithLabelValues(models.OpUnfollow).Inc()
	s.updateGauges()
}

// updateGauges publishes the current graph counts.
func (s *SyncService) updateGauges() {
	metrics.UserCount.Set(float64(s.graph.NodeCount()))
	metrics.FollowCount.Set(float64(s.graph.EdgeCount()))
}
