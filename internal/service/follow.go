// Package service implements the business layer between the API
// handlers and the two data stores: Postgres for durability, the
// in-memory graph for every query.
package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/sociograph/sociograph/internal/domain"
	"github.com/sociograph/sociograph/internal/graph"
	"github.com/sociograph/sociograph/internal/models"
)

// FollowRepository is the persistence interface FollowService writes
// through. *store.FollowStore implements it.
type FollowRepository interface {
	Insert(ctx context.Context, followerID, followeeID models.UserID) error
	Delete(ctx context.Context, followerID, followeeID models.UserID) error
}

// Compile-time check: *FollowService must satisfy domain.FollowService.
var _ domain.FollowService = (*FollowService)(nil)

// FollowService validates follow mutations, persists them, and folds
// them into the in-memory graph. Listings are served from the graph
// alone.
type FollowService struct {
	repo  FollowRepository
	graph *graph.Graph
	log   *logrus.Logger
}

// NewFollowService creates a FollowService.
func NewFollowService(repo FollowRepository, g *graph.Graph, log *logrus.Logger) *FollowService {
	return &FollowService{repo: repo, graph: g, log: log}
}

// Follow records follower -> followee. The row is durable before the
// local graph sees it, so a crash between the two writes is healed by
// the next resync.
func (s *FollowService) Follow(ctx context.Context, req models.CreateFollowRequest) (*models.FollowResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"follower_id": req.FollowerID,
		"followee_id": req.FolloweeID,
	}).Debug("follow.create")

	if err := s.repo.Insert(ctx, req.FollowerID, req.FolloweeID); err != nil {
		return nil, err
	}

	if err := s.graph.AddEdge(req.FollowerID, req.FolloweeID); err != nil {
		return nil, err
	}

	return &models.FollowResult{
		FollowerID: req.FollowerID,
		FolloweeID: req.FolloweeID,
		IsMutual:   s.graph.HasEdge(req.FolloweeID, req.FollowerID),
	}, nil
}

// Unfollow removes follower -> followee. Removing a relationship that
// does not exist fails with models.ErrFollowNotFound.
func (s *FollowService) Unfollow(ctx context.Context, followerID, followeeID models.UserID) error {
	if followerID <= 0 || followeeID <= 0 {
		return models.ErrInvalidUserID
	}

	s.log.WithFields(logrus.Fields{
		"follower_id": followerID,
		"followee_id": followeeID,
	}).Debug("follow.delete")

	if err := s.repo.Delete(ctx, followerID, followeeID); err != nil {
		return err
	}

	s.graph.RemoveEdge(followerID, followeeID)

	return nil
}

// Followers lists the users following id, ascending. Users the graph
// has never seen yield an empty list, not an error.
func (s *FollowService) Followers(ctx context.Context, id models.UserID) (*models.UserList, error) {
	if id <= 0 {
		return nil, models.ErrInvalidUserID
	}

	s.log.WithField("user_id", id).Debug("follow.followers")

	ids := s.graph.Followers(id)

	return &models.UserList{UserID: id, UserIDs: ids, Count: len(ids)}, nil
}

// Following lists the users id follows, ascending.
func (s *FollowService) Following(ctx context.Context, id models.UserID) (*models.UserList, error) {
	if id <= 0 {
		return nil, models.ErrInvalidUserID
	}

	s.log.WithField("user_id", id).Debug("follow.following")

	ids := s.graph.Following(id)

	return &models.UserList{UserID: id, UserIDs: ids, Count: len(ids)}, nil
}
