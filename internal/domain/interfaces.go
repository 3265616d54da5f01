// Package domain defines the canonical service interfaces shared across API
// layers (REST, WebSocket, client). Consumers should depend on these
// interfaces rather than re-declaring equivalent ones.
package domain

import (
	"context"

	"github.com/sociograph/sociograph/internal/models"
)

// FollowService defines follow relationship mutations and listings.
type FollowService interface {
	Follow(ctx context.Context, req models.CreateFollowRequest) (*models.FollowResult, error)
	Unfollow(ctx context.Context, followerID, followeeID models.UserID) error
	Followers(ctx context.Context, id models.UserID) (*models.UserList, error)
	Following(ctx context.Context, id models.UserID) (*models.UserList, error)
}

// GraphService defines graph traversal operations.
type GraphService interface {
	ShortestPath(ctx context.Context, fromID, toID models.UserID, maxDepth int) (*models.PathResult, error)
	CommunitySize(ctx context.Context, id models.UserID, maxDepth int) (int, error)
}

// RecommendService defines suggestion and mutual-connection operations.
type RecommendService interface {
	Suggestions(ctx context.Context, id models.UserID, limit int) (*models.SuggestionResult, error)
	Mutual(ctx context.Context, id, otherID models.UserID) (*models.MutualResult, error)
	Popular(ctx context.Context, id models.UserID, limit int) ([]models.Influencer, error)
}

// AnalyticsService defines network-wide ranking and statistics.
type AnalyticsService interface {
	Influencers(ctx context.Context, minFollowers, limit int) ([]models.Influencer, error)
	NetworkStats(ctx context.Context) (*models.NetworkStats, error)
	UserStats(ctx context.Context, id models.UserID, depth int) (*models.UserStats, error)
}

// AdminService defines administrative operations.
type AdminService interface {
	Resync(ctx context.Context) (int, error)
}
