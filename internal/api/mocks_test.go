package api_test

import (
	"context"

	"github.com/sociograph/sociograph/internal/models"
)

// mockFollowRepo implements api.FollowRepository for testing.
type mockFollowRepo struct {
	followFn    func(ctx context.Context, req models.CreateFollowRequest) (*models.FollowResult, error)
	unfollowFn  func(ctx context.Context, followerID, followeeID models.UserID) error
	followersFn func(ctx context.Context, id models.UserID) (*models.UserList, error)
	followingFn func(ctx context.Context, id models.UserID) (*models.UserList, error)
}

func (m *mockFollowRepo) Follow(ctx context.Context, req models.CreateFollowRequest) (*models.FollowResult, error) {
	return m.followFn(ctx, req)
}

func (m *mockFollowRepo) Unfollow(ctx context.Context, followerID, followeeID models.UserID) error {
	return m.unfollowFn(ctx, followerID, followeeID)
}

func (m *mockFollowRepo) Followers(ctx context.Context, id models.UserID) (*models.UserList, error) {
	return m.followersFn(ctx, id)
}

func (m *mockFollowRepo) Following(ctx context.Context, id models.UserID) (*models.UserList, error) {
	return m.followingFn(ctx, id)
}

// mockRecommendRepo implements api.RecommendRepository for testing.
type mockRecommendRepo struct {
	suggestionsFn func(ctx context.Context, id models.UserID, limit int) (*models.SuggestionResult, error)
	mutualFn      func(ctx context.Context, id, otherID models.UserID) (*models.MutualResult, error)
	popularFn     func(ctx context.Context, id models.UserID, limit int) ([]models.Influencer, error)
}

func (m *mockRecommendRepo) Suggestions(ctx context.Context, id models.UserID, limit int) (*models.SuggestionResult, error) {
	return m.suggestionsFn(ctx, id, limit)
}

func (m *mockRecommendRepo) Mutual(ctx context.Context, id, otherID models.UserID) (*models.MutualResult, error) {
	return m.mutualFn(ctx, id, otherID)
}

func (m *mockRecommendRepo) Popular(ctx context.Context, id models.UserID, limit int) ([]models.Influencer, error) {
	return m.popularFn(ctx, id, limit)
}

// mockGraphRepo implements api.GraphRepository for testing.
type mockGraphRepo struct {
	pathFn      func(ctx context.Context, fromID, toID models.UserID, maxDepth int) (*models.PathResult, error)
	communityFn func(ctx context.Context, id models.UserID, maxDepth int) (int, error)
}

func (m *mockGraphRepo) ShortestPath(ctx context.Context, fromID, toID models.UserID, maxDepth int) (*models.PathResult, error) {
	return m.pathFn(ctx, fromID, toID, maxDepth)
}

func (m *mockGraphRepo) CommunitySize(ctx context.Context, id models.UserID, maxDepth int) (int, error) {
	return m.communityFn(ctx, id, maxDepth)
}

// mockAnalyticsRepo implements api.AnalyticsRepository for testing.
type mockAnalyticsRepo struct {
	influencersFn func(ctx context.Context, minFollowers, limit int) ([]models.Influencer, error)
	networkFn     func(ctx context.Context) (*models.NetworkStats, error)
	userStatsFn   func(ctx context.Context, id models.UserID, depth int) (*models.UserStats, error)
}

func (m *mockAnalyticsRepo) Influencers(ctx context.Context, minFollowers, limit int) ([]models.Influencer, error) {
	return m.influencersFn(ctx, minFollowers, limit)
}

func (m *mockAnalyticsRepo) NetworkStats(ctx context.Context) (*models.NetworkStats, error) {
	return m.networkFn(ctx)
}

func (m *mockAnalyticsRepo) UserStats(ctx context.Context, id models.UserID, depth int) (*models.UserStats, error) {
	return m.userStatsFn(ctx, id, depth)
}

// mockAdminRepo implements api.AdminRepository for testing.
type mockAdminRepo struct {
	resyncFn func(ctx context.Context) (int, error)
}

func (m *mockAdminRepo) Resync(ctx context.Context) (int, error) {
	return m.resyncFn(ctx)
}
