package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/sociograph/sociograph/internal/api"
	"github.com/sociograph/sociograph/internal/models"
)

func TestInfluencers_Defaults(t *testing.T) {
	t.Parallel()

	var gotMin, gotLimit int

	repo := &mockAnalyticsRepo{
		influencersFn: func(_ context.Context, minFollowers, limit int) ([]models.Influencer, error) {
			gotMin, gotLimit = minFollowers, limit

			return []models.Influencer{{UserID: 1, FollowerCount: 50}}, nil
		},
	}

	r := newTestRouter()
	h := api.NewAnalyticsHandler(repo, testLogger())
	r.GET("/graph/influencers", h.Influencers)

	w := doRequest(r, http.MethodGet, "/graph/influencers", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if gotMin != 10 || gotLimit != 10 {
		t.Errorf("expected defaults 10/10, got %d/%d", gotMin, gotLimit)
	}

	var list []models.Influencer
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if len(list) != 1 || list[0].FollowerCount != 50 {
		t.Errorf("unexpected list: %+v", list)
	}
}

func TestInfluencers_ZeroFloor(t *testing.T) {
	t.Parallel()

	var gotMin int

	repo := &mockAnalyticsRepo{
		influencersFn: func(_ context.Context, minFollowers, _ int) ([]models.Influencer, error) {
			gotMin = minFollowers

			return []models.Influencer{}, nil
		},
	}

	r := newTestRouter()
	h := api.NewAnalyticsHandler(repo, testLogger())
	r.GET("/graph/influencers", h.Influencers)

	w := doRequest(r, http.MethodGet, "/graph/influencers?min_followers=0", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// An explicit zero floor includes every user, unlike an absent parameter.
	if gotMin != 0 {
		t.Errorf("expected min_followers 0, got %d", gotMin)
	}
}

func TestNetworkStats_OK(t *testing.T) {
	t.Parallel()

	repo := &mockAnalyticsRepo{
		networkFn: func(_ context.Context) (*models.NetworkStats, error) {
			return &models.NetworkStats{TotalUsers: 3, TotalConnections: 4, AverageFollowers: 1.33}, nil
		},
	}

	r := newTestRouter()
	h := api.NewAnalyticsHandler(repo, testLogger())
	r.GET("/graph/stats", h.NetworkStats)

	w := doRequest(r, http.MethodGet, "/graph/stats", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var stats models.NetworkStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if stats.TotalUsers != 3 || stats.TotalConnections != 4 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestUserStats_OK(t *testing.T) {
	t.Parallel()

	var gotDepth int

	repo := &mockAnalyticsRepo{
		userStatsFn: func(_ context.Context, id models.UserID, depth int) (*models.UserStats, error) {
			gotDepth = depth

			return &models.UserStats{UserID: id, Followers: 2, Following: 1, CommunitySize: 5}, nil
		},
	}

	r := newTestRouter()
	h := api.NewAnalyticsHandler(repo, testLogger())
	r.GET("/users/:id/stats", h.UserStats)

	w := doRequest(r, http.MethodGet, "/users/4/stats?depth=2", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if gotDepth != 2 {
		t.Errorf("expected depth 2, got %d", gotDepth)
	}

	var stats models.UserStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if stats.UserID != 4 || stats.CommunitySize != 5 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestUserStats_BadID(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	h := api.NewAnalyticsHandler(&mockAnalyticsRepo{}, testLogger())
	r.GET("/users/:id/stats", h.UserStats)

	w := doRequest(r, http.MethodGet, "/users/nope/stats", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}
