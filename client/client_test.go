package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestServer creates a test server that routes to the given handler map.
// Keys are "METHOD /path", values are handler funcs.
func newTestServer(t *testing.T, routes map[string]http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	mux := http.NewServeMux()
	for pattern, handler := range routes {
		mux.HandleFunc(pattern, handler)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	c := New(srv.URL)
	return srv, c
}

func jsonResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func TestHealth(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/health": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, HealthResponse{Status: "ok", Version: "0.3.0", Users: 12, Follows: 40})
		},
	})
	resp, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("got status %q, want ok", resp.Status)
	}
	if resp.Users != 12 || resp.Follows != 40 {
		t.Errorf("got counts %d/%d, want 12/40", resp.Users, resp.Follows)
	}
}

func TestReady(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/ready": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, ReadyResponse{Status: "ready", Checks: map[string]string{"database": "ok"}})
		},
	})
	resp, err := c.Ready(context.Background())
	if err != nil {
		t.Fatalf("Ready() error: %v", err)
	}
	if resp.Status != "ready" || resp.Checks["database"] != "ok" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestReadyNotReady(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/ready": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 503, ReadyResponse{
				Status: "not_ready",
				Checks: map[string]string{"database": "error", "schema": "unknown", "websocket": "ok"},
			})
		},
	})

	// A 503 still decodes into the readiness shape rather than an APIError.
	resp, err := c.Ready(context.Background())
	if err != nil {
		t.Fatalf("Ready() error: %v", err)
	}
	if resp.Status != "not_ready" || resp.Checks["database"] != "error" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestFollows(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/follows": func(w http.ResponseWriter, r *http.Request) {
			var req createFollowRequest
			json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
			jsonResponse(w, 201, FollowResult{FollowerID: req.FollowerID, FolloweeID: req.FolloweeID, IsMutual: true})
		},
		"DELETE /api/v1/follows/1/2": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, map[string]bool{"deleted": true})
		},
	})

	ctx := context.Background()

	res, err := c.Follows.Create(ctx, 1, 2)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if res.FollowerID != 1 || res.FolloweeID != 2 || !res.IsMutual {
		t.Errorf("Create: unexpected result %+v", res)
	}

	if err := c.Follows.Delete(ctx, 1, 2); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestUsers(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/users/1/followers": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, UserList{UserID: 1, UserIDs: []int64{2, 5}, Count: 2})
		},
		"GET /api/v1/users/1/following": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, UserList{UserID: 1, UserIDs: []int64{3}, Count: 1})
		},
		"GET /api/v1/users/1/suggestions": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("limit"); got != "5" {
				t.Errorf("suggestions limit: got %q, want 5", got)
			}
			jsonResponse(w, 200, SuggestionResult{UserID: 1, Suggestions: []Suggestion{{UserID: 4, Score: 2}}})
		},
		"GET /api/v1/users/1/mutual/2": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, MutualResult{MutualFollowing: []int64{3}, MutualFollowingCount: 1})
		},
		"GET /api/v1/users/1/popular": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, popularResponse{UserID: 1, Popular: []Influencer{{UserID: 9, FollowerCount: 30}}})
		},
		"GET /api/v1/users/1/stats": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("depth"); got != "3" {
				t.Errorf("stats depth: got %q, want 3", got)
			}
			jsonResponse(w, 200, UserStats{UserID: 1, Followers: 2, Following: 1, CommunitySize: 7})
		},
	})

	ctx := context.Background()

	followers, err := c.Users.Followers(ctx, 1)
	if err != nil || followers.Count != 2 {
		t.Fatalf("Followers: err=%v, count=%d", err, followers.Count)
	}

	following, err := c.Users.Following(ctx, 1)
	if err != nil || following.Count != 1 {
		t.Fatalf("Following: err=%v, count=%d", err, following.Count)
	}

	sugg, err := c.Users.Suggestions(ctx, 1, 5)
	if err != nil || len(sugg.Suggestions) != 1 || sugg.Suggestions[0].UserID != 4 {
		t.Fatalf("Suggestions: err=%v, got %+v", err, sugg)
	}

	mutual, err := c.Users.Mutual(ctx, 1, 2)
	if err != nil || mutual.MutualFollowingCount != 1 {
		t.Fatalf("Mutual: err=%v, got %+v", err, mutual)
	}

	popular, err := c.Users.Popular(ctx, 1, 0)
	if err != nil || len(popular) != 1 || popular[0].UserID != 9 {
		t.Fatalf("Popular: err=%v, got %+v", err, popular)
	}

	stats, err := c.Users.Stats(ctx, 1, 3)
	if err != nil || stats.CommunitySize != 7 {
		t.Fatalf("Stats: err=%v, got %+v", err, stats)
	}
}

func TestGraph(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/graph/path/1/4": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("max_depth"); got != "3" {
				t.Errorf("max_depth: got %q, want 3", got)
			}
			jsonResponse(w, 200, PathResult{Connected: true, Path: []int64{1, 2, 4}, DegreesOfSeparation: 2})
		},
		"GET /api/v1/graph/community/1": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, CommunityResult{UserID: 1, CommunitySize: 9})
		},
		"GET /api/v1/graph/influencers": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("min_followers"); got != "2" {
				t.Errorf("min_followers: got %q, want 2", got)
			}
			jsonResponse(w, 200, []Influencer{{UserID: 7, FollowerCount: 100}})
		},
		"GET /api/v1/graph/stats": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, NetworkStats{TotalUsers: 10, TotalConnections: 25, AverageFollowers: 2.5})
		},
	})

	ctx := context.Background()

	path, err := c.Graph.ShortestPath(ctx, 1, 4, 3)
	if err != nil || !path.Connected || len(path.Path) != 3 {
		t.Fatalf("ShortestPath: err=%v, got %+v", err, path)
	}

	community, err := c.Graph.Community(ctx, 1, 0)
	if err != nil || community.CommunitySize != 9 {
		t.Fatalf("Community: err=%v, got %+v", err, community)
	}

	influencers, err := c.Graph.Influencers(ctx, 2, 0)
	if err != nil || len(influencers) != 1 || influencers[0].FollowerCount != 100 {
		t.Fatalf("Influencers: err=%v, got %+v", err, influencers)
	}

	stats, err := c.Graph.NetworkStats(ctx)
	if err != nil || stats.TotalUsers != 10 {
		t.Fatalf("NetworkStats: err=%v, got %+v", err, stats)
	}
}

func TestAdminResync(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/admin/resync": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 200, map[string]int{"follows": 77})
		},
	})

	n, err := c.Admin.Resync(context.Background())
	if err != nil || n != 77 {
		t.Fatalf("Resync: err=%v, follows=%d", err, n)
	}
}

func TestAPIError(t *testing.T) {
	_, c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/users/999/followers": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 404, map[string]string{"code": "not_found", "message": "user not found"})
		},
		"POST /api/v1/follows": func(w http.ResponseWriter, _ *http.Request) {
			jsonResponse(w, 409, map[string]string{"code": "conflict", "message": "already following"})
		},
	})

	ctx := context.Background()

	_, err := c.Users.Followers(ctx, 999)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNotFound(err) {
		t.Errorf("expected not found, got: %v", err)
	}

	_, err = c.Follows.Create(ctx, 1, 2)
	if !IsConflict(err) {
		t.Errorf("expected conflict, got: %v", err)
	}
}
