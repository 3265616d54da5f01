package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/sociograph/sociograph/internal/api"
	"github.com/sociograph/sociograph/internal/models"
)

func TestFollowCreate_Valid(t *testing.T) {
	t.Parallel()

	repo := &mockFollowRepo{
		followFn: func(_ context.Context, req models.CreateFollowRequest) (*models.FollowResult, error) {
			return &models.FollowResult{
				FollowerID: req.FollowerID,
				FolloweeID: req.FolloweeID,
				IsMutual:   true,
			}, nil
		},
	}

	r := newTestRouter()
	h := api.NewFollowHandler(repo, testLogger())
	r.POST("/follows", h.Create)

	w := doRequest(r, http.MethodPost, "/follows", `{"follower_id":1,"followee_id":2}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var res models.FollowResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if res.FollowerID != 1 || res.FolloweeID != 2 || !res.IsMutual {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestFollowCreate_BadJSON(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	h := api.NewFollowHandler(&mockFollowRepo{}, testLogger())
	r.POST("/follows", h.Create)

	w := doRequest(r, http.MethodPost, "/follows", `{"follower_id":"one"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestFollowCreate_SelfFollow(t *testing.T) {
	t.Parallel()

	repo := &mockFollowRepo{
		followFn: func(_ context.Context, _ models.CreateFollowRequest) (*models.FollowResult, error) {
			return nil, models.ErrSelfFollow
		},
	}

	r := newTestRouter()
	h := api.NewFollowHandler(repo, testLogger())
	r.POST("/follows", h.Create)

	w := doRequest(r, http.MethodPost, "/follows", `{"follower_id":7,"followee_id":7}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestFollowCreate_UnknownUser(t *testing.T) {
	t.Parallel()

	repo := &mockFollowRepo{
		followFn: func(_ context.Context, _ models.CreateFollowRequest) (*models.FollowResult, error) {
			return nil, models.ErrUserNotFound
		},
	}

	r := newTestRouter()
	h := api.NewFollowHandler(repo, testLogger())
	r.POST("/follows", h.Create)

	w := doRequest(r, http.MethodPost, "/follows", `{"follower_id":1,"followee_id":999}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestFollowCreate_Duplicate(t *testing.T) {
	t.Parallel()

	repo := &mockFollowRepo{
		followFn: func(_ context.Context, _ models.CreateFollowRequest) (*models.FollowResult, error) {
			return nil, models.ErrAlreadyFollowing
		},
	}

	r := newTestRouter()
	h := api.NewFollowHandler(repo, testLogger())
	r.POST("/follows", h.Create)

	w := doRequest(r, http.MethodPost, "/follows", `{"follower_id":1,"followee_id":2}`)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestFollowDelete_OK(t *testing.T) {
	t.Parallel()

	repo := &mockFollowRepo{
		unfollowFn: func(_ context.Context, _, _ models.UserID) error {
			return nil
		},
	}

	r := newTestRouter()
	h := api.NewFollowHandler(repo, testLogger())
	r.DELETE("/follows/:follower_id/:followee_id", h.Delete)

	w := doRequest(r, http.MethodDelete, "/follows/1/2", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if body["deleted"] != true {
		t.Errorf("expected deleted=true, got %v", body["deleted"])
	}
}

func TestFollowDelete_NotFound(t *testing.T) {
	t.Parallel()

	repo := &mockFollowRepo{
		unfollowFn: func(_ context.Context, _, _ models.UserID) error {
			return models.ErrFollowNotFound
		},
	}

	r := newTestRouter()
	h := api.NewFollowHandler(repo, testLogger())
	r.DELETE("/follows/:follower_id/:followee_id", h.Delete)

	w := doRequest(r, http.MethodDelete, "/follows/1/2", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestFollowDelete_BadID(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	h := api.NewFollowHandler(&mockFollowRepo{}, testLogger())
	r.DELETE("/follows/:follower_id/:followee_id", h.Delete)

	w := doRequest(r, http.MethodDelete, "/follows/abc/2", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestFollowers_OK(t *testing.T) {
	t.Parallel()

	repo := &mockFollowRepo{
		followersFn: func(_ context.Context, id models.UserID) (*models.UserList, error) {
			return &models.UserList{UserID: id, UserIDs: []models.UserID{2, 5}, Count: 2}, nil
		},
	}

	r := newTestRouter()
	h := api.NewFollowHandler(repo, testLogger())
	r.GET("/users/:id/followers", h.Followers)

	w := doRequest(r, http.MethodGet, "/users/1/followers", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var list models.UserList
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if list.UserID != 1 || list.Count != 2 {
		t.Errorf("unexpected list: %+v", list)
	}
}

func TestFollowing_BadID(t *testing.T) {
	t.Parallel()

	r := newTestRouter()
	h := api.NewFollowHandler(&mockFollowRepo{}, testLogger())
	r.GET("/users/:id/following", h.Following)

	w := doRequest(r, http.MethodGet, "/users/0/following", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}
