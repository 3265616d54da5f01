package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sociograph/sociograph/internal/graph"
	"github.com/sociograph/sociograph/internal/models"
)

func TestSyncService_Resync(t *testing.T) {
	now := time.Now()
	lister := &mockFollowLister{
		list: func(_ context.Context) ([]models.Follow, error) {
			return []models.Follow{
				{FollowerID: 1, FolloweeID: 2, CreatedAt: now},
				{FollowerID: 2, FolloweeID: 3, CreatedAt: now},
				{FollowerID: 1, FolloweeID: 2, CreatedAt: now}, // duplicate row collapses
			}, nil
		},
	}

	g := graph.New()
	svc := NewSyncService(lister, g, testLogger())

	n, err := svc.Resync(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("edges = %d, want 2", n)
	}
	if !g.HasEdge(1, 2) || !g.HasEdge(2, 3) {
		t.Error("graph missing edges after resync")
	}

	// A reload replaces rather than merges.
	lister.list = func(_ context.Context) ([]models.Follow, error) {
		return []models.Follow{{FollowerID: 5, FolloweeID: 6, CreatedAt: now}}, nil
	}

	n, err = svc.Resync(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("edges = %d, want 1", n)
	}
	if g.HasEdge(1, 2) {
		t.Error("stale edge survived reload")
	}
	if !g.HasEdge(5, 6) {
		t.Error("graph missing edge after reload")
	}

	if lister.callCount() != 2 {
		t.Errorf("list calls = %d, want 2", lister.callCount())
	}
}

func TestSyncService_ResyncError(t *testing.T) {
	wantErr := errors.New("connection refused")
	lister := &mockFollowLister{
		list: func(_ context.Context) ([]models.Follow, error) { return nil, wantErr },
	}

	g := graph.New()
	if err := g.AddEdge(1, 2); err != nil {
		t.Fatalf("seeding edge: %v", err)
	}

	svc := NewSyncService(lister, g, testLogger())

	if _, err := svc.Resync(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}

	// A failed reload leaves the previous graph intact.
	if !g.HasEdge(1, 2) {
		t.Error("failed resync wiped the graph")
	}
}

func TestSyncService_Bootstrap(t *testing.T) {
	lister := &mockFollowLister{
		list: func(_ context.Context) ([]models.Follow, error) {
			return []models.Follow{{FollowerID: 1, FolloweeID: 2}}, nil
		},
	}

	g := graph.New()
	svc := NewSyncService(lister, g, testLogger())

	n, err := svc.Bootstrap(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 || !g.HasEdge(1, 2) {
		t.Errorf("bootstrap loaded %d edges, graph has 1->2 = %v", n, g.HasEdge(1, 2))
	}
}

func TestSyncService_Apply(t *testing.T) {
	g := graph.New()
	svc := NewSyncService(&mockFollowLister{}, g, testLogger())

	svc.ApplyFollow(1, 2)
	if !g.HasEdge(1, 2) {
		t.Fatal("apply follow did not add edge")
	}

	// Replaying the local write's own notification is a no-op.
	svc.ApplyFollow(1, 2)
	if g.EdgeCount() != 1 {
		t.Errorf("edge count = %d, want 1 after replay", g.EdgeCount())
	}

	// Malformed self edges are dropped, not applied.
	svc.ApplyFollow(7, 7)
	if g.EdgeCount() != 1 {
		t.Errorf("edge count = %d, want 1 after self edge", g.EdgeCount())
	}

	svc.ApplyUnfollow(1, 2)
	if g.HasEdge(1, 2) {
		t.Error("apply unfollow left edge in graph")
	}

	// Removing an edge the graph never held is harmless.
	svc.ApplyUnfollow(8, 9)
	if g.EdgeCount() != 0 {
		t.Errorf("edge count = %d, want 0", g.EdgeCount())
	}
}
