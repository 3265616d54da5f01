package graph_test

import (
	"errors"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/sociograph/sociograph/internal/graph"
	"github.com/sociograph/sociograph/internal/models"
)

// build returns a graph populated with the given follower -> followee
// pairs.
func build(t *testing.T, pairs ...[2]models.UserID) *graph.Graph {
	t.Helper()

	g := graph.New()
	for _, p := range pairs {
		if err := g.AddEdge(p[0], p[1]); err != nil {
			t.Fatalf("AddEdge(%d, %d): %v", p[0], p[1], err)
		}
	}

	return g
}

func assertIDs(t *testing.T, got []models.UserID, want ...models.UserID) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestAddEdge_MirrorsBothIndices(t *testing.T) {
	g := build(t, [2]models.UserID{1, 2})

	if !g.HasEdge(1, 2) {
		t.Error("HasEdge(1, 2) = false after AddEdge")
	}
	if g.HasEdge(2, 1) {
		t.Error("HasEdge(2, 1) = true; edges are directed")
	}

	assertIDs(t, g.Following(1), 2)
	assertIDs(t, g.Followers(2), 1)
	assertIDs(t, g.Following(2))
	assertIDs(t, g.Followers(1))
}

func TestAddEdge_SelfFollowRejected(t *testing.T) {
	g := graph.New()

	for _, id := range []models.UserID{1, 5, 9007199254740993} {
		if err := g.AddEdge(id, id); !errors.Is(err, models.ErrSelfFollow) {
			t.Errorf("AddEdge(%d, %d): got %v, want ErrSelfFollow", id, id, err)
		}
	}

	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d after rejected self-edges, want 0", g.EdgeCount())
	}
	if g.NodeCount() != 0 {
		t.Errorf("NodeCount = %d after rejected self-edges, want 0", g.NodeCount())
	}
}

func TestAddEdge_Idempotent(t *testing.T) {
	g := build(t, [2]models.UserID{1, 2})

	if err := g.AddEdge(1, 2); err != nil {
		t.Fatalf("repeat AddEdge: %v", err)
	}

	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", g.EdgeCount())
	}
	assertIDs(t, g.Followers(2), 1)
}

func TestRemoveEdge_RoundTrip(t *testing.T) {
	g := build(t, [2]models.UserID{1, 2}, [2]models.UserID{3, 2})

	g.RemoveEdge(1, 2)

	if g.HasEdge(1, 2) {
		t.Error("HasEdge(1, 2) = true after RemoveEdge")
	}
	assertIDs(t, g.Followers(2), 3)
	assertIDs(t, g.Following(1))

	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", g.EdgeCount())
	}

	// User 1 had only that one edge, so it is gone from the graph.
	assertIDs(t, g.Nodes(), 2, 3)
}

func TestRemoveEdge_AbsentIsNoop(t *testing.T) {
	g := build(t, [2]models.UserID{1, 2})

	g.RemoveEdge(2, 1)
	g.RemoveEdge(5, 6)

	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", g.EdgeCount())
	}
	if !g.HasEdge(1, 2) {
		t.Error("existing edge disturbed by no-op removals")
	}
}

func TestCounts(t *testing.T) {
	g := build(t,
		[2]models.UserID{1, 2},
		[2]models.UserID{1, 3},
		[2]models.UserID{4, 3},
	)

	if got := g.FollowingCount(1); got != 2 {
		t.Errorf("FollowingCount(1) = %d, want 2", got)
	}
	if got := g.FollowerCount(3); got != 2 {
		t.Errorf("FollowerCount(3) = %d, want 2", got)
	}
	if got := g.FollowerCount(99); got != 0 {
		t.Errorf("FollowerCount(99) = %d, want 0", got)
	}
	if got := g.NodeCount(); got != 4 {
		t.Errorf("NodeCount = %d, want 4", got)
	}
	if got := g.EdgeCount(); got != 3 {
		t.Errorf("EdgeCount = %d, want 3", got)
	}
}

func TestReplace(t *testing.T) {
	g := build(t, [2]models.UserID{1, 2})

	n := g.Replace([]models.Follow{
		{FollowerID: 5, FolloweeID: 6},
		{FollowerID: 6, FolloweeID: 7},
		{FollowerID: 5, FolloweeID: 6}, // duplicate
		{FollowerID: 8, FolloweeID: 8}, // self pair dropped
	})

	if n != 2 {
		t.Errorf("Replace returned %d, want 2", n)
	}
	if g.HasEdge(1, 2) {
		t.Error("old edge survived Replace")
	}
	if !g.HasEdge(5, 6) || !g.HasEdge(6, 7) {
		t.Error("loaded edges missing after Replace")
	}
	assertIDs(t, g.Nodes(), 5, 6, 7)
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount = %d, want 2", g.EdgeCount())
	}
	assertIDs(t, g.Followers(6), 5)
}

func TestReplace_Empty(t *testing.T) {
	g := build(t, [2]models.UserID{1, 2})

	if n := g.Replace(nil); n != 0 {
		t.Errorf("Replace(nil) returned %d, want 0", n)
	}
	if g.NodeCount() != 0 || g.EdgeCount() != 0 {
		t.Errorf("graph not empty after Replace(nil): %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
	}
}

// TestConcurrentMutationAndQuery hammers the graph with parallel
// writers and readers, then verifies the forward and reverse indices
// still agree about every edge.
func TestConcurrentMutationAndQuery(t *testing.T) {
	const (
		writers    = 4
		readers    = 8
		opsEach    = 500
		idUniverse = 20
	)

	g := graph.New()

	var wg sync.WaitGroup

	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()

			rng := rand.New(rand.NewPCG(seed, 0))
			for i := 0; i < opsEach; i++ {
				from := models.UserID(rng.IntN(idUniverse) + 1)
				to := models.UserID(rng.IntN(idUniverse) + 1)
				if from == to {
					continue
				}
				if rng.IntN(3) == 0 {
					g.RemoveEdge(from, to)
				} else {
					if err := g.AddEdge(from, to); err != nil {
						t.Errorf("AddEdge(%d, %d): %v", from, to, err)
					}
				}
			}
		}(uint64(w))
	}

	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()

			rng := rand.New(rand.NewPCG(seed+1000, 0))
			for i := 0; i < opsEach; i++ {
				id := models.UserID(rng.IntN(idUniverse) + 1)
				other := models.UserID(rng.IntN(idUniverse) + 1)
				g.Following(id)
				g.Followers(id)
				g.HasEdge(id, other)
				g.ShortestPath(id, other, 4)
				g.Suggestions(id, 5)
				g.Stats()
			}
		}(uint64(r))
	}

	wg.Wait()

	// Quiescent check: both indices must be exact mirrors.
	edges := 0
	for _, from := range g.Nodes() {
		for _, to := range g.Following(from) {
			edges++
			if !g.HasEdge(from, to) {
				t.Errorf("forward index has %d -> %d but HasEdge disagrees", from, to)
			}

			found := false
			for _, f := range g.Followers(to) {
				if f == from {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("edge %d -> %d missing from reverse index", from, to)
			}
		}
	}

	for _, to := range g.Nodes() {
		for _, from := range g.Followers(to) {
			if !g.HasEdge(from, to) {
				t.Errorf("reverse index has %d -> %d but forward index disagrees", from, to)
			}
		}
	}

	if got := g.EdgeCount(); got != edges {
		t.Errorf("EdgeCount = %d, want %d (sum over forward index)", got, edges)
	}
}
