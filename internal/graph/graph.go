// Package graph holds the in-memory follows graph: a forward index
// (who each user follows) mirrored by a reverse index (who follows
// each user), guarded by a single readers-writer lock. All traversal
// queries read a consistent snapshot of both indices; all mutations
// update both inside one critical section.
package graph

import (
	"sort"
	"sync"

	"github.com/sociograph/sociograph/internal/models"
)

// Graph is the shared adjacency structure. A user is present exactly
// when it has at least one incident edge; empty adjacency sets are
// pruned on removal so presence can be answered from either index.
type Graph struct {
	mu        sync.RWMutex
	following map[models.UserID]map[models.UserID]struct{} // user -> users it follows
	followers map[models.UserID]map[models.UserID]struct{} // user -> users following it
	edges     int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		following: make(map[models.UserID]map[models.UserID]struct{}),
		followers: make(map[models.UserID]map[models.UserID]struct{}),
	}
}

// AddEdge inserts the directed edge from -> to into both indices.
// Inserting an edge that already exists is a no-op. Self-edges fail
// with models.ErrSelfFollow.
func (g *Graph) AddEdge(from, to models.UserID) error {
	if from == to {
		return models.ErrSelfFollow
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.following[from][to]; ok {
		return nil
	}

	if g.following[from] == nil {
		g.following[from] = make(map[models.UserID]struct{})
	}
	g.following[from][to] = struct{}{}

	if g.followers[to] == nil {
		g.followers[to] = make(map[models.UserID]struct{})
	}
	g.followers[to][from] = struct{}{}

	g.edges++

	return nil
}

// RemoveEdge deletes the directed edge from -> to from both indices.
// Removing an absent edge is a no-op.
func (g *Graph) RemoveEdge(from, to models.UserID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.following[from][to]; !ok {
		return
	}

	delete(g.following[from], to)
	if len(g.following[from]) == 0 {
		delete(g.following, from)
	}

	delete(g.followers[to], from)
	if len(g.followers[to]) == 0 {
		delete(g.followers, to)
	}

	g.edges--
}

// Replace swaps the entire graph for the given relationship list in a
// single critical section. Duplicate and self pairs in the input are
// dropped. Returns the number of edges loaded.
func (g *Graph) Replace(follows []models.Follow) int {
	following := make(map[models.UserID]map[models.UserID]struct{})
	followers := make(map[models.UserID]map[models.UserID]struct{})
	edges := 0

	for _, f := range follows {
		if f.FollowerID == f.FolloweeID {
			continue
		}

		if _, ok := following[f.FollowerID][f.FolloweeID]; ok {
			continue
		}

		if following[f.FollowerID] == nil {
			following[f.FollowerID] = make(map[models.UserID]struct{})
		}
		following[f.FollowerID][f.FolloweeID] = struct{}{}

		if followers[f.FolloweeID] == nil {
			followers[f.FolloweeID] = make(map[models.UserID]struct{})
		}
		followers[f.FolloweeID][f.FollowerID] = struct{}{}

		edges++
	}

	g.mu.Lock()
	g.following = following
	g.followers = followers
	g.edges = edges
	g.mu.Unlock()

	return edges
}

// HasEdge reports whether from currently follows to.
func (g *Graph) HasEdge(from, to models.UserID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(from, to)
}

// Following returns the ids from follows, ascending. Unknown users
// yield an empty slice.
func (g *Graph) Following(id models.UserID) []models.UserID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedIDs(g.following[id])
}

// Followers returns the ids following id, ascending. Unknown users
// yield an empty slice.
func (g *Graph) Followers(id models.UserID) []models.UserID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedIDs(g.followers[id])
}

// FollowingCount returns how many users id follows.
func (g *Graph) FollowingCount(id models.UserID) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.following[id])
}

// FollowerCount returns how many users follow id.
func (g *Graph) FollowerCount(id models.UserID) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.followers[id])
}

// Nodes returns every user with at least one incident edge, ascending.
func (g *Graph) Nodes() []models.UserID {
	g.mu.RLock()
	set := g.nodeSetLocked()
	g.mu.RUnlock()

	return sortedIDs(set)
}

// NodeCount returns the number of users with at least one incident edge.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodeSetLocked())
}

// EdgeCount returns the number of follow relationships.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

func (g *Graph) hasEdgeLocked(from, to models.UserID) bool {
	_, ok := g.following[from][to]
	return ok
}

// presentLocked reports whether id has any incident edge. Callers must
// hold at least the read lock.
func (g *Graph) presentLocked(id models.UserID) bool {
	if _, ok := g.following[id]; ok {
		return true
	}

	_, ok := g.followers[id]

	return ok
}

// nodeSetLocked returns the union of both index key sets. Callers must
// hold at least the read lock.
func (g *Graph) nodeSetLocked() map[models.UserID]struct{} {
	nodes := make(map[models.UserID]struct{}, len(g.following))
	for id := range g.following {
		nodes[id] = struct{}{}
	}

	for id := range g.followers {
		nodes[id] = struct{}{}
	}

	return nodes
}

// sortedIDs flattens a set into an ascending slice. The result is
// never nil so callers can hand it straight to JSON encoding.
func sortedIDs(set map[models.UserID]struct{}) []models.UserID {
	ids := make([]models.UserID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
