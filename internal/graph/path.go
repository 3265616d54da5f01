package graph

import "github.com/sociograph/sociograph/internal/models"

// BFS safety caps.
const (
	// DefaultMaxDepth bounds path searches when the caller does not
	// supply a cutoff. Six hops covers any plausible social distance
	// while keeping worst-case work bounded.
	DefaultMaxDepth = 6

	// maxVisitedNodes caps total BFS work on very dense graphs. Hitting
	// the cap reports "not connected", a documented conservative false
	// negative.
	maxVisitedNodes = 100_000
)

// ShortestPath runs a forward breadth-first search from one user to
// another, following edges in the "follows" direction, and reconstructs
// the first shortest path found. maxDepth caps the path length in
// edges; values <= 0 fall back to DefaultMaxDepth. Exhausting the depth
// or visit budget reports not connected.
func (g *Graph) ShortestPath(from, to models.UserID, maxDepth int) models.PathResult {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	res := models.PathResult{Path: []models.UserID{}, DegreesOfSeparation: -1}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.presentLocked(from) || !g.presentLocked(to) {
		return res
	}

	if from == to {
		res.Connected = true
		res.Path = []models.UserID{from}
		res.DegreesOfSeparation = 0

		return res
	}

	visited := map[models.UserID]bool{from: true}
	parent := map[models.UserID]models.UserID{} // child -> parent
	frontier := []models.UserID{from}

	for depth := 0; depth < maxDepth && len(frontier) > 0; depth++ {
		if len(visited) >= maxVisitedNodes {
			break
		}

		var nextFrontier []models.UserID

		for _, id := range frontier {
			for succ := range g.following[id] {
				if visited[succ] {
					continue
				}

				visited[succ] = true
				parent[succ] = id

				if succ == to {
					res.Connected = true
					res.Path = tracePath(parent, from, to)
					res.DegreesOfSeparation = len(res.Path) - 1
					res.IsMutual = g.hasEdgeLocked(to, from)

					return res
				}

				nextFrontier = append(nextFrontier, succ)
			}
		}

		frontier = nextFrontier
	}

	return res
}

// CommunitySize counts the users reachable from id by following edges
// within maxDepth hops, the starting user included. A user with no
// incident edges has a community of zero. Values <= 0 fall back to
// DefaultMaxDepth.
func (g *Graph) CommunitySize(id models.UserID, maxDepth int) int {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.presentLocked(id) {
		return 0
	}

	visited := map[models.UserID]bool{id: true}
	frontier := []models.UserID{id}

	for depth := 0; depth < maxDepth && len(frontier) > 0; depth++ {
		if len(visited) >= maxVisitedNodes {
			break
		}

		var nextFrontier []models.UserID

		for _, cur := range frontier {
			for succ := range g.following[cur] {
				if visited[succ] {
					continue
				}

				visited[succ] = true
				nextFrontier = append(nextFrontier, succ)
			}
		}

		frontier = nextFrontier
	}

	return len(visited)
}

// tracePath walks the parent map from to back to from, then reverses
// the trail into from -> to order.
func tracePath(parent map[models.UserID]models.UserID, from, to models.UserID) []models.UserID {
	trail := []models.UserID{to}
	for current := to; current != from; {
		p, ok := parent[current]
		if !ok {
			break
		}

		trail = append(trail, p)
		current = p
	}

	for i, j := 0, len(trail)-1; i < j; i, j = i+1, j-1 {
		trail[i], trail[j] = trail[j], trail[i]
	}

	return trail
}
