package graph

import (
	"sort"

	"github.com/sociograph/sociograph/internal/models"
)

// Influencers ranks users by descending follower count, ties by
// ascending id, keeping only users with at least minFollowers
// followers. Users nobody follows never appear, whatever the floor.
func (g *Graph) Influencers(minFollowers, limit int) []models.Influencer {
	if limit <= 0 {
		limit = defaultListLimit
	}

	if minFollowers < 0 {
		minFollowers = 0
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]models.Influencer, 0, len(g.followers))
	for id, set := range g.followers {
		if len(set) < minFollowers {
			continue
		}

		out = append(out, models.Influencer{UserID: id, FollowerCount: len(set)})
	}

	sortByFollowerCount(out)

	if len(out) > limit {
		out = out[:limit]
	}

	return out
}

// Stats aggregates whole-network counters. The average is edges per
// user and zero on an empty graph.
func (g *Graph) Stats() models.NetworkStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	users := len(g.nodeSetLocked())

	stats := models.NetworkStats{
		TotalUsers:       users,
		TotalConnections: g.edges,
	}

	if users > 0 {
		avg := float64(g.edges) / float64(users)
		stats.AverageFollowers = float64(int(avg*100+0.5)) / 100 // round to 2 decimal places
	}

	return stats
}

func sortByFollowerCount(list []models.Influencer) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].FollowerCount != list[j].FollowerCount {
			return list[i].FollowerCount > list[j].FollowerCount
		}

		return list[i].UserID < list[j].UserID
	})
}
