package graph

import (
	"sort"

	"github.com/sociograph/sociograph/internal/models"
)

// defaultListLimit bounds ranked listings when the caller passes a
// limit <= 0.
const defaultListLimit = 10

// Suggestions ranks friends-of-friends candidates for a user. A
// candidate's score is the number of distinct followees of id that
// follow the candidate. The user itself and anyone it already follows
// are excluded. Ordered by descending score, ties by ascending id.
func (g *Graph) Suggestions(id models.UserID, limit int) []models.Suggestion {
	if limit <= 0 {
		limit = defaultListLimit
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	mine := g.following[id]

	scores := make(map[models.UserID]int)

	for friend := range mine {
		for candidate := range g.following[friend] {
			if candidate == id {
				continue
			}

			if _, already := mine[candidate]; already {
				continue
			}

			scores[candidate]++
		}
	}

	out := make([]models.Suggestion, 0, len(scores))
	for uid, score := range scores {
		out = append(out, models.Suggestion{UserID: uid, Score: score})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}

		return out[i].UserID < out[j].UserID
	})

	if len(out) > limit {
		out = out[:limit]
	}

	return out
}

// MutualConnections returns the users both a and b follow, ascending.
func (g *Graph) MutualConnections(a, b models.UserID) []models.UserID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return intersect(g.following[a], g.following[b])
}

// MutualFollowers returns the users that follow both a and b, ascending.
func (g *Graph) MutualFollowers(a, b models.UserID) []models.UserID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return intersect(g.followers[a], g.followers[b])
}

// PopularAmongFollowing ranks the users id follows by their global
// follower counts, descending, ties by ascending id.
func (g *Graph) PopularAmongFollowing(id models.UserID, limit int) []models.Influencer {
	if limit <= 0 {
		limit = defaultListLimit
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]models.Influencer, 0, len(g.following[id]))
	for followee := range g.following[id] {
		out = append(out, models.Influencer{
			UserID:        followee,
			FollowerCount: len(g.followers[followee]),
		})
	}

	sortByFollowerCount(out)

	if len(out) > limit {
		out = out[:limit]
	}

	return out
}

// intersect returns the ids present in both sets, ascending. It walks
// the smaller set so cost is O(min(|a|, |b|)).
func intersect(a, b map[models.UserID]struct{}) []models.UserID {
	if len(b) < len(a) {
		a, b = b, a
	}

	out := make([]models.UserID, 0, len(a))

	for id := range a {
		if _, ok := b[id]; ok {
			out = append(out, id)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
