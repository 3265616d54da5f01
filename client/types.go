package client

// FollowResult reports the outcome of a follow mutation, including whether
// the relationship is now reciprocal.
type FollowResult struct {
	FollowerID int64 `json:"follower_id"`
	FolloweeID int64 `json:"followee_id"`
	IsMutual   bool  `json:"is_mutual"`
}

// UserList holds the ids adjacent to one user in a single direction.
type UserList struct {
	UserID  int64   `json:"user_id"`
	UserIDs []int64 `json:"user_ids"`
	Count   int     `json:"count"`
}

// Suggestion is one friends-of-friends candidate with its overlap score.
type Suggestion struct {
	UserID int64 `json:"user_id"`
	Score  int   `json:"score"`
}

// SuggestionResult holds the ranked candidates for one user.
type SuggestionResult struct {
	UserID      int64        `json:"user_id"`
	Suggestions []Suggestion `json:"suggestions"`
}

// MutualResult holds both intersections for a pair of users.
type MutualResult struct {
	MutualFollowing      []int64 `json:"mutual_following"`
	MutualFollowingCount int     `json:"mutual_following_count"`
	MutualFriends        []int64 `json:"mutual_friends"`
	MutualFriendsCount   int     `json:"mutual_friends_count"`
}

// PathResult is the outcome of a shortest-path query.
type PathResult struct {
	Connected           bool    `json:"connected"`
	Path                []int64 `json:"path"`
	DegreesOfSeparation int     `json:"degrees_of_separation"`
	IsMutual            bool    `json:"is_mutual"`
}

// CommunityResult reports the size of a user's extended network.
type CommunityResult struct {
	UserID        int64 `json:"user_id"`
	CommunitySize int   `json:"community_size"`
}

// Influencer pairs a user with its follower count.
type Influencer struct {
	UserID        int64 `json:"user_id"`
	FollowerCount int   `json:"follower_count"`
}

// NetworkStats aggregates whole-network counters.
type NetworkStats struct {
	TotalUsers       int     `json:"total_users"`
	TotalConnections int     `json:"total_connections"`
	AverageFollowers float64 `json:"average_followers"`
}

// UserStats summarizes one user's place in the network.
type UserStats struct {
	UserID        int64 `json:"user_id"`
	Followers     int   `json:"followers"`
	Following     int   `json:"following"`
	CommunitySize int   `json:"community_size"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Database      string  `json:"database"`
	Users         int     `json:"users"`
	Follows       int     `json:"follows"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// ReadyResponse is returned by the readiness endpoint.
type ReadyResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
