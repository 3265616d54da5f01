package models

// UserList holds the ids adjacent to one user in a single direction
// (followers or following), ascending.
type UserList struct {
	UserID  UserID   `json:"user_id"`
	UserIDs []UserID `json:"user_ids"`
	Count   int      `json:"count"`
}

// PathResult is the outcome of a shortest-path query. Path is empty and
// DegreesOfSeparation is -1 when the two users are not connected within
// the search cutoff.
type PathResult struct {
	Connected           bool     `json:"connected"`
	Path                []UserID `json:"path"`
	DegreesOfSeparation int      `json:"degrees_of_separation"`
	IsMutual            bool     `json:"is_mutual"`
}

// Suggestion is one friends-of-friends candidate. Score counts how many
// of the requesting user's followees follow the candidate.
type Suggestion struct {
	UserID UserID `json:"user_id"`
	Score  int    `json:"score"`
}

// SuggestionResult holds the ranked candidates for one user.
type SuggestionResult struct {
	UserID      UserID       `json:"user_id"`
	Suggestions []Suggestion `json:"suggestions"`
}

// MutualResult holds both intersections for a pair of users: the users
// both follow, and the users following both.
type MutualResult struct {
	MutualFollowing      []UserID `json:"mutual_following"`
	MutualFollowingCount int      `json:"mutual_following_count"`
	MutualFriends        []UserID `json:"mutual_friends"`
	MutualFriendsCount   int      `json:"mutual_friends_count"`
}

// Influencer pairs a user with its follower count.
type Influencer struct {
	UserID        UserID `json:"user_id"`
	FollowerCount int    `json:"follower_count"`
}

// NetworkStats aggregates whole-network counters.
type NetworkStats struct {
	TotalUsers       int     `json:"total_users"`
	TotalConnections int     `json:"total_connections"`
	AverageFollowers float64 `json:"average_followers"`
}

// UserStats summarizes one user's place in the network.
type UserStats struct {
	UserID        UserID `json:"user_id"`
	Followers     int    `json:"followers"`
	Following     int    `json:"following"`
	CommunitySize int    `json:"community_size"`
}
