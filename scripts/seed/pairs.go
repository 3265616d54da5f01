package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// pair is one follow relationship read from the seed file.
type pair struct {
	FollowerID int64 `json:"follower_id"`
	FolloweeID int64 `json:"followee_id"`
}

// readPairs reads newline-delimited JSON follow pairs from path. Malformed
// or invalid lines are skipped with a reason rather than aborting the load.
func readPairs(path string) ([]pair, []skippedPair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	var (
		pairs   []pair
		skipped []skippedPair
		seen    = make(map[pair]bool)
	)

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		var p pair
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			skipped = append(skipped, skippedPair{Line: line, Reason: fmt.Sprintf("malformed JSON: %v", err)})
			continue
		}
		if p.FollowerID <= 0 || p.FolloweeID <= 0 {
			skipped = append(skipped, skippedPair{Line: line, Follower: p.FollowerID, Followee: p.FolloweeID, Reason: "user ids must be positive"})
			continue
		}
		if p.FollowerID == p.FolloweeID {
			skipped = append(skipped, skippedPair{Line: line, Follower: p.FollowerID, Followee: p.FolloweeID, Reason: "self-follow"})
			continue
		}
		if seen[p] {
			skipped = append(skipped, skippedPair{Line: line, Follower: p.FollowerID, Followee: p.FolloweeID, Reason: "duplicate pair"})
			continue
		}
		seen[p] = true
		pairs = append(pairs, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return pairs, skipped, nil
}

// distinctUsers collects every user id referenced by the pairs, sorted for
// deterministic insert order.
func distinctUsers(pairs []pair) []int64 {
	set := make(map[int64]bool, len(pairs)*2)
	for _, p := range pairs {
		set[p.FollowerID] = true
		set[p.FolloweeID] = true
	}
	users := make([]int64, 0, len(set))
	for id := range set {
		users = append(users, id)
	}
	sort.Slice(users, func(i, j int) bool { return users[i] < users[j] })
	return users
}
