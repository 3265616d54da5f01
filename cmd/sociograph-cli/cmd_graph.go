package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Graph traversal and analytics",
	}
	cmd.AddCommand(graphPathCmd())
	cmd.AddCommand(graphCommunityCmd())
	cmd.AddCommand(graphInfluencersCmd())
	cmd.AddCommand(graphStatsCmd())
	return cmd
}

func graphPathCmd() *cobra.Command {
	var maxDepth int
	cmd := &cobra.Command{
		Use:   "path <from_id> <to_id>",
		Short: "Find the shortest follow path between two users",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			from, err := parseID(args[0])
			if err != nil {
				fatal("path", err)
			}
			to, err := parseID(args[1])
			if err != nil {
				fatal("path", err)
			}
			res, err := apiClient.Graph.ShortestPath(context.Background(), from, to, maxDepth)
			if err != nil {
				fatal("path", err)
			}
			quietVal := "unreachable"
			if res.Connected {
				quietVal = fmt.Sprintf("%d", res.DegreesOfSeparation)
			}
			output(res, quietVal)
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Search depth cap (0 uses the server ceiling)")
	return cmd
}

func graphCommunityCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "community <user_id>",
		Short: "Measure the reachable network around a user",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id, err := parseID(args[0])
			if err != nil {
				fatal("community", err)
			}
			res, err := apiClient.Graph.Community(context.Background(), id, depth)
			if err != nil {
				fatal("community", err)
			}
			output(res, fmt.Sprintf("%d", res.CommunitySize))
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 0, "Traversal depth (0 uses the server default)")
	return cmd
}

func graphInfluencersCmd() *cobra.Command {
	var minFollowers, limit int
	cmd := &cobra.Command{
		Use:   "influencers",
		Short: "Rank users by follower count",
		Run: func(cmd *cobra.Command, args []string) {
			list, err := apiClient.Graph.Influencers(context.Background(), minFollowers, limit)
			if err != nil {
				fatal("influencers", err)
			}
			if flagFmt == "table" {
				formatTable([]string{"USER_ID", "FOLLOWERS"}, influencerRows(list))
				return
			}
			output(list, "")
		},
	}
	cmd.Flags().IntVar(&minFollowers, "min-followers", -1, "Follower floor (-1 uses the server default, 0 includes everyone)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results (0 uses the server default)")
	return cmd
}

func graphStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show whole-network statistics",
		Run: func(cmd *cobra.Command, args []string) {
			res, err := apiClient.Graph.NetworkStats(context.Background())
			if err != nil {
				fatal("stats", err)
			}
			if flagFmt == "table" {
				formatTable(
					[]string{"METRIC", "VALUE"},
					[][]string{
						{"Users", fmt.Sprintf("%d", res.TotalUsers)},
						{"Connections", fmt.Sprintf("%d", res.TotalConnections)},
						{"Avg Followers", fmt.Sprintf("%.2f", res.AverageFollowers)},
					},
				)
				return
			}
			output(res, "")
		},
	}
}
