package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Query a user's connections",
	}
	cmd.AddCommand(userFollowersCmd())
	cmd.AddCommand(userFollowingCmd())
	cmd.AddCommand(userSuggestCmd())
	cmd.AddCommand(userMutualCmd())
	cmd.AddCommand(userPopularCmd())
	cmd.AddCommand(userStatsCmd())
	return cmd
}

func userFollowersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "followers <user_id>",
		Short: "List who follows a user",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id, err := parseID(args[0])
			if err != nil {
				fatal("followers", err)
			}
			list, err := apiClient.Users.Followers(context.Background(), id)
			if err != nil {
				fatal("followers", err)
			}
			if flagFmt == "table" {
				formatTable([]string{"USER_ID"}, idRows(list.UserIDs))
				return
			}
			if flagFmt == "quiet" {
				printIDs(list.UserIDs)
				return
			}
			output(list, "")
		},
	}
}

func userFollowingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "following <user_id>",
		Short: "List who a user follows",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id, err := parseID(args[0])
			if err != nil {
				fatal("following", err)
			}
			list, err := apiClient.Users.Following(context.Background(), id)
			if err != nil {
				fatal("following", err)
			}
			if flagFmt == "table" {
				formatTable([]string{"USER_ID"}, idRows(list.UserIDs))
				return
			}
			if flagFmt == "quiet" {
				printIDs(list.UserIDs)
				return
			}
			output(list, "")
		},
	}
}

func userSuggestCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "suggest <user_id>",
		Short: "Suggest users to follow, ranked by mutual connections",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id, err := parseID(args[0])
			if err != nil {
				fatal("suggest", err)
			}
			res, err := apiClient.Users.Suggestions(context.Background(), id, limit)
			if err != nil {
				fatal("suggest", err)
			}
			if flagFmt == "table" {
				headers := []string{"USER_ID", "SCORE"}
				var rows [][]string
				for _, s := range res.Suggestions {
					rows = append(rows, []string{fmt.Sprintf("%d", s.UserID), fmt.Sprintf("%d", s.Score)})
				}
				formatTable(headers, rows)
				return
			}
			output(res, "")
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results (0 uses the server default)")
	return cmd
}

func userMutualCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mutual <user_id> <other_id>",
		Short: "Show connections two users share",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			id, err := parseID(args[0])
			if err != nil {
				fatal("mutual", err)
			}
			other, err := parseID(args[1])
			if err != nil {
				fatal("mutual", err)
			}
			res, err := apiClient.Users.Mutual(context.Background(), id, other)
			if err != nil {
				fatal("mutual", err)
			}
			output(res, "")
		},
	}
}

func userPopularCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "popular <user_id>",
		Short: "Rank a user's follows by follower count",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id, err := parseID(args[0])
			if err != nil {
				fatal("popular", err)
			}
			list, err := apiClient.Users.Popular(context.Background(), id, limit)
			if err != nil {
				fatal("popular", err)
			}
			if flagFmt == "table" {
				formatTable([]string{"USER_ID", "FOLLOWERS"}, influencerRows(list))
				return
			}
			output(list, "")
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results (0 uses the server default)")
	return cmd
}

func userStatsCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "stats <user_id>",
		Short: "Show one user's network statistics",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id, err := parseID(args[0])
			if err != nil {
				fatal("user stats", err)
			}
			res, err := apiClient.Users.Stats(context.Background(), id, depth)
			if err != nil {
				fatal("user stats", err)
			}
			if flagFmt == "table" {
				formatTable(
					[]string{"METRIC", "VALUE"},
					[][]string{
						{"Followers", fmt.Sprintf("%d", res.Followers)},
						{"Following", fmt.Sprintf("%d", res.Following)},
						{"Community Size", fmt.Sprintf("%d", res.CommunitySize)},
					},
				)
				return
			}
			output(res, "")
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 0, "Community depth (0 uses the server default)")
	return cmd
}
