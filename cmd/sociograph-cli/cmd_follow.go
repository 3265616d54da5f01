package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newFollowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "follow <follower_id> <followee_id>",
		Short: "Make one user follow another",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			follower, err := parseID(args[0])
			if err != nil {
				fatal("follow", err)
			}
			followee, err := parseID(args[1])
			if err != nil {
				fatal("follow", err)
			}
			res, err := apiClient.Follows.Create(context.Background(), follower, followee)
			if err != nil {
				fatal("follow", err)
			}
			quietVal := "followed"
			if res.IsMutual {
				quietVal = "mutual"
			}
			output(res, quietVal)
		},
	}
}

func newUnfollowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unfollow <follower_id> <followee_id>",
		Short: "Remove a follow relationship",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			follower, err := parseID(args[0])
			if err != nil {
				fatal("unfollow", err)
			}
			followee, err := parseID(args[1])
			if err != nil {
				fatal("unfollow", err)
			}
			if err := apiClient.Follows.Delete(context.Background(), follower, followee); err != nil {
				fatal("unfollow", err)
			}
			fmt.Println("unfollowed")
		},
	}
}
