package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative commands",
	}
	cmd.AddCommand(adminHealthCmd())
	cmd.AddCommand(adminReadyCmd())
	cmd.AddCommand(adminResyncCmd())
	return cmd
}

func adminHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := apiClient.Health(context.Background())
			if err != nil {
				fatal("health", err)
			}
			output(resp, resp.Status)
		},
	}
}

func adminReadyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ready",
		Short: "Check server readiness",
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := apiClient.Ready(context.Background())
			if err != nil {
				fatal("ready", err)
			}
			output(resp, resp.Status)
		},
	}
}

func adminResyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resync",
		Short: "Rebuild the in-memory graph from the database",
		Run: func(cmd *cobra.Command, args []string) {
			follows, err := apiClient.Admin.Resync(context.Background())
			if err != nil {
				fatal("resync", err)
			}
			output(map[string]int{"follows": follows}, fmt.Sprintf("%d", follows))
		},
	}
}
