// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/textmill/internal/remote"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether the remote conversion service is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := remoteConfig()
		client := remote.NewClient(cfg, logger)

		if !client.Healthy(context.Background()) {
			return fmt.Errorf("conversion service at %s is unreachable", cfg.BaseURL)
		}
		fmt.Printf("conversion service at %s is reachable\n", cfg.BaseURL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
