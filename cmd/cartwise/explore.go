package main

import (
	"github.com/spf13/cobra"

	"github.com/cartwise/cartwise/internal/tui"
)

func exploreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Browse the corpus interactively",
		Long:  `Open an interactive explorer with overview, product analysis, cart recommendation, and rule filtering pages.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := loadSnapshot(cmd.Context())
			if err != nil {
				return err
			}

			return tui.Run(cmd.Context(), snap)
		},
	}
}
