package cmd

import (
	"github.com/spf13/cobra"

	"modern-podcast/internal/navcheck"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Navigate to the page and report whether it loads",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScript(cmd, (*navcheck.Runner).Seed)
	},
}

var presenceCmd = &cobra.Command{
	Use:   "presence",
	Short: "Check the navigation landmark, its links and its search control",
	Long: `presence blocks third-party telemetry requests, loads the page (falling
back to a direct fetch when navigation fails), accepts the cookie banner
when one is shown and asserts that the navigation, every expected link and
the search control are visible.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScript(cmd, (*navcheck.Runner).Presence)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(presenceCmd)
}
