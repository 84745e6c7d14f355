// Package main provides the entry point for the latticewalk CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/latticewalk/cmd/latticewalk/commands"
)

// Build metadata, set with -ldflags.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "latticewalk",
		Short: "Incremental digit-sum lattice search",
		Long: `latticewalk finds every lattice point (x, y) whose digit-sum cost
digitSum(x) + digitSum(y) does not exceed a target, one round at a time.

Commands:
  run       Drive a search and print per-round progress
  verify    Cross-check a search against a brute-force scan`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewVerifyCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "latticewalk %s (commit: %s)\n", version, commit)
		},
	}
}
