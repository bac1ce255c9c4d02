// Package cmd implements the CLI commands for lexiset.
package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base "lexiset" command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "lexiset",
	Short: "Two-tier word membership: a Bloom filter in front of an exact prefix tree",
	Long: `lexiset builds a membership filter, a prefix tree and a word authority
from comma-separated word sources and answers whether words are possibly,
certainly or exactly present.`,
	SilenceUsage: true,
}
