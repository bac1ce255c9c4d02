package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/kwertop/lexiset/config"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] word...",
	Short: "Check words against the filter, the authority and the prefix tree.",
	Long: `Load every configured source, then report for each word whether the
filter possibly holds it, the authority certainly does, and the prefix tree
holds it exactly.

This will look for config files with default names
in the current directory if not specified differently.
	`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	RootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringP("config", "c", "config.toml", "Path to lexiset configuration file")
}

func runCheck(cmd *cobra.Command, args []string) error {
	confPath := cmd.Flag("config").Value.String()
	conf, err := config.Load(confPath)
	if err != nil {
		return err
	}
	logger, err := newLogger(conf)
	if err != nil {
		return err
	}
	lex, err := openLexicon(conf, logger)
	if err != nil {
		return err
	}
	defer lex.close()

	ctx := cmd.Context()
	if err := lex.load(ctx, conf.SourcePaths()); err != nil {
		return err
	}
	return writeVerdicts(ctx, cmd.OutOrStdout(), lex, args)
}

func writeVerdicts(ctx context.Context, out io.Writer, lex *lexicon, words []string) error {
	for _, word := range words {
		v := lex.check(ctx, word)
		if _, err := fmt.Fprintf(out, "%s\tpossibly=%t\tcertainly=%t\texact=%t\n",
			v.Word, v.Possibly, v.Certainly, v.Exact); err != nil {
			return err
		}
	}
	return nil
}
