package cmd

import (
	"io"
	"os"

	"github.com/kwertop/lexiset/config"
	"github.com/spf13/cobra"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Write the filter bits and the prefix tree words to files.",
	Long: `Load every configured source, then write the filter's bit text and the
prefix tree's word list. The bit text carries no sizing: read it back
with a filter of the same size and number of hashes.`,
	RunE: runDump,
}

func init() {
	RootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().StringP("config", "c", "config.toml", "Path to lexiset configuration file")
	dumpCmd.Flags().String("filter", "filter.txt", "File to write the filter bits to")
	dumpCmd.Flags().String("tree", "tree.txt", "File to write the prefix tree words to")
}

func runDump(cmd *cobra.Command, args []string) error {
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

	if err := lex.load(cmd.Context(), conf.SourcePaths()); err != nil {
		return err
	}
	if err := writeFile(cmd.Flag("filter").Value.String(), lex.filter); err != nil {
		return err
	}
	return writeFile(cmd.Flag("tree").Value.String(), lex.tree)
}

func writeFile(path string, src io.WriterTo) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := src.WriteTo(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
