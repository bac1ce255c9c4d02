package cmd

import (
	"path/filepath"

	"github.com/kwertop/lexiset/config"
	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file for lexiset.",
	Long:  `Create a configuration file for lexiset.`,
	RunE:  initRunFunc,
}

func init() {
	RootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("dir", "d", ".", "Location of directory for storing generated files")
}

func initRunFunc(cmd *cobra.Command, args []string) error {
	dir := cmd.Flag("dir").Value.String()
	return mkConfig(dir)
}

func mkConfig(dir string) error {
	file := filepath.Join(dir, "config.toml")
	return config.Default().Save(file)
}
