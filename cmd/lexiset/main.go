// Executable lexiset loads word sources into a membership filter, an exact
// prefix tree and a word authority, and answers membership queries.
package main

import (
	"fmt"
	"os"

	"github.com/kwertop/lexiset/cmd/lexiset/internal/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
}
