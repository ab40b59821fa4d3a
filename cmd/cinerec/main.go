// Command cinerec filters the movie catalog and runs recommendation rules
// from the command line.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// PersistentPostRun is skipped when a command fails.
		teardown(rootCmd, nil)
		outputError(os.Stderr, err)
		os.Exit(1)
	}
}
