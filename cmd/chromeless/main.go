package main

import (
	"os"

	"github.com/bnema/chromeless/internal/cli"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, buildDate)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
