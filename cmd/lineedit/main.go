package main

import (
	"os"

	"github.com/kcaldas/lineedit/cmd/cli"
	"github.com/kcaldas/lineedit/pkg/version"
)

func main() {
	// Show the full build info for --version
	cli.RootCmd.SetVersionTemplate(version.GetInfo().String() + "\n")
	if err := cli.RootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with error code
		os.Exit(1)
	}
}
