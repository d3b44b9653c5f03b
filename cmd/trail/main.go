package main

import (
	"fmt"
	"os"

	"trail.dev/trail/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "trail: %v\n", err)
		os.Exit(1)
	}
}
