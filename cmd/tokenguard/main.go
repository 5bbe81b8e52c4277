// Package main is the tokenguard command-line entry point.
package main

import (
	"os"

	"github.com/leapstack-labs/tokenguard/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
