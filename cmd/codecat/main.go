// Package main provides the entry point for the codecat CLI.
package main

import (
	"os"

	"github.com/codecat-dev/codecat/cmd/codecat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
