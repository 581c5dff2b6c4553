// Package main is the entry point for campaign-roi.
package main

import (
	"fmt"
	"os"

	"campaign-roi/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
