// Package main provides the minitorch CLI.
package main

import (
	"os"

	"github.com/born-ml/minitorch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
