// Command recurrence runs the recurrence-relation case studies.
package main

import (
	"os"

	"github.com/katalvlaran/recurrence/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// cobra has already printed the error
		os.Exit(1)
	}
}
