// Package main is the entry point for the repair-cost server.
package main

import (
	"os"

	"github.com/donaldgifford/repair-cost/cmd/repair-cost/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
