// Package main is the entry point for the rcc CLI client.
package main

import (
	"github.com/donaldgifford/repair-cost/cmd/rcc/cmd"
)

func main() {
	cmd.Execute()
}
