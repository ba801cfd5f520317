// Package main is the entry point for the dropship gateway server.
package main

import (
	"os"

	"github.com/donaldgifford/dropship-gateway/cmd/dropship-gateway/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
