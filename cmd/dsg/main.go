// Package main is the entry point for the dsg CLI.
package main

import "github.com/donaldgifford/dropship-gateway/cmd/dsg/cmd"

func main() {
	cmd.Execute()
}
