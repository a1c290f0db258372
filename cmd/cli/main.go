// Package main is the entry point for the which-portal CLI.
package main

import (
	"os"

	"which-portal/cmd/cli/cmd"
)

func main() {
	os.Exit(cmd.Main())
}
