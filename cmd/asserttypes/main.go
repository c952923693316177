package main

import (
	"os"

	"github.com/dmitrymomot/asserttypes/cmd/asserttypes/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
