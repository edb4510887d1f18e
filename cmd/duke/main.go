package main

import (
	"errors"
	"fmt"
	"os"

	"duke/internal/cli"
	"duke/internal/config"
)

func main() {
	root := cli.NewRootCommand(config.NewLoader())
	if err := root.Execute(); err != nil {
		// the failed reply has already been printed
		if !errors.Is(err, cli.ErrCommandFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
