package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func newVersionCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print the version",
		Action: func(c *cli.Context) error {
			fmt.Fprintf(ui.Out, "spacyud %s\n", version)
			return nil
		},
	}
}
