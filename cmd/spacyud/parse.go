package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/anatoleg/spacy-ud/spacy"
)

func newParseCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "print the raw parser annotations of a document JSON",
		ArgsUsage: "<doc.json | ->",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected one document path (or - for stdin)")
			}

			doc, err := readDoc(c.Args().First(), ui)
			if err != nil {
				return err
			}

			return spacy.Fprint(ui.Out, doc)
		},
	}
}
