package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/anatoleg/spacy-ud/spacy"
)

func newConvertCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "convert a parsed document JSON and print the UD document",
		ArgsUsage: "<doc.json | ->",
		Flags: []cli.Flag{
			configFlag(),
			formatFlag(),
			&cli.BoolFlag{Name: "color", Usage: "colorize the relation labels"},
			&cli.BoolFlag{Name: "numbered", Usage: "number the sentences"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected one document path (or - for stdin)")
			}

			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			doc, err := readDoc(c.Args().First(), ui)
			if err != nil {
				return err
			}

			conv := newConverter(cfg)
			udDoc, err := conv.Convert(doc)
			if err != nil {
				return err
			}

			for _, warning := range conv.Warnings() {
				fmt.Fprintf(ui.Err, "warning: %s\n", warning)
			}

			r, err := newRenderer(cfg)
			if err != nil {
				return err
			}

			return r.Render(ui.Out, udDoc)
		},
	}
}

func readDoc(path string, ui UI) (*spacy.Doc, error) {
	if path == "-" {
		return spacy.Decode(ui.In)
	}
	return spacy.ReadDoc(path)
}
