package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/anatoleg/spacy-ud/corpus"
	"github.com/anatoleg/spacy-ud/spacy"
	"github.com/anatoleg/spacy-ud/ud"
)

func newValidateCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "compare conversions against the curated reference parses",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:     "curated",
				Usage:    "curated reference parses file",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "docs",
				Usage:    "directory with parsed document JSON files, one per curated sentence",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "print got/want lines for failing sentences",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			curated, err := corpus.ReadCurated(c.String("curated"))
			if err != nil {
				return err
			}

			docs, _, err := corpus.LoadDocs(c.String("docs"), nil)
			if err != nil {
				return err
			}

			conv := newConverter(cfg)
			v := &corpus.Validator{
				Convert: func(d *spacy.Doc) (*ud.Doc, error) {
					return conv.Convert(d)
				},
			}

			uiprogress.Start()
			bar := uiprogress.AddBar(len(docs))
			bar.AppendCompleted()

			report, err := v.Validate(docs, curated, func(int) { bar.Incr() })
			uiprogress.Stop()
			if err != nil {
				return err
			}

			for _, res := range report.Results {
				if res.OK {
					continue
				}
				fmt.Fprintf(ui.Out, "FAIL %d: %s\n", res.Index, res.Text)
				if c.Bool("verbose") {
					for _, line := range res.Want {
						fmt.Fprintf(ui.Out, "  - %s\n", line)
					}
					for _, line := range res.Got {
						fmt.Fprintf(ui.Out, "  + %s\n", line)
					}
				}
			}

			fmt.Fprintf(ui.Out, "passed %d of %d sentences\n", report.Passed(), len(report.Results))

			if failed := report.Failed(); failed > 0 {
				return fmt.Errorf("%d of %d sentences failed", failed, len(report.Results))
			}
			return nil
		},
	}
}
