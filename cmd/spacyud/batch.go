package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/anatoleg/spacy-ud/corpus"
	"github.com/anatoleg/spacy-ud/render"
	"github.com/anatoleg/spacy-ud/ud"
)

func newBatchCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "batch",
		Usage: "convert every parsed *.json document in a directory",
		Flags: []cli.Flag{
			configFlag(),
			formatFlag(),
			&cli.StringFlag{
				Name:     "from",
				Usage:    "directory with parsed document JSON files",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "output directory (default: print to stdout)",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			docs, names, err := corpus.LoadDocs(c.String("from"), nil)
			if err != nil {
				return err
			}
			if len(docs) == 0 {
				return fmt.Errorf("no *.json documents in %s", c.String("from"))
			}

			conv := newConverter(cfg)
			r, err := newRenderer(cfg)
			if err != nil {
				return err
			}

			outDir := c.String("out")
			if outDir != "" {
				if err := os.MkdirAll(outDir, 0o755); err != nil {
					return err
				}
			}

			uiprogress.Start()
			bar := uiprogress.AddBar(len(docs))
			bar.AppendCompleted()
			bar.PrependElapsed()

			for i, doc := range docs {
				udDoc, err := conv.Convert(doc)
				if err != nil {
					uiprogress.Stop()
					return fmt.Errorf("failed to convert %s: %w", names[i], err)
				}

				if outDir == "" {
					if err := r.Render(ui.Out, udDoc); err != nil {
						uiprogress.Stop()
						return err
					}
				} else {
					if err := writeRendering(outDir, names[i], cfg.Render.Format, udDoc, r); err != nil {
						uiprogress.Stop()
						return err
					}
				}
				bar.Incr()
			}
			uiprogress.Stop()

			for _, warning := range conv.Warnings() {
				fmt.Fprintf(ui.Err, "warning: %s\n", warning)
			}

			fmt.Fprintf(ui.Out, "Successfully converted %d docs from %s\n", len(docs), c.String("from"))
			return nil
		},
	}
}

func writeRendering(outDir, name, format string, udDoc *ud.Doc, r render.Renderer) error {
	ext := map[string]string{"text": ".txt", "conllu": ".conllu", "json": ".json"}[format]
	if ext == "" {
		ext = ".txt"
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	f, err := os.Create(filepath.Join(outDir, base+ext))
	if err != nil {
		return err
	}
	defer f.Close()

	return r.Render(f, udDoc)
}
