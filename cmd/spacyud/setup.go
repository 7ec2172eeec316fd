package main

import (
	"github.com/urfave/cli/v2"

	"github.com/anatoleg/spacy-ud/config"
	"github.com/anatoleg/spacy-ud/convert"
	"github.com/anatoleg/spacy-ud/render"
)

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "path to the YAML config file",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "output format: text, conllu, json",
	}
}

// loadConfig loads the configured file, or the defaults when no file
// was given, and merges the command line flags over it.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()

	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.IsSet("format") {
		cfg.Render.Format = c.String("format")
	}
	if c.IsSet("color") {
		cfg.Render.Color = c.Bool("color")
	}
	if c.IsSet("numbered") {
		cfg.Render.Numbered = c.Bool("numbered")
	}

	return cfg, nil
}

func newConverter(cfg *config.Config) *convert.Converter {
	return convert.New(convert.WithRenames(cfg.Mappings))
}

func newRenderer(cfg *config.Config) (render.Renderer, error) {
	return render.ForFormat(cfg.Render.Format, render.Options{
		Color:    cfg.Render.Color,
		Numbered: cfg.Render.Numbered,
	})
}
