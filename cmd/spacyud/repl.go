package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	prompt "github.com/c-bata/go-prompt"
	"github.com/urfave/cli/v2"

	"github.com/anatoleg/spacy-ud/convert"
	"github.com/anatoleg/spacy-ud/parser"
	"github.com/anatoleg/spacy-ud/render"
	"github.com/anatoleg/spacy-ud/spacy"
)

func newReplCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "interactively parse sentences and print their UD documents",
		Flags: []cli.Flag{
			configFlag(),
			formatFlag(),
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			r := &repl{
				ui:        ui,
				parser:    parser.New(cfg.Parser),
				converter: newConverter(cfg),
				format:    cfg.Render.Format,
				color:     cfg.Render.Color,
				timeout:   time.Duration(cfg.Parser.Timeout),
			}
			return r.run()
		},
	}
}

type repl struct {
	ui        UI
	parser    *parser.Spacy
	converter *convert.Converter
	format    string
	color     bool
	timeout   time.Duration

	showSpacy bool
}

func (r *repl) run() error {
	fmt.Fprintln(r.ui.Out, "type a sentence; :format <name>, :spacy toggles the raw dump, quit exits")

	history := []string{}

	for {
		in := prompt.Input("ud> ", r.completer,
			prompt.OptionTitle("spacyud repl"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionMaxSuggestion(6),
			prompt.OptionHistory(history),
		)

		in = strings.TrimSpace(in)
		if in == "" {
			continue
		}
		if in == "quit" {
			return nil
		}

		history = append(history, in)

		if strings.HasPrefix(in, ":") {
			if err := r.command(in); err != nil {
				fmt.Fprintf(r.ui.Out, "❌ %s\n", err)
			}
			continue
		}

		if err := r.sentence(in); err != nil {
			fmt.Fprintf(r.ui.Out, "❌ %s\n", err)
		}
	}
}

func (r *repl) command(in string) error {
	name, arg, _ := strings.Cut(in, " ")
	switch name {
	case ":format":
		if _, err := render.ForFormat(arg, render.Options{}); err != nil {
			return err
		}
		r.format = arg
		return nil
	case ":spacy":
		r.showSpacy = !r.showSpacy
		return nil
	}
	return fmt.Errorf("unknown command %s", name)
}

func (r *repl) sentence(text string) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	doc, err := r.parser.Parse(ctx, text)
	if err != nil {
		return err
	}

	if r.showSpacy {
		if err := spacy.Fprint(r.ui.Out, doc); err != nil {
			return err
		}
		fmt.Fprintln(r.ui.Out)
	}

	udDoc, err := r.converter.Convert(doc)
	if err != nil {
		return err
	}

	for _, warning := range r.converter.Warnings() {
		fmt.Fprintf(r.ui.Err, "warning: %s\n", warning)
	}

	renderer, err := render.ForFormat(r.format, render.Options{Color: r.color})
	if err != nil {
		return err
	}
	return renderer.Render(r.ui.Out, udDoc)
}

func (r *repl) completer(d prompt.Document) []prompt.Suggest {
	suggestions := []prompt.Suggest{
		{Text: ":format", Description: "set the output format"},
		{Text: ":spacy", Description: "toggle the raw parser dump"},
		{Text: "quit", Description: "exit the repl"},
	}

	if strings.HasPrefix(d.TextBeforeCursor(), ":format ") {
		suggestions = nil
		for _, f := range render.SupportedFormats() {
			suggestions = append(suggestions, prompt.Suggest{Text: f})
		}
		return prompt.FilterHasPrefix(suggestions, d.GetWordBeforeCursor(), true)
	}

	return prompt.FilterHasPrefix(suggestions, d.TextBeforeCursor(), true)
}
