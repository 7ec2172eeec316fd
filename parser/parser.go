// Package parser invokes the external spaCy process and decodes its
// document JSON. The parser itself stays outside this module; only its
// serialized output crosses the boundary.
package parser

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/anatoleg/spacy-ud/config"
	"github.com/anatoleg/spacy-ud/spacy"
)

// script loads the model and dumps the parse of stdin as Doc.to_json()
// output. Used when no custom command is configured.
const script = `import json, sys
import spacy
nlp = spacy.load(sys.argv[1])
doc = nlp(sys.stdin.read())
json.dump(doc.to_json(), sys.stdout)
`

// Spacy runs the external parser command.
type Spacy struct {
	command string
	args    []string
}

// New creates a parser from the given configuration. Without a custom
// command it runs python3 with a built-in driver script for the
// configured model.
func New(cfg config.ParserConfig) *Spacy {
	if cfg.Command != "" {
		return &Spacy{command: cfg.Command, args: cfg.Args}
	}
	return &Spacy{
		command: "python3",
		args:    []string{"-c", script, cfg.Model},
	}
}

// Parse runs the parser on text and decodes the resulting document.
func (p *Spacy) Parse(ctx context.Context, text string) (*spacy.Doc, error) {
	cmd := exec.CommandContext(ctx, p.command, p.args...)
	cmd.Stdin = strings.NewReader(text)

	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(errOut.String()); msg != "" {
			return nil, fmt.Errorf("parser failed: %w: %s", err, msg)
		}
		return nil, fmt.Errorf("parser failed: %w", err)
	}

	doc, err := spacy.Decode(&out)
	if err != nil {
		return nil, fmt.Errorf("parser output: %w", err)
	}

	return doc, nil
}
