// Package render writes converted UD documents in the supported output
// formats.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/anatoleg/spacy-ud/ud"
)

const Defaultformat = "text"

var (
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	Off       = "\033[0m"
)

// Renderer writes a UD document to a writer.
type Renderer interface {
	Render(w io.Writer, doc *ud.Doc) error
}

// SupportedFormats lists the output format names.
func SupportedFormats() []string {
	return []string{"text", "conllu", "json"}
}

// Options configure the renderer returned by ForFormat. They only
// apply to the text format.
type Options struct {
	Color    bool
	Numbered bool
}

// ForFormat returns the renderer for the given format name.
func ForFormat(format string, opts Options) (Renderer, error) {
	switch format {
	case "text":
		return &Text{HasColor: opts.Color, Numbered: opts.Numbered}, nil
	case "conllu":
		return &ConllU{}, nil
	case "json":
		return &JSON{}, nil
	}
	return nil, fmt.Errorf("unsupported format %q, supported: %s",
		format, strings.Join(SupportedFormats(), ", "))
}

// Text renders the tab separated word-per-line document format.
type Text struct {
	HasColor bool

	// Numbered prefixes each sentence text with its 1-based position.
	Numbered bool
}

// Render writes each sentence as its text line followed by one line per
// word and a trailing blank line.
func (r *Text) Render(w io.Writer, doc *ud.Doc) error {
	for i, sent := range doc.Sentences {
		text := sent.Text
		if r.Numbered {
			text = fmt.Sprintf(" %d %s", i+1, text)
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}

		for _, word := range sent.Words {
			if _, err := fmt.Fprintln(w, r.line(word)); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func (r *Text) line(word *ud.Word) string {
	line := word.Line()
	if !r.HasColor {
		return line
	}

	// colorize the relation label field
	old := "dep: " + word.Dep
	return strings.Replace(line, old, "dep: "+Green256+word.Dep+Off, 1)
}
