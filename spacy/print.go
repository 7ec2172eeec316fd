package spacy

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes the parser-side token dump for doc to w: one tab
// separated line per token with the raw (pre-conversion) annotations,
// followed by the entity spans when present. Token ids and governor ids
// are the parser's 0-based document indexes.
func Fprint(w io.Writer, doc *Doc) error {
	if _, err := fmt.Fprintf(w, "Spacy tokens for: %s\n", doc.Text); err != nil {
		return err
	}

	for _, t := range doc.Tokens {
		line := fmt.Sprintf("%d\t%s\tlemma: %s\tpos: %s\tdep: %s\tgov: %d\tfeats: %s",
			t.Id, doc.TokenText(t), t.Lemma, t.Pos, t.Dep, t.Head, featsString(t))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if len(doc.Ents) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w, "Entities:"); err != nil {
		return err
	}
	for _, e := range doc.Ents {
		runes := []rune(doc.Text)
		text := ""
		if e.Start >= 0 && e.End <= len(runes) && e.Start <= e.End {
			text = string(runes[e.Start:e.End])
		}
		if _, err := fmt.Fprintf(w, "%s %d %d %s\n", text, e.Start, e.End, e.Label); err != nil {
			return err
		}
	}

	return nil
}

func featsString(t Token) string {
	feats := t.Feats()
	if len(feats) == 0 {
		return "None"
	}

	parts := make([]string, 0, len(feats))
	for _, f := range feats {
		parts = append(parts, f.Name+"="+f.Value)
	}
	return strings.Join(parts, "|")
}
