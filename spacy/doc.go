// Package spacy models the document emitted by the external spaCy parser,
// as serialized by Doc.to_json().
package spacy

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Doc is a parsed document. Offsets are rune based, as emitted by the
// parser.
type Doc struct {
	Text   string  `json:"text"`
	Ents   []Ent   `json:"ents"`
	Sents  []Span  `json:"sents"`
	Tokens []Token `json:"tokens"`
}

// Span is a half-open [Start, End) character range into Doc.Text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Ent is a named entity span.
type Ent struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
}

// Token is one parser token.
type Token struct {
	Id    int    `json:"id"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Pos   string `json:"pos"`
	Tag   string `json:"tag"`
	Dep   string `json:"dep"`

	// Head is the token Id of the governor. A token that is its own head
	// is the sentence root.
	Head int `json:"head"`

	Lemma string `json:"lemma"`

	// Morph holds the morphological features as a
	// "Name=Value|Name=Value" string.
	Morph string `json:"morph"`
}

// Feat is a single morphological feature.
type Feat struct {
	Name  string
	Value string
}

// Feats parses the Morph string, preserving the feature order.
func (t Token) Feats() []Feat {
	if t.Morph == "" {
		return nil
	}

	var feats []Feat
	for _, part := range strings.Split(t.Morph, "|") {
		name, value, found := strings.Cut(part, "=")
		if !found || name == "" {
			continue
		}
		feats = append(feats, Feat{Name: name, Value: value})
	}

	return feats
}

// TokenText returns the surface form of t, sliced out of the document
// text. Token offsets count runes, not bytes.
func (d *Doc) TokenText(t Token) string {
	runes := []rune(d.Text)
	if t.Start < 0 || t.End > len(runes) || t.Start > t.End {
		return ""
	}
	return string(runes[t.Start:t.End])
}

// SentenceTokens returns the tokens contained in the sentence span s.
func (d *Doc) SentenceTokens(s Span) []Token {
	var tokens []Token
	for _, t := range d.Tokens {
		if t.Start >= s.Start && t.End <= s.End {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// Decode reads a Doc JSON from r and validates it.
func Decode(r io.Reader) (*Doc, error) {
	var doc Doc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode spacy doc: %w", err)
	}

	if err := doc.validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// ReadDoc reads a Doc JSON from the given path.
func ReadDoc(path string) (*Doc, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

func (d *Doc) validate() error {
	ids := make(map[int]bool, len(d.Tokens))
	for _, t := range d.Tokens {
		ids[t.Id] = true
	}

	textLen := len([]rune(d.Text))
	for _, t := range d.Tokens {
		if !ids[t.Head] {
			return fmt.Errorf("token %d: head %d is not a token id", t.Id, t.Head)
		}
		if t.Start < 0 || t.End > textLen || t.Start > t.End {
			return fmt.Errorf("token %d: span [%d, %d) outside text", t.Id, t.Start, t.End)
		}
	}

	return nil
}
