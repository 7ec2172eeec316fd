// Package convert transforms a spacy.Doc into a ud.Doc by renaming the
// parser's dependency relations and restructuring the tree where the two
// annotation schemes disagree (copulas, prepositions, conjunctions,
// passives).
package convert

import (
	"fmt"

	"github.com/anatoleg/spacy-ud/spacy"
	"github.com/anatoleg/spacy-ud/ud"
)

// baseRenames maps parser relation labels to their UD counterparts.
// These renames need no tree restructuring and are applied while the
// words are built; the structural rules run afterwards.
var baseRenames = map[string]string{
	"dobj":      "obj",
	"dative":    "iobj",
	"nsubjpass": "nsubj:pass",
	"csubjpass": "csubj:pass",
	"ROOT":      "root",
	"auxpass":   "aux:pass",
	"preconj":   "pre:conj",
	"prt":       "compound:prt",
	"predet":    "det:predet",
	"poss":      "nmod:poss",
	"relcl":     "acl:relcl",
	"neg":       "advmod",
	"quantmod":  "compound",
	"parataxis": "prataxis",
}

// Converter converts parser documents. It is not safe for concurrent
// use: warnings accumulate between Convert calls until Warnings drains
// them.
type Converter struct {
	renames  map[string]string
	warnings []string
}

// Option configures a Converter.
type Option func(*Converter)

// WithRenames adds extra relation renames on top of the built-in table.
// Extra entries win over built-in ones.
func WithRenames(renames map[string]string) Option {
	return func(c *Converter) {
		for from, to := range renames {
			c.renames[from] = to
		}
	}
}

// New creates a Converter.
func New(opts ...Option) *Converter {
	c := &Converter{
		renames: make(map[string]string, len(baseRenames)),
	}
	for from, to := range baseRenames {
		c.renames[from] = to
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Warnings returns and clears the anomalies observed during conversion.
func (c *Converter) Warnings() []string {
	w := c.warnings
	c.warnings = nil
	return w
}

func (c *Converter) warnf(format string, args ...any) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

// Convert builds the UD document for sd. A document without sentence
// spans is treated as a single sentence.
func (c *Converter) Convert(sd *spacy.Doc) (*ud.Doc, error) {
	if sd == nil {
		return nil, fmt.Errorf("nil document")
	}

	doc := &ud.Doc{}

	sents := sd.Sents
	if len(sents) == 0 {
		sents = []spacy.Span{{Start: 0, End: len([]rune(sd.Text))}}
	}

	for _, span := range sents {
		sent := c.convertSentence(sd, span)
		if len(sent.Words) == 0 {
			continue
		}
		doc.Sentences = append(doc.Sentences, sent)
	}

	return doc, nil
}

// convertSentence builds the words of one sentence with renamed
// relations and sentence-local 1-based indexes, then applies the
// structural rules and the entity spans.
func (c *Converter) convertSentence(sd *spacy.Doc, span spacy.Span) *ud.Sentence {
	runes := []rune(sd.Text)
	start, end := span.Start, span.End
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}

	sent := &ud.Sentence{Text: string(runes[start:end])}

	tokens := sd.SentenceTokens(span)

	// map parser token ids to sentence-local indexes
	local := make(map[int]int, len(tokens))
	for i, t := range tokens {
		local[t.Id] = i + 1
	}

	for i, t := range tokens {
		w := sent.NewWord(i+1, sd.TokenText(t))
		w.Lemma = t.Lemma
		w.Upos = t.Pos
		w.Dep = c.rename(t.Dep)
		w.Span = [2]int{t.Start, t.End}

		for _, f := range t.Feats() {
			w.Feats = append(w.Feats, ud.Feat{Name: f.Name, Value: f.Value})
		}

		if t.Head == t.Id {
			w.Gov = 0
		} else if gov, ok := local[t.Head]; ok {
			w.Gov = gov
		} else {
			// head outside the sentence span, keep the word a root
			c.warnf("token %q: head outside sentence", w.Text)
			w.Gov = 0
		}
	}

	c.applyRules(sent)
	c.fixAdvmodCop(sent)
	attachEntities(sent, sd)

	return sent
}

func (c *Converter) rename(dep string) string {
	if to, ok := c.renames[dep]; ok {
		return to
	}
	return dep
}
