package corpus

import (
	"fmt"

	"github.com/anatoleg/spacy-ud/spacy"
	"github.com/anatoleg/spacy-ud/ud"
)

// Result is the outcome for one curated sentence.
type Result struct {
	Index int
	Text  string
	OK    bool
	Got   []string
	Want  []string
}

// Report aggregates the validation results.
type Report struct {
	Results []Result
}

// Passed returns the number of matching sentences.
func (r *Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.OK {
			n++
		}
	}
	return n
}

// Failed returns the number of mismatching sentences.
func (r *Report) Failed() int {
	return len(r.Results) - r.Passed()
}

// Validator compares conversions of parsed documents against curated
// reference blocks.
type Validator struct {
	// Convert turns a parsed document into a UD document.
	Convert func(*spacy.Doc) (*ud.Doc, error)
}

// Validate pairs each document with the curated block at the same
// position and compares the converted word lines. The callback, when
// not nil, is called once per document.
func (v *Validator) Validate(docs []*spacy.Doc, curated []Block, cb func(i int)) (*Report, error) {
	if len(docs) != len(curated) {
		return nil, fmt.Errorf("got %d parsed docs for %d curated blocks", len(docs), len(curated))
	}

	report := &Report{}
	for i, doc := range docs {
		if cb != nil {
			cb(i)
		}

		udDoc, err := v.Convert(doc)
		if err != nil {
			return nil, fmt.Errorf("sentence %d: %w", i+1, err)
		}

		var got []string
		var text string
		if len(udDoc.Sentences) > 0 {
			// curated blocks hold one sentence each
			text = udDoc.Sentences[0].Text
			got = udDoc.Sentences[0].Lines()
		}

		want := curated[i].Lines
		ok := text == curated[i].Text && equalLines(got, want)

		report.Results = append(report.Results, Result{
			Index: i + 1,
			Text:  curated[i].Text,
			OK:    ok,
			Got:   got,
			Want:  want,
		})
	}

	return report, nil
}

func equalLines(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
