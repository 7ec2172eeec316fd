// Package ud holds the Universal Dependencies document model produced by
// the conversion.
package ud

import "encoding/json"

// Doc is a converted document, a list of sentences.
type Doc struct {
	Sentences []*Sentence `json:"sentences"`
}

// Sentence is a list of words with the original sentence text.
type Sentence struct {
	Text  string  `json:"text"`
	Words []*Word `json:"words"`
}

// Word is a sentence word with its UD annotations. Index and Gov are
// 1-based and sentence local; Gov 0 marks the sentence root.
type Word struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	Lemma string `json:"lemma"`
	Upos  string `json:"upos"`
	Feats Feats  `json:"feats,omitempty"`
	Dep   string `json:"dep"`
	Gov   int    `json:"gov"`

	// Span is the word's character span in the document text.
	Span [2]int `json:"span"`

	// Entity is set on the head word of a named entity covering this
	// word; EntityHead points at that head from the other member words.
	Entity     *Entity `json:"entity,omitempty"`
	EntityHead int     `json:"entity_head,omitempty"`

	sent *Sentence
}

// Entity is a named entity attached to its syntactic head word.
type Entity struct {
	Text  string `json:"text"`
	Type  string `json:"type"`
	Span  [2]int `json:"span"`
	Words []int  `json:"words"`
}

// UnmarshalJSON restores the word back-references after decoding.
func (s *Sentence) UnmarshalJSON(data []byte) error {
	type alias Sentence
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	*s = Sentence(a)
	for _, w := range s.Words {
		w.sent = s
	}
	return nil
}

// NewWord appends a word to the sentence and returns it.
func (s *Sentence) NewWord(index int, text string) *Word {
	w := &Word{
		Index: index,
		Text:  text,
		sent:  s,
	}
	s.Words = append(s.Words, w)
	return w
}

// Word returns the word with the given 1-based index, or nil.
func (s *Sentence) Word(index int) *Word {
	if index < 1 || index > len(s.Words) {
		return nil
	}
	return s.Words[index-1]
}

// Sentence returns the sentence the word belongs to.
func (w *Word) Sentence() *Sentence {
	return w.sent
}

// Governor returns the word's governor, or nil for the root.
func (w *Word) Governor() *Word {
	return w.sent.Word(w.Gov)
}

// Dependent returns the first word governed by w through the given
// relation, or nil.
func (w *Word) Dependent(rel string) *Word {
	for _, x := range w.sent.Words {
		if x.Governor() == w && x.Dep == rel {
			return x
		}
	}
	return nil
}

// subjRels are the relations that attach a subject to its predicate.
var subjRels = map[string]bool{
	"nsubj":       true,
	"csubj":       true,
	"nsubj:pass":  true,
	"csubj:pass":  true,
	"nsubj:outer": true,
	"csubj:outer": true,
}

// Subject returns the first subject of w, or nil.
func (w *Word) Subject() *Word {
	for _, x := range w.sent.Words {
		if x.Governor() == w && subjRels[x.Dep] {
			return x
		}
	}
	return nil
}
