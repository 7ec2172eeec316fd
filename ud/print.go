package ud

import (
	"fmt"
	"strconv"
	"strings"
)

// Line renders the word in the tab separated document format:
//
//	index	text	lemma: L	pos: P	dep: D	gov: G	feats: F
//
// with the entity annotation appended on entity head words.
func (w *Word) Line() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\t%s\tlemma: %s\tpos: %s", w.Index, w.Text, w.Lemma, w.Upos)
	fmt.Fprintf(&b, "\tdep: %s\tgov: %d", w.Dep, w.Gov)
	fmt.Fprintf(&b, "\tfeats: %s", w.Feats)

	if w.Entity != nil {
		indexes := make([]string, 0, len(w.Entity.Words))
		for _, i := range w.Entity.Words {
			indexes = append(indexes, strconv.Itoa(i))
		}
		fmt.Fprintf(&b, "\tNER-type: %s\tNER-words: [%s]", w.Entity.Type, strings.Join(indexes, ", "))
	}

	return b.String()
}

// Lines renders all words of the sentence, one Line per word.
func (s *Sentence) Lines() []string {
	lines := make([]string, 0, len(s.Words))
	for _, w := range s.Words {
		lines = append(lines, w.Line())
	}
	return lines
}
