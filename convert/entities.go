package convert

import (
	"github.com/anatoleg/spacy-ud/spacy"
	"github.com/anatoleg/spacy-ud/ud"
)

// attachEntities maps the parser's entity spans onto the sentence. The
// entity is recorded on its syntactic head, the word whose governor
// lies outside the span; the other member words point back at the head.
func attachEntities(sent *ud.Sentence, sd *spacy.Doc) {
	for _, ent := range sd.Ents {
		words := spanWords(sent, ent)
		if len(words) == 0 {
			continue
		}

		inSpan := make(map[*ud.Word]bool, len(words))
		for _, w := range words {
			inSpan[w] = true
		}

		indexes := make([]int, 0, len(words))
		for _, w := range words {
			indexes = append(indexes, w.Index)
		}

		var head *ud.Word
		for _, w := range words {
			if gov := w.Governor(); gov == nil || !inSpan[gov] {
				head = w
				w.Entity = &ud.Entity{
					Text:  entText(sd, ent),
					Type:  ent.Label,
					Span:  [2]int{ent.Start, ent.End},
					Words: indexes,
				}
				break
			}
		}

		for _, w := range words {
			if w != head && head != nil {
				w.EntityHead = head.Index
			}
		}
	}
}

// spanWords returns the sentence words fully inside the entity span.
func spanWords(sent *ud.Sentence, ent spacy.Ent) []*ud.Word {
	var words []*ud.Word
	for _, w := range sent.Words {
		if w.Span[0] >= ent.Start && w.Span[1] <= ent.End {
			words = append(words, w)
		}
	}
	return words
}

func entText(sd *spacy.Doc, ent spacy.Ent) string {
	runes := []rune(sd.Text)
	if ent.Start < 0 || ent.End > len(runes) || ent.Start > ent.End {
		return ""
	}
	return string(runes[ent.Start:ent.End])
}
