package render

import (
	"fmt"
	"io"

	"github.com/anatoleg/spacy-ud/ud"
)

// ConllU renders the document in the 10 column CoNLL-U format, one
// sentence block per sentence with a "# text =" comment.
type ConllU struct{}

// Render writes the document to w.
func (r *ConllU) Render(w io.Writer, doc *ud.Doc) error {
	for _, sent := range doc.Sentences {
		if _, err := fmt.Fprintf(w, "# text = %s\n", sent.Text); err != nil {
			return err
		}

		for _, word := range sent.Words {
			feats := "_"
			if len(word.Feats) > 0 {
				feats = word.Feats.String()
			}

			misc := "_"
			if word.Entity != nil {
				misc = "Entity=" + word.Entity.Type
			}

			_, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t_\t%s\t%d\t%s\t_\t%s\n",
				word.Index, word.Text, word.Lemma, word.Upos, feats,
				word.Gov, word.Dep, misc)
			if err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
