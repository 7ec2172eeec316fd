package render

import (
	"encoding/json"
	"io"

	"github.com/anatoleg/spacy-ud/ud"
)

// JSON serializes the document as a JSON object.
type JSON struct{}

// Render writes the document to w.
func (r *JSON) Render(w io.Writer, doc *ud.Doc) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// compile-time interface checks
var (
	_ Renderer = (*Text)(nil)
	_ Renderer = (*ConllU)(nil)
	_ Renderer = (*JSON)(nil)
)
