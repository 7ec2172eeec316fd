package ud

import (
	"encoding/json"
	"strings"
)

// Feat is a single morphological feature.
type Feat struct {
	Name  string
	Value string
}

// Feats is an ordered feature list. The order from the parser's morph
// string is preserved for printing.
type Feats []Feat

// Get returns the value of the named feature, or "".
func (f Feats) Get(name string) string {
	for _, feat := range f {
		if feat.Name == name {
			return feat.Value
		}
	}
	return ""
}

// String joins the features with "|", or returns "None" for an empty
// list, matching the document printer format.
func (f Feats) String() string {
	if len(f) == 0 {
		return "None"
	}

	parts := make([]string, 0, len(f))
	for _, feat := range f {
		parts = append(parts, feat.Name+"="+feat.Value)
	}
	return strings.Join(parts, "|")
}

// MarshalJSON serializes the features as the joined string form.
func (f Feats) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON parses the joined string form.
func (f *Feats) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	*f = nil
	if s == "" || s == "None" {
		return nil
	}
	for _, part := range strings.Split(s, "|") {
		name, value, found := strings.Cut(part, "=")
		if !found || name == "" {
			continue
		}
		*f = append(*f, Feat{Name: name, Value: value})
	}
	return nil
}
