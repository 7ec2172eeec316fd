package ud

import (
	"encoding/json"
	"testing"
)

func buildSentence() *Sentence {
	// "Mary is a doctor" after conversion
	s := &Sentence{Text: "Mary is a doctor"}

	mary := s.NewWord(1, "Mary")
	mary.Lemma, mary.Upos, mary.Dep, mary.Gov = "Mary", "PROPN", "nsubj", 4

	is := s.NewWord(2, "is")
	is.Lemma, is.Upos, is.Dep, is.Gov = "be", "AUX", "cop", 4

	a := s.NewWord(3, "a")
	a.Lemma, a.Upos, a.Dep, a.Gov = "a", "DET", "det", 4

	doctor := s.NewWord(4, "doctor")
	doctor.Lemma, doctor.Upos, doctor.Dep, doctor.Gov = "doctor", "NOUN", "root", 0

	return s
}

func TestWordGovernor(t *testing.T) {
	s := buildSentence()

	if gov := s.Word(1).Governor(); gov == nil || gov.Text != "doctor" {
		t.Fatalf("expected doctor as governor of Mary, got %v", gov)
	}
	if gov := s.Word(4).Governor(); gov != nil {
		t.Errorf("expected nil governor for the root, got %v", gov)
	}
}

func TestWordDependent(t *testing.T) {
	s := buildSentence()
	doctor := s.Word(4)

	if cop := doctor.Dependent("cop"); cop == nil || cop.Text != "is" {
		t.Fatalf("expected is as cop dependent, got %v", cop)
	}
	if dep := doctor.Dependent("obj"); dep != nil {
		t.Errorf("expected no obj dependent, got %v", dep)
	}
}

func TestWordSubject(t *testing.T) {
	s := buildSentence()

	if subj := s.Word(4).Subject(); subj == nil || subj.Text != "Mary" {
		t.Fatalf("expected Mary as subject, got %v", subj)
	}

	s.Word(1).Dep = "nsubj:outer"
	if subj := s.Word(4).Subject(); subj == nil || subj.Text != "Mary" {
		t.Errorf("expected outer subject to be found, got %v", subj)
	}
}

func TestSentenceWordOutOfRange(t *testing.T) {
	s := buildSentence()

	if w := s.Word(0); w != nil {
		t.Errorf("expected nil for index 0, got %v", w)
	}
	if w := s.Word(5); w != nil {
		t.Errorf("expected nil for index past the end, got %v", w)
	}
}

func TestWordLine(t *testing.T) {
	s := buildSentence()
	mary := s.Word(1)
	mary.Feats = Feats{{Name: "Number", Value: "Sing"}}

	want := "1\tMary\tlemma: Mary\tpos: PROPN\tdep: nsubj\tgov: 4\tfeats: Number=Sing"
	if got := mary.Line(); got != want {
		t.Errorf("expected line %q, got %q", want, got)
	}

	is := s.Word(2)
	want = "2\tis\tlemma: be\tpos: AUX\tdep: cop\tgov: 4\tfeats: None"
	if got := is.Line(); got != want {
		t.Errorf("expected line %q, got %q", want, got)
	}
}

func TestWordLineWithEntity(t *testing.T) {
	s := buildSentence()
	mary := s.Word(1)
	mary.Entity = &Entity{Text: "Mary", Type: "PERSON", Span: [2]int{0, 4}, Words: []int{1}}

	want := "1\tMary\tlemma: Mary\tpos: PROPN\tdep: nsubj\tgov: 4\tfeats: None\tNER-type: PERSON\tNER-words: [1]"
	if got := mary.Line(); got != want {
		t.Errorf("expected line %q, got %q", want, got)
	}
}

func TestSentenceJSONRoundTrip(t *testing.T) {
	doc := &Doc{Sentences: []*Sentence{buildSentence()}}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded Doc
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	s := decoded.Sentences[0]
	if len(s.Words) != 4 {
		t.Fatalf("expected 4 words, got %d", len(s.Words))
	}

	// back-references must be restored for navigation
	if gov := s.Words[0].Governor(); gov == nil || gov.Text != "doctor" {
		t.Errorf("expected navigation after decode, got %v", gov)
	}
}

func TestFeats(t *testing.T) {
	f := Feats{{Name: "Case", Value: "Nom"}, {Name: "Number", Value: "Sing"}}

	if got := f.String(); got != "Case=Nom|Number=Sing" {
		t.Errorf("unexpected string: %s", got)
	}
	if got := f.Get("Number"); got != "Sing" {
		t.Errorf("expected Sing, got %s", got)
	}
	if got := f.Get("Tense"); got != "" {
		t.Errorf("expected empty value, got %s", got)
	}
	if got := (Feats{}).String(); got != "None" {
		t.Errorf("expected None for empty feats, got %s", got)
	}
}

func TestFeatsJSON(t *testing.T) {
	f := Feats{{Name: "Case", Value: "Nom"}, {Name: "Number", Value: "Sing"}}

	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"Case=Nom|Number=Sing"` {
		t.Errorf("unexpected json: %s", data)
	}

	var decoded Feats
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded.String() != f.String() {
		t.Errorf("round trip mismatch: %s != %s", decoded.String(), f.String())
	}

	var none Feats
	if err := json.Unmarshal([]byte(`"None"`), &none); err != nil {
		t.Fatalf("unmarshal None failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected empty feats for None, got %v", none)
	}
}
