package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/anatoleg/spacy-ud/spacy"
	"github.com/anatoleg/spacy-ud/ud"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestReadSentences(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ud_sentences.txt",
		"# curated sentences\n\nSam ate an apple.\nMary is a doctor.\n")

	sentences, err := ReadSentences(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(sentences))
	}
	if sentences[0] != "Sam ate an apple." {
		t.Errorf("unexpected first sentence: %q", sentences[0])
	}
}

func TestReadCurated(t *testing.T) {
	content := "# text = Sam slept\n" +
		"1\tSam\tlemma: Sam\tpos: PROPN\tdep: nsubj\tgov: 2\tfeats: None\n" +
		"2\tslept\tlemma: sleep\tpos: VERB\tdep: root\tgov: 0\tfeats: None\n" +
		"\n" +
		"# text = Mary left\n" +
		"1\tMary\tlemma: Mary\tpos: PROPN\tdep: nsubj\tgov: 2\tfeats: None\n" +
		"2\tleft\tlemma: leave\tpos: VERB\tdep: root\tgov: 0\tfeats: None\n"

	path := writeFile(t, t.TempDir(), "curated.txt", content)

	blocks, err := ReadCurated(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Text != "Sam slept" {
		t.Errorf("unexpected block text: %q", blocks[0].Text)
	}
	if len(blocks[0].Lines) != 2 {
		t.Errorf("expected 2 word lines, got %d", len(blocks[0].Lines))
	}
	if blocks[1].Text != "Mary left" {
		t.Errorf("unexpected block text: %q", blocks[1].Text)
	}
}

func TestReadCuratedRejectsStrayLine(t *testing.T) {
	path := writeFile(t, t.TempDir(), "curated.txt", "1\tSam\n")

	if _, err := ReadCurated(path); err == nil {
		t.Fatal("expected an error for a word line outside a block")
	}
}

func TestLoadDocs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "002.json", `{"text": "b", "tokens": [{"id": 0, "start": 0, "end": 1, "head": 0}]}`)
	writeFile(t, dir, "001.json", `{"text": "a", "tokens": [{"id": 0, "start": 0, "end": 1, "head": 0}]}`)
	writeFile(t, dir, "notes.txt", "ignored")

	var seen []string
	docs, names, err := LoadDocs(dir, func(total int, name string) {
		seen = append(seen, name)
	})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("expected 2 docs, got %d", len(docs))
	}
	if names[0] != "001.json" || names[1] != "002.json" {
		t.Errorf("expected sorted names, got %v", names)
	}
	if docs[0].Text != "a" {
		t.Errorf("expected doc a first, got %q", docs[0].Text)
	}
	if len(seen) != 2 {
		t.Errorf("expected callback for 2 files, got %d", len(seen))
	}
}

func validatorDoc(text, lemma string) *spacy.Doc {
	return &spacy.Doc{
		Text: text,
		Tokens: []spacy.Token{
			{Id: 0, Start: 0, End: len([]rune(text)), Pos: "VERB", Dep: "ROOT", Head: 0, Lemma: lemma},
		},
	}
}

func convertOne(d *spacy.Doc) (*ud.Doc, error) {
	s := &ud.Sentence{Text: d.Text}
	for i, t := range d.Tokens {
		w := s.NewWord(i+1, d.TokenText(t))
		w.Lemma = t.Lemma
		w.Upos = t.Pos
		w.Dep = "root"
	}
	return &ud.Doc{Sentences: []*ud.Sentence{s}}, nil
}

func TestValidate(t *testing.T) {
	docs := []*spacy.Doc{validatorDoc("Run", "run"), validatorDoc("Go", "go")}

	curated := []Block{
		{Text: "Run", Lines: []string{"1\tRun\tlemma: run\tpos: VERB\tdep: root\tgov: 0\tfeats: None"}},
		{Text: "Go", Lines: []string{"1\tGo\tlemma: walk\tpos: VERB\tdep: root\tgov: 0\tfeats: None"}},
	}

	v := &Validator{Convert: convertOne}
	report, err := v.Validate(docs, curated, nil)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}

	if report.Passed() != 1 {
		t.Errorf("expected 1 passed, got %d", report.Passed())
	}
	if report.Failed() != 1 {
		t.Errorf("expected 1 failed, got %d", report.Failed())
	}
	if report.Results[1].OK {
		t.Errorf("expected the second sentence to fail")
	}
}

func TestValidateCountMismatch(t *testing.T) {
	v := &Validator{Convert: convertOne}
	if _, err := v.Validate([]*spacy.Doc{validatorDoc("Run", "run")}, nil, nil); err == nil {
		t.Fatal("expected an error for mismatched counts")
	}
}
