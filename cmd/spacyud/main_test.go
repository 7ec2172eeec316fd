package main

import (
	"bytes"
	"strings"
	"testing"
)

const docJSON = `{
  "text": "Sam ate an apple",
  "ents": [{"start": 0, "end": 3, "label": "PERSON"}],
  "sents": [{"start": 0, "end": 16}],
  "tokens": [
    {"id": 0, "start": 0, "end": 3, "pos": "PROPN", "tag": "NNP", "dep": "nsubj", "head": 1, "lemma": "Sam", "morph": "Number=Sing"},
    {"id": 1, "start": 4, "end": 7, "pos": "VERB", "tag": "VBD", "dep": "ROOT", "head": 1, "lemma": "eat", "morph": "Tense=Past|VerbForm=Fin"},
    {"id": 2, "start": 8, "end": 10, "pos": "DET", "tag": "DT", "dep": "det", "head": 3, "lemma": "an", "morph": ""},
    {"id": 3, "start": 11, "end": 16, "pos": "NOUN", "tag": "NN", "dep": "dobj", "head": 1, "lemma": "apple", "morph": "Number=Sing"}
  ]
}`

func runApp(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	ui := UI{In: strings.NewReader(stdin), Out: &out, Err: &errOut}

	err := newApp(ui).Run(append([]string{"spacyud"}, args...))
	return out.String(), errOut.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := runApp(t, "", "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "spacyud ") {
		t.Errorf("unexpected version output: %q", out)
	}
}

func TestConvertCommandFromStdin(t *testing.T) {
	out, _, err := runApp(t, docJSON, "convert", "-")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	if !strings.HasPrefix(out, "Sam ate an apple\n") {
		t.Errorf("expected the sentence text first, got %q", out)
	}
	if !strings.Contains(out, "4\tapple\tlemma: apple\tpos: NOUN\tdep: obj\tgov: 2\tfeats: Number=Sing") {
		t.Errorf("expected the renamed obj relation, got %q", out)
	}
	if !strings.Contains(out, "NER-type: PERSON\tNER-words: [1]") {
		t.Errorf("expected the entity annotation, got %q", out)
	}
}

func TestConvertCommandConllU(t *testing.T) {
	out, _, err := runApp(t, docJSON, "convert", "--format", "conllu", "-")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	if !strings.Contains(out, "# text = Sam ate an apple\n") {
		t.Errorf("expected the conllu comment, got %q", out)
	}
	if !strings.Contains(out, "4\tapple\tapple\tNOUN\t_\tNumber=Sing\t2\tobj\t_\t_\n") {
		t.Errorf("expected the conllu word line, got %q", out)
	}
}

func TestConvertCommandMissingArg(t *testing.T) {
	if _, _, err := runApp(t, "", "convert"); err == nil {
		t.Fatal("expected an error without a document argument")
	}
}

func TestParseCommand(t *testing.T) {
	out, _, err := runApp(t, docJSON, "parse", "-")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if !strings.HasPrefix(out, "Spacy tokens for: Sam ate an apple\n") {
		t.Errorf("unexpected parse output: %q", out)
	}
	if !strings.Contains(out, "3\tapple\tlemma: apple\tpos: NOUN\tdep: dobj\tgov: 1") {
		t.Errorf("expected the raw dobj relation, got %q", out)
	}
}
