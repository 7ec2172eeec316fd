// Package corpus loads the curated validation corpora: the sentences
// file, the curated reference parses, and directories of parsed
// documents.
package corpus

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/anatoleg/spacy-ud/spacy"
)

// textPrefix introduces the sentence text line of a curated block.
const textPrefix = "# text = "

// Block is one curated reference parse: the sentence text and the
// expected converted word lines.
type Block struct {
	Text  string
	Lines []string
}

// ReadSentences reads the sentences file: one sentence per line, blank
// lines and '#' comments skipped.
func ReadSentences(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sentences []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sentences = append(sentences, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return sentences, nil
}

// ReadCurated reads the curated parses file: blocks separated by blank
// lines, each starting with a "# text = ..." line followed by the word
// lines.
func ReadCurated(path string) ([]Block, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var blocks []Block
	var current *Block

	lineNo := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			if current != nil {
				blocks = append(blocks, *current)
				current = nil
			}
			continue
		}

		if strings.HasPrefix(line, textPrefix) {
			if current != nil {
				blocks = append(blocks, *current)
			}
			current = &Block{Text: strings.TrimPrefix(line, textPrefix)}
			continue
		}

		if current == nil {
			return nil, fmt.Errorf("%s:%d: word line outside a block", path, lineNo)
		}
		current.Lines = append(current.Lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if current != nil {
		blocks = append(blocks, *current)
	}

	return blocks, nil
}

// LoadDocs reads all *.json parsed documents in dir, sorted by file
// name. The callback, when not nil, is called per file for progress
// reporting.
func LoadDocs(dir string, cb func(total int, name string)) ([]*spacy.Doc, []string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	var names []string
	for _, file := range files {
		if filepath.Ext(file.Name()) == ".json" {
			names = append(names, file.Name())
		}
	}
	sort.Strings(names)

	docs := make([]*spacy.Doc, 0, len(names))
	for _, name := range names {
		if cb != nil {
			cb(len(names), name)
		}

		doc, err := spacy.ReadDoc(filepath.Join(dir, name))
		if err != nil {
			return nil, nil, err
		}
		docs = append(docs, doc)
	}

	return docs, names, nil
}
