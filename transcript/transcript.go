// Package transcript turns a plain-text speech transcript into the sentence
// table consumed by the analyze stage.
package transcript

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/neurosnap/sentences.v1/english"

	"github.com/maastricht-university/emotion-report/dataset"
)

// ColID is the 0-based sentence index column.
const ColID = "id"

// Split segments text into trimmed, non-empty sentences.
func Split(text string) ([]string, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("sentence tokenizer: %w", err)
	}
	var out []string
	for _, s := range tok.Tokenize(text) {
		line := strings.Join(strings.Fields(s.Text), " ")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out, nil
}

func ToTable(sentences []string, textColumn string) *dataset.Table {
	t := &dataset.Table{
		Header: []string{ColID, textColumn},
		Rows:   make([][]string, len(sentences)),
	}
	for i, s := range sentences {
		t.Rows[i] = []string{strconv.Itoa(i), s}
	}
	return t
}

// ReadFile splits the transcript stored at path.
func ReadFile(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Split(string(b))
}
