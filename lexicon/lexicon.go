package lexicon

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound is returned by Lookup for out-of-vocabulary words.
var ErrNotFound = errors.New("lexicon: word not found")

// Entry is the affective information the lexicon holds for one word.
type Entry struct {
	Word     string   `json:"-" yaml:"-"`
	Polarity float64  `json:"polarity_value" yaml:"polarity_value"`
	MoodTags []string `json:"moodtags" yaml:"moodtags"`
}

// Lexicon is a read-only word lookup.
type Lexicon interface {
	Lookup(word string) (Entry, error)
}

// Table is an in-memory lexicon snapshot.
type Table struct {
	words map[string]Entry
}

var _ Lexicon = (*Table)(nil)

func NewTable(entries ...Entry) *Table {
	t := &Table{words: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		t.words[e.Word] = e
	}
	return t
}

func (t *Table) Lookup(word string) (Entry, error) {
	if t == nil {
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, word)
	}
	e, ok := t.words[word]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, word)
	}
	return e, nil
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.words)
}

// Words returns the vocabulary in sorted order.
func (t *Table) Words() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.words))
	for w := range t.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
