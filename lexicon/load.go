package lexicon

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a lexicon snapshot from a YAML or JSON file mapping
// word -> {polarity_value, moodtags}.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return Decode(f, "yaml")
	case ".json":
		return Decode(f, "json")
	default:
		return nil, fmt.Errorf("lexicon %s: unsupported extension %q", path, ext)
	}
}

// Decode reads a lexicon in the given format ("yaml" or "json").
func Decode(r io.Reader, format string) (*Table, error) {
	raw := map[string]Entry{}
	switch format {
	case "yaml":
		if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
			return nil, fmt.Errorf("lexicon decode: %w", err)
		}
	case "json":
		if err := json.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
			return nil, fmt.Errorf("lexicon decode: %w", err)
		}
	default:
		return nil, fmt.Errorf("lexicon: unknown format %q", format)
	}

	// Keys that collide after lower-casing resolve to the one already in
	// lower case, otherwise to the first in byte order.
	lower := cases.Lower(language.Und)
	byWord := make(map[string]Entry, len(raw))
	exact := make(map[string]bool, len(raw))
	for _, w := range sortedKeys(raw) {
		e := raw[w]
		e.Word = lower.String(strings.TrimSpace(w))
		if e.Word == "" || exact[e.Word] {
			continue
		}
		isExact := e.Word == strings.TrimSpace(w)
		if _, seen := byWord[e.Word]; seen && !isExact {
			continue
		}
		byWord[e.Word] = e
		exact[e.Word] = isExact
	}

	entries := make([]Entry, 0, len(byWord))
	for _, w := range sortedKeys(byWord) {
		entries = append(entries, byWord[w])
	}
	return NewTable(entries...), nil
}

// sortedKeys returns the keys of m in byte order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
