package dataset

import (
	"context"
	"sort"
	"strconv"

	"github.com/maastricht-university/emotion-report/emotion"
)

// Columns written by Analyze.
const (
	ColEmotions    = "emotions"
	ColAvgPolarity = "avg_polarity"
	ColSentiment   = "sentiment"
)

// Analyze runs the word-level analyzer over textColumn of every row and
// returns a copy of t with the emotions, avg_polarity and sentiment columns
// filled in. Original columns and row order are preserved; the derived
// columns are appended, or overwritten in place if t already has them.
func Analyze(ctx context.Context, t *Table, a *emotion.Analyzer, textColumn string) (*Table, error) {
	if err := t.require(textColumn); err != nil {
		return nil, err
	}
	out := t.Clone()
	for i := range out.Rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, _ := out.Value(i, textColumn)
		rec := a.Analyze(text)
		out.Set(i, ColEmotions, EncodeEmotions(rec.Emotions))
		out.Set(i, ColAvgPolarity, strconv.FormatFloat(rec.AvgPolarity, 'f', -1, 64))
		out.Set(i, ColSentiment, string(rec.Sentiment))
	}
	// header-only tables still get the derived columns
	for _, c := range []string{ColEmotions, ColAvgPolarity, ColSentiment} {
		if out.Index(c) < 0 {
			out.Header = append(out.Header, c)
		}
	}
	return out, nil
}

// Vocabulary returns the distinct tokens of textColumn, sorted.
func Vocabulary(t *Table, textColumn string) ([]string, error) {
	if err := t.require(textColumn); err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	for i := range t.Rows {
		text, _ := t.Value(i, textColumn)
		for _, tok := range emotion.Tokenize(text) {
			seen[tok] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Strings(out)
	return out, nil
}
