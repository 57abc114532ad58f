package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/maastricht-university/emotion-report/report"
)

// Sentences converts an analyzed table into aggregator input. The emotions
// column is required; sentiment and avg_polarity are optional and a cell
// that does not hold a number leaves that row without a polarity.
func Sentences(t *Table) ([]report.Sentence, error) {
	if err := t.require(ColEmotions); err != nil {
		return nil, err
	}
	out := make([]report.Sentence, len(t.Rows))
	for i := range t.Rows {
		raw, _ := t.Value(i, ColEmotions)
		s := report.Sentence{Emotions: ParseEmotions(raw)}
		if v, ok := t.Value(i, ColSentiment); ok {
			s.Sentiment = strings.TrimSpace(v)
		}
		if v, ok := t.Value(i, ColAvgPolarity); ok {
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && !math.IsNaN(f) {
				s.Polarity, s.HasPolarity = f, true
			}
		}
		out[i] = s
	}
	return out, nil
}
