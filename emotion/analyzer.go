package emotion

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gonum.org/v1/gonum/stat"

	"github.com/maastricht-university/emotion-report/lexicon"
)

type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
)

const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05

	// MaxEmotions caps the tags kept per sentence, in first-encountered order.
	MaxEmotions = 3
)

// Record is the per-sentence analysis result.
type Record struct {
	Text        string
	Emotions    []string
	AvgPolarity float64
	Sentiment   Sentiment
}

type Analyzer struct {
	lex lexicon.Lexicon
}

func NewAnalyzer(lex lexicon.Lexicon) *Analyzer {
	return &Analyzer{lex: lex}
}

// Tokenize lower-cases text and splits it on whitespace.
func Tokenize(text string) []string {
	return strings.Fields(cases.Lower(language.Und).String(text))
}

// Analyze looks every token up in the lexicon and folds the hits into a Record.
// Tokens the lexicon cannot resolve are skipped.
func (a *Analyzer) Analyze(text string) Record {
	var (
		tags       []string
		polarities []float64
	)
	for _, tok := range Tokenize(text) {
		e, err := a.lex.Lookup(tok)
		if err != nil {
			continue
		}
		polarities = append(polarities, e.Polarity)
		tags = append(tags, e.MoodTags...)
	}

	avg := 0.0
	if len(polarities) > 0 {
		avg = stat.Mean(polarities, nil)
	}

	return Record{
		Text:        text,
		Emotions:    firstUnique(tags, MaxEmotions),
		AvgPolarity: avg,
		Sentiment:   Classify(avg),
	}
}

// Classify buckets an averaged polarity. Both thresholds are exclusive.
func Classify(avg float64) Sentiment {
	switch {
	case avg > PositiveThreshold:
		return Positive
	case avg < NegativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

func firstUnique(in []string, limit int) []string {
	out := make([]string, 0, limit)
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if len(out) == limit {
			break
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
