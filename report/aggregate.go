package report

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Placeholder stands in for a sentence or part without any emotion.
const Placeholder = "-"

// Filter returns emotions without the excluded tags.
func Filter(emotions, exclude []string) []string {
	out := make([]string, 0, len(emotions))
	for _, e := range emotions {
		if contains(exclude, e) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// MostCommon counts items and orders them by descending count. Ties keep
// first-encountered order.
func MostCommon(items []string) []Count {
	var out []Count
	idx := map[string]int{}
	for _, it := range items {
		if i, ok := idx[it]; ok {
			out[i].N++
			continue
		}
		idx[it] = len(out)
		out = append(out, Count{Label: it, N: 1})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].N > out[j].N })
	return out
}

// Aggregate computes global and per-part statistics over sentences.
func Aggregate(sentences []Sentence, opts Options) Report {
	emotions := make([][]string, len(sentences))
	for i, s := range sentences {
		emotions[i] = Filter(s.Emotions, opts.Exclude)
	}

	r := Report{
		Title:    opts.Title,
		Excluded: opts.Exclude,
		Total:    len(sentences),
	}
	for _, emos := range emotions {
		switch n := len(emos); {
		case n == 0:
			r.NoEmotion++
		case n == 1:
			r.SingleEmotion++
		default:
			r.MultiEmotion++
		}
	}

	r.Frequencies = MostCommon(flatten(emotions))
	if len(r.Frequencies) > 0 {
		r.Dominant = r.Frequencies[0].Label
	}

	r.Sentiments = sentimentCounts(sentences)
	pos, neg := countOf(r.Sentiments, "positive"), countOf(r.Sentiments, "negative")
	if pos > 0 {
		r.HasRatio = true
		r.Ratio = float64(pos) / float64(max(1, neg))
	}

	r.Flow = flow(emotions)

	for i, rng := range Partition(len(sentences), opts.Cuts) {
		r.Parts = append(r.Parts, part(partName(i), rng, sentences, emotions))
	}
	return r
}

func part(name string, rng Range, sentences []Sentence, emotions [][]string) Part {
	p := Part{
		Name:      name,
		Range:     rng,
		Dominant:  Placeholder,
		Sentences: rng.Len(),
	}
	slice := emotions[rng.Start:rng.End]
	if counts := MostCommon(flatten(slice)); len(counts) > 0 {
		p.Dominant = counts[0].Label
	}

	var pol []float64
	for _, s := range sentences[rng.Start:rng.End] {
		if s.HasPolarity {
			pol = append(pol, s.Polarity)
		}
	}
	if len(pol) > 0 {
		p.AvgPolarity = stat.Mean(pol, nil)
	}

	p.Flow = flow(slice)
	return p
}

// sentimentCounts keeps labels in first-encountered order; empty labels are skipped.
func sentimentCounts(sentences []Sentence) []Count {
	var out []Count
	idx := map[string]int{}
	for _, s := range sentences {
		if s.Sentiment == "" {
			continue
		}
		if i, ok := idx[s.Sentiment]; ok {
			out[i].N++
			continue
		}
		idx[s.Sentiment] = len(out)
		out = append(out, Count{Label: s.Sentiment, N: 1})
	}
	return out
}

func flow(emotions [][]string) []string {
	out := make([]string, len(emotions))
	for i, emos := range emotions {
		out[i] = Placeholder
		if len(emos) > 0 {
			out[i] = emos[0]
		}
	}
	return out
}

func flatten(emotions [][]string) []string {
	var out []string
	for _, emos := range emotions {
		out = append(out, emos...)
	}
	return out
}

func countOf(counts []Count, label string) int {
	for _, c := range counts {
		if c.Label == label {
			return c.N
		}
	}
	return 0
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
