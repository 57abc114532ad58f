package report

// Sentence is one row of aggregator input.
type Sentence struct {
	Emotions    []string
	Sentiment   string
	Polarity    float64
	HasPolarity bool // false when the row carries no usable avg_polarity value
}

type Options struct {
	Title   string
	Exclude []string
	// Cuts are the boundaries between parts; len(Cuts)+1 parts are produced.
	Cuts []int
}

func DefaultOptions() Options {
	return Options{
		Title:   "EMOTIONAL ANALYSIS OF SPEECH",
		Exclude: []string{"#joy"},
		Cuts:    []int{5, 8, 14},
	}
}

type Count struct {
	Label string
	N     int
}

// Range is a half-open sentence index range [Start, End).
type Range struct {
	Start, End int
}

func (r Range) Len() int { return r.End - r.Start }

type Part struct {
	Name        string
	Range       Range
	Dominant    string
	AvgPolarity float64
	Sentences   int
	Flow        []string
}

type Report struct {
	Title    string
	Excluded []string

	Total         int
	NoEmotion     int
	SingleEmotion int
	MultiEmotion  int

	Frequencies []Count
	Sentiments  []Count
	Flow        []string

	Dominant string
	Ratio    float64
	HasRatio bool

	Parts []Part
}
