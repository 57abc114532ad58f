package clients

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/maastricht-university/emotion-report/lexicon"
)

type SnapshotOptions struct {
	BatchSize   int     // words per request
	Concurrency int     // requests in flight
	RPS         float64 // request rate; <= 0 disables pacing
}

func (o SnapshotOptions) withDefaults() SnapshotOptions {
	if o.BatchSize <= 0 {
		o.BatchSize = 200
	}
	if o.Concurrency <= 0 {
		o.Concurrency = 4
	}
	return o
}

// Snapshot asks the lexicon service at url for every word and freezes the
// answers into a lexicon.Table. Any failed batch fails the whole snapshot.
func (h *HTTP) Snapshot(ctx context.Context, url string, words []string, opts SnapshotOptions) (*lexicon.Table, error) {
	opts = opts.withDefaults()
	words = uniqueSorted(words)

	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RPS), 1)
	}

	var (
		mu      sync.Mutex
		entries []lexicon.Entry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for start := 0; start < len(words); start += opts.BatchSize {
		batch := words[start:min(start+opts.BatchSize, len(words))]
		g.Go(func() error {
			if err := limiter.Wait(gctx); err != nil {
				return err
			}
			resp, err := h.Lexicon(gctx, url, batch)
			if err != nil {
				return fmt.Errorf("lexicon batch %q..: %w", batch[0], err)
			}
			mu.Lock()
			defer mu.Unlock()
			for w, e := range resp.Entries {
				entries = append(entries, lexicon.Entry{Word: w, Polarity: e.PolarityValue, MoodTags: e.MoodTags})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lexicon.NewTable(entries...), nil
}

func uniqueSorted(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok || w == "" {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
