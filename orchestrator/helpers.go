package orchestrator

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/maastricht-university/emotion-report/clients"
	"github.com/maastricht-university/emotion-report/dataset"
	"github.com/maastricht-university/emotion-report/lexicon"
)

// loadLexicon returns the stage's read-only lexicon snapshot: the configured
// file, or the lookup service queried for the vocabulary of t.
func (p *Pipeline) loadLexicon(ctx context.Context, t *dataset.Table) (*lexicon.Table, error) {
	lc := p.cfg.Lexicon
	if lc.Path != "" {
		lex, err := lexicon.LoadFile(lc.Path)
		if err != nil {
			return nil, err
		}
		p.log.WithFields(logrus.Fields{"path": lc.Path, "words": lex.Len()}).Info("lexicon loaded")
		return lex, nil
	}
	if lc.URL == "" {
		return nil, fmt.Errorf("no lexicon source configured")
	}

	words, err := dataset.Vocabulary(t, p.cfg.Analysis.TextColumn)
	if err != nil {
		return nil, err
	}
	lex, err := p.http.Snapshot(ctx, lc.URL, words, clients.SnapshotOptions{
		BatchSize:   lc.BatchSize,
		Concurrency: lc.Concurrency,
		RPS:         lc.RPS,
	})
	if err != nil {
		return nil, fmt.Errorf("lexicon snapshot: %w", err)
	}
	p.log.WithFields(logrus.Fields{
		"url":        lc.URL,
		"vocabulary": len(words),
		"words":      lex.Len(),
	}).Info("lexicon snapshot fetched")
	return lex, nil
}
