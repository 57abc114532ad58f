package orchestrator

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/maastricht-university/emotion-report/clients"
	cfg "github.com/maastricht-university/emotion-report/config"
	"github.com/maastricht-university/emotion-report/dataset"
	"github.com/maastricht-university/emotion-report/emotion"
	"github.com/maastricht-university/emotion-report/report"
	"github.com/maastricht-university/emotion-report/transcript"
)

type Pipeline struct {
	cfg  *cfg.Root
	http *clients.HTTP
	log  *logrus.Logger
}

func NewPipeline(c *cfg.Root, log *logrus.Logger) *Pipeline {
	return &Pipeline{cfg: c, http: clients.NewHTTPWithTimeout(c.LexiconTimeout()), log: log}
}

// Prepare splits the transcript into sentences and writes the input table.
func (p *Pipeline) Prepare(ctx context.Context) (*PrepareResult, error) {
	sentences, err := transcript.ReadFile(p.cfg.Paths.Transcript)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t := transcript.ToTable(sentences, p.cfg.Analysis.TextColumn)
	if err := writeTable(p.cfg.Paths.Input, t); err != nil {
		return nil, err
	}
	p.log.WithFields(logrus.Fields{"sentences": len(sentences), "out": p.cfg.Paths.Input}).Info("transcript prepared")
	return &PrepareResult{Sentences: len(sentences), OutputPath: p.cfg.Paths.Input}, nil
}

// Analyze runs the word-level analyzer over every input row and writes the
// result table.
func (p *Pipeline) Analyze(ctx context.Context) (*AnalyzeResult, error) {
	in, err := dataset.ReadFile(p.cfg.Paths.Input)
	if err != nil {
		return nil, err
	}
	lex, err := p.loadLexicon(ctx, in)
	if err != nil {
		return nil, err
	}

	out, err := dataset.Analyze(ctx, in, emotion.NewAnalyzer(lex), p.cfg.Analysis.TextColumn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.cfg.Paths.Input, err)
	}
	if err := writeTable(p.cfg.Paths.Result, out); err != nil {
		return nil, err
	}
	p.log.WithFields(logrus.Fields{"rows": out.Len(), "out": p.cfg.Paths.Result}).Info("analysis written")
	return &AnalyzeResult{Rows: out.Len(), LexiconSize: lex.Len(), OutputPath: p.cfg.Paths.Result}, nil
}

// Report aggregates the result table into the text report.
func (p *Pipeline) Report(ctx context.Context) (*ReportResult, error) {
	t, err := dataset.ReadFile(p.cfg.Paths.Result)
	if err != nil {
		return nil, err
	}
	sentences, err := dataset.Sentences(t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.cfg.Paths.Result, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := report.Aggregate(sentences, p.cfg.ReportOptions())
	if err := writeText(p.cfg.Paths.Report, report.Render(r)); err != nil {
		return nil, err
	}
	p.log.WithFields(logrus.Fields{
		"sentences": r.Total,
		"dominant":  r.Dominant,
		"out":       p.cfg.Paths.Report,
	}).Info("report written")
	return &ReportResult{Sentences: r.Total, Parts: len(r.Parts), OutputPath: p.cfg.Paths.Report}, nil
}

// Run executes Analyze then Report.
func (p *Pipeline) Run(ctx context.Context) (*AnalyzeResult, *ReportResult, error) {
	ar, err := p.Analyze(ctx)
	if err != nil {
		return nil, nil, err
	}
	rr, err := p.Report(ctx)
	if err != nil {
		return ar, nil, err
	}
	return ar, rr, nil
}
