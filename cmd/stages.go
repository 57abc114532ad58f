package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	cfg "github.com/maastricht-university/emotion-report/config"
	"github.com/maastricht-university/emotion-report/orchestrator"
)

func lexiconOverrides(path, url *string) []override {
	return []override{
		// a URL given on the command line replaces a configured file
		{"lexicon-url", url, func(r *cfg.Root, v string) { r.Lexicon.URL, r.Lexicon.Path = v, "" }},
		{"lexicon", path, func(r *cfg.Root, v string) { r.Lexicon.Path = v }},
	}
}

func newPrepareCmd(rf *rootFlags) *cobra.Command {
	var in, out string
	c := &cobra.Command{
		Use:   "prepare",
		Short: "Split a plain-text transcript into the sentence table",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			conf, log, err := setup(c, rf,
				override{"in", &in, func(r *cfg.Root, v string) { r.Paths.Transcript = v }},
				override{"out", &out, func(r *cfg.Root, v string) { r.Paths.Input = v }},
			)
			if err != nil {
				return err
			}
			res, err := orchestrator.NewPipeline(conf, log).Prepare(c.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "[+] Transcript split into %d sentences. Saved to %s\n", res.Sentences, res.OutputPath)
			return nil
		},
	}
	c.Flags().StringVar(&in, "in", "", "transcript text file (paths.transcript)")
	c.Flags().StringVar(&out, "out", "", "sentence table to write (paths.input)")
	return c
}

func newAnalyzeCmd(rf *rootFlags) *cobra.Command {
	var in, out, lex, lexURL string
	c := &cobra.Command{
		Use:   "analyze",
		Short: "Annotate every sentence with emotions, average polarity and sentiment",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			ovs := append([]override{
				{"in", &in, func(r *cfg.Root, v string) { r.Paths.Input = v }},
				{"out", &out, func(r *cfg.Root, v string) { r.Paths.Result = v }},
			}, lexiconOverrides(&lex, &lexURL)...)
			conf, log, err := setup(c, rf, ovs...)
			if err != nil {
				return err
			}
			res, err := orchestrator.NewPipeline(conf, log).Analyze(c.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "[+] Analysis completed. Results saved to %s\n", res.OutputPath)
			return nil
		},
	}
	c.Flags().StringVar(&in, "in", "", "sentence table to analyze (paths.input)")
	c.Flags().StringVar(&out, "out", "", "result table to write (paths.result)")
	c.Flags().StringVar(&lex, "lexicon", "", "lexicon file, .yaml or .json (lexicon.path)")
	c.Flags().StringVar(&lexURL, "lexicon-url", "", "lexicon lookup service (lexicon.url)")
	return c
}

func newReportCmd(rf *rootFlags) *cobra.Command {
	var in, out string
	c := &cobra.Command{
		Use:   "report",
		Short: "Aggregate the result table into the text report",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			conf, log, err := setup(c, rf,
				override{"in", &in, func(r *cfg.Root, v string) { r.Paths.Result = v }},
				override{"out", &out, func(r *cfg.Root, v string) { r.Paths.Report = v }},
			)
			if err != nil {
				return err
			}
			res, err := orchestrator.NewPipeline(conf, log).Report(c.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "[+] Analysis with per-part insight saved to %s\n", res.OutputPath)
			return nil
		},
	}
	c.Flags().StringVar(&in, "in", "", "result table to read (paths.result)")
	c.Flags().StringVar(&out, "out", "", "report file to write (paths.report)")
	return c
}

func newRunCmd(rf *rootFlags) *cobra.Command {
	var lex, lexURL string
	c := &cobra.Command{
		Use:   "run",
		Short: "Run analyze then report",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			conf, log, err := setup(c, rf, lexiconOverrides(&lex, &lexURL)...)
			if err != nil {
				return err
			}
			p := orchestrator.NewPipeline(conf, log)
			ar, err := p.Analyze(c.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "[+] Analysis completed. Results saved to %s\n", ar.OutputPath)
			rr, err := p.Report(c.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "[+] Analysis with per-part insight saved to %s\n", rr.OutputPath)
			return nil
		},
	}
	c.Flags().StringVar(&lex, "lexicon", "", "lexicon file, .yaml or .json (lexicon.path)")
	c.Flags().StringVar(&lexURL, "lexicon-url", "", "lexicon lookup service (lexicon.url)")
	return c
}

func newConfigCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			conf, err := cfg.Load(rf.configPath)
			if err != nil {
				return err
			}
			return conf.WriteYAML(c.OutOrStdout())
		},
	}
}
