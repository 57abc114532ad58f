package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cfg "github.com/maastricht-university/emotion-report/config"
	"github.com/maastricht-university/emotion-report/logging"
)

type rootFlags struct {
	configPath string
	logLevel   string
}

// NewRootCmd builds the emoreport command tree.
func NewRootCmd() *cobra.Command {
	rf := &rootFlags{}
	root := &cobra.Command{
		Use:           "emoreport",
		Short:         "Per-sentence emotion analysis and report for speech transcripts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&rf.configPath, "config", "", "config file (default: config/$CONFIG_ENV/config.yaml)")
	root.PersistentFlags().StringVar(&rf.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(
		newPrepareCmd(rf),
		newAnalyzeCmd(rf),
		newReportCmd(rf),
		newRunCmd(rf),
		newConfigCmd(rf),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

// override maps a stage flag onto a config field.
type override struct {
	flag  string
	value *string
	apply func(*cfg.Root, string)
}

// setup loads the configuration, applies the flags the user set, validates
// the result and builds the logger.
func setup(c *cobra.Command, rf *rootFlags, overrides ...override) (*cfg.Root, *logrus.Logger, error) {
	conf, err := cfg.Load(rf.configPath)
	if err != nil {
		return nil, nil, err
	}
	for _, o := range overrides {
		if c.Flags().Changed(o.flag) {
			o.apply(conf, *o.value)
		}
	}
	if rf.logLevel != "" {
		conf.Pipeline.LogLvl = rf.logLevel
	}
	if err := conf.Validate(); err != nil {
		return nil, nil, err
	}
	log, err := logging.New(conf.Pipeline.LogLvl, c.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}
	return conf, log, nil
}
