package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/maastricht-university/emotion-report/report"
)

const EnvPrefix = "EMOREPORT"

type Pipeline struct {
	Name    string `mapstructure:"name" yaml:"name"`
	Version string `mapstructure:"version" yaml:"version"`
	LogLvl  string `mapstructure:"log_level" yaml:"log_level"`
}
type Paths struct {
	Transcript string `mapstructure:"transcript" yaml:"transcript"`
	Input      string `mapstructure:"input" yaml:"input"`
	Result     string `mapstructure:"result" yaml:"result"`
	Report     string `mapstructure:"report" yaml:"report"`
}

// Lexicon selects the lexicon source: a local file (Path) or a lookup
// service (URL). Path wins when both are set.
type Lexicon struct {
	Path        string  `mapstructure:"path" yaml:"path"`
	URL         string  `mapstructure:"url" yaml:"url"`
	Timeout     int     `mapstructure:"timeout" yaml:"timeout"` // seconds
	BatchSize   int     `mapstructure:"batch_size" yaml:"batch_size"`
	Concurrency int     `mapstructure:"concurrency" yaml:"concurrency"`
	RPS         float64 `mapstructure:"rps" yaml:"rps"`
}
type Analysis struct {
	TextColumn string `mapstructure:"text_column" yaml:"text_column"`
}
type Report struct {
	Title   string   `mapstructure:"title" yaml:"title"`
	Exclude []string `mapstructure:"exclude" yaml:"exclude"`
	Cuts    []int    `mapstructure:"cuts" yaml:"cuts"`
}
type Root struct {
	Pipeline Pipeline `mapstructure:"pipeline" yaml:"pipeline"`
	Paths    Paths    `mapstructure:"paths" yaml:"paths"`
	Lexicon  Lexicon  `mapstructure:"lexicon" yaml:"lexicon"`
	Analysis Analysis `mapstructure:"analysis" yaml:"analysis"`
	Report   Report   `mapstructure:"report" yaml:"report"`
}

func setDefaults(v *viper.Viper) {
	ro := report.DefaultOptions()
	v.SetDefault("pipeline.name", "emoreport")
	v.SetDefault("pipeline.version", "0.1.0")
	v.SetDefault("pipeline.log_level", "info")
	v.SetDefault("paths.transcript", filepath.FromSlash("data/transcript.txt"))
	v.SetDefault("paths.input", filepath.FromSlash("data/data.csv"))
	v.SetDefault("paths.result", filepath.FromSlash("data/result.csv"))
	v.SetDefault("paths.report", filepath.FromSlash("data/analysis.txt"))
	v.SetDefault("lexicon.path", filepath.FromSlash("data/lexicon.yaml"))
	v.SetDefault("lexicon.url", "")
	v.SetDefault("lexicon.timeout", 60)
	v.SetDefault("lexicon.batch_size", 200)
	v.SetDefault("lexicon.concurrency", 4)
	v.SetDefault("lexicon.rps", 5.0)
	v.SetDefault("analysis.text_column", "translated")
	v.SetDefault("report.title", ro.Title)
	v.SetDefault("report.exclude", ro.Exclude)
	v.SetDefault("report.cuts", ro.Cuts)
}

// Candidates lists the config files tried when no explicit path is given.
func Candidates() []string {
	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	return []string{
		filepath.Join("config", env, "config.yaml"),
		filepath.Join("src", "shared", "config.yaml"),
	}
}

// Load reads the config at path, or the first existing candidate when path
// is empty. With no file at all the defaults apply. EMOREPORT_* environment
// variables override file values (EMOREPORT_PATHS_INPUT -> paths.input).
func Load(path string) (*Root, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		for _, p := range Candidates() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config decode: %w", err)
	}
	return &cfg, nil
}

func (c *Root) Validate() error {
	var errs []error
	for _, p := range []struct{ name, val string }{
		{"paths.input", c.Paths.Input},
		{"paths.result", c.Paths.Result},
		{"paths.report", c.Paths.Report},
	} {
		if strings.TrimSpace(p.val) == "" {
			errs = append(errs, fmt.Errorf("missing %s", p.name))
		}
	}
	if c.Lexicon.Path == "" && c.Lexicon.URL == "" {
		errs = append(errs, errors.New("missing lexicon.path or lexicon.url"))
	}
	if c.Analysis.TextColumn == "" {
		errs = append(errs, errors.New("missing analysis.text_column"))
	}
	if err := report.ValidateCuts(c.Report.Cuts); err != nil {
		errs = append(errs, fmt.Errorf("report.cuts: %w", err))
	}
	return errors.Join(errs...)
}

func (c *Root) ReportOptions() report.Options {
	return report.Options{
		Title:   c.Report.Title,
		Exclude: c.Report.Exclude,
		Cuts:    c.Report.Cuts,
	}
}

func (c *Root) LexiconTimeout() time.Duration { return DurSeconds(c.Lexicon.Timeout) }

// WriteYAML renders the effective configuration.
func (c *Root) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

func DurSeconds(n int) time.Duration { return time.Duration(n) * time.Second }
