package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func fixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"lexicon.yaml": "hope:\n  polarity_value: 0.8\n  moodtags: [\"#joy\", \"#interest\"]\nwar:\n  polarity_value: -0.9\n  moodtags: [\"#fear\"]\n",
		"speech.txt":   "We hope for peace. War is coming. Nothing else.",
		"config.yaml": "paths:\n  input: " + filepath.Join(dir, "data.csv") +
			"\n  result: " + filepath.Join(dir, "result.csv") +
			"\n  report: " + filepath.Join(dir, "analysis.txt") +
			"\nlexicon:\n  path: " + filepath.Join(dir, "lexicon.yaml") + "\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	return dir
}

func TestStages_EndToEnd(t *testing.T) {
	dir := fixtureDir(t)
	conf := filepath.Join(dir, "config.yaml")

	out, err := execute(t, "prepare", "--config", conf, "--in", filepath.Join(dir, "speech.txt"))
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if !strings.HasPrefix(out, "[+] Transcript split into 3 sentences.") {
		t.Fatalf("prepare output=%q", out)
	}

	out, err = execute(t, "analyze", "--config", conf, "--log-level", "error")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if strings.Count(out, "\n") != 1 || !strings.Contains(out, "result.csv") {
		t.Fatalf("analyze output=%q", out)
	}

	out, err = execute(t, "report", "--config", conf, "--out", filepath.Join(dir, "custom.txt"))
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if !strings.Contains(out, "custom.txt") {
		t.Fatalf("report output=%q", out)
	}
	b, err := os.ReadFile(filepath.Join(dir, "custom.txt"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(b), "#interest → #fear → -") {
		t.Fatalf("report:\n%s", b)
	}
}

func TestRun_FailsWithoutArtifacts(t *testing.T) {
	dir := fixtureDir(t)
	conf := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(filepath.Join(dir, "data.csv"), []byte("id,text\n0,hope\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, err := execute(t, "run", "--config", conf)
	if err == nil {
		t.Fatalf("expected error for missing text column")
	}
	if out != "" {
		t.Fatalf("no confirmation expected, got %q", out)
	}
	for _, name := range []string{"result.csv", "analysis.txt"} {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Fatalf("%s should not exist: %v", name, err)
		}
	}
}

func TestRun_BothStages(t *testing.T) {
	dir := fixtureDir(t)
	conf := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(filepath.Join(dir, "data.csv"), []byte("translated\nhope\nwar\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, err := execute(t, "run", "--config", conf)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Count(out, "[+]") != 2 {
		t.Fatalf("run output=%q", out)
	}
}

func TestConfig_PrintsYAML(t *testing.T) {
	dir := fixtureDir(t)

	out, err := execute(t, "config", "--config", filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out, "text_column: translated") || !strings.Contains(out, "#joy") {
		t.Fatalf("config output:\n%s", out)
	}
}

func TestAnalyze_InvalidLogLevel(t *testing.T) {
	dir := fixtureDir(t)
	if _, err := execute(t, "analyze", "--config", filepath.Join(dir, "config.yaml"), "--log-level", "loud"); err == nil {
		t.Fatalf("expected error for invalid log level")
	}
}
