package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew_Level(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l, err := New("warn", &buf)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.GetLevel() != logrus.WarnLevel {
		t.Fatalf("level=%v", l.GetLevel())
	}
	l.Info("hidden")
	l.WithField("rows", 3).Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "rows=3") {
		t.Fatalf("output=%q", out)
	}
}

func TestNew_DefaultAndInvalid(t *testing.T) {
	t.Parallel()

	l, err := New("", &bytes.Buffer{})
	if err != nil || l.GetLevel() != logrus.InfoLevel {
		t.Fatalf("l=%v err=%v", l, err)
	}
	if _, err := New("loud", &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
