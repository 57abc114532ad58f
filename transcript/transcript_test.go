package transcript

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	got, err := Split("We stand together.   We face the storm!\n\nWill we fail? Never again.")
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("Split=%q, want 4 sentences", got)
	}
	if got[0] != "We stand together." {
		t.Fatalf("first sentence=%q", got[0])
	}
	if got[3] != "Never again." {
		t.Fatalf("last sentence=%q", got[3])
	}
}

func TestSplit_Empty(t *testing.T) {
	t.Parallel()

	got, err := Split("   \n ")
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Split=%q, want none", got)
	}
}

func TestToTable(t *testing.T) {
	t.Parallel()

	tab := ToTable([]string{"a.", "b."}, "translated")
	if tab.Len() != 2 || tab.Index("translated") != 1 || tab.Index(ColID) != 0 {
		t.Fatalf("table=%+v", tab)
	}
	if v, _ := tab.Value(1, ColID); v != "1" {
		t.Fatalf("id=%q", v)
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "speech.txt")
	if err := os.WriteFile(path, []byte("One sentence. Another one."), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ReadFile=%q", got)
	}
}
