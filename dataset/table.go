package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMissingColumn is returned when a required column is absent.
var ErrMissingColumn = errors.New("dataset: missing column")

// Table is a flat delimited table with a header row.
type Table struct {
	Header []string
	Rows   [][]string
}

func (t *Table) Len() int { return len(t.Rows) }

// Index returns the position of column name, or -1.
func (t *Table) Index(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

func (t *Table) Value(row int, col string) (string, bool) {
	i := t.Index(col)
	if i < 0 || row < 0 || row >= len(t.Rows) || i >= len(t.Rows[row]) {
		return "", false
	}
	return t.Rows[row][i], true
}

// Set writes value into column col of row, appending the column when the
// table does not have it yet.
func (t *Table) Set(row int, col, value string) {
	i := t.Index(col)
	if i < 0 {
		t.Header = append(t.Header, col)
		i = len(t.Header) - 1
	}
	for len(t.Rows[row]) <= i {
		t.Rows[row] = append(t.Rows[row], "")
	}
	t.Rows[row][i] = value
}

// Clone returns a deep copy of t.
func (t *Table) Clone() *Table {
	out := &Table{
		Header: append([]string(nil), t.Header...),
		Rows:   make([][]string, len(t.Rows)),
	}
	for i, r := range t.Rows {
		out.Rows[i] = append(make([]string, 0, len(r)+3), r...)
	}
	return out
}

func (t *Table) require(cols ...string) error {
	for _, c := range cols {
		if t.Index(c) < 0 {
			return fmt.Errorf("%w: %q", ErrMissingColumn, c)
		}
	}
	return nil
}

func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("dataset: empty input, header row required")
	}
	if err != nil {
		return nil, fmt.Errorf("dataset header: %w", err)
	}
	if len(header) > 0 {
		header[0] = trimBOM(header[0])
	}

	t := &Table{Header: header}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset row %d: %w", len(t.Rows)+1, err)
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}

func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

func trimBOM(s string) string { return strings.TrimPrefix(s, "\ufeff") }
