package report

import "fmt"

// Partition splits n sentence indices into len(cuts)+1 contiguous ranges.
// Every range is clamped to [0, n] and the last one always ends at n, so
// the ranges cover 0..n with no gaps or overlaps even when n is smaller
// than the cut points.
func Partition(n int, cuts []int) []Range {
	if n < 0 {
		n = 0
	}
	out := make([]Range, 0, len(cuts)+1)
	start := 0
	for _, c := range cuts {
		end := clamp(c, start, n)
		out = append(out, Range{Start: start, End: end})
		start = end
	}
	return append(out, Range{Start: start, End: n})
}

// ValidateCuts reports whether cuts are non-negative and non-decreasing.
func ValidateCuts(cuts []int) error {
	prev := 0
	for i, c := range cuts {
		if c < prev {
			return fmt.Errorf("cut %d (%d) is before %d", i, c, prev)
		}
		prev = c
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func partName(i int) string { return fmt.Sprintf("Part %d", i+1) }
