package bayer

// Range is an inclusive span of differing byte positions.
type Range struct {
	Start int
	End   int
}

// DiffBuffers compares a and b byte by byte over their common length and
// returns the contiguous ranges where they differ. Length mismatches are
// the caller's concern; only the overlapping prefix is compared.
func DiffBuffers(a, b []byte) []Range {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var ranges []Range
	start := -1
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			ranges = append(ranges, Range{Start: start, End: i - 1})
			start = -1
		}
	}
	if start >= 0 {
		ranges = append(ranges, Range{Start: start, End: n - 1})
	}
	return ranges
}
