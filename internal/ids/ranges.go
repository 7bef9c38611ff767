package ids

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is a closed interval [Start, End] of candidate IDs. Inverted
// intervals are not rejected at parse time; they simply match nothing.
type Range struct {
	Start uint64
	End   uint64
}

// Contains reports whether v falls inside the closed interval.
func (r Range) Contains(v uint64) bool {
	return r.Start <= v && v <= r.End
}

// ParseRanges parses a comma-separated list of start-end tokens.
// Whitespace around tokens and bounds is ignored; empty tokens are
// skipped. A token without a dash or with a non-integer bound is a
// format error.
func ParseRanges(text string) ([]Range, error) {
	var ranges []Range

	for _, token := range strings.Split(text, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		lo, hi, ok := strings.Cut(token, "-")
		if !ok {
			return nil, fmt.Errorf("invalid range %q: expected start-end", token)
		}
		start, err := strconv.ParseUint(strings.TrimSpace(lo), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid range %q: bad start: %v", token, err)
		}
		end, err := strconv.ParseUint(strings.TrimSpace(hi), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid range %q: bad end: %v", token, err)
		}

		ranges = append(ranges, Range{Start: start, End: end})
	}

	return ranges, nil
}

// maxEnd returns the largest range endpoint, zero when there are none.
func maxEnd(ranges []Range) uint64 {
	var max uint64
	for _, r := range ranges {
		if r.End > max {
			max = r.End
		}
	}
	return max
}

// digitCount returns the number of base-10 digits in n. Zero counts
// as one digit.
func digitCount(n uint64) int {
	c := 1
	for n >= 10 {
		n /= 10
		c++
	}
	return c
}

func pow10(n int) uint64 {
	p := uint64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
