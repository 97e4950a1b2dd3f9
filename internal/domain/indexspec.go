package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParseIndexSpec parses a comma-separated index spec like "0,2-4,7"
// into a deduplicated, ascending slice of indices. A token is either a
// single non-negative integer or an inclusive range "a-b" with a <= b.
// Whitespace around tokens is tolerated and empty tokens from stray
// commas are skipped. Any other token fails the whole parse with an
// error naming the token.
func ParseIndexSpec(spec string) ([]int, error) {
	seen := make(map[int]struct{})

	for _, part := range strings.Split(spec, ",") {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}

		start, end, isRange := strings.Cut(token, "-")
		if !isRange {
			idx, err := parseIndex(token)
			if err != nil {
				return nil, err
			}
			seen[idx] = struct{}{}
			continue
		}

		lo, err := parseIndex(strings.TrimSpace(start))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", token, ErrInvalidIndexSpec)
		}
		hi, err := parseIndex(strings.TrimSpace(end))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", token, ErrInvalidIndexSpec)
		}
		if lo > hi {
			return nil, fmt.Errorf("%q: range start exceeds end: %w", token, ErrInvalidIndexSpec)
		}
		for i := lo; i <= hi; i++ {
			seen[i] = struct{}{}
		}
	}

	indices := make([]int, 0, len(seen))
	for idx := range seen {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	return indices, nil
}

func parseIndex(token string) (int, error) {
	idx, err := strconv.Atoi(token)
	if err != nil || idx < 0 {
		return 0, fmt.Errorf("%q: %w", token, ErrInvalidIndexSpec)
	}
	return idx, nil
}

// ValidateIndexes checks every index against the list length. The
// whole set is validated before any mutation so a bad index can never
// leave a partial change behind.
func ValidateIndexes(indices []int, length int) error {
	for _, idx := range indices {
		if idx >= length {
			return fmt.Errorf("no task with index %d: %w", idx, ErrIndexOutOfRange)
		}
	}
	return nil
}
