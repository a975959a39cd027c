package graph

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// FormatSpan renders a set of character offsets as a sorted tuple such as
// "(0,1,2)". Duplicate offsets are collapsed.
func FormatSpan(offsets []int) string {
	sorted := slices.Compact(slices.Sorted(slices.Values(offsets)))
	parts := make([]string, len(sorted))
	for i, o := range sorted {
		parts[i] = strconv.Itoa(o)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// ParseSpan is the inverse of FormatSpan.
func ParseSpan(s string) ([]int, error) {
	inner, ok := strings.CutPrefix(strings.TrimSpace(s), "(")
	if ok {
		inner, ok = strings.CutSuffix(inner, ")")
	}
	if !ok {
		return nil, fmt.Errorf("span %q: missing parentheses", s)
	}
	if strings.TrimSpace(inner) == "" {
		return nil, nil
	}
	fields := strings.Split(inner, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		o, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("span %q: %w", s, err)
		}
		out = append(out, o)
	}
	return out, nil
}
