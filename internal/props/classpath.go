package props

import "strings"

// AssembleClasspath builds the on-disk classpath value from raw entries:
// blank entries are dropped, duplicates are removed by first-seen order
// (comparing entries with any wrapping quote pair stripped), every
// surviving entry is wrapped in double quotes exactly once, and the
// result is joined with sep. Re-assembling a split result is a no-op, so
// the value never accumulates quoting across regenerations.
func AssembleClasspath(entries []string, sep rune) string {
	seen := make(map[string]bool, len(entries))
	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		stripped := unquote(entry)
		if seen[stripped] {
			continue
		}
		seen[stripped] = true
		parts = append(parts, `"`+stripped+`"`)
	}
	return strings.Join(parts, string(sep))
}

// SplitClasspath splits an on-disk classpath value back into raw entries,
// stripping the wrapping quotes AssembleClasspath added. Blank segments
// are dropped.
func SplitClasspath(value string, sep rune) []string {
	var entries []string
	for _, part := range strings.Split(value, string(sep)) {
		if strings.TrimSpace(part) == "" {
			continue
		}
		entries = append(entries, unquote(part))
	}
	return entries
}

// unquote strips exactly one wrapping pair of double quotes, if present.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
