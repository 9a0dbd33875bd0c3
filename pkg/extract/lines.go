package extract

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// FilterLines prepares a raw line stream for scanning: each line is
// NFC-normalized and trimmed, whitespace-only lines are dropped, and the
// result is reindexed densely so that all lookahead arithmetic operates on a
// 0-based sequence with no gaps. Line order is the only structural
// information the scanners have, so this is the one place the stream is
// rewritten.
func FilterLines(lines []string) []string {
	filtered := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(norm.NFC.String(line))
		if line == "" {
			continue
		}
		filtered = append(filtered, line)
	}
	return filtered
}

// lineAt returns the line at index i, or "" when i is out of range. The
// scanners treat out-of-range exactly like a non-matching line.
func lineAt(lines []string, i int) string {
	if i < 0 || i >= len(lines) {
		return ""
	}
	return lines[i]
}

// squish collapses all inner whitespace runs to single spaces and trims the
// ends.
func squish(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
