package extract

import "strings"

const (
	observationsMarker = "OBSERVATIONS"
	customsMarker      = "CUSTOMS INSTRUCTIONS"
)

// extractComment gathers the document's free-text comment. When an
// OBSERVATIONS block exists, the comment is every non-empty line from the
// block start up to (but excluding) a CUSTOMS INSTRUCTIONS line or the end
// of the document, with the literal label stripped and inner whitespace
// collapsed. Documents without such a block fall back to the booking
// convention: every line beginning with a dash, with the dash stripped.
func extractComment(lines []string) string {
	obs := indexContaining(lines, observationsMarker)
	if obs >= 0 {
		end := indexContaining(lines, customsMarker)
		if end < 0 || end < obs {
			end = len(lines)
		}

		var parts []string
		for _, line := range lines[obs:end] {
			cleaned := squish(strings.ReplaceAll(line, "Observations :", ""))
			if cleaned != "" {
				parts = append(parts, cleaned)
			}
		}
		return strings.Join(parts, " ")
	}

	var parts []string
	for _, line := range lines {
		if !strings.HasPrefix(line, "-") {
			continue
		}
		cleaned := squish(strings.TrimLeft(line, "- "))
		if cleaned != "" {
			parts = append(parts, cleaned)
		}
	}
	return strings.Join(parts, " ")
}

// indexContaining returns the index of the first line containing the marker,
// case-insensitively, or -1.
func indexContaining(lines []string, marker string) int {
	for i, line := range lines {
		if strings.Contains(strings.ToUpper(line), marker) {
			return i
		}
	}
	return -1
}
