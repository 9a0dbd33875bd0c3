package extract

import "strings"

// referenceLabel pairs an order-reference label token with how the value is
// read relative to the matched line.
type referenceLabel struct {
	token string

	// nextLine reads the entire following line; otherwise the value is
	// the remainder of the matched line after the token.
	nextLine bool
}

// referenceLabels is checked per line, in order. The first label found
// anywhere in the stream wins.
var referenceLabels = []referenceLabel{
	{token: "REF.:"},
	{token: "Ziegler Ref", nextLine: true},
	{token: "REFERENCE :", nextLine: true},
}

// extractOrderReference scans all lines for the first occurrence of a known
// reference label and reads the reference per that label's convention. It
// returns "" when no label occurs.
func extractOrderReference(lines []string) string {
	for i, line := range lines {
		for _, label := range referenceLabels {
			if !strings.Contains(line, label.token) {
				continue
			}
			if label.nextLine {
				return strings.TrimSpace(lineAt(lines, i+1))
			}
			_, after, _ := strings.Cut(line, label.token)
			return strings.TrimSpace(after)
		}
	}
	return ""
}
