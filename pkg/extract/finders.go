package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Lookahead windows, in lines beyond the anchor. All scans are bounded, so
// every parse terminates without timeouts or cancellation.
const (
	companyLookahead    = 5
	addressLookahead    = 12
	timeLineLookahead   = 6
	dateLineLookahead   = 6
	cargoBlockLookahead = 40
	refLookahead        = 8
	quantityLookaround  = 6
	numberLookaround    = 3
)

var (
	// zieglerLabelPattern matches lines the Ziegler address scans skip:
	// REF labels and numbered markers like "1:" or "12-".
	zieglerLabelPattern = regexp.MustCompile(`^(REF|[0-9]{1,2}[:\-])`)

	// zieglerPostalPattern matches a Ziegler postal/city line: a numeric
	// or alphanumeric postal code followed by the city text.
	zieglerPostalPattern = regexp.MustCompile(`(\d{4,5}|[A-Z0-9]{2,}\s?\d+[A-Z]*)\s+.+`)

	// palletPattern matches a pallet count line like "3 PALLETS".
	palletPattern = regexp.MustCompile(`(?i)(\d+)\s*PALLETS?`)

	// transLabelPattern matches label lines the Transalliance address
	// scans skip.
	transLabelPattern = regexp.MustCompile(`(?i)^(REFERENCE|REF|ON|Contact|Payment terms)`)

	// bareDatePattern matches a line holding only a D/M/Y date token.
	bareDatePattern = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}$`)

	// transStreetStopPattern matches a line the street scan treats as the
	// start of the postal/city field, terminating the street collection.
	transStreetStopPattern = regexp.MustCompile(`^(?:[A-Z]{2}-\S+|-\d{4,5}\s+.+|\d{4,5}\s+.+)`)

	// transPostalPattern matches a Transalliance postal/city line, with
	// an optional leading dash from list formatting.
	transPostalPattern = regexp.MustCompile(`(?i)^-?[A-Z]{2}-\S+|^-?\d{4,5}\s+.+`)

	// bareTimePattern matches a line holding only a time token: military
	// HHMM, H or HH with an optional am/pm suffix, H:MM, or a range of
	// the above joined by a dash.
	bareTimePattern = regexp.MustCompile(`(?i)^(\d{4}|\d{1,2}(:\d{2})?\s?(am|pm)?)(\s*-\s*\d{1,2}(:\d{2})?\s?(am|pm)?)?$`)

	// timeLinePattern matches any line containing a clock time, with an
	// optional range.
	timeLinePattern = regexp.MustCompile(`\d{1,2}[:.]?\d{2}(\s*-\s*\d{1,2}[:.]?\d{2})?`)

	// dateLinePattern matches any line containing a DD/MM/YYYY date.
	dateLinePattern = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)

	// clockPattern extracts H:MM tokens from a time line.
	clockPattern = regexp.MustCompile(`\d{1,2}:\d{2}`)

	// refTokenPattern extracts the alphanumeric token following a REF
	// label.
	refTokenPattern = regexp.MustCompile(`(?i)REF[\s:]*([A-Z0-9\-]+)`)

	// cargoBlockPattern matches a packaging description line.
	cargoBlockPattern = regexp.MustCompile(`(?i)(PACKAGING|PAPER ROLLS)`)

	// weightPattern matches a weight-shaped numeric token: an integer
	// with comma thousands grouping.
	weightPattern = regexp.MustCompile(`^\d{1,3}(?:,\d{3})*$`)

	// volumePattern matches a volume-shaped numeric token: at least four
	// digits with an optional decimal part.
	volumePattern = regexp.MustCompile(`^\d{4,}(?:[.,]\d+)?$`)

	// numericPattern matches a bare numeric-looking line.
	numericPattern = regexp.MustCompile(`^[\d.,]+$`)

	// paymentMarker flags a payment-method line the address scans skip.
	paymentMarker = "VIREMENT"
)

// zieglerFindCompany returns the first line after the anchor that is not a
// REF or numbered label, within a short window.
func zieglerFindCompany(lines []string, anchor int) string {
	return zieglerFirstUnlabeled(lines, anchor, companyLookahead)
}

// zieglerFindStreet runs the same scan as the company finder over a longer
// window. The Ziegler layouts keep company and street adjacent, so the
// postal-line fallback in the section config usually supplies the street.
func zieglerFindStreet(lines []string, anchor int) string {
	return zieglerFirstUnlabeled(lines, anchor, addressLookahead)
}

func zieglerFirstUnlabeled(lines []string, anchor, lookahead int) string {
	for i := 1; i <= lookahead; i++ {
		line := lineAt(lines, anchor+i)
		if line != "" && !zieglerLabelPattern.MatchString(line) {
			return line
		}
	}
	return ""
}

// zieglerFindPostalCity returns the first line after the anchor that looks
// like a postal code followed by a city.
func zieglerFindPostalCity(lines []string, anchor int) string {
	for i := 1; i <= addressLookahead; i++ {
		line := lineAt(lines, anchor+i)
		if line != "" && zieglerPostalPattern.MatchString(line) {
			return line
		}
	}
	return ""
}

// zieglerFindPalletIndex returns the index of the first pallet count line
// after the anchor, or -1.
func zieglerFindPalletIndex(lines []string, anchor int) int {
	for i := 1; i <= addressLookahead; i++ {
		line := lineAt(lines, anchor+i)
		if line != "" && palletPattern.MatchString(line) {
			return anchor + i
		}
	}
	return -1
}

// transSkip reports whether a line is noise for the Transalliance address
// scans: blank, a lone dash, a known label, a bare date, or a payment
// marker.
func transSkip(line string) bool {
	if line == "" || line == "-" {
		return true
	}
	if transLabelPattern.MatchString(line) {
		return true
	}
	if bareDatePattern.MatchString(line) {
		return true
	}
	return strings.Contains(strings.ToUpper(line), paymentMarker)
}

// transFindCompany returns the first non-noise line after the anchor.
func transFindCompany(lines []string, anchor int) string {
	for i := 1; i <= addressLookahead; i++ {
		line := lineAt(lines, anchor+i)
		if transSkip(line) {
			continue
		}
		return line
	}
	return ""
}

// transFindStreet collects the street lines between the company line and the
// postal/city line. The first non-noise line is assumed to be the company
// and skipped; the scan terminates as soon as a line structurally belongs to
// the postal/city field.
func transFindStreet(lines []string, anchor int) string {
	var parts []string
	companySeen := false

	for i := 1; i <= addressLookahead; i++ {
		if anchor+i >= len(lines) {
			break
		}
		line := lines[anchor+i]
		if transSkip(line) {
			continue
		}
		if transStreetStopPattern.MatchString(line) {
			break
		}
		if !companySeen {
			companySeen = true
			continue
		}
		parts = append(parts, line)
	}

	return strings.Join(parts, ", ")
}

// transFindPostalCity returns the first postal/city-shaped line after the
// anchor, with any leading dash stripped.
func transFindPostalCity(lines []string, anchor int) string {
	for i := 1; i <= addressLookahead; i++ {
		line := lineAt(lines, anchor+i)
		if line == "" || transSkip(line) {
			continue
		}
		if transPostalPattern.MatchString(line) {
			return strings.TrimLeft(line, "-")
		}
	}
	return ""
}

// findTimeAndDateForward scans forward from start for the first bare time
// token and the first bare date token, independently. The scan terminates
// early when it reaches another section anchor so one section cannot read
// the next section's schedule.
func findTimeAndDateForward(lines []string, start int, stopAnchors []string) (timeRaw, dateRaw string) {
	for i := start; i < len(lines); i++ {
		line := lines[i]

		stopped := false
		for _, anchor := range stopAnchors {
			if line == anchor {
				stopped = true
				break
			}
		}
		if stopped {
			break
		}

		if timeRaw == "" && bareTimePattern.MatchString(line) {
			timeRaw = line
		}
		if dateRaw == "" && bareDatePattern.MatchString(line) {
			dateRaw = line
		}
		if timeRaw != "" && dateRaw != "" {
			break
		}
	}
	return timeRaw, dateRaw
}

// findTimeLine returns the nearest subsequent line containing a clock time.
func findTimeLine(lines []string, anchor int) string {
	for i := 1; i <= timeLineLookahead; i++ {
		line := lineAt(lines, anchor+i)
		if line != "" && timeLinePattern.MatchString(line) {
			return line
		}
	}
	return ""
}

// findDateLine returns the nearest subsequent line containing a full date.
func findDateLine(lines []string, anchor int) string {
	for i := 1; i <= dateLineLookahead; i++ {
		line := lineAt(lines, anchor+i)
		if line != "" && dateLinePattern.MatchString(line) {
			return line
		}
	}
	return ""
}

// extractClockTimes returns every H:MM token in the line, in order.
func extractClockTimes(line string) []string {
	if line == "" {
		return nil
	}
	return clockPattern.FindAllString(line, -1)
}

// findRefNearby scans forward from idx for a line containing "REF" and
// returns the alphanumeric token following the label.
func findRefNearby(lines []string, idx int) string {
	for i := idx; i < idx+refLookahead; i++ {
		line := lineAt(lines, i)
		if line == "" || !strings.Contains(strings.ToUpper(line), "REF") {
			continue
		}
		if m := refTokenPattern.FindStringSubmatch(line); m != nil {
			return m[1]
		}
	}
	return ""
}

// numberKind selects which numeric convention a nearby-number scan applies.
// Weight tokens use comma as thousands grouping; volume and generic tokens
// use comma as the decimal separator. The asymmetry mirrors how the carrier
// paperwork prints these quantities and must be preserved.
type numberKind int

const (
	numberWeight numberKind = iota
	numberVolume
	numberGeneric
)

// findNearbyNumber scans a symmetric window around idx for the first line
// matching the kind's token shape and parses it per the kind's comma
// convention. It returns nil when no such line exists.
func findNearbyNumber(lines []string, idx, window int, kind numberKind) *float64 {
	for i := idx - window; i <= idx+window; i++ {
		line := lineAt(lines, i)
		if line == "" {
			continue
		}

		var text string
		switch kind {
		case numberWeight:
			if !weightPattern.MatchString(line) {
				continue
			}
			text = strings.ReplaceAll(line, ",", "")
		case numberVolume:
			if !volumePattern.MatchString(line) {
				continue
			}
			text = strings.ReplaceAll(line, ",", ".")
		case numberGeneric:
			if !numericPattern.MatchString(line) {
				continue
			}
			text = strings.ReplaceAll(line, ",", ".")
		}

		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			continue
		}
		return &value
	}
	return nil
}
