package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/coolbeans/waybill/pkg/order"
)

var (
	// ampmGluePattern splits an am/pm suffix directly touching a digit,
	// so "2pm" normalizes like "2 pm".
	ampmGluePattern = regexp.MustCompile(`(?i)(\d)(am|pm)`)

	// The three recognized time shapes. Anything else yields no
	// timestamp for that bound.
	militaryTimePattern = regexp.MustCompile(`^\d{4}$`)
	meridiemTimePattern = regexp.MustCompile(`^(\d{1,2}) ?(am|pm)$`)
	clockTimePattern    = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

	// dateTokenPattern pulls the D/M/Y token out of a date line that may
	// carry surrounding text.
	dateTokenPattern = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}`)
)

// resolveTime reads the section's time window per its configured convention.
// Both bounds are resolved independently; either may be absent.
func resolveTime(lines []string, anchor int, cfg sectionConfig) *order.TimeWindow {
	var fromRaw, toRaw, dateText string

	switch cfg.timeConv {
	case timeScanForward:
		timeRaw, dateRaw := findTimeAndDateForward(lines, anchor+1, cfg.stopAnchors)
		fromRaw, toRaw = splitTimeRange(timeRaw)
		dateText = dateRaw
	case timeWindowed:
		times := extractClockTimes(findTimeLine(lines, anchor))
		if len(times) > 0 {
			fromRaw = times[0]
		}
		if len(times) > 1 {
			toRaw = times[1]
		}
		dateText = findDateLine(lines, anchor)
	}

	window := &order.TimeWindow{
		DatetimeFrom: normalizeTimestamp(dateText, fromRaw),
		DatetimeTo:   normalizeTimestamp(dateText, toRaw),
	}
	if window.Empty() {
		return nil
	}
	return window
}

// splitTimeRange splits a raw time token on its range separator. A single
// time yields (from, "").
func splitTimeRange(raw string) (from, to string) {
	if raw == "" {
		return "", ""
	}
	parts := strings.SplitN(raw, "-", 2)
	from = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		to = strings.TrimSpace(parts[1])
	}
	return from, to
}

// normalizeTimestamp combines raw date and time text into an ISO 8601 UTC
// timestamp. The time text is lower-cased and any am/pm suffix touching a
// digit is split off; exactly three shapes are recognized (military HHMM,
// H[:MM] am/pm, and H:MM 24-hour). The date is a day/month/year token with a
// two- or four-digit year. Text matching no shape yields "" rather than an
// error.
func normalizeTimestamp(dateText, timeText string) string {
	if dateText == "" || timeText == "" {
		return ""
	}

	day, month, year, ok := parseDayMonthYear(dateText)
	if !ok {
		return ""
	}

	timeText = strings.ToLower(strings.TrimSpace(timeText))
	timeText = ampmGluePattern.ReplaceAllString(timeText, "$1 $2")

	var hour, minute int
	switch {
	case militaryTimePattern.MatchString(timeText):
		hour, _ = strconv.Atoi(timeText[:2])
		minute, _ = strconv.Atoi(timeText[2:])
	case meridiemTimePattern.MatchString(timeText):
		m := meridiemTimePattern.FindStringSubmatch(timeText)
		hour, _ = strconv.Atoi(m[1])
		if hour == 12 {
			hour = 0
		}
		if m[2] == "pm" {
			hour += 12
		}
	case clockTimePattern.MatchString(timeText):
		m := clockTimePattern.FindStringSubmatch(timeText)
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
	default:
		return ""
	}

	if hour > 23 || minute > 59 {
		return ""
	}

	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC).Format(time.RFC3339)
}

// parseDayMonthYear extracts the first D/M/Y token from the date text.
// Two-digit years are taken as 2000-based.
func parseDayMonthYear(text string) (day, month, year int, ok bool) {
	token := dateTokenPattern.FindString(text)
	if token == "" {
		return 0, 0, 0, false
	}

	parts := strings.Split(token, "/")
	day, _ = strconv.Atoi(parts[0])
	month, _ = strconv.Atoi(parts[1])
	year, _ = strconv.Atoi(parts[2])
	if year < 100 {
		year += 2000
	}

	if day < 1 || day > 31 || month < 1 || month > 12 {
		return 0, 0, 0, false
	}
	return day, month, year, true
}
