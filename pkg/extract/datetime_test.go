package extract

import "testing"

func TestNormalizeTimestamp(t *testing.T) {
	tests := []struct {
		name string
		date string
		time string
		want string
	}{
		{"military", "01/06/2024", "0800", "2024-06-01T08:00:00Z"},
		{"military afternoon", "01/06/2024", "1430", "2024-06-01T14:30:00Z"},
		{"clock", "15/06/2024", "9:30", "2024-06-15T09:30:00Z"},
		{"clock padded", "15/06/2024", "09:30", "2024-06-15T09:30:00Z"},
		{"meridiem am", "15/06/2024", "9 am", "2024-06-15T09:00:00Z"},
		{"meridiem pm", "15/06/2024", "2 pm", "2024-06-15T14:00:00Z"},
		{"glued meridiem", "15/06/2024", "2pm", "2024-06-15T14:00:00Z"},
		{"uppercase meridiem", "15/06/2024", "2PM", "2024-06-15T14:00:00Z"},
		{"midnight", "15/06/2024", "12am", "2024-06-15T00:00:00Z"},
		{"noon", "15/06/2024", "12pm", "2024-06-15T12:00:00Z"},
		{"two digit year", "1/6/24", "10:00", "2024-06-01T10:00:00Z"},
		{"single digit day and month", "5/6/2024", "10:00", "2024-06-05T10:00:00Z"},
		{"date inside text", "ON 02/06/2024", "10:00", "2024-06-02T10:00:00Z"},

		{"empty time", "01/06/2024", "", ""},
		{"empty date", "", "10:00", ""},
		{"unrecognized time shape", "01/06/2024", "around noon", ""},
		{"hour out of range", "01/06/2024", "25:00", ""},
		{"minute out of range", "01/06/2024", "10:75", ""},
		{"military hour out of range", "01/06/2024", "2460", ""},
		{"day out of range", "32/06/2024", "10:00", ""},
		{"month out of range", "01/13/2024", "10:00", ""},
		{"no date token", "June first", "10:00", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeTimestamp(tt.date, tt.time)
			if got != tt.want {
				t.Errorf("normalizeTimestamp(%q, %q) = %q, want %q",
					tt.date, tt.time, got, tt.want)
			}
		})
	}
}

func TestSplitTimeRange(t *testing.T) {
	tests := []struct {
		raw      string
		from, to string
	}{
		{"09:00-11:00", "09:00", "11:00"},
		{"09:00 - 11:00", "09:00", "11:00"},
		{"0800 - 1200", "0800", "1200"},
		{"14:00", "14:00", ""},
		{"2pm", "2pm", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		from, to := splitTimeRange(tt.raw)
		if from != tt.from || to != tt.to {
			t.Errorf("splitTimeRange(%q) = (%q, %q), want (%q, %q)",
				tt.raw, from, to, tt.from, tt.to)
		}
	}
}

func TestFindTimeAndDateForward_StopsAtNextAnchor(t *testing.T) {
	lines := []string{
		"Collection",
		"Acme Ltd",
		"Delivery",
		"09:00-11:00",
		"01/06/2024",
	}

	timeRaw, dateRaw := findTimeAndDateForward(lines, 1, []string{"Collection", "Delivery"})
	if timeRaw != "" || dateRaw != "" {
		t.Errorf("scan crossed a section anchor: time=%q date=%q", timeRaw, dateRaw)
	}
}

func TestFindTimeAndDateForward_IndependentFields(t *testing.T) {
	lines := []string{
		"Collection",
		"01/06/2024",
		"Acme Ltd",
		"0800",
	}

	timeRaw, dateRaw := findTimeAndDateForward(lines, 1, []string{"Collection"})
	if timeRaw != "0800" {
		t.Errorf("time = %q, want %q", timeRaw, "0800")
	}
	if dateRaw != "01/06/2024" {
		t.Errorf("date = %q, want %q", dateRaw, "01/06/2024")
	}
}

func TestExtractClockTimes(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"08:00 - 12:00", []string{"08:00", "12:00"}},
		{"arrival 14:30", []string{"14:30"}},
		{"no times here", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := extractClockTimes(tt.line)
		if len(got) != len(tt.want) {
			t.Errorf("extractClockTimes(%q) = %v, want %v", tt.line, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("extractClockTimes(%q) = %v, want %v", tt.line, got, tt.want)
				break
			}
		}
	}
}
