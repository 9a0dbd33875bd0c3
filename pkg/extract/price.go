package extract

import (
	"strconv"
	"strings"
)

// priceLabel declares one freight price convention: the label line to look
// for, how far below it the amount is printed, and the label-specific
// substitutions that strip currency symbols and grouping before parsing.
// Spaces group thousands and the comma is the decimal separator on the
// layouts these labels appear in.
type priceLabel struct {
	match    func(line string) bool
	offset   int
	sanitize *strings.Replacer
}

var priceLabels = []priceLabel{
	{
		// Ziegler rate table: "Rate" header, amount two lines below.
		match:    func(line string) bool { return line == "Rate" },
		offset:   2,
		sanitize: strings.NewReplacer("€", "", " ", "", ",", "."),
	},
	{
		// Transalliance: "SHIPPING PRICE" label, amount on the next line.
		match:    func(line string) bool { return strings.Contains(strings.ToUpper(line), "SHIPPING PRICE") },
		offset:   1,
		sanitize: strings.NewReplacer("€", "", "EUR", "", " ", "", ",", "."),
	},
}

// extractPrice scans for a known price label and parses the amount printed
// at the label's fixed offset below it. It returns nil when no label occurs
// or the amount line does not parse as a number.
func extractPrice(lines []string) *float64 {
	for i, line := range lines {
		for _, label := range priceLabels {
			if !label.match(line) {
				continue
			}
			text := label.sanitize.Replace(lineAt(lines, i+label.offset))
			value, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil
			}
			return &value
		}
	}
	return nil
}
