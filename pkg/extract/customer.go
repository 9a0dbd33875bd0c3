package extract

import (
	"regexp"
	"strings"

	"github.com/coolbeans/waybill/pkg/order"
)

var (
	// capsCityPattern matches an ALL-CAPS line, the Ziegler booking
	// convention for the customer's city.
	capsCityPattern = regexp.MustCompile(`^[A-Z ]+$`)

	// ukPostcodePattern matches a UK-style postcode anywhere in a line.
	ukPostcodePattern = regexp.MustCompile(`(?i)[A-Z]{1,2}\d{1,2}[A-Z]?\s?\d[A-Z]{2}`)

	// customerPostalPattern matches an international postal/city line in
	// the customer block, e.g. "FR-59000 LILLE".
	customerPostalPattern = regexp.MustCompile(`^([A-Z]{2}-\S+)\s+(.+)`)

	// customerStopPattern ends the marker-delimited customer block.
	customerStopPattern = regexp.MustCompile(`(?i)^(VAT NUM|Contact|Tel|E-mail)`)

	// headerWords are ALL-CAPS words that disqualify a line as the city.
	headerWords = []string{"BOOKING", "INSTRUCTION"}
)

// zieglerCustomer reads the sender block from a Ziegler booking: the first
// line is the company, the first ALL-CAPS line (excluding known header
// words) is the city, the lines in between form the street address, and a
// UK postcode anywhere in the document fixes the country to GB.
func zieglerCustomer(lines []string) *order.Party {
	if len(lines) == 0 {
		return nil
	}

	company := lines[0]

	city := ""
	for _, line := range lines {
		if !capsCityPattern.MatchString(line) {
			continue
		}
		upper := strings.ToUpper(line)
		excluded := false
		for _, word := range headerWords {
			if strings.Contains(upper, word) {
				excluded = true
				break
			}
		}
		if !excluded {
			city = line
			break
		}
	}

	end := min(len(lines), 4)
	street := strings.Join(lines[1:end], ", ")

	postal := ""
	for _, line := range lines {
		if ukPostcodePattern.MatchString(line) {
			postal = line
			break
		}
	}
	country := ""
	if postal != "" {
		country = "GB"
	}

	return &order.Party{
		Side: order.SideSender,
		Details: order.Address{
			Company:       company,
			StreetAddress: street,
			PostalCode:    postal,
			City:          city,
			Country:       country,
		},
	}
}

// markerCustomer reads the sender block delimited by a client marker line
// and a carrier-name marker line. The client line is the company; the lines
// between the markers are collected as the street address until a contact
// label ends the block, and a postal/city line inside the block also fixes
// postal code, city, and prefix country.
func markerCustomer(lines []string, clientMarker, carrierMarker string) *order.Party {
	client := -1
	carrier := -1
	for i, line := range lines {
		if client < 0 && strings.Contains(line, clientMarker) {
			client = i
		}
		if carrier < 0 && strings.Contains(line, carrierMarker) {
			carrier = i
		}
	}

	details := order.Address{}
	if client >= 0 && carrier >= 0 && client < carrier {
		details.Company = lines[client]

		var streetParts []string
		for i := client + 1; i < carrier; i++ {
			line := lines[i]
			if customerStopPattern.MatchString(line) {
				break
			}
			streetParts = append(streetParts, line)

			if m := customerPostalPattern.FindStringSubmatch(line); m != nil {
				details.PostalCode = m[1]
				details.City = strings.TrimSpace(m[2])
				details.Country = details.PostalCode[:2]
			}
		}
		details.StreetAddress = strings.Join(streetParts, ", ")
	}

	return &order.Party{Side: order.SideSender, Details: details}
}
