package extract

import "regexp"

// CountryLookup resolves an ISO 3166-1 alpha-2 code from a short free-text
// token (a 2-3 letter code or a country name fragment). Implementations
// report false when the token is unknown. The main strategies never consult
// a lookup; they derive countries from postal codes or fixed section
// configuration.
type CountryLookup interface {
	ISO(token string) (string, bool)
}

// countryTokenPattern picks the first 2-3 letter uppercase token out of
// free text.
var countryTokenPattern = regexp.MustCompile(`\b([A-Z]{2,3})\b`)

// Country resolves an ISO country code from free text via the lookup. It
// returns "" when the text carries no candidate token or the lookup does
// not recognize it.
func Country(text string, lookup CountryLookup) string {
	if lookup == nil {
		return ""
	}
	m := countryTokenPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	code, ok := lookup.ISO(m[1])
	if !ok {
		return ""
	}
	return code
}
