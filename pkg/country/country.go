// Package country provides a static ISO 3166-1 lookup for the short country
// tokens that appear on European freight paperwork. It is the in-process
// default for the extraction package's pluggable CountryLookup collaborator;
// callers with a richer geographic backend substitute their own.
package country

import "strings"

// alpha2 is the set of recognized two-letter codes.
var alpha2 = map[string]bool{
	"AT": true, "BE": true, "BG": true, "CH": true, "CZ": true,
	"DE": true, "DK": true, "EE": true, "ES": true, "FI": true,
	"FR": true, "GB": true, "GR": true, "HR": true, "HU": true,
	"IE": true, "IT": true, "LT": true, "LU": true, "LV": true,
	"NL": true, "NO": true, "PL": true, "PT": true, "RO": true,
	"SE": true, "SI": true, "SK": true, "TR": true, "UA": true,
}

// alpha3 maps three-letter codes to their two-letter equivalents.
var alpha3 = map[string]string{
	"AUT": "AT", "BEL": "BE", "BGR": "BG", "CHE": "CH", "CZE": "CZ",
	"DEU": "DE", "DNK": "DK", "ESP": "ES", "EST": "EE", "FIN": "FI",
	"FRA": "FR", "GBR": "GB", "GRC": "GR", "HRV": "HR", "HUN": "HU",
	"IRL": "IE", "ITA": "IT", "LTU": "LT", "LUX": "LU", "LVA": "LV",
	"NLD": "NL", "NOR": "NO", "POL": "PL", "PRT": "PT", "ROU": "RO",
	"SWE": "SE", "SVN": "SI", "SVK": "SK", "TUR": "TR", "UKR": "UA",
}

// ISO resolves a 2-3 letter token to an ISO 3166-1 alpha-2 code. It reports
// false for unknown tokens.
func ISO(token string) (string, bool) {
	token = strings.ToUpper(strings.TrimSpace(token))
	switch len(token) {
	case 2:
		if alpha2[token] {
			return token, true
		}
	case 3:
		if code, ok := alpha3[token]; ok {
			return code, true
		}
	}
	return "", false
}

// Static implements the extraction package's CountryLookup interface over
// the built-in tables.
type Static struct{}

// ISO implements the lookup.
func (Static) ISO(token string) (string, bool) {
	return ISO(token)
}
