package extract

import (
	"regexp"

	"github.com/coolbeans/waybill/pkg/order"
)

// sectionKind says which location list a section's results belong to.
type sectionKind int

const (
	sectionLoading sectionKind = iota
	sectionDestination
)

// countryMode selects how a section derives the country for its postal code.
type countryMode int

const (
	// countryPrefix guesses the ISO 3166 alpha-2 code from the first two
	// characters of the postal code.
	countryPrefix countryMode = iota

	// countryFixed always yields the configured country. Used when the
	// carrier's paperwork is known to route one leg through one country.
	countryFixed
)

// timeConvention selects which of the two time encodings a section uses; see
// datetime.go.
type timeConvention int

const (
	// timeScanForward is the loading/collection style: a single forward
	// scan for a bare time token and a bare date token, stopping at the
	// next section anchor.
	timeScanForward timeConvention = iota

	// timeWindowed is the delivery style: the nearest time-shaped and
	// date-shaped lines within small fixed windows, taking all H:MM
	// tokens from the time line.
	timeWindowed
)

// finderFunc locates one address field by walking forward from a section
// anchor. It returns "" when the field cannot be found within its lookahead
// window; that is never an error.
type finderFunc func(lines []string, anchor int) string

// cargoFunc builds a cargo entry from the lines around a section anchor, or
// nil when no cargo indicator is found nearby.
type cargoFunc func(lines []string, anchor int) *order.Cargo

// sectionConfig declares how one section type (e.g. "Collection",
// "Delivery") is scanned. A config is built once per strategy instance and
// never mutated during a parse, so strategies are safe to share across
// concurrent parses.
type sectionConfig struct {
	// anchor is the exact trimmed line content that starts a section
	// instance. Every occurrence starts an independent scan.
	anchor string

	kind sectionKind

	// Field finders, resolved once at construction and invoked uniformly
	// by the scanning loop.
	company finderFunc
	street  finderFunc
	postal  finderFunc
	cargo   cargoFunc

	// postalSplit splits the postal/city line into (code, city).
	postalSplit *regexp.Regexp

	country      countryMode
	fixedCountry string

	timeConv timeConvention

	// stopAnchors terminate the forward time scan (timeScanForward only).
	stopAnchors []string

	// streetFallbackPostal substitutes the raw postal/city line for a
	// street address that could not be found. The Ziegler layouts carry
	// the street on the postal line often enough for this to pay off.
	streetFallbackPostal bool
}

// scanSections runs every configured section over the filtered line stream.
// Sections are scanned in config order, and within a section type, anchors
// in line order, purely for deterministic output ordering. Cargos are
// collected flat for the whole document, not nested under their location.
func scanSections(lines []string, configs []sectionConfig) (loading, destination []order.Location, cargos []order.Cargo) {
	for _, cfg := range configs {
		for idx, line := range lines {
			if line != cfg.anchor {
				continue
			}

			loc, cargo := parseSection(lines, idx, cfg)
			switch cfg.kind {
			case sectionLoading:
				loading = append(loading, loc)
			case sectionDestination:
				destination = append(destination, loc)
			}
			if cargo != nil {
				cargos = append(cargos, *cargo)
			}
		}
	}
	return loading, destination, cargos
}

// parseSection reads one section instance anchored at idx. Every sub-field
// is resolved independently: an address failure does not prevent a time
// read and vice versa. A location is returned even when nothing could be
// read from the section.
func parseSection(lines []string, idx int, cfg sectionConfig) (order.Location, *order.Cargo) {
	company := cfg.company(lines, idx)
	street := cfg.street(lines, idx)
	postalLine := cfg.postal(lines, idx)
	postalCode, city, country := splitPostal(postalLine, cfg)

	if street == "" && cfg.streetFallbackPostal {
		street = postalLine
	}

	loc := order.Location{
		CompanyAddress: order.Address{
			Company:       company,
			StreetAddress: street,
			PostalCode:    postalCode,
			City:          city,
			Country:       country,
		},
	}

	if window := resolveTime(lines, idx, cfg); window != nil && !window.Empty() {
		loc.Time = window
	}

	return loc, cfg.cargo(lines, idx)
}

// splitPostal splits a postal/city line via the section's regex and derives
// the country per the section's country mode.
func splitPostal(line string, cfg sectionConfig) (postalCode, city, country string) {
	if line == "" {
		return "", "", ""
	}
	m := cfg.postalSplit.FindStringSubmatch(line)
	if m == nil {
		return "", "", ""
	}

	postalCode, city = m[1], m[2]

	switch cfg.country {
	case countryPrefix:
		if len(postalCode) >= 2 {
			country = postalCode[:2]
		}
	case countryFixed:
		country = cfg.fixedCountry
	}
	return postalCode, city, country
}
