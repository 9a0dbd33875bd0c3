package extract

import (
	"regexp"

	"github.com/coolbeans/waybill/pkg/order"
)

// Transalliance section anchors.
const (
	transLoadingAnchor  = "Loading"
	transDeliveryAnchor = "Delivery"
)

// Customer block markers: the client marker identifies the ordering
// client's line near the top of the document, the carrier marker ends the
// sender block.
const (
	transClientMarker  = "Test Client"
	transCarrierMarker = "TRANSALLIANCE"
)

var (
	// transLoadingPostalSplit splits a loading postal/city line with an
	// alphanumeric postal code.
	transLoadingPostalSplit = regexp.MustCompile(`([A-Z0-9]{2,}\s?\d+[A-Z]*)\s+(.+)`)

	// transDeliveryPostalSplit splits a delivery postal/city line with a
	// plain numeric code.
	transDeliveryPostalSplit = regexp.MustCompile(`(\d{4,5})\s+(.+)`)
)

// TransallianceStrategy parses Transalliance transport orders. Address
// scans skip the layout's label and payment noise lines; deliveries always
// route through France. Cargo appears as packaging description lines with
// weight and volume printed nearby, and the comment lives in an
// OBSERVATIONS block.
type TransallianceStrategy struct {
	keywords []string
	sections []sectionConfig
}

// NewTransallianceStrategy builds the strategy with its validation
// keywords. The strategy is immutable after construction and safe to share
// across concurrent parses.
func NewTransallianceStrategy(keywords []string) *TransallianceStrategy {
	stops := []string{transLoadingAnchor, transDeliveryAnchor}
	return &TransallianceStrategy{
		keywords: keywords,
		sections: []sectionConfig{
			{
				anchor:      transLoadingAnchor,
				kind:        sectionLoading,
				company:     transFindCompany,
				street:      transFindStreet,
				postal:      transFindPostalCity,
				cargo:       packagingCargo,
				postalSplit: transLoadingPostalSplit,
				country:     countryPrefix,
				timeConv:    timeScanForward,
				stopAnchors: stops,
			},
			{
				anchor:       transDeliveryAnchor,
				kind:         sectionDestination,
				company:      transFindCompany,
				street:       transFindStreet,
				postal:       transFindPostalCity,
				cargo:        packagingCargo,
				postalSplit:  transDeliveryPostalSplit,
				country:      countryFixed,
				fixedCountry: "FR",
				timeConv:     timeWindowed,
			},
		},
	}
}

// Name implements Strategy.
func (s *TransallianceStrategy) Name() string { return "transalliance" }

// CanHandle implements Strategy.
func (s *TransallianceStrategy) CanHandle(lines []string) bool {
	return containsKeyword(lines, s.keywords)
}

// Parse implements Strategy.
func (s *TransallianceStrategy) Parse(lines []string, filename string) (*order.TransportOrder, error) {
	lines = FilterLines(lines)

	loading, destination, cargos := scanSections(lines, s.sections)

	return order.NewBuilder().
		Attachments(attachmentName(filename)).
		Customer(markerCustomer(lines, transClientMarker, transCarrierMarker)).
		OrderReference(extractOrderReference(lines)).
		Freight(extractPrice(lines), freightCurrencyEUR).
		Comment(extractComment(lines)).
		LoadingLocations(loading).
		DestinationLocations(destination).
		Cargos(cargos).
		Build(), nil
}
