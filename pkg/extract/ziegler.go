package extract

import (
	"regexp"

	"github.com/coolbeans/waybill/pkg/order"
)

// freightCurrencyEUR is the settlement currency on both carrier layouts.
const freightCurrencyEUR = "EUR"

// Ziegler section anchors.
const (
	zieglerCollectionAnchor = "Collection"
	zieglerDeliveryAnchor   = "Delivery"
)

var (
	// zieglerCollectionPostalSplit splits a collection postal/city line;
	// collections originate from alphanumeric (UK-style) postal codes.
	zieglerCollectionPostalSplit = regexp.MustCompile(`([A-Z0-9]{2,}\s?\d+[A-Z]*)\s+(.+)`)

	// zieglerDeliveryPostalSplit splits a delivery postal/city line;
	// deliveries carry plain numeric codes.
	zieglerDeliveryPostalSplit = regexp.MustCompile(`(\d{4,5})\s+(.+)`)
)

// ZieglerStrategy parses Ziegler booking confirmations. Collections are
// picked up in the UK (country guessed from the postal code prefix) and
// delivered in France (fixed country); collection schedules use forward
// time/date scanning while deliveries print time and date lines near the
// anchor. Cargo appears as pallet count lines.
type ZieglerStrategy struct {
	keywords []string
	sections []sectionConfig
}

// NewZieglerStrategy builds the strategy with its validation keywords. The
// section configs are constructed once; the strategy is immutable afterwards
// and safe to share across concurrent parses.
func NewZieglerStrategy(keywords []string) *ZieglerStrategy {
	stops := []string{zieglerCollectionAnchor, zieglerDeliveryAnchor}
	return &ZieglerStrategy{
		keywords: keywords,
		sections: []sectionConfig{
			{
				anchor:               zieglerCollectionAnchor,
				kind:                 sectionLoading,
				company:              zieglerFindCompany,
				street:               zieglerFindStreet,
				postal:               zieglerFindPostalCity,
				cargo:                palletCargo,
				postalSplit:          zieglerCollectionPostalSplit,
				country:              countryPrefix,
				timeConv:             timeScanForward,
				stopAnchors:          stops,
				streetFallbackPostal: true,
			},
			{
				anchor:               zieglerDeliveryAnchor,
				kind:                 sectionDestination,
				company:              zieglerFindCompany,
				street:               zieglerFindStreet,
				postal:               zieglerFindPostalCity,
				cargo:                palletCargo,
				postalSplit:          zieglerDeliveryPostalSplit,
				country:              countryFixed,
				fixedCountry:         "FR",
				timeConv:             timeWindowed,
				streetFallbackPostal: true,
			},
		},
	}
}

// Name implements Strategy.
func (s *ZieglerStrategy) Name() string { return "ziegler" }

// CanHandle implements Strategy.
func (s *ZieglerStrategy) CanHandle(lines []string) bool {
	return containsKeyword(lines, s.keywords)
}

// Parse implements Strategy.
func (s *ZieglerStrategy) Parse(lines []string, filename string) (*order.TransportOrder, error) {
	lines = FilterLines(lines)

	loading, destination, cargos := scanSections(lines, s.sections)

	return order.NewBuilder().
		Attachments(attachmentName(filename)).
		Customer(zieglerCustomer(lines)).
		OrderReference(extractOrderReference(lines)).
		Freight(extractPrice(lines), freightCurrencyEUR).
		Comment(extractComment(lines)).
		LoadingLocations(loading).
		DestinationLocations(destination).
		Cargos(cargos).
		Build(), nil
}
