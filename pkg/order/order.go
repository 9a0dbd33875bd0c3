// Package order defines the normalized transport order document produced by
// the extraction strategies.
package order

// PackageType values used by the current strategies.
const (
	PackageTypePallet = "pallet"
	PackageTypeOther  = "other"
)

// SideSender tags the customer party as the sending side of the order.
const SideSender = "sender"

// TransportOrder is the normalized representation of a carrier's transport
// order document. Every optional field is either absent or a well-formed,
// non-empty value; extraction failures are encoded as omission, never as
// empty strings or zero-length collections.
type TransportOrder struct {
	// AttachmentFilenames lists the source filenames, lower-cased.
	AttachmentFilenames []string `json:"attachment_filenames,omitempty"`

	// Customer is the ordering party, tagged with its role.
	Customer *Party `json:"customer,omitempty"`

	// LoadingLocations are the pickup stops in document order.
	LoadingLocations []Location `json:"loading_locations,omitempty"`

	// DestinationLocations are the delivery stops in document order.
	DestinationLocations []Location `json:"destination_locations,omitempty"`

	// Cargos are the cargo entries for the whole document, correlated to
	// locations only by document order and optional shared reference.
	Cargos []Cargo `json:"cargos,omitempty"`

	// OrderReference is the carrier's free-text order identifier.
	OrderReference string `json:"order_reference,omitempty"`

	// FreightPrice is the agreed price in FreightCurrency.
	FreightPrice    *float64 `json:"freight_price,omitempty"`
	FreightCurrency string   `json:"freight_currency,omitempty"`

	// Comment is a free-text block gathered from the document.
	Comment string `json:"comment,omitempty"`
}

// Party is a participant in the transport order.
type Party struct {
	// Side is the role tag, e.g. "sender".
	Side string `json:"side,omitempty"`

	// Details holds the party's address block; each field is independently
	// resolvable or absent.
	Details Address `json:"details"`
}

// Address is a company address block. All fields are optional.
type Address struct {
	Company       string `json:"company,omitempty"`
	StreetAddress string `json:"street_address,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	City          string `json:"city,omitempty"`
	Country       string `json:"country,omitempty"`
}

// Empty reports whether no field of the address could be resolved.
func (a Address) Empty() bool {
	return a == Address{}
}

// Location is a pickup or delivery stop. A Location with no resolvable
// fields is still emitted: it records that a section anchor was found even
// when nothing could be read around it.
type Location struct {
	CompanyAddress Address     `json:"company_address"`
	Time           *TimeWindow `json:"time,omitempty"`
}

// TimeWindow bounds a stop in time. Each bound is an ISO 8601 timestamp or
// absent; a window may carry only one of the two.
type TimeWindow struct {
	DatetimeFrom string `json:"datetime_from,omitempty"`
	DatetimeTo   string `json:"datetime_to,omitempty"`
}

// Empty reports whether neither bound was resolved.
func (w TimeWindow) Empty() bool {
	return w.DatetimeFrom == "" && w.DatetimeTo == ""
}

// Cargo is one cargo entry. Title is the matched description line; all other
// fields are optional.
type Cargo struct {
	Title        string   `json:"title"`
	PackageCount *int     `json:"package_count,omitempty"`
	PackageType  string   `json:"package_type,omitempty"`
	Weight       *float64 `json:"weight,omitempty"`
	Volume       *float64 `json:"volume,omitempty"`
	Number       string   `json:"number,omitempty"`
}
