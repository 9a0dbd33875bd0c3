package order

// Builder assembles a TransportOrder while enforcing the absence-not-empty
// invariant: setters ignore empty values so that failed extractions leave
// their field omitted rather than set to an empty string or empty slice.
type Builder struct {
	doc TransportOrder
}

// NewBuilder returns a Builder over a fresh document.
func NewBuilder() *Builder {
	return &Builder{}
}

// Attachments records the source filenames. Empty names are dropped.
func (b *Builder) Attachments(filenames ...string) *Builder {
	for _, name := range filenames {
		if name != "" {
			b.doc.AttachmentFilenames = append(b.doc.AttachmentFilenames, name)
		}
	}
	return b
}

// Customer sets the ordering party.
func (b *Builder) Customer(p *Party) *Builder {
	b.doc.Customer = p
	return b
}

// LoadingLocations sets the pickup stops if any were found.
func (b *Builder) LoadingLocations(locations []Location) *Builder {
	if len(locations) > 0 {
		b.doc.LoadingLocations = locations
	}
	return b
}

// DestinationLocations sets the delivery stops if any were found.
func (b *Builder) DestinationLocations(locations []Location) *Builder {
	if len(locations) > 0 {
		b.doc.DestinationLocations = locations
	}
	return b
}

// Cargos sets the cargo entries if any were found.
func (b *Builder) Cargos(cargos []Cargo) *Builder {
	if len(cargos) > 0 {
		b.doc.Cargos = cargos
	}
	return b
}

// OrderReference sets the order reference if one was found.
func (b *Builder) OrderReference(ref string) *Builder {
	if ref != "" {
		b.doc.OrderReference = ref
	}
	return b
}

// Freight sets the price and its currency. The currency is only recorded
// alongside a resolved price.
func (b *Builder) Freight(price *float64, currency string) *Builder {
	if price != nil {
		b.doc.FreightPrice = price
		b.doc.FreightCurrency = currency
	}
	return b
}

// Comment sets the free-text comment if one was found.
func (b *Builder) Comment(comment string) *Builder {
	if comment != "" {
		b.doc.Comment = comment
	}
	return b
}

// Build returns the assembled document.
func (b *Builder) Build() *TransportOrder {
	doc := b.doc
	return &doc
}
