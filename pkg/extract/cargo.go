package extract

import (
	"strconv"

	"github.com/coolbeans/waybill/pkg/order"
)

// palletCargo builds a cargo entry from a pallet count line near the anchor,
// e.g. "3 PALLETS". The cargo number is the nearest REF token scanned
// forward from the pallet line.
func palletCargo(lines []string, anchor int) *order.Cargo {
	idx := zieglerFindPalletIndex(lines, anchor)
	if idx < 0 {
		return nil
	}

	line := lines[idx]
	m := palletPattern.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	count, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}

	return &order.Cargo{
		Title:        line,
		PackageCount: &count,
		PackageType:  order.PackageTypePallet,
		Number:       findRefNearby(lines, idx),
	}
}

// packagingCargo builds a cargo entry from a packaging description line
// ("PACKAGING" or "PAPER ROLLS") within a long window after the anchor.
// Weight and volume are read from a symmetric window around the description
// line, each per its own numeric convention; the cargo number comes from an
// independent generic numeric scan over a tighter window.
func packagingCargo(lines []string, anchor int) *order.Cargo {
	for i := 1; i <= cargoBlockLookahead; i++ {
		line := lineAt(lines, anchor+i)
		if line == "" || !cargoBlockPattern.MatchString(line) {
			continue
		}

		pos := anchor + i
		cargo := &order.Cargo{
			Title:       line,
			PackageType: order.PackageTypeOther,
			Weight:      findNearbyNumber(lines, pos, quantityLookaround, numberWeight),
			Volume:      findNearbyNumber(lines, pos, quantityLookaround, numberVolume),
		}
		if number := findNearbyNumber(lines, pos, numberLookaround, numberGeneric); number != nil {
			cargo.Number = strconv.FormatFloat(*number, 'f', -1, 64)
		}
		return cargo
	}
	return nil
}
