package extract

import "testing"

func TestFindNearbyNumber_CommaConventions(t *testing.T) {
	lines := []string{"PAPER ROLLS", "24,000", "1084,5"}

	weight := findNearbyNumber(lines, 0, quantityLookaround, numberWeight)
	if weight == nil || *weight != 24000.0 {
		t.Errorf("weight = %v, want 24000 (comma groups thousands)", weight)
	}

	volume := findNearbyNumber(lines, 0, quantityLookaround, numberVolume)
	if volume == nil || *volume != 1084.5 {
		t.Errorf("volume = %v, want 1084.5 (comma is decimal)", volume)
	}

	generic := findNearbyNumber(lines, 0, numberLookaround, numberGeneric)
	if generic == nil || *generic != 24.0 {
		t.Errorf("generic = %v, want 24 (comma is decimal)", generic)
	}
}

func TestFindNearbyNumber_NoCandidate(t *testing.T) {
	lines := []string{"PACKAGING", "no numbers here"}
	if got := findNearbyNumber(lines, 0, quantityLookaround, numberWeight); got != nil {
		t.Errorf("weight = %v, want nil", *got)
	}
}

func TestFindNearbyNumber_WindowBound(t *testing.T) {
	lines := []string{"24,000", "a", "b", "c", "d", "PACKAGING"}
	if got := findNearbyNumber(lines, 5, numberLookaround, numberWeight); got != nil {
		t.Errorf("number outside the window was read: %v", *got)
	}
}

func TestTransSkip(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"", true},
		{"-", true},
		{"REFERENCE :", true},
		{"ref 123", true},
		{"ON 02/06/2024", true},
		{"Contact M. Dupont", true},
		{"Payment terms 60 days", true},
		{"02/06/2024", true},
		{"REGLEMENT PAR VIREMENT", true},
		{"Papeteries du Nord", false},
		{"Zone Industrielle Est", false},
	}

	for _, tt := range tests {
		if got := transSkip(tt.line); got != tt.want {
			t.Errorf("transSkip(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestZieglerFindCompany_SkipsLabels(t *testing.T) {
	lines := []string{"Collection", "REF: PO-99", "1: slot one", "Acme Ltd"}
	if got := zieglerFindCompany(lines, 0); got != "Acme Ltd" {
		t.Errorf("company = %q, want %q", got, "Acme Ltd")
	}
}

func TestZieglerFindPalletIndex(t *testing.T) {
	lines := []string{"Collection", "Acme Ltd", "3 PALLETS"}
	if got := zieglerFindPalletIndex(lines, 0); got != 2 {
		t.Errorf("pallet index = %d, want 2", got)
	}

	lines = []string{"Collection", "Acme Ltd"}
	if got := zieglerFindPalletIndex(lines, 0); got != -1 {
		t.Errorf("pallet index = %d, want -1", got)
	}
}

func TestFindRefNearby(t *testing.T) {
	lines := []string{"3 PALLETS", "some text", "REF: PO-99"}
	if got := findRefNearby(lines, 0); got != "PO-99" {
		t.Errorf("ref = %q, want %q", got, "PO-99")
	}

	lines = []string{"3 PALLETS", "no labels around"}
	if got := findRefNearby(lines, 0); got != "" {
		t.Errorf("ref = %q, want empty", got)
	}
}

func TestScanSections_AdjacentAnchors(t *testing.T) {
	// Two delivery anchors with a single address block between them. Each
	// anchor starts an independent scan, so both locations resolve the
	// same lines.
	lines := []string{
		"Delivery",
		"Delivery",
		"Depot Nord",
		"59000 LILLE",
	}

	s := NewZieglerStrategy([]string{"Ziegler"})
	_, destination, _ := scanSections(lines, s.sections)

	if len(destination) != 2 {
		t.Fatalf("destination locations = %d, want 2", len(destination))
	}
	for i, loc := range destination {
		if loc.CompanyAddress.PostalCode != "59000" {
			t.Errorf("location %d postal = %q", i, loc.CompanyAddress.PostalCode)
		}
	}
	// The first anchor's company scan reads the second anchor line; only
	// the second resolves the real company.
	if destination[0].CompanyAddress.Company != "Delivery" {
		t.Errorf("first location company = %q", destination[0].CompanyAddress.Company)
	}
	if destination[1].CompanyAddress.Company != "Depot Nord" {
		t.Errorf("second location company = %q", destination[1].CompanyAddress.Company)
	}
}

func TestFilterLines(t *testing.T) {
	got := FilterLines([]string{
		"  Acme Ltd  ",
		"",
		"   \t ",
		"59000 LILLE",
	})

	want := []string{"Acme Ltd", "59000 LILLE"}
	if len(got) != len(want) {
		t.Fatalf("FilterLines = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFilterLines_UnicodeNormalization(t *testing.T) {
	// Decomposed accent (e + combining acute) normalizes to the
	// precomposed form.
	got := FilterLines([]string{"Café de la Gare"})
	if len(got) != 1 || got[0] != "Café de la Gare" {
		t.Errorf("FilterLines = %q", got)
	}
}

func TestFilterLines_Idempotent(t *testing.T) {
	lines := []string{" Acme Ltd ", "", "59000 LILLE"}
	once := FilterLines(lines)
	twice := FilterLines(once)

	if len(once) != len(twice) {
		t.Fatalf("second pass changed length: %v vs %v", once, twice)
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("line %d changed on second pass: %q vs %q", i, once[i], twice[i])
		}
	}
}

func TestLineAt_OutOfRange(t *testing.T) {
	lines := []string{"only"}
	if got := lineAt(lines, -1); got != "" {
		t.Errorf("lineAt(-1) = %q", got)
	}
	if got := lineAt(lines, 1); got != "" {
		t.Errorf("lineAt(1) = %q", got)
	}
	if got := lineAt(lines, 0); got != "only" {
		t.Errorf("lineAt(0) = %q", got)
	}
}
