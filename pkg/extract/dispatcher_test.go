package extract

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/coolbeans/waybill/pkg/order"
)

// stubStrategy lets dispatcher tests observe which strategy parsed.
type stubStrategy struct {
	name     string
	keywords []string
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) CanHandle(lines []string) bool {
	return containsKeyword(lines, s.keywords)
}

func (s *stubStrategy) Parse(lines []string, filename string) (*order.TransportOrder, error) {
	return order.NewBuilder().OrderReference(s.name).Build(), nil
}

func TestDispatch_FirstRegisteredMatchWins(t *testing.T) {
	d := NewDispatcher(
		&stubStrategy{name: "first", keywords: []string{"ALPHA"}},
		&stubStrategy{name: "second", keywords: []string{"BETA"}},
	)

	// Both strategies' keywords occur; registration order decides.
	doc, err := d.Dispatch([]string{"beta shipping", "alpha freight"}, "order.pdf")
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if doc.OrderReference != "first" {
		t.Errorf("expected first-registered strategy to win, got %q", doc.OrderReference)
	}
}

func TestDispatch_CaseInsensitiveKeywords(t *testing.T) {
	d := NewDispatcher(&stubStrategy{name: "only", keywords: []string{"Ziegler"}})

	doc, err := d.Dispatch([]string{"ZIEGLER UK LIMITED"}, "")
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if doc.OrderReference != "only" {
		t.Errorf("expected keyword match regardless of case, got %q", doc.OrderReference)
	}
}

func TestDispatch_NoMatchReturnsTypedError(t *testing.T) {
	d := NewDispatcher(&stubStrategy{name: "only", keywords: []string{"ALPHA"}})

	_, err := d.Dispatch([]string{"nothing recognizable"}, "mystery.pdf")
	if err == nil {
		t.Fatal("expected an error for an unrecognized document")
	}

	var noMatch *NoMatchingFormatError
	if !errors.As(err, &noMatch) {
		t.Fatalf("expected NoMatchingFormatError, got %T: %v", err, err)
	}
	if noMatch.Filename != "mystery.pdf" {
		t.Errorf("error filename = %q", noMatch.Filename)
	}
}

func TestDispatch_NoMatchWithoutFilename(t *testing.T) {
	d := NewDispatcher(&stubStrategy{name: "only", keywords: []string{"ALPHA"}})

	_, err := d.Dispatch([]string{"nothing recognizable"}, "")

	var noMatch *NoMatchingFormatError
	if !errors.As(err, &noMatch) {
		t.Fatalf("expected NoMatchingFormatError, got %T: %v", err, err)
	}
	if noMatch.Filename != "unknown" {
		t.Errorf("error filename = %q, want \"unknown\"", noMatch.Filename)
	}
}

func TestDispatch_EmptyKeywordSetNeverMatches(t *testing.T) {
	d := NewDispatcher(&stubStrategy{name: "unconfigured"})

	_, err := d.Dispatch([]string{"anything at all"}, "doc.pdf")
	if err == nil {
		t.Fatal("a strategy without keywords must not match")
	}
}

func TestDispatch_Deterministic(t *testing.T) {
	d := NewDispatcher(NewZieglerStrategy([]string{"Ziegler"}))

	first, err := d.Dispatch(zieglerBookingLines(), "order.pdf")
	if err != nil {
		t.Fatalf("first dispatch: %v", err)
	}
	second, err := d.Dispatch(zieglerBookingLines(), "order.pdf")
	if err != nil {
		t.Fatalf("second dispatch: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Errorf("same input produced different output:\n%s\n%s", a, b)
	}
}
