// Package extract converts the raw text lines of a carrier's transport order
// document into a normalized order. Each carrier layout is handled by a
// Strategy; the Dispatcher selects the first registered strategy whose
// validation keywords appear anywhere in the document.
//
// Extraction is heuristic and best-effort by design: the input is
// semi-structured text whose layout drifts between documents, so every field
// scanner yields absence rather than an error when its target cannot be
// found. The only error the package raises is NoMatchingFormatError.
package extract

import (
	"fmt"
	"strings"

	"github.com/coolbeans/waybill/pkg/order"
)

// Strategy parses one carrier family's transport order layout.
type Strategy interface {
	// Name identifies the strategy, e.g. "ziegler". It is the key under
	// which validation keywords are configured.
	Name() string

	// CanHandle reports whether any of the strategy's validation keywords
	// occurs in any line. This is a cheap existence check, not a grammar
	// check; false positives are tolerated and resolved by registration
	// order.
	CanHandle(lines []string) bool

	// Parse extracts a normalized transport order from the lines. The
	// filename is recorded as the document's attachment.
	Parse(lines []string, filename string) (*order.TransportOrder, error)
}

// NoMatchingFormatError is returned by Dispatch when no registered strategy
// recognizes the document.
type NoMatchingFormatError struct {
	// Filename is the supplied attachment filename, or "unknown".
	Filename string
}

func (e *NoMatchingFormatError) Error() string {
	return fmt.Sprintf("no matching parser found for file: %s", e.Filename)
}

// Dispatcher tries registered strategies in priority order and hands the
// document to the first one that can handle it. It holds no per-call state
// and is safe for concurrent use.
type Dispatcher struct {
	strategies []Strategy
}

// NewDispatcher creates a dispatcher over the given strategies. Registration
// order is priority order: the first strategy whose CanHandle reports true
// wins, even if a later strategy would also match.
func NewDispatcher(strategies ...Strategy) *Dispatcher {
	return &Dispatcher{strategies: strategies}
}

// Dispatch parses the document with the first matching strategy. It returns
// a NoMatchingFormatError carrying the filename (or "unknown") when no
// strategy matches.
func (d *Dispatcher) Dispatch(lines []string, filename string) (*order.TransportOrder, error) {
	for _, s := range d.strategies {
		if s.CanHandle(lines) {
			return s.Parse(lines, filename)
		}
	}

	name := filename
	if name == "" {
		name = "unknown"
	}
	return nil, &NoMatchingFormatError{Filename: name}
}

// containsKeyword reports whether any keyword is a case-insensitive
// substring of any line. Lines are upper-cased once per call.
func containsKeyword(lines, keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}

	upper := make([]string, len(lines))
	for i, line := range lines {
		upper[i] = strings.ToUpper(line)
	}

	for _, keyword := range keywords {
		kw := strings.ToUpper(keyword)
		for _, line := range upper {
			if strings.Contains(line, kw) {
				return true
			}
		}
	}
	return false
}

// attachmentName normalizes the attachment filename: lower-cased, with
// "unknown.pdf" standing in when none was supplied.
func attachmentName(filename string) string {
	if filename == "" {
		filename = "unknown.pdf"
	}
	return strings.ToLower(filename)
}
