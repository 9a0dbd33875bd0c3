// Package keywords manages the validation keyword sets that extraction
// strategies use to recognize their carrier's documents. Sets are plain
// YAML files, one per strategy, loadable from a directory and reloadable on
// change; the extraction core itself only ever sees the resolved keyword
// slices.
package keywords

import (
	"fmt"
	"strings"
)

// Set maps one strategy to its validation keywords.
type Set struct {
	// Strategy is the strategy identifier the set belongs to, e.g.
	// "ziegler".
	Strategy string `yaml:"strategy" json:"strategy"`

	// Keywords are matched case-insensitively as substrings of document
	// lines; any single hit validates the document for the strategy.
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// Validate checks the set is well-formed: a non-empty strategy name and at
// least one non-blank keyword.
func (s *Set) Validate() error {
	if strings.TrimSpace(s.Strategy) == "" {
		return fmt.Errorf("keyword set strategy cannot be empty")
	}
	if len(s.Keywords) == 0 {
		return fmt.Errorf("keyword set %q has no keywords", s.Strategy)
	}
	for _, kw := range s.Keywords {
		if strings.TrimSpace(kw) == "" {
			return fmt.Errorf("keyword set %q contains a blank keyword", s.Strategy)
		}
	}
	return nil
}

// Default returns a registry pre-populated with the keyword sets for the
// shipped strategies. Callers that load sets from a directory override
// these.
func Default() *Registry {
	r := NewRegistry()
	// The shipped sets cannot fail validation.
	_ = r.Register(&Set{Strategy: "ziegler", Keywords: []string{"Ziegler"}})
	_ = r.Register(&Set{Strategy: "transalliance", Keywords: []string{"TRANSALLIANCE"}})
	return r
}
