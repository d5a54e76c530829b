// Package valuegen produces single leaf values for schema types: each
// generator covers one primitive category, and the factory selects a
// generator from a type plus its extracted constraints. Generators never
// fail and never return empty values; unsatisfiable constraints degrade to
// documented fallbacks.
package valuegen

import (
	"github.com/jacoelho/xsdgen/internal/constraint"
	"github.com/jacoelho/xsdgen/internal/pattern"
	"github.com/jacoelho/xsdgen/pkg/doctree"
)

// Generator produces one value of its kind for a named element under the
// given constraints.
type Generator interface {
	Generate(elementName string, cs *constraint.Set) doctree.Value
}

// State carries the only mutable state that outlives a single generator
// call: enumeration usage counts, identifier sequence numbers, and the
// pattern synthesizer PRNG. One State belongs to one generation session and
// must be Reset between independent runs to keep output reproducible.
type State struct {
	Enums       *UsageTracker
	Synthesizer *pattern.Synthesizer

	idSeq map[string]int
}

// NewState creates fresh session state.
func NewState() *State {
	return &State{
		Enums:       NewUsageTracker(),
		Synthesizer: pattern.NewSynthesizer(),
		idSeq:       make(map[string]int),
	}
}

// Reset clears all cross-call state.
func (s *State) Reset() {
	s.Enums.Reset()
	s.Synthesizer.Reset()
	s.idSeq = make(map[string]int)
}

// nextIdentifierSeq returns the next uniqueness suffix for an element name.
func (s *State) nextIdentifierSeq(elementName string) int {
	s.idSeq[elementName]++
	return s.idSeq[elementName]
}
