// Package pattern synthesizes strings that satisfy character-class and
// quantifier regular expression facets. Unsupported patterns degrade to a
// short numeric placeholder; producing a non-compliant value is a data
// quality concern, never an error.
package pattern

import (
	"math/rand"
	"regexp"
	"strings"
	"sync"
)

// FallbackValue is returned when a pattern cannot be satisfied within the
// retry budget.
const FallbackValue = "123"

// synthesizerSeed keeps synthesis reproducible across runs.
const synthesizerSeed = 7

// Synthesizer produces pattern-compliant strings. It owns a fixed-seed PRNG
// so repeated runs with the same call order produce the same output; Reset
// restores the initial state.
type Synthesizer struct {
	rng *rand.Rand

	mu    sync.Mutex
	cache map[string]*regexp.Regexp
}

// NewSynthesizer creates a synthesizer with deterministic initial state.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{
		rng:   rand.New(rand.NewSource(synthesizerSeed)),
		cache: make(map[string]*regexp.Regexp),
	}
}

// Reset restores the synthesizer to its initial deterministic state.
func (s *Synthesizer) Reset() {
	s.rng = rand.New(rand.NewSource(synthesizerSeed))
}

// knownPatterns maps high-frequency facet patterns to dedicated emitters.
// These are the short fixed-width code patterns that dominate real schemas.
var knownPatterns = map[string]func(s *Synthesizer) string{
	"[A-Z]{3}":         func(s *Synthesizer) string { return s.pick(upperAlpha, 3) },
	"[A-Z]{2}":         func(s *Synthesizer) string { return s.pick(upperAlpha, 2) },
	"[A-Z]{1,3}":       func(s *Synthesizer) string { return s.pick(upperAlpha, 3) },
	"[0-9]{2}":         func(s *Synthesizer) string { return s.pick(digits, 2) },
	"[0-9]{3}":         func(s *Synthesizer) string { return s.pick(digits, 3) },
	"[0-9]{4}":         func(s *Synthesizer) string { return s.pick(digits, 4) },
	"[0-9]{1,4}":       func(s *Synthesizer) string { return s.pick(digits, 3) },
	"[A-Z]{2}[0-9]{2}": func(s *Synthesizer) string { return s.pick(upperAlpha, 2) + s.pick(digits, 2) },
	"[A-Za-z0-9]{8}":   func(s *Synthesizer) string { return s.pick(alphaNum, 8) },
	"[a-zA-Z0-9]{8}":   func(s *Synthesizer) string { return s.pick(alphaNum, 8) },
}

const (
	upperAlpha = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerAlpha = "abcdefghijklmnopqrstuvwxyz"
	digits     = "0123456789"
	alphaNum   = upperAlpha + lowerAlpha + digits
)

func (s *Synthesizer) pick(class string, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(class[s.rng.Intn(len(class))])
	}
	return sb.String()
}

// Synthesize produces a string intended to satisfy the pattern. Table
// lookup first, then structural analysis of single-class bounded-repetition
// forms, then the numeric placeholder fallback.
func (s *Synthesizer) Synthesize(pattern string) string {
	if emit, ok := knownPatterns[pattern]; ok {
		return emit(s)
	}
	if atoms, ok := parseAtoms(pattern); ok {
		return s.synthesizeAtoms(atoms)
	}
	return FallbackValue
}

// IsCompliant reports whether the value matches the pattern exactly
// (anchored at both ends). Patterns that fail to compile match nothing.
func (s *Synthesizer) IsCompliant(value, pattern string) bool {
	re := s.compiled(pattern)
	if re == nil {
		return false
	}
	return re.MatchString(value)
}

// ValidateOrRegenerate returns the value when compliant, otherwise
// re-synthesizes up to maxAttempts times before settling on the documented
// fallback.
func (s *Synthesizer) ValidateOrRegenerate(value, pattern string, maxAttempts uint8) string {
	if s.IsCompliant(value, pattern) {
		return value
	}
	for i := uint8(0); i < maxAttempts; i++ {
		value = s.Synthesize(pattern)
		if s.IsCompliant(value, pattern) {
			return value
		}
	}
	return FallbackValue
}

func (s *Synthesizer) compiled(pattern string) *regexp.Regexp {
	s.mu.Lock()
	defer s.mu.Unlock()
	if re, ok := s.cache[pattern]; ok {
		return re
	}
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		re = nil
	}
	s.cache[pattern] = re
	return re
}

func (s *Synthesizer) synthesizeAtoms(atoms []atom) string {
	var sb strings.Builder
	for _, a := range atoms {
		count := a.min
		if a.max > a.min {
			count = a.min + s.rng.Intn(a.max-a.min+1)
		}
		for i := 0; i < count; i++ {
			sb.WriteByte(a.class[s.rng.Intn(len(a.class))])
		}
	}
	return sb.String()
}
