package xsdgen

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jacoelho/xsdgen/internal/build"
)

// Mode controls how optional content is materialized.
type Mode = build.Mode

const (
	// ModeComplete includes every optional subtree up to the depth guard.
	ModeComplete = build.ModeComplete
	// ModeMinimal suppresses all optional subtrees.
	ModeMinimal = build.ModeMinimal
	// ModeCustom includes only optional subtrees named by overrides.
	ModeCustom = build.ModeCustom
)

// GenerateOptions configures one generation session. The zero value is
// valid: complete mode, default limits, first-declared choice defaults.
// Option methods return a modified copy.
type GenerateOptions struct {
	mode          Mode
	rootElement   string
	maxDepth      int
	defaultRepeat int
	maxRepeat     int
	choices       map[string]string
	repeats       map[string]int
	values        map[string]string
	logger        *zap.Logger
}

// NewGenerateOptions returns default generation options.
func NewGenerateOptions() GenerateOptions {
	return GenerateOptions{}
}

// WithMode sets the generation mode.
func (o GenerateOptions) WithMode(mode Mode) GenerateOptions {
	o.mode = mode
	return o
}

// WithRootElement selects the global element to generate from. Required
// when the schema declares more than one.
func (o GenerateOptions) WithRootElement(name string) GenerateOptions {
	o.rootElement = name
	return o
}

// WithMaxDepth sets the recursion depth guard (0 uses the default).
func (o GenerateOptions) WithMaxDepth(depth int) GenerateOptions {
	o.maxDepth = depth
	return o
}

// WithDefaultRepeat sets the fixed count used for multi-occurrence elements
// without an explicit override (0 uses the default).
func (o GenerateOptions) WithDefaultRepeat(count int) GenerateOptions {
	o.defaultRepeat = count
	return o
}

// WithMaxRepeat sets the upper clamp for repetition overrides (0 uses the
// default).
func (o GenerateOptions) WithMaxRepeat(count int) GenerateOptions {
	o.maxRepeat = count
	return o
}

// WithChoice selects a choice alternative: path names the element whose
// content model contains the choice, alternative the child element to
// materialize.
func (o GenerateOptions) WithChoice(path, alternative string) GenerateOptions {
	o.choices = copyMap(o.choices)
	o.choices[path] = alternative
	return o
}

// WithRepetition overrides the occurrence count for the element at path.
// The count is clamped to the element's minOccurs and the configured
// maximum at use time.
func (o GenerateOptions) WithRepetition(path string, count int) GenerateOptions {
	o.repeats = copyMap(o.repeats)
	o.repeats[path] = count
	return o
}

// WithValue overrides the generated value for the element or attribute at
// path with a literal. Attribute paths append /@name to the element path.
func (o GenerateOptions) WithValue(path, literal string) GenerateOptions {
	o.values = copyMap(o.values)
	o.values[path] = literal
	return o
}

// WithLogger sets a structured logger for generation diagnostics. Defaults
// to a no-op logger.
func (o GenerateOptions) WithLogger(logger *zap.Logger) GenerateOptions {
	o.logger = logger
	return o
}

// Validate checks option values.
func (o GenerateOptions) Validate() error {
	if o.maxDepth < 0 {
		return fmt.Errorf("max depth must not be negative")
	}
	if o.defaultRepeat < 0 {
		return fmt.Errorf("default repeat must not be negative")
	}
	if o.maxRepeat < 0 {
		return fmt.Errorf("max repeat must not be negative")
	}
	for path, count := range o.repeats {
		if count < 0 {
			return fmt.Errorf("repetition override for %s must not be negative", path)
		}
	}
	return nil
}

func (o GenerateOptions) buildConfig() build.Config {
	return build.Config{
		Mode:          o.mode,
		MaxDepth:      o.maxDepth,
		DefaultRepeat: o.defaultRepeat,
		MaxRepeat:     o.maxRepeat,
		Choices:       o.choices,
		Repeats:       o.repeats,
		Values:        o.values,
		Logger:        o.logger,
	}
}

func copyMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
