package xsdgen

import (
	"go.uber.org/zap"

	"github.com/jacoelho/xsdgen/internal/build"
	"github.com/jacoelho/xsdgen/internal/model"
	"github.com/jacoelho/xsdgen/pkg/doctree"
)

// Diagnostics counts guard activations during one run, useful for
// calibrating depth and repetition limits.
type Diagnostics struct {
	CycleGuardHits    int
	DepthGuardHits    int
	ElementsGenerated int
}

// Session orchestrates one or more document syntheses against a schema with
// fixed options. Each Run resets per-run state, so every Run with the same
// inputs produces the same tree.
type Session struct {
	schema  *Schema
	options GenerateOptions
	builder *build.Builder
}

// NewSession creates a generation session.
func NewSession(schema *Schema, options GenerateOptions) (*Session, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	var m *model.Schema
	if schema != nil {
		m = schema.model
	}
	return &Session{
		schema:  schema,
		options: options,
		builder: build.New(m, options.buildConfig()),
	}, nil
}

// Run synthesizes one document tree from the configured root element.
func (s *Session) Run() (*doctree.Node, Diagnostics, error) {
	root, err := s.schema.rootElement(s.options.rootElement)
	if err != nil {
		return nil, Diagnostics{}, err
	}
	node, diag, err := s.builder.Build(root)
	if err != nil {
		return nil, Diagnostics{}, err
	}
	result := Diagnostics{
		CycleGuardHits:    diag.CycleGuardHits,
		DepthGuardHits:    diag.DepthGuardHits,
		ElementsGenerated: diag.ElementsGenerated,
	}
	if logger := s.options.logger; logger != nil {
		logger.Info("generation complete",
			zap.Int("elements", result.ElementsGenerated),
			zap.Int("cycle_guard_hits", result.CycleGuardHits),
			zap.Int("depth_guard_hits", result.DepthGuardHits),
		)
	}
	return node, result, nil
}

// Generate is the single-shot convenience: load options, run once, return
// the tree.
func (s *Schema) Generate(options GenerateOptions) (*doctree.Node, Diagnostics, error) {
	session, err := NewSession(s, options)
	if err != nil {
		return nil, Diagnostics{}, err
	}
	return session.Run()
}
