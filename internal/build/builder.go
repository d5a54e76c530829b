// Package build implements the recursive document tree construction: it
// walks the element/type graph, resolves choice alternatives and occurrence
// counts, and guards against cycles and excessive depth. Traversal always
// terminates; guard activations produce marker nodes, never errors.
package build

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jacoelho/xsdgen/internal/constraint"
	"github.com/jacoelho/xsdgen/internal/model"
	"github.com/jacoelho/xsdgen/internal/valuegen"
	"github.com/jacoelho/xsdgen/pkg/doctree"
)

// Mode controls how optional content is materialized.
type Mode int

const (
	// ModeComplete includes every optional particle and attribute, up to
	// the depth guard.
	ModeComplete Mode = iota
	// ModeMinimal suppresses all optional particles and attributes.
	ModeMinimal
	// ModeCustom includes an optional particle only when a repetition or
	// value override names a path inside it.
	ModeCustom
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeMinimal:
		return "minimal"
	case ModeCustom:
		return "custom"
	default:
		return "complete"
	}
}

// Default traversal limits.
const (
	DefaultMaxDepth      = 16
	DefaultRepeatCount   = 2
	DefaultMaxRepetition = 10
)

// Config carries the caller-supplied generation inputs. Paths are
// /-separated element names from the root; attribute paths append /@name.
type Config struct {
	Mode          Mode
	MaxDepth      int
	DefaultRepeat int
	MaxRepeat     int
	// Choice selections keyed by the path of the element whose content
	// model contains the choice.
	Choices map[string]string
	// Repetition overrides keyed by element path.
	Repeats map[string]int
	// Literal value overrides keyed by element or attribute path.
	Values map[string]string
	Logger *zap.Logger
}

func (c Config) withDefaults() Config {
	if c.MaxDepth <= 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	if c.DefaultRepeat <= 0 {
		c.DefaultRepeat = DefaultRepeatCount
	}
	if c.MaxRepeat <= 0 {
		c.MaxRepeat = DefaultMaxRepetition
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

// Diagnostics counts guard activations for one run, useful for calibrating
// the configured limits.
type Diagnostics struct {
	CycleGuardHits    int
	DepthGuardHits    int
	ElementsGenerated int
}

// Builder constructs one document tree per Build call. The builder owns the
// session value-generation state and resets it at the start of every run so
// runs are independent and reproducible.
type Builder struct {
	schema *model.Schema
	cfg    Config
	state  *valuegen.State
	diag   Diagnostics
}

// New creates a builder for the schema.
func New(schema *model.Schema, cfg Config) *Builder {
	return &Builder{
		schema: schema,
		cfg:    cfg.withDefaults(),
		state:  valuegen.NewState(),
	}
}

// Build synthesizes a document tree rooted at the given element
// declaration.
func (b *Builder) Build(root *model.ElementDecl) (*doctree.Node, Diagnostics, error) {
	if root == nil {
		return nil, Diagnostics{}, fmt.Errorf("build: nil root element")
	}
	b.state.Reset()
	b.diag = Diagnostics{}
	node := b.buildElement(root, "/"+root.Name.Local, 1, make(map[string]bool))
	return node, b.diag, nil
}

func (b *Builder) buildElement(decl *model.ElementDecl, path string, depth int, stack map[string]bool) *doctree.Node {
	if depth > b.cfg.MaxDepth {
		b.diag.DepthGuardHits++
		b.cfg.Logger.Debug("depth guard", zap.String("path", path), zap.Int("depth", depth))
		return &doctree.Node{Name: decl.Name.Local, Marker: doctree.MarkerDepth}
	}
	key := cycleKey(decl)
	if stack[key] {
		b.diag.CycleGuardHits++
		b.cfg.Logger.Debug("cycle guard", zap.String("path", path))
		return &doctree.Node{Name: decl.Name.Local, Marker: doctree.MarkerCycle}
	}
	stack[key] = true
	defer delete(stack, key)

	b.diag.ElementsGenerated++
	node := &doctree.Node{Name: decl.Name.Local}

	ct, isComplex := model.AsComplexType(decl.Type)
	if isComplex {
		b.buildAttributes(ct, path, node)
		if !ct.HasSimpleContent() {
			for _, group := range contentGroups(ct) {
				b.buildGroup(group, path, depth, stack, node)
			}
			return node
		}
	}

	value := b.leafValue(decl, path)
	node.Value = &value
	return node
}

// leafValue produces the text content for a simple(-content) element:
// explicit overrides, fixed values, and declared defaults win, in that
// order, then the constraint-driven generator pipeline.
func (b *Builder) leafValue(decl *model.ElementDecl, path string) doctree.Value {
	if decl.Fixed != "" {
		return doctree.TextValue(decl.Fixed)
	}
	if override, ok := b.cfg.Values[path]; ok {
		return doctree.TextValue(override)
	}
	if decl.Default != "" {
		return doctree.TextValue(decl.Default)
	}
	cs := constraint.Extract(decl.Type)
	gen := valuegen.New(decl.Type, cs, b.state)
	return gen.Generate(decl.Name.Local, cs)
}

// contentGroups returns the content model groups for a complex type,
// base types first, so extension content appears after inherited content.
func contentGroups(ct *model.ComplexType) []*model.ModelGroup {
	var groups []*model.ModelGroup
	for depth := 0; ct != nil && depth < 16; depth++ {
		if ct.Content != nil {
			groups = append([]*model.ModelGroup{ct.Content}, groups...)
		}
		base, ok := model.AsComplexType(ct.ResolvedBase)
		if !ok {
			break
		}
		ct = base
	}
	return groups
}

func (b *Builder) buildGroup(group *model.ModelGroup, parentPath string, depth int, stack map[string]bool, node *doctree.Node) {
	if group == nil {
		return
	}
	if group.MinOccurs == 0 && !b.includeOptional(parentPath) {
		return
	}
	if group.Kind == model.Choice {
		if selected := b.chooseAlternative(group, parentPath); selected != nil {
			b.buildParticle(selected, parentPath, depth, stack, node)
		}
		return
	}
	for _, particle := range group.Particles {
		b.buildParticle(particle, parentPath, depth, stack, node)
	}
}

// chooseAlternative resolves a choice group: a user selection matching an
// alternative's element name wins, otherwise the first declared alternative
// is the default. Exactly one alternative is ever materialized.
func (b *Builder) chooseAlternative(group *model.ModelGroup, parentPath string) model.Particle {
	if len(group.Particles) == 0 {
		return nil
	}
	if selection, ok := b.cfg.Choices[parentPath]; ok {
		for _, particle := range group.Particles {
			if decl, ok := particle.(*model.ElementDecl); ok && decl.Name.Local == selection {
				return particle
			}
		}
		b.cfg.Logger.Warn("choice selection matches no alternative",
			zap.String("path", parentPath), zap.String("selection", selection))
	}
	return group.Particles[0]
}

func (b *Builder) buildParticle(particle model.Particle, parentPath string, depth int, stack map[string]bool, node *doctree.Node) {
	switch typed := particle.(type) {
	case *model.ElementDecl:
		path := parentPath + "/" + typed.Name.Local
		count := b.occursCount(typed, path)
		for i := 0; i < count; i++ {
			node.AddChild(b.buildElement(typed, path, depth+1, stack))
		}
	case *model.ModelGroup:
		b.buildGroup(typed, parentPath, depth, stack, node)
	}
}

// occursCount resolves how many copies of an element to materialize. A user
// override is clamped to [minOccurs, maxRepeat]; otherwise multi-occurrence
// elements get the configured default count and everything else exactly
// minOccurs copies. Counts are never random so runs are reproducible.
func (b *Builder) occursCount(decl *model.ElementDecl, path string) int {
	// maxOccurs="0" prohibits the element outright
	if decl.MaxOccurs == 0 {
		return 0
	}
	upper := b.cfg.MaxRepeat
	if decl.MaxOccurs != model.UnboundedOccurs && decl.MaxOccurs < upper {
		upper = decl.MaxOccurs
	}

	if override, ok := b.cfg.Repeats[path]; ok {
		return clamp(override, decl.MinOccurs, max(upper, decl.MinOccurs))
	}
	if decl.IsOptional() && !b.includeOptional(path) {
		return 0
	}
	if decl.IsMulti() && b.cfg.Mode != ModeMinimal {
		return clamp(b.cfg.DefaultRepeat, max(decl.MinOccurs, 1), max(upper, 1))
	}
	return max(decl.MinOccurs, 1)
}

// includeOptional decides whether an optional particle at path is
// materialized under the current mode.
func (b *Builder) includeOptional(path string) bool {
	switch b.cfg.Mode {
	case ModeMinimal:
		return false
	case ModeCustom:
		return b.pathListed(path)
	default:
		return true
	}
}

// pathListed reports whether any override names the path or a descendant of
// it, which in custom mode opts the subtree in.
func (b *Builder) pathListed(path string) bool {
	for listed := range b.cfg.Repeats {
		if listed == path || strings.HasPrefix(listed, path+"/") {
			return true
		}
	}
	for listed := range b.cfg.Values {
		if listed == path || strings.HasPrefix(listed, path+"/") {
			return true
		}
	}
	return false
}

func (b *Builder) buildAttributes(ct *model.ComplexType, path string, node *doctree.Node) {
	for _, attr := range collectAttributes(ct) {
		if attr.Use == model.UseProhibited {
			continue
		}
		attrPath := path + "/@" + attr.Name.Local
		override, hasOverride := b.cfg.Values[attrPath]
		if attr.Use != model.UseRequired && !hasOverride && !b.attributeIncluded() {
			continue
		}
		node.SetAttr(attr.Name.Local, b.attributeValue(attr, override, hasOverride))
	}
}

func (b *Builder) attributeIncluded() bool {
	return b.cfg.Mode == ModeComplete
}

func (b *Builder) attributeValue(attr *model.AttributeDecl, override string, hasOverride bool) string {
	switch {
	case attr.Fixed != "":
		return attr.Fixed
	case hasOverride:
		return override
	case attr.Default != "":
		return attr.Default
	}
	cs := constraint.Extract(attr.Type)
	gen := valuegen.New(attr.Type, cs, b.state)
	return gen.Generate(attr.Name.Local, cs).Lexical
}

// collectAttributes gathers attribute declarations from the type and its
// complex base chain, base attributes first.
func collectAttributes(ct *model.ComplexType) []*model.AttributeDecl {
	var attrs []*model.AttributeDecl
	for depth := 0; ct != nil && depth < 16; depth++ {
		attrs = append(append([]*model.AttributeDecl{}, ct.Attributes...), attrs...)
		base, ok := model.AsComplexType(ct.ResolvedBase)
		if !ok {
			break
		}
		ct = base
	}
	return attrs
}

// cycleKey identifies a recursion frame by element name and type identity.
// Named types key by qualified name; anonymous types by pointer identity,
// which is stable within one run.
func cycleKey(decl *model.ElementDecl) string {
	if decl.Type == nil {
		return decl.Name.Local
	}
	name := decl.Type.Name()
	if !name.IsZero() {
		return decl.Name.Local + "|" + name.String()
	}
	return decl.Name.Local + "|" + fmt.Sprintf("%p", decl.Type)
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
