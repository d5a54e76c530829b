// Package loader reads an XSD document from a filesystem and builds the
// resolved schema model the generator traverses. It understands the subset
// of XSD the generator consumes; declarations outside that subset are
// ignored rather than rejected, since generation degrades gracefully on
// unresolved types.
package loader

import (
	"encoding/xml"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/jacoelho/xsdgen/internal/model"
)

// Load reads and resolves a schema from the given filesystem and location.
func Load(fsys fs.FS, location string) (*model.Schema, error) {
	if fsys == nil {
		return nil, fmt.Errorf("load schema: nil fs")
	}
	data, err := fs.ReadFile(fsys, location)
	if err != nil {
		return nil, fmt.Errorf("load schema %s: %w", location, err)
	}
	return Parse(data)
}

// Parse resolves a schema from raw XSD bytes.
func Parse(data []byte) (*model.Schema, error) {
	var doc schemaXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	r := &resolver{
		schema: model.NewSchema(doc.TargetNamespace),
		doc:    &doc,
	}
	return r.resolve()
}

// resolver builds the model in two passes: register named types first so
// forward references resolve, then link base chains, element types, and
// attribute types.
type resolver struct {
	schema *model.Schema
	doc    *schemaXML

	simpleTypes  []*model.SimpleType
	complexTypes []*model.ComplexType
	elements     []*model.ElementDecl
	attributes   []*model.AttributeDecl
	elementRefs  map[*model.ElementDecl]string
	complexBases map[*model.ComplexType]string
}

func (r *resolver) resolve() (*model.Schema, error) {
	r.elementRefs = make(map[*model.ElementDecl]string)

	for i := range r.doc.SimpleTypes {
		st, err := r.buildSimpleType(&r.doc.SimpleTypes[i], r.doc.SimpleTypes[i].Name)
		if err != nil {
			return nil, err
		}
		r.schema.Types[st.QName.Local] = st
	}
	for i := range r.doc.ComplexTypes {
		ct := r.buildComplexType(&r.doc.ComplexTypes[i], r.doc.ComplexTypes[i].Name)
		r.schema.Types[ct.QName.Local] = ct
	}
	for i := range r.doc.Elements {
		decl, err := r.buildElement(&r.doc.Elements[i])
		if err != nil {
			return nil, err
		}
		r.schema.Elements = append(r.schema.Elements, decl)
	}

	r.linkTypes()
	r.linkElementRefs()
	return r.schema, nil
}

func (r *resolver) qname(local string) model.QName {
	return model.QName{Namespace: r.schema.TargetNamespace, Local: local}
}

func (r *resolver) buildSimpleType(x *simpleTypeXML, name string) (*model.SimpleType, error) {
	restriction := &model.Restriction{}
	if x.Restriction != nil {
		restriction.Base = refQName(x.Restriction.Base)
		restriction.Facets = collectFacets(x.Restriction)
	}
	st, err := model.NewAtomicSimpleType(r.qname(name), r.schema.TargetNamespace, restriction)
	if err != nil {
		return nil, err
	}
	if x.Restriction != nil && x.Restriction.SimpleType != nil {
		base, err := r.buildSimpleType(x.Restriction.SimpleType, "")
		if err != nil {
			return nil, err
		}
		st.ResolvedBase = base
		r.simpleTypes = append(r.simpleTypes, base)
	}
	r.simpleTypes = append(r.simpleTypes, st)
	return st, nil
}

func (r *resolver) buildComplexType(x *complexTypeXML, name string) *model.ComplexType {
	ct := model.NewComplexType(r.qname(name), r.schema.TargetNamespace)
	ct.Mixed = x.Mixed
	ct.Abstract = x.Abstract
	ct.Content = r.buildGroup(firstGroup(x.Sequence, x.Choice, x.All))

	for i := range x.Attributes {
		ct.Attributes = append(ct.Attributes, r.buildAttribute(&x.Attributes[i]))
	}

	switch {
	case x.SimpleContent != nil:
		r.buildSimpleContent(ct, x.SimpleContent)
	case x.ComplexContent != nil && x.ComplexContent.Extension != nil:
		ext := x.ComplexContent.Extension
		ct.Content = r.buildGroup(firstGroup(ext.Sequence, ext.Choice, ext.All))
		for i := range ext.Attributes {
			ct.Attributes = append(ct.Attributes, r.buildAttribute(&ext.Attributes[i]))
		}
		r.deferBase(ct, ext.Base)
	}

	r.complexTypes = append(r.complexTypes, ct)
	return ct
}

// buildSimpleContent wires the text content type of a complex type. An
// extension references the base simple type directly; a restriction becomes
// an anonymous simple type carrying the declared facets.
func (r *resolver) buildSimpleContent(ct *model.ComplexType, sc *simpleContentXML) {
	switch {
	case sc.Extension != nil:
		ct.ValueTypeName = refQName(sc.Extension.Base)
		for i := range sc.Extension.Attributes {
			ct.Attributes = append(ct.Attributes, r.buildAttribute(&sc.Extension.Attributes[i]))
		}
	case sc.Restriction != nil:
		st := &model.SimpleType{
			SourceNamespace: r.schema.TargetNamespace,
			Restriction: &model.Restriction{
				Base:   refQName(sc.Restriction.Base),
				Facets: collectFacets(sc.Restriction),
			},
		}
		r.simpleTypes = append(r.simpleTypes, st)
		ct.ValueType = st
	}
}

// deferBase records a complexContent base reference for the link pass.
func (r *resolver) deferBase(ct *model.ComplexType, base string) {
	if base == "" {
		return
	}
	if r.complexBases == nil {
		r.complexBases = make(map[*model.ComplexType]string)
	}
	r.complexBases[ct] = localName(base)
}

func (r *resolver) buildGroup(x *groupXML) *model.ModelGroup {
	if x == nil {
		return nil
	}
	minOccurs, maxOccurs := parseOccurs(x.MinOccurs, x.MaxOccurs)
	group := &model.ModelGroup{
		Kind:      groupKind(x.Kind),
		MinOccurs: minOccurs,
		MaxOccurs: maxOccurs,
	}
	for _, particle := range x.Particles {
		switch {
		case particle.Element != nil:
			decl, err := r.buildElement(particle.Element)
			if err != nil {
				continue
			}
			group.Particles = append(group.Particles, decl)
		case particle.Group != nil:
			if sub := r.buildGroup(particle.Group); sub != nil {
				group.Particles = append(group.Particles, sub)
			}
		}
	}
	return group
}

func (r *resolver) buildElement(x *elementXML) (*model.ElementDecl, error) {
	minOccurs, maxOccurs := parseOccurs(x.MinOccurs, x.MaxOccurs)
	name := x.Name
	if name == "" && x.Ref != "" {
		name = localName(x.Ref)
	}
	decl := &model.ElementDecl{
		Name:      r.qname(name),
		MinOccurs: minOccurs,
		MaxOccurs: maxOccurs,
		Nillable:  x.Nillable,
		Default:   x.Default,
		Fixed:     x.Fixed,
	}
	switch {
	case x.Ref != "":
		r.elementRefs[decl] = localName(x.Ref)
	case x.Type != "":
		decl.TypeName = refQName(x.Type)
	case x.ComplexType != nil:
		decl.Type = r.buildComplexType(x.ComplexType, "")
	case x.SimpleType != nil:
		st, err := r.buildSimpleType(x.SimpleType, "")
		if err != nil {
			return nil, err
		}
		decl.Type = st
	}
	validated, err := model.NewElementDeclFromParsed(decl)
	if err != nil {
		return nil, err
	}
	r.elements = append(r.elements, validated)
	return validated, nil
}

func (r *resolver) buildAttribute(x *attributeXML) *model.AttributeDecl {
	attr := &model.AttributeDecl{
		Name:    r.qname(x.Name),
		Use:     attributeUse(x.Use),
		Default: x.Default,
		Fixed:   x.Fixed,
	}
	switch {
	case x.Type != "":
		attr.TypeName = refQName(x.Type)
	case x.SimpleType != nil:
		if st, err := r.buildSimpleType(x.SimpleType, ""); err == nil {
			attr.Type = st
		}
	}
	r.attributes = append(r.attributes, attr)
	return attr
}

// linkTypes resolves every recorded type reference against named schema
// types and built-ins. Unresolvable references stay nil; the generator
// treats them as unconstrained strings.
func (r *resolver) linkTypes() {
	for _, st := range r.simpleTypes {
		if st.ResolvedBase == nil && st.Restriction != nil && !st.Restriction.Base.IsZero() {
			st.ResolvedBase, _ = r.schema.TypeByName(st.Restriction.Base.Local)
		}
	}
	for _, ct := range r.complexTypes {
		if ct.ValueType == nil && !ct.ValueTypeName.IsZero() {
			ct.ValueType, _ = r.schema.TypeByName(ct.ValueTypeName.Local)
		}
		if base, ok := r.complexBases[ct]; ok {
			ct.ResolvedBase, _ = r.schema.TypeByName(base)
		}
	}
	for _, decl := range r.elements {
		if decl.Type == nil && !decl.TypeName.IsZero() {
			decl.Type, _ = r.schema.TypeByName(decl.TypeName.Local)
		}
	}
	for _, attr := range r.attributes {
		if attr.Type == nil && !attr.TypeName.IsZero() {
			attr.Type, _ = r.schema.TypeByName(attr.TypeName.Local)
		}
	}
}

// linkElementRefs copies type information from referenced global elements
// onto the referencing particles.
func (r *resolver) linkElementRefs() {
	for decl, ref := range r.elementRefs {
		target, ok := r.schema.ElementByName(ref)
		if !ok {
			continue
		}
		decl.Type = target.Type
		decl.TypeName = target.TypeName
		if decl.Fixed == "" {
			decl.Fixed = target.Fixed
		}
		if decl.Default == "" {
			decl.Default = target.Default
		}
	}
}

// collectFacets converts the restriction's facet declarations into model
// facets, merging enumerations into one facet in declaration order and
// skipping malformed values.
func collectFacets(x *restrictionXML) []model.Facet {
	var facets []model.Facet
	if len(x.Enumerations) > 0 {
		enum := &model.Enumeration{}
		for _, e := range x.Enumerations {
			enum.Values = append(enum.Values, e.Value)
		}
		facets = append(facets, enum)
	}
	appendFacet := func(name string, values []facetValueXML) {
		for _, v := range values {
			facet, err := model.ParseFacet(name, v.Value)
			if err != nil {
				continue
			}
			facets = append(facets, facet)
		}
	}
	appendFacet("pattern", x.Patterns)
	appendFacet("length", x.Length)
	appendFacet("minLength", x.MinLength)
	appendFacet("maxLength", x.MaxLength)
	appendFacet("minInclusive", x.MinInclusive)
	appendFacet("maxInclusive", x.MaxInclusive)
	appendFacet("minExclusive", x.MinExclusive)
	appendFacet("maxExclusive", x.MaxExclusive)
	appendFacet("totalDigits", x.TotalDigits)
	appendFacet("fractionDigits", x.FractionDigits)
	return facets
}

func firstGroup(groups ...*groupXML) *groupXML {
	for _, g := range groups {
		if g != nil {
			return g
		}
	}
	return nil
}

func groupKind(name string) model.GroupKind {
	switch name {
	case "choice":
		return model.Choice
	case "all":
		return model.AllGroup
	default:
		return model.Sequence
	}
}

func attributeUse(use string) model.AttributeUse {
	switch use {
	case "required":
		return model.UseRequired
	case "prohibited":
		return model.UseProhibited
	default:
		return model.UseOptional
	}
}

func parseOccurs(minStr, maxStr string) (minOccurs, maxOccurs int) {
	minOccurs, maxOccurs = 1, 1
	if minStr != "" {
		if n, err := strconv.Atoi(minStr); err == nil && n >= 0 {
			minOccurs = n
		}
	}
	switch {
	case maxStr == "unbounded":
		maxOccurs = model.UnboundedOccurs
	case maxStr != "":
		if n, err := strconv.Atoi(maxStr); err == nil && n >= 0 {
			maxOccurs = n
		}
	default:
		maxOccurs = max(maxOccurs, minOccurs)
	}
	return minOccurs, maxOccurs
}

// localName strips any namespace prefix from a lexical type reference.
func localName(ref string) string {
	if _, local, ok := strings.Cut(ref, ":"); ok {
		return local
	}
	return ref
}

func refQName(ref string) model.QName {
	if ref == "" {
		return model.QName{}
	}
	return model.QName{Local: localName(ref)}
}
