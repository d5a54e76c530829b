package loader

import "encoding/xml"

// XML declaration structs for the schema subset the generator understands:
// global elements and named types, sequence/choice/all content models,
// attributes, simple type restrictions with facets, and simpleContent or
// complexContent extensions. Imports and includes are out of scope; facets
// the model does not know are skipped during resolution.

type schemaXML struct {
	XMLName         xml.Name         `xml:"http://www.w3.org/2001/XMLSchema schema"`
	TargetNamespace string           `xml:"targetNamespace,attr"`
	Elements        []elementXML     `xml:"element"`
	ComplexTypes    []complexTypeXML `xml:"complexType"`
	SimpleTypes     []simpleTypeXML  `xml:"simpleType"`
}

type elementXML struct {
	Name        string          `xml:"name,attr"`
	Ref         string          `xml:"ref,attr"`
	Type        string          `xml:"type,attr"`
	MinOccurs   string          `xml:"minOccurs,attr"`
	MaxOccurs   string          `xml:"maxOccurs,attr"`
	Nillable    bool            `xml:"nillable,attr"`
	Default     string          `xml:"default,attr"`
	Fixed       string          `xml:"fixed,attr"`
	ComplexType *complexTypeXML `xml:"complexType"`
	SimpleType  *simpleTypeXML  `xml:"simpleType"`
}

type complexTypeXML struct {
	Name           string             `xml:"name,attr"`
	Mixed          bool               `xml:"mixed,attr"`
	Abstract       bool               `xml:"abstract,attr"`
	Sequence       *groupXML          `xml:"sequence"`
	Choice         *groupXML          `xml:"choice"`
	All            *groupXML          `xml:"all"`
	Attributes     []attributeXML     `xml:"attribute"`
	SimpleContent  *simpleContentXML  `xml:"simpleContent"`
	ComplexContent *complexContentXML `xml:"complexContent"`
}

// groupXML is a sequence, choice, or all group. It unmarshals itself so the
// declared order of interleaved element and nested group particles is
// preserved; struct-tag slices would regroup them by name.
type groupXML struct {
	Kind      string
	MinOccurs string
	MaxOccurs string
	Particles []groupParticleXML
}

type groupParticleXML struct {
	Element *elementXML
	Group   *groupXML
}

// UnmarshalXML implements xml.Unmarshaler preserving particle order.
func (g *groupXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	g.Kind = start.Name.Local
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "minOccurs":
			g.MinOccurs = attr.Value
		case "maxOccurs":
			g.MaxOccurs = attr.Value
		}
	}
	for {
		token, err := d.Token()
		if err != nil {
			return err
		}
		switch typed := token.(type) {
		case xml.StartElement:
			switch typed.Name.Local {
			case "element":
				var element elementXML
				if err := d.DecodeElement(&element, &typed); err != nil {
					return err
				}
				g.Particles = append(g.Particles, groupParticleXML{Element: &element})
			case "sequence", "choice", "all":
				var sub groupXML
				if err := d.DecodeElement(&sub, &typed); err != nil {
					return err
				}
				g.Particles = append(g.Particles, groupParticleXML{Group: &sub})
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

type simpleTypeXML struct {
	Name        string          `xml:"name,attr"`
	Restriction *restrictionXML `xml:"restriction"`
}

type restrictionXML struct {
	Base           string          `xml:"base,attr"`
	SimpleType     *simpleTypeXML  `xml:"simpleType"`
	Patterns       []facetValueXML `xml:"pattern"`
	Enumerations   []facetValueXML `xml:"enumeration"`
	Length         []facetValueXML `xml:"length"`
	MinLength      []facetValueXML `xml:"minLength"`
	MaxLength      []facetValueXML `xml:"maxLength"`
	MinInclusive   []facetValueXML `xml:"minInclusive"`
	MaxInclusive   []facetValueXML `xml:"maxInclusive"`
	MinExclusive   []facetValueXML `xml:"minExclusive"`
	MaxExclusive   []facetValueXML `xml:"maxExclusive"`
	TotalDigits    []facetValueXML `xml:"totalDigits"`
	FractionDigits []facetValueXML `xml:"fractionDigits"`
}

type facetValueXML struct {
	Value string `xml:"value,attr"`
}

type attributeXML struct {
	Name       string         `xml:"name,attr"`
	Type       string         `xml:"type,attr"`
	Use        string         `xml:"use,attr"`
	Default    string         `xml:"default,attr"`
	Fixed      string         `xml:"fixed,attr"`
	SimpleType *simpleTypeXML `xml:"simpleType"`
}

type simpleContentXML struct {
	Extension   *extensionXML   `xml:"extension"`
	Restriction *restrictionXML `xml:"restriction"`
}

type complexContentXML struct {
	Extension *complexExtensionXML `xml:"extension"`
}

type extensionXML struct {
	Base       string         `xml:"base,attr"`
	Attributes []attributeXML `xml:"attribute"`
}

type complexExtensionXML struct {
	Base       string         `xml:"base,attr"`
	Sequence   *groupXML      `xml:"sequence"`
	Choice     *groupXML      `xml:"choice"`
	All        *groupXML      `xml:"all"`
	Attributes []attributeXML `xml:"attribute"`
}
