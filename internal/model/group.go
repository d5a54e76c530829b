package model

// Particle represents a content model particle.
type Particle interface {
	MinOcc() int
	MaxOcc() int
}

// GroupKind represents the kind of model group in XSD content models.
type GroupKind int

const (
	// Sequence indicates elements must appear in the specified order.
	Sequence GroupKind = iota
	// Choice indicates exactly one of the alternatives must appear.
	Choice
	// AllGroup indicates all elements may appear in any order, each at most once.
	AllGroup
)

// String returns the group kind name.
func (k GroupKind) String() string {
	switch k {
	case Sequence:
		return "sequence"
	case Choice:
		return "choice"
	case AllGroup:
		return "all"
	default:
		return "unknown"
	}
}

// ModelGroup represents a sequence, choice, or all group.
type ModelGroup struct {
	Kind      GroupKind
	Particles []Particle
	MinOccurs int
	MaxOccurs int
}

// MinOcc implements the Particle interface.
func (m *ModelGroup) MinOcc() int { return m.MinOccurs }

// MaxOcc implements the Particle interface.
func (m *ModelGroup) MaxOcc() int { return m.MaxOccurs }
