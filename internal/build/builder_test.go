package build

import (
	"testing"

	"github.com/jacoelho/xsdgen/internal/model"
	"github.com/jacoelho/xsdgen/pkg/doctree"
)

func element(name string, t model.Type, minOcc, maxOcc int) *model.ElementDecl {
	return &model.ElementDecl{
		Name:      model.QName{Local: name},
		Type:      t,
		MinOccurs: minOcc,
		MaxOccurs: maxOcc,
	}
}

func sequenceType(name string, particles ...model.Particle) *model.ComplexType {
	ct := model.NewComplexType(model.QName{Local: name}, "")
	ct.Content = &model.ModelGroup{
		Kind:      model.Sequence,
		Particles: particles,
		MinOccurs: 1,
		MaxOccurs: 1,
	}
	return ct
}

func stringType() model.Type {
	return model.GetBuiltin("string")
}

func countChildren(node *doctree.Node, name string) int {
	n := 0
	for _, child := range node.Children {
		if child.Name == name {
			n++
		}
	}
	return n
}

func TestBuildLeafElement(t *testing.T) {
	b := New(model.NewSchema(""), Config{})
	root := element("Description", stringType(), 1, 1)

	node, diag, err := b.Build(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.Value == nil || node.Value.Lexical == "" {
		t.Fatalf("leaf element should carry a value")
	}
	if diag.ElementsGenerated != 1 {
		t.Fatalf("expected 1 generated element, got %d", diag.ElementsGenerated)
	}
}

func TestBuildNilRoot(t *testing.T) {
	b := New(model.NewSchema(""), Config{})
	if _, _, err := b.Build(nil); err == nil {
		t.Fatal("expected error for nil root")
	}
}

func TestBuildChoiceDefaultsToFirstAlternative(t *testing.T) {
	choice := &model.ModelGroup{
		Kind: model.Choice,
		Particles: []model.Particle{
			element("Flight", stringType(), 1, 1),
			element("Train", stringType(), 1, 1),
		},
		MinOccurs: 1,
		MaxOccurs: 1,
	}
	ct := model.NewComplexType(model.QName{Local: "TripType"}, "")
	ct.Content = choice
	root := element("Trip", ct, 1, 1)

	b := New(model.NewSchema(""), Config{})
	node, _, err := b.Build(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if countChildren(node, "Flight") != 1 {
		t.Fatalf("expected the first alternative, got %+v", node.Children)
	}
	if countChildren(node, "Train") != 0 {
		t.Fatal("choice must materialize exactly one alternative")
	}
}

func TestBuildChoiceSelection(t *testing.T) {
	choice := &model.ModelGroup{
		Kind: model.Choice,
		Particles: []model.Particle{
			element("Flight", stringType(), 1, 1),
			element("Train", stringType(), 1, 1),
		},
		MinOccurs: 1,
		MaxOccurs: 1,
	}
	ct := model.NewComplexType(model.QName{Local: "TripType"}, "")
	ct.Content = choice
	root := element("Trip", ct, 1, 1)

	b := New(model.NewSchema(""), Config{Choices: map[string]string{"/Trip": "Train"}})
	node, _, err := b.Build(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if countChildren(node, "Train") != 1 || countChildren(node, "Flight") != 0 {
		t.Fatalf("expected only the selected alternative, got %+v", node.Children)
	}
}

func TestBuildChoiceUnknownSelectionFallsBack(t *testing.T) {
	choice := &model.ModelGroup{
		Kind: model.Choice,
		Particles: []model.Particle{
			element("Flight", stringType(), 1, 1),
			element("Train", stringType(), 1, 1),
		},
		MinOccurs: 1,
		MaxOccurs: 1,
	}
	ct := model.NewComplexType(model.QName{Local: "TripType"}, "")
	ct.Content = choice
	root := element("Trip", ct, 1, 1)

	b := New(model.NewSchema(""), Config{Choices: map[string]string{"/Trip": "Boat"}})
	node, _, err := b.Build(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if countChildren(node, "Flight") != 1 {
		t.Fatalf("unknown selection should fall back to the first alternative, got %+v", node.Children)
	}
}

func TestBuildCycleGuard(t *testing.T) {
	ct := model.NewComplexType(model.QName{Local: "PersonType"}, "")
	manager := element("Manager", ct, 1, 1)
	ct.Content = &model.ModelGroup{
		Kind:      model.Sequence,
		Particles: []model.Particle{manager},
		MinOccurs: 1,
		MaxOccurs: 1,
	}
	root := element("Person", ct, 1, 1)

	b := New(model.NewSchema(""), Config{})
	node, diag, err := b.Build(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diag.CycleGuardHits == 0 {
		t.Fatal("expected the cycle guard to fire")
	}
	marker := false
	node.Walk(func(n *doctree.Node) bool {
		if n.Marker == doctree.MarkerCycle {
			marker = true
		}
		return true
	})
	if !marker {
		t.Fatal("expected a cycle marker node in the tree")
	}
}

func TestBuildDepthGuard(t *testing.T) {
	leaf := element("Leaf", stringType(), 1, 1)
	inner := element("Inner", sequenceType("InnerType", leaf), 1, 1)
	middle := element("Middle", sequenceType("MiddleType", inner), 1, 1)
	root := element("Outer", sequenceType("OuterType", middle), 1, 1)

	b := New(model.NewSchema(""), Config{MaxDepth: 2})
	node, diag, err := b.Build(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diag.DepthGuardHits == 0 {
		t.Fatal("expected the depth guard to fire")
	}
	marker := false
	node.Walk(func(n *doctree.Node) bool {
		if n.Marker == doctree.MarkerDepth {
			marker = true
		}
		return true
	})
	if !marker {
		t.Fatal("expected a depth marker node in the tree")
	}
}

func TestBuildRepeatDefaultsForMultiElements(t *testing.T) {
	item := element("Item", stringType(), 1, 5)
	root := element("Order", sequenceType("OrderType", item), 1, 1)

	b := New(model.NewSchema(""), Config{})
	node, _, err := b.Build(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := countChildren(node, "Item"); got != DefaultRepeatCount {
		t.Fatalf("expected %d copies, got %d", DefaultRepeatCount, got)
	}
}

func TestBuildRepeatOverrideClamped(t *testing.T) {
	item := element("Item", stringType(), 1, 5)
	root := element("Order", sequenceType("OrderType", item), 1, 1)

	b := New(model.NewSchema(""), Config{Repeats: map[string]int{"/Order/Item": 99}})
	node, _, err := b.Build(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := countChildren(node, "Item"); got != 5 {
		t.Fatalf("override should clamp to maxOccurs 5, got %d", got)
	}
}

func TestBuildRepeatOverrideBelowMinOccurs(t *testing.T) {
	item := element("Item", stringType(), 2, model.UnboundedOccurs)
	root := element("Order", sequenceType("OrderType", item), 1, 1)

	b := New(model.NewSchema(""), Config{Repeats: map[string]int{"/Order/Item": 0}})
	node, _, err := b.Build(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := countChildren(node, "Item"); got != 2 {
		t.Fatalf("override should clamp up to minOccurs 2, got %d", got)
	}
}

func TestBuildProhibitedElement(t *testing.T) {
	legacy := element("Legacy", stringType(), 0, 0)
	root := element("Order", sequenceType("OrderType", legacy), 1, 1)

	b := New(model.NewSchema(""), Config{Mode: ModeComplete})
	node, _, err := b.Build(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := countChildren(node, "Legacy"); got != 0 {
		t.Fatalf("maxOccurs 0 element must never be materialized, got %d", got)
	}

	b = New(model.NewSchema(""), Config{Repeats: map[string]int{"/Order/Legacy": 2}})
	node, _, err = b.Build(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := countChildren(node, "Legacy"); got != 0 {
		t.Fatalf("override must not resurrect a prohibited element, got %d", got)
	}
}

func TestBuildModesOptionalElement(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want int
	}{
		{"complete includes", Config{Mode: ModeComplete}, 1},
		{"minimal excludes", Config{Mode: ModeMinimal}, 0},
		{"custom excludes unlisted", Config{Mode: ModeCustom}, 0},
		{"custom includes listed", Config{
			Mode:   ModeCustom,
			Values: map[string]string{"/Order/Note": "urgent"},
		}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note := element("Note", stringType(), 0, 1)
			root := element("Order", sequenceType("OrderType", note), 1, 1)

			b := New(model.NewSchema(""), tt.cfg)
			node, _, err := b.Build(root)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := countChildren(node, "Note"); got != tt.want {
				t.Fatalf("got %d Note children, want %d", got, tt.want)
			}
		})
	}
}

func TestBuildValueOverride(t *testing.T) {
	name := element("Name", stringType(), 1, 1)
	root := element("Passenger", sequenceType("PassengerType", name), 1, 1)

	b := New(model.NewSchema(""), Config{Values: map[string]string{"/Passenger/Name": "Alice"}})
	node, _, err := b.Build(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	child := node.Find("Name")
	if child == nil || child.Value == nil || child.Value.Lexical != "Alice" {
		t.Fatalf("expected override value, got %+v", child)
	}
}

func TestBuildFixedValueWins(t *testing.T) {
	version := element("Version", stringType(), 1, 1)
	version.Fixed = "2.1"
	root := element("Envelope", sequenceType("EnvelopeType", version), 1, 1)

	b := New(model.NewSchema(""), Config{})
	node, _, err := b.Build(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	child := node.Find("Version")
	if child == nil || child.Value == nil || child.Value.Lexical != "2.1" {
		t.Fatalf("expected fixed value, got %+v", child)
	}
}

func TestBuildDefaultValue(t *testing.T) {
	channel := element("Channel", stringType(), 1, 1)
	channel.Default = "web"
	root := element("Order", sequenceType("OrderType", channel), 1, 1)

	b := New(model.NewSchema(""), Config{})
	node, _, err := b.Build(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	child := node.Find("Channel")
	if child == nil || child.Value == nil || child.Value.Lexical != "web" {
		t.Fatalf("declared default should win over a synthesized value, got %+v", child)
	}

	b = New(model.NewSchema(""), Config{Values: map[string]string{"/Order/Channel": "mobile"}})
	node, _, err = b.Build(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	child = node.Find("Channel")
	if child == nil || child.Value == nil || child.Value.Lexical != "mobile" {
		t.Fatalf("explicit override should win over the default, got %+v", child)
	}
}

func TestBuildAttributes(t *testing.T) {
	ct := sequenceType("BookingType", element("Ref", stringType(), 1, 1))
	ct.Attributes = []*model.AttributeDecl{
		{Name: model.QName{Local: "id"}, Type: stringType(), Use: model.UseRequired},
		{Name: model.QName{Local: "channel"}, Type: stringType(), Use: model.UseOptional, Default: "web"},
		{Name: model.QName{Local: "legacy"}, Type: stringType(), Use: model.UseProhibited},
	}
	root := element("Booking", ct, 1, 1)

	attrMap := func(node *doctree.Node) map[string]string {
		m := make(map[string]string)
		for _, a := range node.Attrs {
			m[a.Name] = a.Value
		}
		return m
	}

	complete := New(model.NewSchema(""), Config{Mode: ModeComplete})
	node, _, err := complete.Build(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	attrs := attrMap(node)
	if _, ok := attrs["id"]; !ok {
		t.Fatal("required attribute missing in complete mode")
	}
	if attrs["channel"] != "web" {
		t.Fatalf("optional attribute should use its default, got %q", attrs["channel"])
	}
	if _, ok := attrs["legacy"]; ok {
		t.Fatal("prohibited attribute must never appear")
	}

	minimal := New(model.NewSchema(""), Config{Mode: ModeMinimal})
	node, _, err = minimal.Build(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	attrs = attrMap(node)
	if _, ok := attrs["id"]; !ok {
		t.Fatal("required attribute missing in minimal mode")
	}
	if _, ok := attrs["channel"]; ok {
		t.Fatal("optional attribute should be excluded in minimal mode")
	}
}

func TestBuildAttributeValueOverride(t *testing.T) {
	ct := sequenceType("BookingType", element("Ref", stringType(), 1, 1))
	ct.Attributes = []*model.AttributeDecl{
		{Name: model.QName{Local: "channel"}, Type: stringType(), Use: model.UseOptional},
	}
	root := element("Booking", ct, 1, 1)

	b := New(model.NewSchema(""), Config{
		Mode:   ModeMinimal,
		Values: map[string]string{"/Booking/@channel": "mobile"},
	})
	node, _, err := b.Build(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := ""
	for _, a := range node.Attrs {
		if a.Name == "channel" {
			found = a.Value
		}
	}
	if found != "mobile" {
		t.Fatalf("expected attribute override even in minimal mode, got %q", found)
	}
}

func TestBuildReproducible(t *testing.T) {
	currency, err := model.NewAtomicSimpleType(model.QName{Local: "CurrencyType"}, "", &model.Restriction{
		Base:   model.QName{Namespace: model.XSDNamespace, Local: "string"},
		Facets: []model.Facet{&model.Enumeration{Values: []string{"USD", "EUR", "GBP"}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	currency.ResolvedBase = model.GetBuiltin("string")

	item := element("Currency", currency, 1, 3)
	root := element("Prices", sequenceType("PricesType", item), 1, 1)

	b := New(model.NewSchema(""), Config{DefaultRepeat: 3})
	first, _, err := b.Build(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, err := b.Build(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	firstXML, err := doctree.RenderXMLString(first)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	secondXML, err := doctree.RenderXMLString(second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if firstXML != secondXML {
		t.Fatalf("runs should be identical after reset:\n%s\n---\n%s", firstXML, secondXML)
	}
}
