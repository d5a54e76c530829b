package doctree

import (
	"strings"
	"testing"
)

func sampleTree() *Node {
	root := &Node{Name: "Booking"}
	root.SetAttr("version", "2.1")

	ref := &Node{Name: "Reference"}
	refValue := TextValue("REF_1")
	ref.Value = &refValue
	root.AddChild(ref)

	price := &Node{Name: "Price"}
	price.SetAttr("currency", "USD")
	priceValue := Value{Kind: Decimal, Lexical: "250.75"}
	price.Value = &priceValue
	root.AddChild(price)

	return root
}

func TestFind(t *testing.T) {
	root := sampleTree()
	if root.Find("Booking") != root {
		t.Fatal("Find should match the node itself")
	}
	price := root.Find("Price")
	if price == nil || price.Value.Lexical != "250.75" {
		t.Fatalf("Find missed a descendant: %+v", price)
	}
	if root.Find("Missing") != nil {
		t.Fatal("Find should return nil for unknown names")
	}
}

func TestWalkOrderAndStop(t *testing.T) {
	root := sampleTree()

	var visited []string
	root.Walk(func(n *Node) bool {
		visited = append(visited, n.Name)
		return true
	})
	want := []string{"Booking", "Reference", "Price"}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited %v, want %v", visited, want)
		}
	}

	count := 0
	root.Walk(func(n *Node) bool {
		count++
		return false
	})
	if count != 1 {
		t.Fatalf("walk should stop after the first false, visited %d", count)
	}
}

func TestIsLeaf(t *testing.T) {
	root := sampleTree()
	if root.IsLeaf() {
		t.Fatal("node with children is not a leaf")
	}
	if !root.Find("Reference").IsLeaf() {
		t.Fatal("value-carrying node without children is a leaf")
	}
}

func TestRenderXML(t *testing.T) {
	got, err := RenderXMLString(sampleTree())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "<?xml") {
		t.Fatalf("missing XML declaration:\n%s", got)
	}
	for _, want := range []string{
		`<Booking version="2.1">`,
		"  <Reference>REF_1</Reference>\n",
		`  <Price currency="USD">250.75</Price>` + "\n",
		"</Booking>\n",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRenderXMLEscapes(t *testing.T) {
	node := &Node{Name: "Note"}
	value := TextValue(`fish & <chips> "daily"`)
	node.Value = &value
	node.SetAttr("tag", `a<b&"c"`)

	got, err := RenderXMLString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(got, "fish & <chips>") {
		t.Fatalf("text content not escaped:\n%s", got)
	}
	if !strings.Contains(got, "fish &amp; &lt;chips&gt;") {
		t.Fatalf("expected escaped text content:\n%s", got)
	}
	if !strings.Contains(got, "a&lt;b&amp;") {
		t.Fatalf("expected escaped attribute value:\n%s", got)
	}
}

func TestRenderXMLMarkers(t *testing.T) {
	root := &Node{Name: "Employee"}
	root.AddChild(&Node{Name: "Manager", Marker: MarkerCycle})
	root.AddChild(&Node{Name: "Team", Marker: MarkerDepth})

	got, err := RenderXMLString(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "<Manager/><!-- cycle guard -->") {
		t.Fatalf("cycle marker not rendered:\n%s", got)
	}
	if !strings.Contains(got, "<Team/><!-- depth guard -->") {
		t.Fatalf("depth marker not rendered:\n%s", got)
	}
}

func TestRenderXMLEmptyElement(t *testing.T) {
	root := &Node{Name: "Placeholder"}
	got, err := RenderXMLString(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "<Placeholder/>") {
		t.Fatalf("empty element not self-closed:\n%s", got)
	}
}

func TestRenderXMLAttributeOnlyElement(t *testing.T) {
	node := &Node{Name: "Ref"}
	node.SetAttr("id", "Ref_1")
	node.SetAttr("kind", "primary")

	got, err := RenderXMLString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `<Ref id="Ref_1" kind="primary"/>`) {
		t.Fatalf("attributes dropped from empty-content element:\n%s", got)
	}
}

func TestRenderXMLNilRoot(t *testing.T) {
	if _, err := RenderXMLString(nil); err == nil {
		t.Fatal("expected error for nil root")
	}
}

func TestRenderXMLIndentation(t *testing.T) {
	inner := &Node{Name: "Inner"}
	leafValue := TextValue("x")
	leaf := &Node{Name: "Leaf", Value: &leafValue}
	inner.AddChild(leaf)
	root := &Node{Name: "Outer"}
	root.AddChild(inner)

	got, err := RenderXMLString(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "\n    <Leaf>x</Leaf>\n") {
		t.Fatalf("nested element not indented two levels:\n%s", got)
	}
}
