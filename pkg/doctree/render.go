package doctree

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const renderIndent = "  "

// RenderXML writes the node tree as indented XML. Marker nodes render as an
// empty element followed by a comment naming the guard that produced them.
func RenderXML(w io.Writer, root *Node) error {
	if root == nil {
		return fmt.Errorf("render: nil root node")
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	return renderNode(w, root, 0)
}

// RenderXMLString renders the node tree to a string.
func RenderXMLString(root *Node) (string, error) {
	var sb strings.Builder
	if err := RenderXML(&sb, root); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func renderNode(w io.Writer, n *Node, depth int) error {
	indent := strings.Repeat(renderIndent, depth)
	if n.Marker != MarkerNone {
		comment := "cycle guard"
		if n.Marker == MarkerDepth {
			comment = "depth guard"
		}
		_, err := fmt.Fprintf(w, "%s<%s/><!-- %s -->\n", indent, n.Name, comment)
		return err
	}

	openTag, err := renderOpenTag(n)
	if err != nil {
		return err
	}

	switch {
	case len(n.Children) > 0:
		if _, err := fmt.Fprintf(w, "%s%s>\n", indent, openTag); err != nil {
			return err
		}
		for _, child := range n.Children {
			if err := renderNode(w, child, depth+1); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%s</%s>\n", indent, n.Name)
		return err
	case n.Value != nil:
		escaped, err := escape(n.Value.Lexical)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s%s>%s</%s>\n", indent, openTag, escaped, n.Name)
		return err
	default:
		// attributes still render on an element with no content
		_, err := fmt.Fprintf(w, "%s%s/>\n", indent, openTag)
		return err
	}
}

// renderOpenTag builds the open tag up to, but not including, the closing
// ">"; callers close or self-close it.
func renderOpenTag(n *Node) (string, error) {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(n.Name)
	for _, attr := range n.Attrs {
		escaped, err := escape(attr.Value)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, ` %s="%s"`, attr.Name, escaped)
	}
	return sb.String(), nil
}

func escape(s string) (string, error) {
	var sb strings.Builder
	if err := xml.EscapeText(&sb, []byte(s)); err != nil {
		return "", err
	}
	return sb.String(), nil
}
