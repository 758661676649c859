package markup

import (
	"fmt"
	"io"
	"strings"
)

const indentation = "    "

func Render(w io.Writer, node *Node) error {
	_, err := io.WriteString(w, render(node))
	return err
}

func render(node *Node) string {
	switch node.Kind {
	case DocumentKind:
		return renderWrapped("html", node.Children)
	case SectionKind:
		return renderWrapped(node.Tag, node.Children)
	case ElementKind:
		return renderElement(node)
	default:
		return ""
	}
}

// renderWrapped renders children inside of open and close tag without attributes.
func renderWrapped(tag string, children []*Node) string {
	b := strings.Builder{}
	b.WriteString("<" + tag + ">")
	renderChildren(&b, children)
	b.WriteString("\n</" + tag + ">")

	return b.String()
}

func renderChildren(b *strings.Builder, children []*Node) {
	for _, child := range children {
		b.WriteString("\n")
		b.WriteString(indent(render(child), indentation))
	}
}

func renderElement(node *Node) string {
	attrs := joinAttributes(node.Attributes)

	if node.Single {
		return fmt.Sprintf("<%s %s/>", node.Tag, attrs)
	}

	// elements without attributes are rendered compact, closing tag is written as <tag\>
	if attrs == "" {
		return fmt.Sprintf("<%s>%s<%s\\>", node.Tag, node.Text, node.Tag)
	}

	b := strings.Builder{}
	fmt.Fprintf(&b, "<%s %s>", node.Tag, attrs)

	if node.Text != "" {
		b.WriteString("\n" + indentation + node.Text)
	}

	renderChildren(&b, node.Children)
	fmt.Fprintf(&b, "\n</%s>", node.Tag)

	return b.String()
}
