package markup

type Kind int

const (
	ElementKind Kind = iota
	SectionKind
	DocumentKind
)

type Attribute struct {
	Name  string
	Value string
}

type Node struct {
	Kind       Kind
	Tag        string
	Attributes []Attribute
	Text       string
	Single     bool // rendered as self-closing tag, text and children are ignored
	TopLevel   bool
	Children   []*Node
}

// Append adds child at the end of the node's children and returns the node, so calls can be chained.
func (n *Node) Append(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// With calls fn with the node and returns the node. It is used to build nested
// structures in the same shape as the resulting markup.
func (n *Node) With(fn func(n *Node)) *Node {
	fn(n)
	return n
}

// SetAttribute sets attribute value, underscores in the name are replaced with hyphens.
// Existing attribute keeps its position.
func (n *Node) SetAttribute(name, value string) {
	n.Attributes = setAttribute(n.Attributes, name, value)
}

func (n *Node) Attribute(name string) (string, bool) {
	name = attributeName(name)
	for _, attr := range n.Attributes {
		if attr.Name == name {
			return attr.Value, true
		}
	}

	return "", false
}

func (n *Node) String() string {
	return String(n)
}
