package markup

import "strings"

type element struct {
	classes  []string
	hasClass bool
	attrs    []Attribute
	text     string
	single   bool
	toplevel bool
}

type ElementOption func(e *element)

// Class sets class attribute to the space separated list of classes.
// Class attribute is always rendered first.
func Class(classes ...string) ElementOption {
	return func(e *element) {
		e.classes = classes
		e.hasClass = true
	}
}

// Attr adds attribute, underscores in the name are replaced with hyphens (data_image becomes data-image).
func Attr(name, value string) ElementOption {
	return func(e *element) {
		e.attrs = setAttribute(e.attrs, name, value)
	}
}

func Text(text string) ElementOption {
	return func(e *element) {
		e.text = text
	}
}

// Single makes element self-closing: <img src="..."/>.
func Single() ElementOption {
	return func(e *element) {
		e.single = true
	}
}

func TopLevel() ElementOption {
	return func(e *element) {
		e.toplevel = true
	}
}

// Element creates a generic tag.
func Element(tag string, opts ...ElementOption) *Node {
	e := element{}
	for _, opt := range opts {
		opt(&e)
	}

	var attrs []Attribute
	if e.hasClass {
		attrs = append(attrs, Attribute{Name: "class", Value: strings.Join(e.classes, " ")})
	}

	for _, attr := range e.attrs {
		attrs = setAttribute(attrs, attr.Name, attr.Value)
	}

	return &Node{
		Kind:       ElementKind,
		Tag:        tag,
		Attributes: attrs,
		Text:       e.text,
		Single:     e.single,
		TopLevel:   e.toplevel,
	}
}

// Section creates top-level container such as head or body. Section keeps its
// class attribute, but never renders attributes.
func Section(tag string, classes ...string) *Node {
	node := &Node{Kind: SectionKind, Tag: tag, TopLevel: true}
	if len(classes) > 0 {
		node.Attributes = []Attribute{{Name: "class", Value: strings.Join(classes, " ")}}
	}

	return node
}
