package markup

import (
	"strings"
)

// attributeName converts name into attribute name, for example data_image becomes data-image.
func attributeName(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}

// setAttribute replaces value of existing attribute or appends a new one.
func setAttribute(attrs []Attribute, name, value string) []Attribute {
	name = attributeName(name)
	for i := range attrs {
		if attrs[i].Name == name {
			attrs[i].Value = value
			return attrs
		}
	}

	return append(attrs, Attribute{Name: name, Value: value})
}

// joinAttributes formats attributes as name="value" pairs separated by space. Values are not escaped.
func joinAttributes(attrs []Attribute) string {
	parts := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		parts = append(parts, attr.Name+`="`+attr.Value+`"`)
	}

	return strings.Join(parts, " ")
}
