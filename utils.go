package markup

import "strings"

// indent adds prefix to every line which has anything but whitespaces.
func indent(text, prefix string) string {
	lines := strings.SplitAfter(text, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		lines[i] = prefix + line
	}

	return strings.Join(lines, "")
}
