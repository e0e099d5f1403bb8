package ngcorex

import "strings"

// GenerateCSS renders tokens as custom property declarations inside a
// ":root" block, one per line, in the given order.
func GenerateCSS(tokens []NormalizedToken) string {
	lines := make([]string, 0, len(tokens)+2)
	lines = append(lines, ":root {")
	for _, t := range tokens {
		lines = append(lines, "  "+t.CSSVariable+": "+t.Value+";")
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n")
}

// WrapLayer wraps css in "@layer <layer> { ... }", indenting every line by
// two spaces. An empty layer returns css unchanged.
func WrapLayer(css, layer string) string {
	if layer == "" {
		return css
	}
	lines := strings.Split(css, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return "@layer " + layer + " {\n" + strings.Join(lines, "\n") + "\n}"
}
