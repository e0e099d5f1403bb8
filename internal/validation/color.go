package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ngcorex/ngcorex/internal/cssvalue"
	"github.com/ngcorex/ngcorex/internal/tokens"
)

type colorLeaf struct {
	path   []string // segments below "colors"
	value  string
	format cssvalue.ColorFormat
}

func (c colorLeaf) dotted() string {
	return "colors." + strings.Join(c.path, ".")
}

// collectColors gathers the string leaves under colors in document order.
func collectColors(m *tokens.Map, prefix []string, out []colorLeaf) []colorLeaf {
	for _, key := range m.Keys() {
		node, _ := m.Get(key)
		path := append(slices.Clone(prefix), key)
		if sub, ok := node.Map(); ok {
			out = collectColors(sub, path, out)
			continue
		}
		if v, ok := node.Str(); ok {
			out = append(out, colorLeaf{path: path, value: v, format: cssvalue.ClassifyColor(v)})
		}
	}
	return out
}

func checkColors(tree *tokens.Map, severity Severity) []Result {
	colors, ok := scale(tree, "colors")
	if !ok {
		return nil
	}
	leaves := collectColors(colors, nil, nil)

	var results []Result
	for _, leaf := range leaves {
		results = append(results, checkColorLeaf(leaf)...)
	}
	return append(results, checkColorFamilies(leaves, severity)...)
}

func checkColorLeaf(leaf colorLeaf) []Result {
	path := leaf.dotted()
	switch {
	case leaf.format == cssvalue.FormatUnknown:
		return []Result{{
			Severity:   SeverityError,
			Code:       CodeColorFormat,
			Message:    fmt.Sprintf("Invalid color format: %q", leaf.value),
			Path:       path,
			Suggestion: "Use a valid CSS color format: hex (#ffffff), rgb(255,255,255), rgba(255,255,255,1), hsl(0,0%,100%), or a named color.",
			Example:    fmt.Sprintf("// Examples:\n// %q: \"#ffffff\"\n// %q: \"rgb(255, 255, 255)\"", path, path),
		}}
	case leaf.format.IsShortHex():
		return []Result{{
			Severity:   SeverityInfo,
			Code:       CodeColorFormat,
			Message:    fmt.Sprintf("Using deprecated color format: %q", leaf.format),
			Path:       path,
			Suggestion: "Consider using the full 6-digit hex format for better precision and consistency.",
			Example: fmt.Sprintf(
				"// Change from:\n// %q: %q\n// To:\n// %q: %q",
				path, leaf.value, path, cssvalue.ExpandHex(leaf.value),
			),
		}}
	case cssvalue.ChannelsInRange(leaf.value, leaf.format):
		return nil
	case leaf.format == cssvalue.FormatRGB || leaf.format == cssvalue.FormatRGBA:
		return []Result{{
			Severity:   SeverityError,
			Code:       CodeColorFormat,
			Message:    fmt.Sprintf("Invalid RGB values in color: %q", leaf.value),
			Path:       path,
			Suggestion: "RGB values must be between 0 and 255.",
			Example:    fmt.Sprintf("// Example:\n// %q: \"rgb(255, 255, 255)\"", path),
		}}
	default:
		return []Result{{
			Severity:   SeverityError,
			Code:       CodeColorFormat,
			Message:    fmt.Sprintf("Invalid HSL values in color: %q", leaf.value),
			Path:       path,
			Suggestion: "HSL hue must be 0-360, saturation and lightness must be 0-100%.",
			Example:    fmt.Sprintf("// Example:\n// %q: \"hsl(0, 0%%, 100%%)\"", path),
		}}
	}
}

// checkColorFamilies flags palettes that mix color formats. The family is
// the first segment below colors; families with a single value are skipped.
func checkColorFamilies(leaves []colorLeaf, severity Severity) []Result {
	var order []string
	families := make(map[string][]cssvalue.ColorFormat)
	for _, leaf := range leaves {
		if len(leaf.path) < 2 || leaf.format == cssvalue.FormatUnknown {
			continue
		}
		family := leaf.path[0]
		if _, seen := families[family]; !seen {
			order = append(order, family)
		}
		families[family] = append(families[family], leaf.format)
	}

	var results []Result
	for _, family := range order {
		formats := families[family]
		if len(formats) < 2 {
			continue
		}
		distinct := make([]string, 0, len(formats))
		for _, f := range formats {
			if !slices.Contains(distinct, string(f)) {
				distinct = append(distinct, string(f))
			}
		}
		if len(distinct) < 2 {
			continue
		}
		slices.Sort(distinct)
		results = append(results, Result{
			Severity:   severity,
			Code:       CodeColorFormat,
			Message:    fmt.Sprintf("Inconsistent color formats in %q family: %s", family, strings.Join(distinct, ", ")),
			Path:       "colors." + family,
			Suggestion: "Use consistent color formats within a color family for better maintainability.",
			Example: fmt.Sprintf(
				"// Example - use hex6 format:\n// \"colors.%s.100\": \"#f3f4f6\"\n// \"colors.%s.900\": \"#111827\"",
				family, family,
			),
		})
	}
	return results
}
