package ngcorex

import (
	"fmt"

	"github.com/ngcorex/ngcorex/internal/cssvalue"
	"github.com/ngcorex/ngcorex/internal/tokens"
)

const colorFormatFix = `Allowed formats:
- Hex: #RGB or #RRGGBB
- rgb(r, g, b)
- rgba(r, g, b, a)

Examples:
- "#2563eb"
- "rgb(37, 99, 235)"
- "rgba(37, 99, 235, 0.8)"`

// checkColors validates every palette: shade keys must be numeric and every
// shade a hex, rgb() or rgba() string. Configuration keys live under
// "colors." while rule names use the "color." prefix.
func (r *constraintRunner) checkColors(tree *tokens.Map) error {
	colors, ok, err := r.section(tree, CategoryColors, CategoryColors, "color")
	if !ok {
		return err
	}

	for _, palette := range colors.Keys() {
		node, _ := colors.Get(palette)
		shades, ok := node.Map()
		if !ok {
			err := r.violation(
				r.config.Level("colors.type", LevelError),
				"color.type",
				"colors."+palette,
				node.Text(),
				fmt.Sprintf("Color scale %q must be an object of shade keys.", palette),
				fmt.Sprintf(`Change colors.%s to an object like { "500": "#2563eb" }.`, palette),
			)
			if err != nil {
				return err
			}
			continue
		}

		for _, shade := range shades.Keys() {
			if cssvalue.IsUnsignedInteger(shade) {
				continue
			}
			err := r.violation(
				r.config.Level("colors.shadeKey", LevelError),
				"color.shade.key",
				"colors."+palette+"."+shade,
				shade,
				fmt.Sprintf("Color scale %q contains non-numeric shade key %q.", palette, shade),
				"Use numeric shade keys like 50, 100, 200, ..., 900.",
			)
			if err != nil {
				return err
			}
		}

		for _, shade := range shades.Keys() {
			v, _ := shades.Get(shade)
			path := "colors." + palette + "." + shade

			value, ok := v.Str()
			if !ok {
				err := r.violation(
					r.config.Level("colors.type", LevelError),
					"color.type",
					path,
					v.Text(),
					fmt.Sprintf("Token %s is not a string.", path),
					fmt.Sprintf("Change %s to a valid color string.", path),
				)
				if err != nil {
					return err
				}
				continue
			}

			if cssvalue.IsStrictColor(value) {
				continue
			}
			err := r.violation(
				r.config.Level("colors.format", LevelError),
				"color.format",
				path,
				value,
				fmt.Sprintf("Token %s has invalid value %q.", path, value),
				colorFormatFix,
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
