package validation

import (
	"fmt"
	"strings"

	"github.com/ngcorex/ngcorex/internal/cssvalue"
	"github.com/ngcorex/ngcorex/internal/tokens"
)

const maxZIndex = 2147483647

var zIndexLayers = []string{"base", "dropdown", "sticky", "fixed", "modal", "popover", "tooltip", "toast"}

var zIndexDefaults = map[string]int64{
	"base":     0,
	"dropdown": 1000,
	"sticky":   1020,
	"fixed":    1030,
	"modal":    1040,
	"popover":  1050,
	"tooltip":  1060,
	"toast":    1070,
}

func checkZIndex(tree *tokens.Map, severity Severity) []Result {
	zIndex, ok := scale(tree, "zIndex")
	if !ok {
		return nil
	}

	var results []Result
	values := make(map[string]int64)
	var valueOrder []int64
	keysByValue := make(map[int64][]string)

	for _, key := range zIndex.Keys() {
		node, _ := zIndex.Get(key)
		path := "zIndex." + key
		raw, ok := scalarText(node)
		if !ok {
			raw = node.Text()
		}
		if ok && cssvalue.IsKeyword(raw, cssvalue.ZIndexKeywords...) {
			continue
		}

		v, overflow, parsed := cssvalue.ParseInteger(raw)
		switch {
		case !ok || !parsed:
			results = append(results, Result{
				Severity:   severity,
				Code:       CodeZIndexLogic,
				Message:    fmt.Sprintf("Invalid z-index value: %q", raw),
				Path:       path,
				Suggestion: "Z-index values must be integers.",
			})
			continue
		case overflow || v > maxZIndex:
			results = append(results, Result{
				Severity:   severity,
				Code:       CodeZIndexLogic,
				Message:    fmt.Sprintf("Very large z-index value: %q", raw),
				Path:       path,
				Suggestion: "Z-index values should be reasonable. Consider using a smaller value.",
			})
			continue
		case v < 0:
			results = append(results, Result{
				Severity:   severity,
				Code:       CodeZIndexLogic,
				Message:    fmt.Sprintf("Negative z-index value: %q", raw),
				Path:       path,
				Suggestion: "Negative z-index values place elements behind their parent stacking context. Use them sparingly.",
			})
		}

		values[key] = v
		if _, seen := keysByValue[v]; !seen {
			valueOrder = append(valueOrder, v)
		}
		keysByValue[v] = append(keysByValue[v], key)
	}

	for _, v := range valueOrder {
		keys := keysByValue[v]
		if len(keys) < 2 {
			continue
		}
		results = append(results, Result{
			Severity:   severity,
			Code:       CodeZIndexLogic,
			Message:    fmt.Sprintf("Multiple z-index layers have the same value: %d", v),
			Path:       "zIndex",
			Suggestion: fmt.Sprintf("Consider using different values for each layer. Keys: %s.", strings.Join(keys, ", ")),
		})
	}

	return append(results, checkLayering(values, severity)...)
}

// checkLayering requires the canonical layers to stack upward and reports
// the canonical layers missing from a partial layering system.
func checkLayering(values map[string]int64, severity Severity) []Result {
	var present, missing []string
	for _, layer := range zIndexLayers {
		if _, ok := values[layer]; ok {
			present = append(present, layer)
		} else {
			missing = append(missing, layer)
		}
	}
	if len(present) < 2 {
		return nil
	}

	var results []Result
	for i := 1; i < len(present); i++ {
		prev, cur := present[i-1], present[i]
		if values[cur] > values[prev] {
			continue
		}
		results = append(results, Result{
			Severity: severity,
			Code:     CodeZIndexLogic,
			Message: fmt.Sprintf(
				"Inconsistent layering: %q (%d) should be greater than %q (%d)",
				cur, values[cur], prev, values[prev],
			),
			Path:       "zIndex." + cur,
			Suggestion: fmt.Sprintf("Z-index values should increase with layer depth. %s should be above %s.", cur, prev),
		})
	}

	if len(missing) > 0 {
		lines := make([]string, len(missing))
		for i, layer := range missing {
			lines[i] = fmt.Sprintf("// zIndex.%s: %d", layer, zIndexDefaults[layer])
		}
		results = append(results, Result{
			Severity:   SeverityInfo,
			Code:       CodeZIndexLogic,
			Message:    fmt.Sprintf("Potential gaps in z-index scale: missing layers %s", quoteList(missing)),
			Path:       "zIndex",
			Suggestion: "Consider adding missing z-index layers for a complete layering system.",
			Example:    "// Example:\n" + strings.Join(lines, "\n"),
		})
	}
	return results
}
