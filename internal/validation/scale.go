package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ngcorex/ngcorex/internal/cssvalue"
	"github.com/ngcorex/ngcorex/internal/tokens"
)

// scaleOrder is the canonical key progression of one scale.
type scaleOrder struct {
	category string
	typo     bool // lives under typography
	keys     []string
}

var scaleOrders = []scaleOrder{
	{category: "spacing", keys: []string{"xs", "sm", "md", "lg", "xl", "2xl", "3xl", "4xl"}},
	{category: "radius", keys: []string{"none", "xs", "sm", "md", "lg", "xl", "2xl", "3xl", "full"}},
	{category: "fontSize", typo: true, keys: []string{"xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl", "5xl", "6xl"}},
	{category: "fontWeight", typo: true, keys: []string{"thin", "light", "normal", "medium", "semibold", "bold", "extrabold", "black"}},
	{category: "lineHeight", typo: true, keys: []string{"none", "tight", "snug", "normal", "relaxed", "loose"}},
	{category: "zIndex", keys: []string{"base", "dropdown", "sticky", "fixed", "modal", "popover", "tooltip"}},
}

type scaleEntry struct {
	key   string
	raw   string
	value float64
}

func checkScales(tree *tokens.Map, severity Severity) []Result {
	var results []Result
	for _, order := range scaleOrders {
		var m *tokens.Map
		var ok bool
		if order.typo {
			m, ok = typographyScale(tree, order.category)
		} else {
			m, ok = scale(tree, order.category)
		}
		if !ok {
			continue
		}
		results = append(results, checkScaleOrder(order, m, severity)...)
	}
	return results
}

// checkScaleOrder walks the canonical keys present in m. Values that carry
// no recognizable magnitude are skipped.
func checkScaleOrder(order scaleOrder, m *tokens.Map, severity Severity) []Result {
	var entries []scaleEntry
	highest := -1
	for i, key := range order.keys {
		node, ok := m.Get(key)
		if !ok {
			continue
		}
		raw, ok := scalarText(node)
		if !ok {
			continue
		}
		l, ok := cssvalue.ParseLength(raw, cssvalue.ScaleUnits)
		if !ok {
			continue
		}
		entries = append(entries, scaleEntry{key: key, raw: raw, value: l.Value})
		highest = i
	}
	if len(entries) < 2 {
		return nil
	}

	var results []Result
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		if cur.value-prev.value > 0 {
			continue
		}
		results = append(results, Result{
			Severity: severity,
			Code:     CodeScaleConsistency,
			Message: fmt.Sprintf(
				"Non-monotonic progression in %s scale: %q (%s) is not greater than %q (%s)",
				order.category, cur.key, cur.raw, prev.key, prev.raw,
			),
			Path:       order.category + "." + cur.key,
			Suggestion: fmt.Sprintf("Consider adjusting the value of %q to be greater than %q for a consistent scale.", cur.key, prev.key),
			Example: fmt.Sprintf(
				"// Example:\n// %s.%s: %s\n// %s.%s: %s // Should be > %s",
				order.category, prev.key, prev.raw, order.category, cur.key, cur.raw, prev.raw,
			),
		})
	}

	var missing []string
	for _, key := range order.keys[:highest] {
		if !m.Has(key) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		results = append(results, Result{
			Severity:   SeverityInfo,
			Code:       CodeScaleConsistency,
			Message:    fmt.Sprintf("Potential gaps in %s scale: missing keys %s", order.category, quoteList(missing)),
			Path:       order.category,
			Suggestion: "Consider adding the missing scale keys for a more complete scale.",
			Example:    fmt.Sprintf("// Example:\n// %s.%s: \"value\"", order.category, missing[0]),
		})
	}
	return results
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = strconv.Quote(s)
	}
	return strings.Join(quoted, ", ")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
