package validation

import (
	"fmt"
	"strings"

	"github.com/ngcorex/ngcorex/internal/cssvalue"
	"github.com/ngcorex/ngcorex/internal/tokens"
)

const unitless = "unitless"

func checkSpacing(tree *tokens.Map, severity Severity) []Result {
	spacing, ok := scale(tree, "spacing")
	if !ok {
		return nil
	}

	var results []Result
	var unitOrder []string
	unitCounts := make(map[string]int)

	for _, key := range spacing.Keys() {
		node, _ := spacing.Get(key)
		path := "spacing." + key
		raw, ok := scalarText(node)
		if !ok {
			raw = node.Text()
		}

		l, parsed := cssvalue.SplitNumber(raw)
		if !ok || !parsed {
			results = append(results, Result{
				Severity:   severity,
				Code:       CodeSpacingFormat,
				Message:    fmt.Sprintf("Invalid spacing value: %q", raw),
				Path:       path,
				Suggestion: "Use a valid CSS spacing value: number, or number with unit (px, rem, em, etc.).",
			})
			continue
		}

		if l.Negative() {
			results = append(results, Result{
				Severity:   severity,
				Code:       CodeSpacingFormat,
				Message:    fmt.Sprintf("Negative spacing value: %q", raw),
				Path:       path,
				Suggestion: "Spacing values should typically be positive. Use negative values only for specific use cases.",
			})
		}

		if l.Unit == "" {
			countUnit(unitCounts, &unitOrder, unitless)
			continue
		}
		if !cssvalue.SpacingUnits.Has(l.Unit) {
			results = append(results, Result{
				Severity:   severity,
				Code:       CodeSpacingFormat,
				Message:    fmt.Sprintf("Invalid spacing unit: %q", l.Unit),
				Path:       path,
				Suggestion: "Use one of: " + cssvalue.SpacingUnits.String(),
			})
			continue
		}
		countUnit(unitCounts, &unitOrder, l.Unit)
		if !cssvalue.RecommendedSpacingUnits.Has(l.Unit) {
			results = append(results, Result{
				Severity:   SeverityInfo,
				Code:       CodeSpacingFormat,
				Message:    fmt.Sprintf("Using non-recommended spacing unit: %q", l.Unit),
				Path:       path,
				Suggestion: "Consider using recommended units (rem, px) for better consistency.",
			})
		}
	}

	if len(unitOrder) > 1 {
		parts := make([]string, len(unitOrder))
		for i, unit := range unitOrder {
			parts[i] = fmt.Sprintf("%s (%d)", unit, unitCounts[unit])
		}
		results = append(results, Result{
			Severity:   severity,
			Code:       CodeSpacingFormat,
			Message:    "Mixed spacing units detected: " + strings.Join(parts, ", "),
			Path:       "spacing",
			Suggestion: "Use consistent spacing units for better maintainability. Consider using rem for responsive design.",
		})
	}
	return results
}

func countUnit(counts map[string]int, order *[]string, unit string) {
	if _, ok := counts[unit]; !ok {
		*order = append(*order, unit)
	}
	counts[unit]++
}
