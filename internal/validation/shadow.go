package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ngcorex/ngcorex/internal/cssvalue"
	"github.com/ngcorex/ngcorex/internal/tokens"
)

var shadowScale = []string{"xs", "sm", "md", "lg", "xl", "2xl"}

func checkShadows(tree *tokens.Map, severity Severity) []Result {
	shadows, ok := scale(tree, "shadows")
	if !ok {
		return nil
	}

	var results []Result
	blurs := make(map[string]float64)
	for _, key := range shadows.Keys() {
		node, _ := shadows.Get(key)
		path := "shadows." + key
		raw, ok := node.Str()
		if !ok {
			raw = node.Text()
		}

		layers, err := cssvalue.ParseShadowList(raw)
		if !ok || err != nil {
			suggestion := "Shadow values must be strings."
			if err != nil {
				suggestion = err.Error()
			}
			results = append(results, Result{
				Severity:   severity,
				Code:       CodeShadowFormat,
				Message:    fmt.Sprintf("Invalid shadow format: %q", raw),
				Path:       path,
				Suggestion: suggestion,
			})
			continue
		}
		if len(layers) == 0 {
			continue
		}

		if issues := shadowIssues(layers); len(issues) > 0 {
			results = append(results, Result{
				Severity:   severity,
				Code:       CodeShadowFormat,
				Message:    "Shadow format issues: " + strings.Join(issues, ", "),
				Path:       path,
				Suggestion: "Review the shadow value for best practices.",
			})
		}
		if layers[0].Blur != nil {
			blurs[key] = layers[0].Blur.Value
		} else {
			blurs[key] = 0
		}
	}

	return append(results, checkShadowScale(blurs, severity)...)
}

func shadowIssues(layers []cssvalue.Shadow) []string {
	var issues []string
	add := func(issue string) {
		if !slices.Contains(issues, issue) {
			issues = append(issues, issue)
		}
	}
	for _, layer := range layers {
		if layer.Blur != nil && layer.Blur.Value < 0 {
			add("Blur-radius should not be negative")
		}
		if layer.Color != "" && cssvalue.ClassifyColor(layer.Color).IsShortHex() {
			add("Consider using full hex color format (hex6) for better precision")
		}
	}
	return issues
}

// checkShadowScale requires the blur of the first shadow to grow along the
// canonical size keys.
func checkShadowScale(blurs map[string]float64, severity Severity) []Result {
	var present []string
	for _, key := range shadowScale {
		if _, ok := blurs[key]; ok {
			present = append(present, key)
		}
	}
	if len(present) < 2 {
		return nil
	}

	var results []Result
	for i := 1; i < len(present); i++ {
		prev, cur := present[i-1], present[i]
		if blurs[cur] > blurs[prev] {
			continue
		}
		results = append(results, Result{
			Severity: severity,
			Code:     CodeShadowFormat,
			Message: fmt.Sprintf(
				"Non-monotonic shadow scale: %q blur (%spx) is not greater than %q (%spx)",
				cur, formatFloat(blurs[cur]), prev, formatFloat(blurs[prev]),
			),
			Path:       "shadows." + cur,
			Suggestion: "Shadow blur values should increase with scale size.",
		})
	}
	return results
}
