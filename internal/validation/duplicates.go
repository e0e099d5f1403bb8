package validation

import (
	"fmt"

	"github.com/ngcorex/ngcorex/internal/tokens"
)

var (
	flatCategories   = []string{"spacing", "radius", "zIndex", "shadows"}
	nestedCategories = []string{"colors", "typography"}
)

// checkDuplicates reports keys that were repeated within one mapping level.
// The same key in two different categories or branches is not a duplicate.
func checkDuplicates(tree *tokens.Map, severity Severity) []Result {
	var results []Result
	for _, name := range flatCategories {
		if m, ok := scale(tree, name); ok {
			results = append(results, duplicatesAt(m, name, severity)...)
		}
	}
	for _, name := range nestedCategories {
		if m, ok := scale(tree, name); ok {
			results = append(results, nestedDuplicates(m, name, severity)...)
		}
	}
	return results
}

func nestedDuplicates(m *tokens.Map, path string, severity Severity) []Result {
	results := duplicatesAt(m, path, severity)
	for _, key := range m.Keys() {
		if sub, ok := m.GetMap(key); ok {
			results = append(results, nestedDuplicates(sub, path+"."+key, severity)...)
		}
	}
	return results
}

func duplicatesAt(m *tokens.Map, path string, severity Severity) []Result {
	var results []Result
	for _, key := range m.Duplicates() {
		at := path + "." + key
		results = append(results, Result{
			Severity:   severity,
			Code:       CodeDuplicateToken,
			Message:    fmt.Sprintf("Duplicate token name %q found in multiple locations", key),
			Path:       at,
			Suggestion: "Rename one of the tokens to avoid conflicts. Found in: " + at,
			Example:    fmt.Sprintf("// Example:\n// Rename the second %s to %q", at, key+"Alt"),
		})
	}
	return results
}
