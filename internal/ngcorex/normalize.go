package ngcorex

import (
	"fmt"

	"github.com/ngcorex/ngcorex/internal/tokens"
)

const cssVarPrefix = "nx"

var valueExamples = map[string]string{
	CategoryColors:     "#ffffff",
	CategoryZIndex:     "1000",
	CategoryFontWeight: "400",
	CategoryLineHeight: "1.5",
	CategoryShadows:    "0 1px 3px rgba(0,0,0,0.1)",
}

func expectString(category string) string {
	ex, ok := valueExamples[category]
	if !ok {
		ex = "1rem"
	}
	return fmt.Sprintf("string (e.g. %q)", ex)
}

func newToken(name, value string) NormalizedToken {
	return NormalizedToken{
		Name:        name,
		CSSVariable: "--" + cssVarPrefix + "-" + name,
		Value:       value,
	}
}

// NormalizeScale flattens a single scale into tokens named
// "<category>-<key>". Every leaf must be a string.
func NormalizeScale(category string, scale *tokens.Map) ([]NormalizedToken, error) {
	out := make([]NormalizedToken, 0, scale.Len())
	for _, key := range scale.Keys() {
		node, _ := scale.Get(key)
		value, ok := node.Str()
		if !ok {
			return nil, normalizationError(category+"."+key, expectString(category), node)
		}
		out = append(out, newToken(category+"-"+key, value))
	}
	return out, nil
}

// NormalizeColors flattens palettes into tokens named
// "color-<palette>-<shade>".
func NormalizeColors(colors *tokens.Map) ([]NormalizedToken, error) {
	var out []NormalizedToken
	for _, palette := range colors.Keys() {
		node, _ := colors.Get(palette)
		shades, ok := node.Map()
		if !ok {
			return nil, normalizationError("colors."+palette, expectString(CategoryColors), node)
		}
		for _, shade := range shades.Keys() {
			v, _ := shades.Get(shade)
			value, ok := v.Str()
			if !ok {
				return nil, normalizationError("colors."+palette+"."+shade, expectString(CategoryColors), v)
			}
			out = append(out, newToken("color-"+palette+"-"+shade, value))
		}
	}
	return out, nil
}

// tokenSet accumulates normalized tokens in first-seen order. Adding a
// token whose name already exists replaces the value in its original slot.
type tokenSet struct {
	index  map[string]int
	tokens []NormalizedToken
}

func newTokenSet() *tokenSet {
	return &tokenSet{index: make(map[string]int)}
}

func (s *tokenSet) add(tokens ...NormalizedToken) {
	for _, t := range tokens {
		if i, ok := s.index[t.Name]; ok {
			s.tokens[i] = t
			continue
		}
		s.index[t.Name] = len(s.tokens)
		s.tokens = append(s.tokens, t)
	}
}

func (s *tokenSet) list() []NormalizedToken {
	return s.tokens
}
