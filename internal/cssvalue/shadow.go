package cssvalue

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Shadow is one layer of a box-shadow value.
type Shadow struct {
	Inset   bool
	OffsetX Length
	OffsetY Length
	Blur    *Length
	Spread  *Length
	Color   string
}

// IsShadowKeyword reports whether s is a whole-value shadow keyword ("none", "inherit", ...).
func IsShadowKeyword(s string) bool {
	return IsKeyword(s, ShadowKeywords...)
}

// SplitShadowList splits a comma-separated shadow list. Commas inside
// parentheses belong to color functions and do not split.
func SplitShadowList(s string) []string {
	var parts []string
	var cur strings.Builder
	depth := 0
	for _, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				if p := strings.TrimSpace(cur.String()); p != "" {
					parts = append(parts, p)
				}
				cur.Reset()
				continue
			}
		}
		cur.WriteRune(r)
	}
	if p := strings.TrimSpace(cur.String()); p != "" {
		parts = append(parts, p)
	}
	return parts
}

// ParseShadowList parses every layer of a shadow value. Keyword values
// such as "none" yield no layers and no error.
func ParseShadowList(s string) ([]Shadow, error) {
	s = strings.TrimSpace(s)
	if IsShadowKeyword(s) {
		return nil, nil
	}
	parts := SplitShadowList(s)
	if len(parts) == 0 {
		return nil, errors.New("empty shadow value")
	}
	shadows := make([]Shadow, 0, len(parts))
	for _, p := range parts {
		sh, err := ParseShadow(p)
		if err != nil {
			return nil, err
		}
		shadows = append(shadows, sh)
	}
	return shadows, nil
}

// ParseShadow parses a single shadow layer:
//
//	[inset] <offset-x> <offset-y> [<blur>] [<spread>] [<color>]
//
// Parts may appear in any order. Lengths past the fourth, colors after the
// first and words or functions that are neither a length nor a color (such
// as var(--shadow-color)) are skipped. Only a layer with fewer than two
// lengths is rejected.
func ParseShadow(s string) (Shadow, error) {
	var sh Shadow
	var lengths []Length

	setColor := func(c string) {
		if sh.Color == "" && IsShadowColor(c) {
			sh.Color = c
		}
	}

	lexer := css.NewLexer(parse.NewInputString(s))
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				return Shadow{}, fmt.Errorf("tokenize shadow: %w", err)
			}
			break
		}

		text := string(data)
		switch tt {
		case css.NumberToken, css.DimensionToken, css.PercentageToken:
			if l, ok := ParseLength(text, ShadowUnits); ok {
				lengths = append(lengths, l)
			}
		case css.HashToken:
			setColor(text)
		case css.FunctionToken:
			fn, err := consumeFunction(lexer, text)
			if err != nil {
				return Shadow{}, err
			}
			setColor(fn)
		case css.IdentToken:
			if text == "inset" {
				sh.Inset = true
				continue
			}
			setColor(text)
		}
	}

	if len(lengths) < 2 {
		return Shadow{}, errors.New("box-shadow requires at least offset-x and offset-y values")
	}

	sh.OffsetX, sh.OffsetY = lengths[0], lengths[1]
	if len(lengths) > 2 {
		sh.Blur = &lengths[2]
	}
	if len(lengths) > 3 {
		sh.Spread = &lengths[3]
	}
	return sh, nil
}

// consumeFunction reads tokens up to the parenthesis that closes the
// function opened by name and returns the whole function text.
func consumeFunction(lexer *css.Lexer, name string) (string, error) {
	var b strings.Builder
	b.WriteString(name)
	depth := 1
	for depth > 0 {
		tt, data := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return "", fmt.Errorf("unterminated %s...)", name)
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
		}
		b.Write(data)
	}
	return b.String(), nil
}
