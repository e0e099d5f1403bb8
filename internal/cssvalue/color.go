package cssvalue

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// ColorFormat is the syntactic family of a color literal.
type ColorFormat string

// Color formats. FormatUnknown marks a value no pattern recognizes.
const (
	FormatUnknown ColorFormat = ""
	FormatHex3    ColorFormat = "hex3"
	FormatHex4    ColorFormat = "hex4"
	FormatHex6    ColorFormat = "hex6"
	FormatHex8    ColorFormat = "hex8"
	FormatRGB     ColorFormat = "rgb"
	FormatRGBA    ColorFormat = "rgba"
	FormatHSL     ColorFormat = "hsl"
	FormatHSLA    ColorFormat = "hsla"
	FormatNamed   ColorFormat = "named"
)

var (
	hex3Pattern = regexp.MustCompile(`^#[0-9a-fA-F]{3}$`)
	hex4Pattern = regexp.MustCompile(`^#[0-9a-fA-F]{4}$`)
	hex6Pattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	hex8Pattern = regexp.MustCompile(`^#[0-9a-fA-F]{8}$`)
	rgbPattern  = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
	rgbaPattern = regexp.MustCompile(`^rgba\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*([01]?\.?\d*)\s*\)$`)
	hslPattern  = regexp.MustCompile(`^hsl\(\s*(\d{1,3})\s*,\s*(\d{1,3})%\s*,\s*(\d{1,3})%\s*\)$`)
	hslaPattern = regexp.MustCompile(`^hsla\(\s*(\d{1,3})\s*,\s*(\d{1,3})%\s*,\s*(\d{1,3})%\s*,\s*([01]?\.?\d*)\s*\)$`)
	namePattern = regexp.MustCompile(`^[a-zA-Z]+$`)

	// the hard color rule only admits an alpha inside [0, 1]
	strictRGBA = regexp.MustCompile(`^rgba\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(0|0?\.\d+|1(\.0+)?)\s*\)$`)

	// shadow colors accept both the comma and the space/slash syntax
	looseRGB = regexp.MustCompile(`^rgba?\(\s*[\d.]+%?(\s*,\s*|\s+)[\d.]+%?(\s*,\s*|\s+)[\d.]+%?(\s*[,/]\s*[\d.]+%?)?\s*\)$`)
	looseHSL = regexp.MustCompile(`^hsla?\(\s*[\d.]+(deg|rad|grad|turn)?(\s*,\s*|\s+)[\d.]+%?(\s*,\s*|\s+)[\d.]+%?(\s*[,/]\s*[\d.]+%?)?\s*\)$`)
)

// ClassifyColor returns the format of s, or FormatUnknown.
func ClassifyColor(s string) ColorFormat {
	switch {
	case hex3Pattern.MatchString(s):
		return FormatHex3
	case hex4Pattern.MatchString(s):
		return FormatHex4
	case hex6Pattern.MatchString(s):
		return FormatHex6
	case hex8Pattern.MatchString(s):
		return FormatHex8
	case rgbPattern.MatchString(s):
		return FormatRGB
	case rgbaPattern.MatchString(s):
		return FormatRGBA
	case hslPattern.MatchString(s):
		return FormatHSL
	case hslaPattern.MatchString(s):
		return FormatHSLA
	case IsNamedColor(s):
		return FormatNamed
	default:
		return FormatUnknown
	}
}

// IsNamedColor reports whether s is a CSS color keyword such as "red" or
// "transparent".
func IsNamedColor(s string) bool {
	if !namePattern.MatchString(s) {
		return false
	}
	if strings.EqualFold(s, "currentcolor") {
		return true
	}
	_, err := csscolorparser.Parse(s)
	return err == nil
}

// IsShortHex reports whether f is one of the abbreviated hex forms.
func (f ColorFormat) IsShortHex() bool {
	return f == FormatHex3 || f == FormatHex4
}

// ChannelsInRange checks the numeric components of rgb(a) and hsl(a)
// literals: RGB channels 0-255, hue 0-360, saturation and lightness 0-100.
// Other formats always pass.
func ChannelsInRange(s string, f ColorFormat) bool {
	var m []string
	var limits [3]int
	switch f {
	case FormatRGB:
		m, limits = rgbPattern.FindStringSubmatch(s), [3]int{255, 255, 255}
	case FormatRGBA:
		m, limits = rgbaPattern.FindStringSubmatch(s), [3]int{255, 255, 255}
	case FormatHSL:
		m, limits = hslPattern.FindStringSubmatch(s), [3]int{360, 100, 100}
	case FormatHSLA:
		m, limits = hslaPattern.FindStringSubmatch(s), [3]int{360, 100, 100}
	default:
		return true
	}
	if m == nil {
		return true
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(m[i+1])
		if err != nil || v < 0 || v > limits[i] {
			return false
		}
	}
	return true
}

// ExpandHex turns #rgb or #rgba into #rrggbb. The alpha digit of the four
// digit form is dropped. Other values are returned unchanged.
func ExpandHex(s string) string {
	f := ClassifyColor(s)
	if !f.IsShortHex() {
		return s
	}
	var b strings.Builder
	b.WriteByte('#')
	for _, c := range s[1:4] {
		b.WriteRune(c)
		b.WriteRune(c)
	}
	return b.String()
}

// IsStrictColor is the grammar of the hard color rule: #rgb, #rrggbb,
// rgb() or rgba() with an alpha inside [0, 1].
func IsStrictColor(s string) bool {
	return hex3Pattern.MatchString(s) ||
		hex6Pattern.MatchString(s) ||
		rgbPattern.MatchString(s) ||
		strictRGBA.MatchString(s)
}

// IsShadowColor is the grammar for the color part of a shadow.
func IsShadowColor(s string) bool {
	switch ClassifyColor(s) {
	case FormatHex3, FormatHex4, FormatHex6, FormatHex8:
		return true
	}
	return looseRGB.MatchString(s) ||
		looseHSL.MatchString(s) ||
		IsNamedColor(s)
}
