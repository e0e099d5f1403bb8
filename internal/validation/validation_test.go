package validation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngcorex/ngcorex/internal/tokens"
)

func decode(t *testing.T, src string) *tokens.Map {
	t.Helper()
	m, err := tokens.Decode([]byte(src))
	require.NoError(t, err)
	return m
}

// only enables a single checker at warning severity.
func only(c Checker) Config {
	return Config{Enabled: map[Checker]bool{c: true}, Severity: SeverityWarning}
}

func messages(results []Result) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, string(r.Severity)+": "+r.Message)
	}
	return out
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, SeverityWarning, cfg.Severity)
	for _, c := range Checkers {
		assert.True(t, cfg.Enabled[c], "checker %s should be enabled", c)
	}
}

func TestRun_CleanTree(t *testing.T) {
	tree := decode(t, `
spacing: {xs: 0.25rem, sm: 0.5rem, md: 1rem}
colors:
  primary: {"500": "#2563eb", "600": "#1d4ed8"}
shadows:
  sm: 0 1px 2px rgba(0,0,0,0.05)
  md: 0 4px 6px rgba(0,0,0,0.1)
`)

	report := Run(tree, DefaultConfig())

	assert.True(t, report.Valid)
	assert.Empty(t, report.Results)
	assert.NotNil(t, report.Results)
	assert.Equal(t, Summary{}, report.Summary)
}

func TestRun_NonMonotonicSpacing(t *testing.T) {
	tree := decode(t, `{"spacing": {"xs": "1rem", "sm": "0.5rem"}}`)

	report := Run(tree, DefaultConfig())

	want := []Result{{
		Severity:   SeverityWarning,
		Code:       CodeScaleConsistency,
		Message:    `Non-monotonic progression in spacing scale: "sm" (0.5rem) is not greater than "xs" (1rem)`,
		Path:       "spacing.sm",
		Suggestion: `Consider adjusting the value of "sm" to be greater than "xs" for a consistent scale.`,
		Example:    "// Example:\n// spacing.xs: 1rem\n// spacing.sm: 0.5rem // Should be > 1rem",
	}}
	if diff := cmp.Diff(want, report.Results); diff != "" {
		t.Errorf("unexpected results (-want +got):\n%s", diff)
	}
	assert.True(t, report.Valid)
	assert.Equal(t, Summary{Warning: 1}, report.Summary)
}

func TestCheckScales(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "gaps below highest key",
			src:  `{"spacing": {"xs": "4px", "lg": "16px"}}`,
			want: []string{`info: Potential gaps in spacing scale: missing keys "sm", "md"`},
		},
		{
			name: "single value is not a scale",
			src:  `{"spacing": {"lg": "16px"}}`,
			want: []string{},
		},
		{
			name: "unparsable values are skipped",
			src:  `{"radius": {"sm": "2px", "md": "calc(1px + 1px)", "lg": "8px"}}`,
			want: []string{`info: Potential gaps in radius scale: missing keys "none", "xs"`},
		},
		{
			name: "numbers are magnitudes",
			src:  `{"typography": {"fontWeight": {"light": 300, "normal": 400, "bold": 700}}}`,
			want: []string{`info: Potential gaps in fontWeight scale: missing keys "thin", "medium", "semibold"`},
		},
		{
			name: "equal values are not increasing",
			src:  `{"typography": {"lineHeight": {"none": "1", "tight": "1"}}}`,
			want: []string{`warning: Non-monotonic progression in lineHeight scale: "tight" (1) is not greater than "none" (1)`},
		},
		{
			name: "non-canonical keys are ignored",
			src:  `{"spacing": {"gutter": "1px", "xs": "4px", "sm": "8px"}}`,
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Run(decode(t, tt.src), only(CheckScaleConsistency))
			if diff := cmp.Diff(tt.want, messages(report.Results)); diff != "" {
				t.Errorf("unexpected results (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckDuplicates(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantPaths []string
	}{
		{
			name:      "cross category names are independent",
			src:       `{"spacing": {"sm": "1rem"}, "radius": {"sm": "4px"}}`,
			wantPaths: []string{},
		},
		{
			name:      "same shade in two palettes",
			src:       `{"colors": {"a": {"100": "#ffffff"}, "b": {"100": "#000000"}}}`,
			wantPaths: []string{},
		},
		{
			name:      "flat category",
			src:       `{"spacing": {"sm": "1rem", "sm": "2rem"}}`,
			wantPaths: []string{"spacing.sm"},
		},
		{
			name:      "nested palette",
			src:       `{"colors": {"primary": {"500": "#ffffff", "500": "#000000"}}}`,
			wantPaths: []string{"colors.primary.500"},
		},
		{
			name:      "typography group",
			src:       `{"typography": {"fontSize": {"sm": "1rem", "sm": "2rem"}}}`,
			wantPaths: []string{"typography.fontSize.sm"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Run(decode(t, tt.src), only(CheckDuplicateTokens))
			paths := []string{}
			for _, r := range report.Results {
				assert.Equal(t, CodeDuplicateToken, r.Code)
				paths = append(paths, r.Path)
			}
			if diff := cmp.Diff(tt.wantPaths, paths); diff != "" {
				t.Errorf("unexpected duplicate paths (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckDuplicates_Message(t *testing.T) {
	report := Run(decode(t, `{"zIndex": {"modal": 10, "modal": 20}}`), only(CheckDuplicateTokens))

	require.Len(t, report.Results, 1)
	assert.Equal(t, `Duplicate token name "modal" found in multiple locations`, report.Results[0].Message)
	assert.Equal(t, SeverityWarning, report.Results[0].Severity)
}

func TestCheckColors(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "hex6", value: "#2563eb", want: []string{}},
		{name: "named", value: "rebeccapurple", want: []string{}},
		{name: "hsla", value: "hsla(200, 50%, 50%, 0.5)", want: []string{}},
		{name: "unknown", value: "notacolor", want: []string{`error: Invalid color format: "notacolor"`}},
		{name: "short hex", value: "#fff", want: []string{`info: Using deprecated color format: "hex3"`}},
		{name: "rgb out of range", value: "rgb(300, 0, 0)", want: []string{`error: Invalid RGB values in color: "rgb(300, 0, 0)"`}},
		{name: "hsl out of range", value: "hsl(400, 50%, 50%)", want: []string{`error: Invalid HSL values in color: "hsl(400, 50%, 50%)"`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := tokens.NewMap()
			shades := tokens.NewMap()
			shades.SetString("500", tt.value)
			palettes := tokens.NewMap()
			palettes.Set("primary", tokens.FromMap(shades))
			tree.Set("colors", tokens.FromMap(palettes))

			report := Run(tree, only(CheckColorFormat))
			if diff := cmp.Diff(tt.want, messages(report.Results)); diff != "" {
				t.Errorf("unexpected results (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckColors_ShortHexExample(t *testing.T) {
	report := Run(decode(t, `{"colors": {"neutral": {"0": "#fff"}}}`), only(CheckColorFormat))

	require.Len(t, report.Results, 1)
	assert.Equal(t, "colors.neutral.0", report.Results[0].Path)
	assert.Equal(t,
		"// Change from:\n// \"colors.neutral.0\": \"#fff\"\n// To:\n// \"colors.neutral.0\": \"#ffffff\"",
		report.Results[0].Example,
	)
}

func TestCheckColors_ErrorExamples(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{
			name:  "invalid format",
			value: "notacolor",
			want:  "// Examples:\n// \"colors.primary.500\": \"#ffffff\"\n// \"colors.primary.500\": \"rgb(255, 255, 255)\"",
		},
		{
			name:  "rgb out of range",
			value: "rgb(300, 0, 0)",
			want:  "// Example:\n// \"colors.primary.500\": \"rgb(255, 255, 255)\"",
		},
		{
			name:  "hsl out of range",
			value: "hsl(400, 0%, 0%)",
			want:  "// Example:\n// \"colors.primary.500\": \"hsl(0, 0%, 100%)\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Run(decode(t, `{"colors": {"primary": {"500": "`+tt.value+`"}}}`), only(CheckColorFormat))

			require.Len(t, report.Results, 1)
			assert.Equal(t, SeverityError, report.Results[0].Severity)
			assert.Equal(t, tt.want, report.Results[0].Example)
		})
	}
}

func TestCheckColors_FamilyConsistency(t *testing.T) {
	tree := decode(t, `
colors:
  primary: {"100": "#ffffff", "200": "rgb(0, 0, 0)"}
  accent: {"100": "#ff0000", "200": "#00ff00"}
  single: {"100": red}
`)

	report := Run(tree, Config{Enabled: map[Checker]bool{CheckColorFormat: true}, Severity: SeverityError})

	want := []Result{{
		Severity:   SeverityError,
		Code:       CodeColorFormat,
		Message:    `Inconsistent color formats in "primary" family: hex6, rgb`,
		Path:       "colors.primary",
		Suggestion: "Use consistent color formats within a color family for better maintainability.",
		Example:    "// Example - use hex6 format:\n// \"colors.primary.100\": \"#f3f4f6\"\n// \"colors.primary.900\": \"#111827\"",
	}}
	if diff := cmp.Diff(want, report.Results); diff != "" {
		t.Errorf("unexpected results (-want +got):\n%s", diff)
	}
	assert.False(t, report.Valid)
}

func TestCheckSpacing(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "recommended units",
			src:  `{"spacing": {"xs": "4px", "sm": "8px"}}`,
			want: []string{},
		},
		{
			name: "negative",
			src:  `{"spacing": {"xs": "-4px"}}`,
			want: []string{`warning: Negative spacing value: "-4px"`},
		},
		{
			name: "unparsable",
			src:  `{"spacing": {"xs": "auto"}}`,
			want: []string{`warning: Invalid spacing value: "auto"`},
		},
		{
			name: "unknown unit",
			src:  `{"spacing": {"xs": "4pt"}}`,
			want: []string{`warning: Invalid spacing unit: "pt"`},
		},
		{
			name: "non-recommended unit",
			src:  `{"spacing": {"xs": "1vh"}}`,
			want: []string{`info: Using non-recommended spacing unit: "vh"`},
		},
		{
			name: "mixed units",
			src:  `{"spacing": {"xs": "4px", "sm": "1rem", "md": 8, "lg": "2rem"}}`,
			want: []string{`warning: Mixed spacing units detected: px (1), rem (2), unitless (1)`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Run(decode(t, tt.src), only(CheckSpacingFormat))
			if diff := cmp.Diff(tt.want, messages(report.Results)); diff != "" {
				t.Errorf("unexpected results (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckShadows(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "keyword",
			src:  `{"shadows": {"none": "none"}}`,
			want: []string{},
		},
		{
			name: "short hex color",
			src:  `{"shadows": {"sm": "0 1px 2px #000"}}`,
			want: []string{"warning: Shadow format issues: Consider using full hex color format (hex6) for better precision"},
		},
		{
			name: "negative blur across layers",
			src:  `{"shadows": {"sm": "0 1px -2px rgba(0,0,0,0.1), 0 2px -4px #000"}}`,
			want: []string{"warning: Shadow format issues: Blur-radius should not be negative, Consider using full hex color format (hex6) for better precision"},
		},
		{
			name: "invalid",
			src:  `{"shadows": {"sm": "bogus"}}`,
			want: []string{`warning: Invalid shadow format: "bogus"`},
		},
		{
			name: "blur must grow",
			src:  `{"shadows": {"sm": "0 1px 4px rgba(0,0,0,0.1)", "md": "0 2px 2px rgba(0,0,0,0.1)"}}`,
			want: []string{`warning: Non-monotonic shadow scale: "md" blur (2px) is not greater than "sm" (4px)`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Run(decode(t, tt.src), only(CheckShadowFormat))
			if diff := cmp.Diff(tt.want, messages(report.Results)); diff != "" {
				t.Errorf("unexpected results (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckZIndex(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "keywords are skipped",
			src:  `{"zIndex": {"auto": "auto", "reset": "initial"}}`,
			want: []string{},
		},
		{
			name: "invalid",
			src:  `{"zIndex": {"top": "1.5"}}`,
			want: []string{`warning: Invalid z-index value: "1.5"`},
		},
		{
			name: "negative",
			src:  `{"zIndex": {"behind": "-1"}}`,
			want: []string{`warning: Negative z-index value: "-1"`},
		},
		{
			name: "too large",
			src:  `{"zIndex": {"top": 2147483648}}`,
			want: []string{`warning: Very large z-index value: "2147483648"`},
		},
		{
			name: "duplicate values",
			src:  `{"zIndex": {"a": 10, "b": 10}}`,
			want: []string{"warning: Multiple z-index layers have the same value: 10"},
		},
		{
			name: "layering and gaps",
			src:  `{"zIndex": {"base": 10, "modal": 5}}`,
			want: []string{
				`warning: Inconsistent layering: "modal" (5) should be greater than "base" (10)`,
				`info: Potential gaps in z-index scale: missing layers "dropdown", "sticky", "fixed", "popover", "tooltip", "toast"`,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Run(decode(t, tt.src), only(CheckZIndexLogic))
			if diff := cmp.Diff(tt.want, messages(report.Results)); diff != "" {
				t.Errorf("unexpected results (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunWithoutInfo(t *testing.T) {
	tree := decode(t, `{"colors": {"a": {"100": "#fff"}, "b": {"100": "notacolor"}}}`)

	full := Run(tree, DefaultConfig())
	require.Equal(t, Summary{Info: 1, Error: 1}, full.Summary)

	report := RunWithoutInfo(tree, DefaultConfig())

	assert.False(t, report.Valid)
	assert.Equal(t, Summary{Error: 1}, report.Summary)
	assert.Equal(t, []string{`error: Invalid color format: "notacolor"`}, messages(report.Results))
	assert.Empty(t, report.BySeverity(SeverityInfo))
}

func TestRun_DisabledCheckers(t *testing.T) {
	tree := decode(t, `{"colors": {"a": {"100": "notacolor"}}}`)

	report := Run(tree, Config{})

	assert.True(t, report.Valid)
	assert.False(t, report.HasResults())
}

func TestParseSeverity(t *testing.T) {
	assert.Equal(t, SeverityError, ParseSeverity("error", SeverityWarning))
	assert.Equal(t, SeverityInfo, ParseSeverity("info", SeverityWarning))
	assert.Equal(t, SeverityWarning, ParseSeverity("loud", SeverityWarning))
}
