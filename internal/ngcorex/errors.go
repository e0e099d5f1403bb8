package ngcorex

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/ngcorex/ngcorex/internal/tokens"
)

// ErrorKind classifies a BuildError.
type ErrorKind string

// Build error kinds
const (
	KindUnknownPreset          ErrorKind = "UnknownPreset"
	KindConstraintViolation    ErrorKind = "ConstraintViolation"
	KindNormalizationTypeError ErrorKind = "NormalizationTypeError"
)

// BuildError aborts a build. It carries enough context to be rendered as a
// titled message with a fix hint.
type BuildError struct {
	Kind    ErrorKind
	Rule    string // "spacing.format"; empty for non-constraint errors
	Path    string // "spacing.sm"
	Value   string
	Message string
	Fix     string
}

// Title is the first line of the rendered error.
func (e *BuildError) Title() string {
	switch e.Kind {
	case KindConstraintViolation:
		return "Constraint violation: " + e.Rule
	case KindUnknownPreset:
		return "Unknown preset"
	default:
		category, _, _ := strings.Cut(e.Path, ".")
		if category == CategoryColors {
			category = "color"
		}
		return "Invalid " + category + " token"
	}
}

func (e *BuildError) Error() string {
	var b strings.Builder
	b.WriteString(e.Title())
	b.WriteString("\n\n")
	b.WriteString(e.Message)
	if e.Fix != "" {
		b.WriteString("\n\nFix:\n")
		b.WriteString(e.Fix)
	}
	return b.String()
}

// Code maps the error kind to an errbuilder code.
func (e *BuildError) Code() errbuilder.ErrCode {
	if e.Kind == KindUnknownPreset {
		return errbuilder.CodeNotFound
	}
	return errbuilder.CodeInvalidArgument
}

// Unwrap exposes a coded errbuilder error so callers that only understand
// error codes can classify the failure.
func (e *BuildError) Unwrap() error {
	return errbuilder.New().
		WithCode(e.Code()).
		WithMsg(e.Title())
}

// normalizationError reports a token of the wrong shape. expected
// describes the wanted shape, e.g. `string (e.g. "1rem")`.
func normalizationError(path, expected string, v *tokens.Node) *BuildError {
	return &BuildError{
		Kind:  KindNormalizationTypeError,
		Path:  path,
		Value: v.Text(),
		Message: fmt.Sprintf("Token: %s\nValue: %s (%s)\nExpected: %s",
			path, v.Text(), v.Kind(), expected),
		Fix: fmt.Sprintf("Update %s in the token file or config.", path),
	}
}
