package ngcorex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"

	engine "github.com/ngcorex/ngcorex/internal/ngcorex"
	"github.com/ngcorex/ngcorex/internal/tokens"
)

// IgnoreFile holds gitignore-style patterns excluded from token file globs.
const IgnoreFile = ".ngcorexignore"

// loadIgnore reads IgnoreFile from dir. A missing file means nothing is
// ignored. The file is read on every scan so watch mode picks up edits.
func loadIgnore(dir string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(dir, IgnoreFile))
	if err != nil {
		return nil
	}
	return gi
}

// shouldSkipFile reports whether a glob match is excluded. Ignore rules
// only apply to paths relative to the project.
func shouldSkipFile(path string, gi *ignore.GitIgnore) bool {
	if gi == nil || filepath.IsAbs(path) {
		return false
	}
	return gi.MatchesPath(path)
}

// ExpandTokenFiles resolves token file patterns to concrete paths, in
// pattern order with each glob's matches sorted. Plain paths that do not
// exist are dropped; the token file is optional. Directories and ignored
// matches are skipped and every path appears once.
func ExpandTokenFiles(patterns []string) ([]string, error) {
	gi := loadIgnore(".")

	var files []string
	seen := make(map[string]bool)
	add := func(path string) {
		if seen[path] {
			return
		}
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return
		}
		seen[path] = true
		files = append(files, path)
	}

	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		if !hasGlobMeta(pattern) {
			add(pattern)
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid tokens-file pattern %q", pattern)).
				WithCause(err)
		}
		sort.Strings(matches)
		for _, match := range matches {
			if shouldSkipFile(match, gi) {
				continue
			}
			add(match)
		}
	}
	return files, nil
}

func hasGlobMeta(pattern string) bool {
	for _, c := range pattern {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// LoadTokenFiles decodes and shape-checks every file, then deep-merges
// them in order. No files yields nil.
func LoadTokenFiles(paths []string) (*TokenMap, error) {
	var merged *tokens.Map
	for _, path := range paths {
		m, err := LoadTokenFile(path)
		if err != nil {
			return nil, err
		}
		if merged == nil {
			merged = m
			continue
		}
		merged = tokens.Merge(merged, m)
	}
	return merged, nil
}

// LoadTokenFile reads one JSON or YAML token document.
func LoadTokenFile(path string) (*TokenMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		code := errbuilder.CodeInternal
		if os.IsNotExist(err) {
			code = errbuilder.CodeNotFound
		}
		return nil, errbuilder.New().
			WithCode(code).
			WithMsg(fmt.Sprintf("reading token file %s: %s", path, err)).
			WithCause(err)
	}

	m, err := tokens.Decode(data)
	if errors.Is(err, tokens.ErrNotMapping) {
		return nil, invalidTokenFile(path, errors.New("the file must export a JSON object at the top level"))
	}
	if err != nil {
		return nil, invalidTokenFile(path, err)
	}
	if err := checkTokenShape(m); err != nil {
		return nil, invalidTokenFile(path, err)
	}
	return m, nil
}

func invalidTokenFile(path string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("invalid token file %s: %s", path, cause)).
		WithCause(cause)
}

// checkTokenShape rejects documents the engine could only fail on later
// with a less helpful message.
func checkTokenShape(m *tokens.Map) error {
	for _, category := range []string{engine.CategorySpacing, engine.CategoryColors} {
		node, ok := m.Get(category)
		if !ok {
			continue
		}
		if _, ok := node.Map(); !ok {
			return fmt.Errorf("the %q token must be an object", category)
		}
	}

	if spacing, ok := m.GetMap(engine.CategorySpacing); ok {
		for _, key := range spacing.Keys() {
			node, _ := spacing.Get(key)
			if kind := node.Kind(); kind != tokens.KindString && kind != tokens.KindNumber {
				return fmt.Errorf("invalid spacing value for key %q: expected number or string, got %s", key, kind)
			}
		}
	}

	// Shade keys and color syntax are left to the color constraints, whose
	// levels are configurable.
	if colors, ok := m.GetMap(engine.CategoryColors); ok {
		for _, name := range colors.Keys() {
			node, _ := colors.Get(name)
			shades, ok := node.Map()
			if !ok {
				return fmt.Errorf("color %q must be an object of shade values", name)
			}
			for _, shade := range shades.Keys() {
				value, _ := shades.Get(shade)
				if _, ok := value.Str(); !ok {
					return fmt.Errorf("invalid value for %s.%s: expected a color string, got %s", name, shade, value.Kind())
				}
			}
		}
	}
	return nil
}
