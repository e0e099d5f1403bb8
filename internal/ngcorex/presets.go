package ngcorex

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ngcorex/ngcorex/internal/tokens"
)

//go:embed presets/*.yaml
var builtinPresets embed.FS

// Preset is a named partial configuration merged underneath user tokens.
type Preset struct {
	Name        string
	Description string
	Tokens      *tokens.Map
}

// PresetRegistry is an immutable set of presets keyed by name.
type PresetRegistry struct {
	presets map[string]Preset
}

// NewPresetRegistry builds a registry. A later preset with the same name
// replaces an earlier one.
func NewPresetRegistry(presets ...Preset) *PresetRegistry {
	r := &PresetRegistry{presets: make(map[string]Preset, len(presets))}
	for _, p := range presets {
		r.presets[p.Name] = p
	}
	return r
}

// Names returns the registered preset names in sorted order.
func (r *PresetRegistry) Names() []string {
	names := make([]string, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Presets returns every registered preset sorted by name.
func (r *PresetRegistry) Presets() []Preset {
	out := make([]Preset, 0, len(r.presets))
	for _, name := range r.Names() {
		out = append(out, r.presets[name])
	}
	return out
}

// Lookup returns the preset registered under name. Unknown names yield a
// BuildError of kind KindUnknownPreset listing the available presets.
func (r *PresetRegistry) Lookup(name string) (Preset, error) {
	if p, ok := r.presets[name]; ok {
		return p, nil
	}
	return Preset{}, &BuildError{
		Kind:  KindUnknownPreset,
		Path:  "presets",
		Value: name,
		Message: fmt.Sprintf("Preset %q does not exist.\n\nAvailable presets:\n- %s",
			name, strings.Join(r.Names(), "\n- ")),
		Fix: "Use one of the available presets or remove it from the config file",
	}
}

// Resolve merges the named presets left to right and then user on top.
// The result never aliases any input.
func (r *PresetRegistry) Resolve(names []string, user *tokens.Map) (*tokens.Map, error) {
	resolved := tokens.NewMap()
	for _, name := range names {
		p, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}
		resolved = tokens.Merge(resolved, p.Tokens)
	}
	return tokens.Merge(resolved, user), nil
}

// ParsePreset decodes a preset document:
//
//	description: ...
//	tokens:
//	  spacing: {...}
func ParsePreset(name string, data []byte) (Preset, error) {
	var doc struct {
		Description string      `yaml:"description"`
		Tokens      *tokens.Map `yaml:"tokens"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Preset{}, fmt.Errorf("parsing preset %s: %w", name, err)
	}
	if doc.Tokens == nil {
		doc.Tokens = tokens.NewMap()
	}
	return Preset{Name: name, Description: doc.Description, Tokens: doc.Tokens}, nil
}

var defaultPresets = sync.OnceValue(func() *PresetRegistry {
	entries, err := builtinPresets.ReadDir("presets")
	if err != nil {
		panic(fmt.Sprintf("reading embedded presets: %v", err))
	}
	var presets []Preset
	for _, e := range entries {
		data, err := builtinPresets.ReadFile(path.Join("presets", e.Name()))
		if err != nil {
			panic(fmt.Sprintf("reading embedded preset %s: %v", e.Name(), err))
		}
		p, err := ParsePreset(strings.TrimSuffix(e.Name(), path.Ext(e.Name())), data)
		if err != nil {
			panic(err)
		}
		presets = append(presets, p)
	}
	return NewPresetRegistry(presets...)
})

// DefaultPresets returns the built-in registry. It contains "default".
func DefaultPresets() *PresetRegistry {
	return defaultPresets()
}
