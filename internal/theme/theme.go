// Package theme holds the immutable preset registry and the stylesheet
// generator. Generated CSS is a pure function of the theme: the same config
// always yields byte-identical output.
package theme

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/pagentum/pagentum/internal/model"
	pagerrors "github.com/pagentum/pagentum/pkg/errors"
)

//go:embed themes.yaml
var themesYAML []byte

type presetEntry struct {
	Key               string `yaml:"key" validate:"required"`
	model.ThemeConfig `yaml:",inline"`
}

type themesFile struct {
	Presets []presetEntry `yaml:"presets" validate:"required,min=1,dive"`
}

// Registry is the fixed set of named theme presets.
type Registry struct {
	presets []presetEntry
	byKey   map[string]int
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Default returns the registry decoded from the embedded preset file.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = parseRegistry(themesYAML)
	})
	return defaultRegistry, defaultErr
}

func parseRegistry(data []byte) (*Registry, error) {
	var file themesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, pagerrors.NewParseError("themes.yaml", err)
	}

	v := validator.New()
	if err := v.Struct(&file); err != nil {
		return nil, pagerrors.NewParseError("themes.yaml", err)
	}

	r := &Registry{
		presets: file.Presets,
		byKey:   make(map[string]int, len(file.Presets)),
	}
	for i, preset := range file.Presets {
		if _, exists := r.byKey[preset.Key]; exists {
			return nil, pagerrors.NewParseError("themes.yaml", fmt.Errorf("duplicate preset key %q", preset.Key))
		}
		r.byKey[preset.Key] = i
	}
	return r, nil
}

// Preset looks up a preset by key or display name, case-insensitively.
func (r *Registry) Preset(name string) (model.ThemeConfig, bool) {
	key := strings.ToLower(name)
	if i, ok := r.byKey[key]; ok {
		return r.presets[i].ThemeConfig, true
	}
	return model.ThemeConfig{}, false
}

// Presets returns all presets in registry order.
func (r *Registry) Presets() []model.ThemeConfig {
	out := make([]model.ThemeConfig, len(r.presets))
	for i, preset := range r.presets {
		out[i] = preset.ThemeConfig
	}
	return out
}

// DefaultTheme is the theme a new project starts with.
func (r *Registry) DefaultTheme() model.ThemeConfig {
	return r.presets[0].ThemeConfig
}

// Next returns the preset after the named one, wrapping around. Unknown names
// return the default theme. Used by the editor's theme cycling.
func (r *Registry) Next(name string) model.ThemeConfig {
	key := strings.ToLower(name)
	if i, ok := r.byKey[key]; ok {
		return r.presets[(i+1)%len(r.presets)].ThemeConfig
	}
	return r.DefaultTheme()
}
