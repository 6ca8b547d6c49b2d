// ABOUTME: Settings loading with global + project YAML config merge
// ABOUTME: Project values override global ones; unset fields fall back to defaults

package config

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Settings holds the merged configuration.
type Settings struct {
	Border       string              `yaml:"border,omitempty"`
	Theme        string              `yaml:"theme,omitempty"`
	Colors       map[string]string   `yaml:"colors,omitempty"`
	Deferred     *bool               `yaml:"deferred,omitempty"`
	Marker       string              `yaml:"marker,omitempty"`
	LogLevel     string              `yaml:"log_level,omitempty"`
	LogFile      string              `yaml:"log_file,omitempty"`
	SurfaceLimit int                 `yaml:"surface_limit,omitempty"`
	Keys         map[string][]string `yaml:"keys,omitempty"`
}

// Defaults returns the settings used when no file sets a value.
func Defaults() *Settings {
	deferred := false
	return &Settings{
		Border:   "default",
		Theme:    "default",
		Deferred: &deferred,
		Marker:   "~",
		LogLevel: "warn",
		LogFile:  DefaultLogFile(),
	}
}

// Load reads and merges global and project-local settings over the
// defaults. Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	paths := ConfigFiles(projectRoot)
	var layers [2]*Settings

	// Each file fills its own slot; no mutex is needed.
	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			s, err := loadFile(path)
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("loading %s config: %w", layerNames[i], err)
			}
			layers[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := merge(merge(Defaults(), layers[0]), layers[1])
	ResolveEnvVars(merged)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

var layerNames = [2]string{"global", "project"}

// loadFile reads Settings from a YAML file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// IsDeferred reports whether composite draws should use deferred refresh.
func (s *Settings) IsDeferred() bool {
	return s != nil && s.Deferred != nil && *s.Deferred
}

// merge overlays project settings onto global settings.
// Set project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Border != "" {
		result.Border = project.Border
	}
	if project.Theme != "" {
		result.Theme = project.Theme
	}
	if project.Deferred != nil {
		d := *project.Deferred
		result.Deferred = &d
	}
	if project.Marker != "" {
		result.Marker = project.Marker
	}
	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}
	if project.LogFile != "" {
		result.LogFile = project.LogFile
	}
	if project.SurfaceLimit != 0 {
		result.SurfaceLimit = project.SurfaceLimit
	}

	// Merge color overrides per role
	if len(project.Colors) > 0 {
		colors := make(map[string]string, len(result.Colors)+len(project.Colors))
		for k, v := range result.Colors {
			colors[k] = v
		}
		for k, v := range project.Colors {
			colors[k] = v
		}
		result.Colors = colors
	}

	// Merge key maps per action
	if len(project.Keys) > 0 {
		keys := make(map[string][]string, len(result.Keys)+len(project.Keys))
		for k, v := range result.Keys {
			keys[k] = v
		}
		for k, v := range project.Keys {
			keys[k] = v
		}
		result.Keys = keys
	}

	return &result
}
