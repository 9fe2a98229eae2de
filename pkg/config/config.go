// Package config loads the lookup tables used to resolve import paths.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/siyuan-infoblox/wiseimport/pkg/errors"
	"github.com/siyuan-infoblox/wiseimport/pkg/known"
	"github.com/siyuan-infoblox/wiseimport/pkg/resolver"
	"github.com/siyuan-infoblox/wiseimport/pkg/search"
)

// Config holds the resolution tables. Zero values fall back to the built-in
// defaults.
type Config struct {
	Markers    []resolver.LayoutMarker `yaml:"markers"`
	Modules    map[string]string       `yaml:"modules"`
	Excludes   []string                `yaml:"excludes"`
	MaxResults int                     `yaml:"maxResults"`
}

// Default returns the built-in tables.
func Default() Config {
	modules := make(map[string]string, len(known.Modules))
	for name, importPath := range known.Modules {
		modules[name] = importPath
	}
	return Config{
		Markers:    resolver.DefaultMarkers(),
		Modules:    modules,
		Excludes:   append([]string(nil), search.DefaultExcludes...),
		MaxResults: search.DefaultMaxResults,
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadConfig, err)
	}
	return Parse(data)
}

// Parse decodes YAML data on top of the defaults. Keys that are absent keep
// their default value; present keys replace it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("%s: %w", errors.ErrMsgFailedToParseConfig, err)
	}
	if file.Markers != nil {
		cfg.Markers = file.Markers
	}
	if file.Modules != nil {
		cfg.Modules = file.Modules
	}
	if file.Excludes != nil {
		cfg.Excludes = file.Excludes
	}
	if file.MaxResults > 0 {
		cfg.MaxResults = file.MaxResults
	}
	for i, marker := range cfg.Markers {
		if len(marker.Segments) == 0 {
			return cfg, fmt.Errorf(errors.ErrMsgMarkerWithoutSegments, i)
		}
	}
	return cfg, nil
}
