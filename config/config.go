// Package config holds the filename restrictions a server advertises and
// the machinery to load partial overrides from YAML or JSON files.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Default restrictions, matching what a stock server advertises.
var (
	DefaultForbiddenCharacters = []string{"/", "\\"}
	DefaultForbiddenBasenames  = []string{".htaccess"}
	DefaultForbiddenExtensions = []string{".part", ".filepart"}
	DefaultForbiddenFilenames  = []string{".DS_Store", "Thumbs.db"}
)

// Config contains the filename restrictions applied by filename validation.
type Config struct {
	ForbiddenCharacters []string // Substrings a filename may not contain
	ForbiddenBasenames  []string // Reserved basenames, compared up to the first dot
	ForbiddenExtensions []string // Reserved trailing extensions
	ForbiddenFilenames  []string // Reserved full filenames
}

// ConfigOverride uses pointer fields to distinguish between unset and empty
// values when loading partial configuration.
type ConfigOverride struct {
	ForbiddenCharacters *[]string `yaml:"forbidden_characters,omitempty" json:"forbidden_characters,omitempty"`
	ForbiddenBasenames  *[]string `yaml:"forbidden_basenames,omitempty" json:"forbidden_basenames,omitempty"`
	ForbiddenExtensions *[]string `yaml:"forbidden_extensions,omitempty" json:"forbidden_extensions,omitempty"`
	ForbiddenFilenames  *[]string `yaml:"forbidden_filenames,omitempty" json:"forbidden_filenames,omitempty"`
}

// NewDefaultConfig creates a Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		ForbiddenCharacters: append([]string(nil), DefaultForbiddenCharacters...),
		ForbiddenBasenames:  append([]string(nil), DefaultForbiddenBasenames...),
		ForbiddenExtensions: append([]string(nil), DefaultForbiddenExtensions...),
		ForbiddenFilenames:  append([]string(nil), DefaultForbiddenFilenames...),
	}
}

// NewConfig creates a Config from defaults merged with override. A nil
// override yields the defaults.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config, preserving
// existing values for unset fields.
func (c *Config) Merge(override *ConfigOverride) {
	if override.ForbiddenCharacters != nil {
		c.ForbiddenCharacters = *override.ForbiddenCharacters
	}
	if override.ForbiddenBasenames != nil {
		c.ForbiddenBasenames = *override.ForbiddenBasenames
	}
	if override.ForbiddenExtensions != nil {
		c.ForbiddenExtensions = *override.ForbiddenExtensions
	}
	if override.ForbiddenFilenames != nil {
		c.ForbiddenFilenames = *override.ForbiddenFilenames
	}
}

// LoadConfigOverrideFile loads configuration overrides from a file without
// merging. Supports YAML (.yaml, .yml) and JSON (.json).
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal config file")
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal config file")
		}
	default:
		return nil, errors.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a Config by merging file overrides with
// defaults.
func NewConfigFromFile(path string) (*Config, error) {
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	return NewConfig(override), nil
}
