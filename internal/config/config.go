package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration.
type Config struct {
	TypeMappings map[string]string `yaml:"typeMappings" json:"typeMappings" toml:"typeMappings"`
	Options      Options           `yaml:"options" json:"options" toml:"options"`
}

// Options represents generation options. Class-level settings apply only
// where a request leaves the value empty.
type Options struct {
	Namespace    string   `yaml:"namespace" json:"namespace" toml:"namespace"`
	Access       string   `yaml:"access" json:"access" toml:"access"`
	ClassKind    string   `yaml:"classKind" json:"classKind" toml:"classKind"`
	FieldAccess  string   `yaml:"fieldAccess" json:"fieldAccess" toml:"fieldAccess"`
	Usings       []string `yaml:"usings" json:"usings" toml:"usings"`
	Naming       string   `yaml:"naming" json:"naming" toml:"naming"`
	Check        bool     `yaml:"check" json:"check" toml:"check"`
	OutputDir    string   `yaml:"outputDir" json:"outputDir" toml:"outputDir"`
	ExportedOnly *bool    `yaml:"exportedOnly" json:"exportedOnly" toml:"exportedOnly"`
	IncludeTypes []string `yaml:"includeTypes" json:"includeTypes" toml:"includeTypes"`
	ExcludeTypes []string `yaml:"excludeTypes" json:"excludeTypes" toml:"excludeTypes"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		TypeMappings: DefaultTypeMappings(),
		Options:      DefaultOptions(),
	}
}

// LoadFile loads configuration from a file (YAML, JSON or TOML based on extension).
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading config file")
	}

	ext := strings.ToLower(filepath.Ext(path))

	var loaded Config
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return errors.Wrap(err, "parsing YAML config")
		}
	case ".json":
		if err := json.Unmarshal(data, &loaded); err != nil {
			return errors.Wrap(err, "parsing JSON config")
		}
	case ".toml":
		if err := toml.Unmarshal(data, &loaded); err != nil {
			return errors.Wrap(err, "parsing TOML config")
		}
	default:
		// Try YAML first, then JSON
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			if err := json.Unmarshal(data, &loaded); err != nil {
				return errors.Newf("unable to parse config %s as YAML or JSON", path)
			}
		}
	}

	c.merge(&loaded)

	return nil
}

// merge merges the loaded config into the current config.
func (c *Config) merge(loaded *Config) {
	// Loaded type mappings override defaults
	for k, v := range loaded.TypeMappings {
		c.TypeMappings[k] = v
	}

	o := &loaded.Options
	if o.Namespace != "" {
		c.Options.Namespace = o.Namespace
	}
	if o.Access != "" {
		c.Options.Access = o.Access
	}
	if o.ClassKind != "" {
		c.Options.ClassKind = o.ClassKind
	}
	if o.FieldAccess != "" {
		c.Options.FieldAccess = o.FieldAccess
	}
	if o.Naming != "" {
		c.Options.Naming = o.Naming
	}
	if o.OutputDir != "" {
		c.Options.OutputDir = o.OutputDir
	}
	if o.Check {
		c.Options.Check = true
	}
	if o.ExportedOnly != nil {
		c.Options.ExportedOnly = o.ExportedOnly
	}
	if len(o.Usings) > 0 {
		c.Options.Usings = o.Usings
	}
	c.Options.IncludeTypes = o.IncludeTypes
	c.Options.ExcludeTypes = o.ExcludeTypes
}

// MapType maps a Go type spelling to its C# type using the configured mappings.
func (c *Config) MapType(goType string) string {
	if mapped, ok := c.TypeMappings[goType]; ok {
		return mapped
	}
	return goType
}

// Mapped reports whether goType has an explicit mapping.
func (c *Config) Mapped(goType string) bool {
	_, ok := c.TypeMappings[goType]
	return ok
}

// ShouldIncludeType checks if a type should be included based on config.
func (c *Config) ShouldIncludeType(name string, isExported bool) bool {
	if c.exportedOnly() && !isExported {
		return false
	}

	// Check include list (if specified, type must be in it)
	if len(c.Options.IncludeTypes) > 0 {
		found := false
		for _, t := range c.Options.IncludeTypes {
			if t == name {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	for _, t := range c.Options.ExcludeTypes {
		if t == name {
			return false
		}
	}

	return true
}

func (c *Config) exportedOnly() bool {
	return c.Options.ExportedOnly == nil || *c.Options.ExportedOnly
}
