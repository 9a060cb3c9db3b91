// Package config loads analyzer settings from YAML or TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/sirkon/irrelevant/internal/directive"
	"github.com/sirkon/irrelevant/internal/dispatch"
)

// Config of the analyzer.
type Config struct {
	RequireReason             bool `yaml:"require-reason" toml:"require-reason"`
	StrictTypes               bool `yaml:"strict-types" toml:"strict-types"`
	RequireTargetInAssumption bool `yaml:"require-target-in-assumption" toml:"require-target-in-assumption"`

	// Directives are project functions behaving like directives, usually wrappers over them.
	Directives []DirectiveSpec `yaml:"directives" toml:"directives"`

	// Qualifiers are project functions behaving like qualifier constructors.
	Qualifiers []QualifierSpec `yaml:"qualifiers" toml:"qualifiers"`
}

// DirectiveSpec registers a custom directive.
//
//	ref: '"example.com/kit/assume".Ignore'
//	kind: warn
type DirectiveSpec struct {
	Ref  directive.Reference `yaml:"ref" toml:"ref"`
	Kind directive.Entry     `yaml:"kind" toml:"kind"`
}

// QualifierSpec registers a custom qualifier constructor.
type QualifierSpec struct {
	Ref  directive.Reference     `yaml:"ref" toml:"ref"`
	Kind directive.QualifierFunc `yaml:"kind" toml:"kind"`
}

// Load reads the config file, its format is chosen by the extension.
func Load(path string) (*Config, error) {
	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}

		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}

	case ".toml":
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
		if keys := meta.Undecoded(); len(keys) > 0 {
			return nil, fmt.Errorf("decode config %s: unknown key %s", path, keys[0])
		}

	default:
		return nil, fmt.Errorf("unsupported config format %q of %s", ext, path)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	for i, d := range c.Directives {
		if d.Ref.Name == "" {
			return fmt.Errorf("directives[%d]: missing ref", i)
		}
		if d.Kind == (directive.Entry{}) {
			return fmt.Errorf("directives[%d]: missing kind of %s", i, d.Ref)
		}
	}

	for i, q := range c.Qualifiers {
		if q.Ref.Name == "" {
			return fmt.Errorf("qualifiers[%d]: missing ref", i)
		}
		if q.Kind == 0 {
			return fmt.Errorf("qualifiers[%d]: missing kind of %s", i, q.Ref)
		}
	}

	return nil
}

// Options returns dispatch switches. Nil config means defaults.
func (c *Config) Options() dispatch.Options {
	if c == nil {
		return dispatch.Options{}
	}

	return dispatch.Options{
		RequireReason:             c.RequireReason,
		StrictTypes:               c.StrictTypes,
		RequireTargetInAssumption: c.RequireTargetInAssumption,
	}
}

// Known returns the table of known directives extended with custom ones.
func (c *Config) Known() *directive.Known {
	if c == nil {
		return directive.NewKnown(nil, nil)
	}

	directives := make(map[directive.Reference]directive.Entry, len(c.Directives))
	for _, d := range c.Directives {
		directives[d.Ref] = d.Kind
	}
	qualifiers := make(map[directive.Reference]directive.QualifierFunc, len(c.Qualifiers))
	for _, q := range c.Qualifiers {
		qualifiers[q.Ref] = q.Kind
	}

	return directive.NewKnown(directives, qualifiers)
}
