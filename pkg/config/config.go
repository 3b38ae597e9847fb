// Package config loads sqltidy configuration files.
//
// Configuration is YAML and every field is optional; anything unset falls
// back to the formatter defaults, so an absent or empty config file is valid.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sqltidy/sqltidy/pkg/format"
	"gopkg.in/yaml.v3"
)

// Config represents the sqltidy configuration file. Boolean settings are
// pointers so that "unset" and "false" stay distinguishable.
type Config struct {
	// Indent is the number of spaces per indent level
	Indent int `yaml:"indent,omitempty"`

	// UppercaseKeywords selects upper or lower canonical keyword casing
	UppercaseKeywords *bool `yaml:"uppercase_keywords,omitempty"`

	// AlignValues aligns the column-name annotations in INSERT output
	AlignValues *bool `yaml:"align_values,omitempty"`

	// PrettyJSON reindents JSON found inside string-literal values
	PrettyJSON *bool `yaml:"pretty_json,omitempty"`
}

// LoadConfig parses a sqltidy configuration from the provided io.Reader. The
// reader must contain YAML; an empty document yields an empty config.
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, errors.Wrap(err, "failed to unmarshal sqltidy config")
	}

	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path. This is
// a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// Options converts the config into formatter options, filling every unset
// field from format.Defaults. A nil receiver yields the defaults unchanged.
func (c *Config) Options() format.Options {
	opts := format.Defaults
	if c == nil {
		return opts
	}

	if c.Indent > 0 {
		opts.IndentSize = c.Indent
	}
	if c.UppercaseKeywords != nil {
		opts.UppercaseKeywords = *c.UppercaseKeywords
	}
	if c.AlignValues != nil {
		opts.AlignValues = *c.AlignValues
	}
	if c.PrettyJSON != nil {
		opts.PrettyJSON = *c.PrettyJSON
	}

	return opts
}
