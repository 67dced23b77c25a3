package queryset

import (
	"fmt"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/hupe1980/queryset/datefmt"
	"github.com/hupe1980/queryset/lookup"
)

// Config holds the settings that shape matching and ordering.
//
// A QuerySet carries its own Config and hands it to every QuerySet derived
// from it. There is no package-level configuration.
type Config struct {
	// Separator joins path segments. Empty means "__".
	Separator string `yaml:"separator"`
	// DateFormats are tried in order when deciding whether a string is a
	// date. Nil means datefmt.DefaultFormats; an empty, non-nil slice
	// disables date detection.
	DateFormats []string `yaml:"date_formats"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Separator:   lookup.DefaultSeparator,
		DateFormats: slices.Clone(datefmt.DefaultFormats),
	}
}

// normalized fills unset fields with their defaults. Like SetConfig, it
// never merges with a previous configuration.
func (c Config) normalized() Config {
	if c.Separator == "" {
		c.Separator = lookup.DefaultSeparator
	}
	if c.DateFormats == nil {
		c.DateFormats = slices.Clone(datefmt.DefaultFormats)
	} else {
		c.DateFormats = slices.Clone(c.DateFormats)
	}
	return c
}

// ParseConfig reads a YAML configuration document:
//
//	separator: "."
//	date_formats:
//	  - DD/MM/YYYY
//	  - YYYY-MM-DD
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return c.normalized(), nil
}
