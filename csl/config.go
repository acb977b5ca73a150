package csl

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/text/language"
)

// DefaultLang is the citation locale used when none is configured.
const DefaultLang = "en-US"

// Config holds the settings used to build a Processor.
// A Config is passed by value; nothing in this module keeps a global copy.
type Config struct {
	// --- Locale ---

	// Lang is the RFC 4646 identifier of the citation locale (e.g. "en-US", "de-DE").
	Lang string `json:"lang" yaml:"lang" toml:"lang" mapstructure:"lang" jsonschema:"default=en-US" jsonschema_description:"RFC 4646 identifier of the citation locale"`

	// ForceLang makes Lang override the default locale declared by the style.
	ForceLang bool `json:"force_lang" yaml:"force_lang" toml:"force_lang" mapstructure:"force_lang" jsonschema_description:"Override the default locale of the style"`

	// LocaleDir is a directory holding locales-<lang>.xml files.
	// Empty uses the built-in locales.
	LocaleDir string `json:"locale_dir,omitempty" yaml:"locale_dir,omitempty" toml:"locale_dir,omitempty" mapstructure:"locale_dir" jsonschema_description:"Directory with locales-<lang>.xml files"`

	// --- Style ---

	// Style is either a serialized CSL style or a style name such as "ieee".
	Style string `json:"style" yaml:"style" toml:"style" mapstructure:"style" jsonschema_description:"CSL style name or serialized style"`

	// ExperimentalMode enables the experimental processor.
	ExperimentalMode bool `json:"experimental_mode" yaml:"experimental_mode" toml:"experimental_mode" mapstructure:"experimental_mode" jsonschema_description:"Use the experimental processor"`

	// --- Data ---

	// ItemsFile is a CSL-JSON (.json) or YAML (.yaml, .yml) file of citation items.
	ItemsFile string `json:"items_file,omitempty" yaml:"items_file,omitempty" toml:"items_file,omitempty" mapstructure:"items_file" jsonschema_description:"CSL-JSON or YAML file of citation items"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Lang: DefaultLang,
	}
}

// LoadFromEnv populates config fields from environment variables.
// Environment variables use the CITEKIT_ prefix and take precedence over existing values.
//
// Supported variables:
//   - CITEKIT_LANG: Citation locale
//   - CITEKIT_FORCE_LANG: Override the style locale (bool)
//   - CITEKIT_LOCALE_DIR: Locale directory
//   - CITEKIT_STYLE: Citation style
//   - CITEKIT_EXPERIMENTAL: Experimental mode (bool)
//   - CITEKIT_ITEMS_FILE: Citation items file
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("CITEKIT_LANG"); v != "" {
		c.Lang = v
	}
	if v := os.Getenv("CITEKIT_FORCE_LANG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.ForceLang = b
		}
	}
	if v := os.Getenv("CITEKIT_LOCALE_DIR"); v != "" {
		c.LocaleDir = v
	}
	if v := os.Getenv("CITEKIT_STYLE"); v != "" {
		c.Style = v
	}
	if v := os.Getenv("CITEKIT_EXPERIMENTAL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.ExperimentalMode = b
		}
	}
	if v := os.Getenv("CITEKIT_ITEMS_FILE"); v != "" {
		c.ItemsFile = v
	}
}

// FromEnv creates a Config from environment variables with defaults.
func FromEnv() Config {
	cfg := DefaultConfig()
	cfg.LoadFromEnv()
	return cfg
}

// Validate checks if the configuration is valid.
// Style is not checked here; Builder.Build requires it.
func (c *Config) Validate() error {
	if _, err := ParseLang(c.Lang); err != nil {
		return err
	}
	return nil
}

// ParseLang validates a locale identifier and returns its canonical form.
func ParseLang(lang string) (string, error) {
	if lang == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidLang)
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidLang, lang, err)
	}
	return tag.String(), nil
}

// WithLang returns a copy of the config with the specified locale.
func (c Config) WithLang(lang string) Config {
	c.Lang = lang
	return c
}

// WithForceLang returns a copy of the config with ForceLang set.
func (c Config) WithForceLang(force bool) Config {
	c.ForceLang = force
	return c
}

// WithStyle returns a copy of the config with the specified style.
func (c Config) WithStyle(style string) Config {
	c.Style = style
	return c
}

// WithExperimentalMode returns a copy of the config with ExperimentalMode set.
func (c Config) WithExperimentalMode(enabled bool) Config {
	c.ExperimentalMode = enabled
	return c
}

// WithItemsFile returns a copy of the config with the specified items file.
func (c Config) WithItemsFile(path string) Config {
	c.ItemsFile = path
	return c
}
