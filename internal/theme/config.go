// Package theme resolves author-supplied seed configs into complete,
// immutable themes: ramps, elevation layers, players, shadows and syntax
// colors.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNameRequired is returned when a theme config has no name.
	ErrNameRequired = errors.New("theme name is required")
	// ErrNeutralRequired is returned when a config supplies neither a
	// neutral anchor nor an explicit neutral stop list.
	ErrNeutralRequired = errors.New("theme needs a neutral color or neutral_stops")
	// ErrConfigNotFound is returned when no config matches a requested name.
	ErrConfigNotFound = errors.New("theme config not found")
)

// ValidationError describes an invalid field in a theme config.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("theme %s: %s", e.Field, e.Message)
}

// Appearance is the light/dark flag of a theme.
type Appearance string

// The two appearances.
const (
	AppearanceLight Appearance = "light"
	AppearanceDark  Appearance = "dark"
)

// License carries packaging metadata; the compiler passes it through
// untouched.
type License struct {
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	URL  string `yaml:"url,omitempty" json:"url,omitempty"`
	File string `yaml:"file,omitempty" json:"file,omitempty"`
}

// ColorInput provides the seed colors: either 9 named anchors, or an
// explicit neutral stop list plus the 8 chromatic anchors.
type ColorInput struct {
	Neutral      string   `yaml:"neutral,omitempty"`
	NeutralStops []string `yaml:"neutral_stops,omitempty"`
	Red          string   `yaml:"red"`
	Orange       string   `yaml:"orange"`
	Yellow       string   `yaml:"yellow"`
	Green        string   `yaml:"green"`
	Cyan         string   `yaml:"cyan"`
	Blue         string   `yaml:"blue"`
	Violet       string   `yaml:"violet"`
	Magenta      string   `yaml:"magenta"`
}

// SyntaxOverride is a partial highlight style; nil fields inherit the
// computed default.
type SyntaxOverride struct {
	Color     *string `yaml:"color,omitempty"`
	Weight    *string `yaml:"weight,omitempty"`
	Italic    *bool   `yaml:"italic,omitempty"`
	Underline *bool   `yaml:"underline,omitempty"`
}

// Override holds the author-supplied partial overrides.
type Override struct {
	Syntax map[string]SyntaxOverride `yaml:"syntax,omitempty"`
}

// Config is the author-facing theme input.
type Config struct {
	Name       string     `yaml:"name"`
	Appearance Appearance `yaml:"appearance"`
	Author     string     `yaml:"author,omitempty"`
	License    License    `yaml:"license,omitempty"`
	Color      ColorInput `yaml:"color"`
	Override   Override   `yaml:"override,omitempty"`
	Source     string     `yaml:"-"` // file path or "builtin"
}

// Validate checks the config for structural problems. Hex values are parsed
// later during theme construction; validation covers presence and shape.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrNameRequired
	}
	if c.Appearance != AppearanceLight && c.Appearance != AppearanceDark {
		return &ValidationError{
			Field:   "appearance",
			Message: fmt.Sprintf("must be %q or %q, got %q", AppearanceLight, AppearanceDark, c.Appearance),
		}
	}
	if c.Color.Neutral == "" && len(c.Color.NeutralStops) == 0 {
		return ErrNeutralRequired
	}
	if len(c.Color.NeutralStops) == 1 {
		return &ValidationError{
			Field:   "color.neutral_stops",
			Message: "needs at least 2 stops",
		}
	}
	for _, anchor := range []struct {
		field string
		value string
	}{
		{"red", c.Color.Red},
		{"orange", c.Color.Orange},
		{"yellow", c.Color.Yellow},
		{"green", c.Color.Green},
		{"cyan", c.Color.Cyan},
		{"blue", c.Color.Blue},
		{"violet", c.Color.Violet},
		{"magenta", c.Color.Magenta},
	} {
		if anchor.value == "" {
			return &ValidationError{
				Field:   "color." + anchor.field,
				Message: "anchor color is required",
			}
		}
	}
	return nil
}

// IsLight reports whether the config asks for a light-appearance theme.
func (c *Config) IsLight() bool {
	return c.Appearance == AppearanceLight
}
