package theme

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/glaze-ui/glaze/internal/ramp"
)

// selectionAlpha is the opacity of a player's selection highlight.
const selectionAlpha = 0.24

// Player is one collaborator's cursor and selection color pair.
type Player struct {
	Cursor    string `json:"cursor"`
	Selection string `json:"selection"`
}

// Shadow is a resolved drop-shadow spec.
type Shadow struct {
	Blur   float64    `json:"blur"`
	Offset [2]float64 `json:"offset"`
	Color  string     `json:"color"`
}

// Shadows holds the two shadow kinds a theme defines.
type Shadows struct {
	Modal   Shadow `json:"modal"`
	Popover Shadow `json:"popover"`
}

// Theme is the fully resolved, immutable output of the pipeline. Consumers
// treat it as read-only; a theme change swaps the whole value.
type Theme struct {
	Name       string
	Appearance Appearance
	IsLight    bool
	Author     string
	License    License
	Ramps      ramp.Set
	Lowest     Layer
	Middle     Layer
	Highest    Layer
	Shadows    Shadows
	Players    [8]Player
	Syntax     map[string]HighlightStyle
}

// New resolves a validated config into a complete theme.
func New(cfg *Config, logger zerolog.Logger) (*Theme, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ramps, err := buildRampSet(cfg)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", cfg.Name, err)
	}

	t := &Theme{
		Name:       cfg.Name,
		Appearance: cfg.Appearance,
		IsLight:    cfg.IsLight(),
		Author:     cfg.Author,
		License:    cfg.License,
		Ramps:      ramps,
	}

	for _, elevation := range []Elevation{ElevationLowest, ElevationMiddle, ElevationHighest} {
		layer, err := BuildLayer(ramps, elevation)
		if err != nil {
			return nil, fmt.Errorf("theme %s: %w", cfg.Name, err)
		}
		switch elevation {
		case ElevationLowest:
			t.Lowest = layer
		case ElevationMiddle:
			t.Middle = layer
		case ElevationHighest:
			t.Highest = layer
		}
	}

	t.Shadows = buildShadows(ramps)
	t.Players = buildPlayers(ramps)

	t.Syntax, err = resolveSyntax(ramps, cfg.Override.Syntax)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", cfg.Name, err)
	}

	logger.Debug().
		Str("theme", cfg.Name).
		Str("appearance", string(cfg.Appearance)).
		Int("syntax_tokens", len(t.Syntax)).
		Msg("theme resolved")

	return t, nil
}

// buildRampSet constructs the 9 ramps from the config's seed colors and
// applies the light-appearance reversal once, here.
func buildRampSet(cfg *Config) (ramp.Set, error) {
	var set ramp.Set
	var err error

	if len(cfg.Color.NeutralStops) > 0 {
		set.Neutral, err = ramp.FromStops(cfg.Color.NeutralStops...)
	} else {
		set.Neutral, err = ramp.FromColor(cfg.Color.Neutral)
	}
	if err != nil {
		return ramp.Set{}, fmt.Errorf("neutral ramp: %w", err)
	}

	for _, anchor := range []struct {
		name  string
		value string
		dest  *ramp.Ramp
	}{
		{"red", cfg.Color.Red, &set.Red},
		{"orange", cfg.Color.Orange, &set.Orange},
		{"yellow", cfg.Color.Yellow, &set.Yellow},
		{"green", cfg.Color.Green, &set.Green},
		{"cyan", cfg.Color.Cyan, &set.Cyan},
		{"blue", cfg.Color.Blue, &set.Blue},
		{"violet", cfg.Color.Violet, &set.Violet},
		{"magenta", cfg.Color.Magenta, &set.Magenta},
	} {
		r, err := ramp.FromColor(anchor.value)
		if err != nil {
			return ramp.Set{}, fmt.Errorf("%s ramp: %w", anchor.name, err)
		}
		*anchor.dest = r
	}

	if cfg.IsLight() {
		set = set.Reversed()
	}
	return set, nil
}

func buildShadows(ramps ramp.Set) Shadows {
	return Shadows{
		Modal: Shadow{
			Blur:   16,
			Offset: [2]float64{0, 2},
			Color:  withAlpha(ramps.Neutral.Hex(0), 0.32),
		},
		Popover: Shadow{
			Blur:   4,
			Offset: [2]float64{1, 2},
			Color:  withAlpha(ramps.Neutral.Hex(0), 0.12),
		},
	}
}

// buildPlayers assigns each of the 8 collaborator slots a distinct ramp and
// derives the selection highlight as a translucent cursor color.
func buildPlayers(ramps ramp.Set) [8]Player {
	order := [8]ramp.Ramp{
		ramps.Blue,
		ramps.Green,
		ramps.Magenta,
		ramps.Orange,
		ramps.Violet,
		ramps.Cyan,
		ramps.Red,
		ramps.Yellow,
	}
	var players [8]Player
	for i, r := range order {
		cursor := r.Hex(0.5)
		players[i] = Player{
			Cursor:    cursor,
			Selection: withAlpha(cursor, selectionAlpha),
		}
	}
	return players
}

// withAlpha appends an alpha byte to a #rrggbb hex value.
func withAlpha(hex string, alpha float64) string {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return fmt.Sprintf("%s%02x", hex, uint8(alpha*255+0.5))
}
