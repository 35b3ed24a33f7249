package theme

import (
	"fmt"

	"github.com/glaze-ui/glaze/internal/ramp"
)

// DefaultStep is the ramp distance between adjacent interaction states.
const DefaultStep = 0.08

// Style is one fully resolved color record.
type Style struct {
	Background string `json:"background"`
	Border     string `json:"border"`
	Foreground string `json:"foreground"`
}

// StyleSet is the 6-state palette for one semantic role within a layer.
type StyleSet struct {
	Default  Style `json:"default"`
	Hovered  Style `json:"hovered"`
	Pressed  Style `json:"pressed"`
	Active   Style `json:"active"`
	Disabled Style `json:"disabled"`
	Inverted Style `json:"inverted"`
}

// Layer is one elevation tier: seven style sets, each drawing from its own
// ramp.
type Layer struct {
	Base     StyleSet `json:"base"`
	Variant  StyleSet `json:"variant"`
	On       StyleSet `json:"on"`
	Accent   StyleSet `json:"accent"`
	Positive StyleSet `json:"positive"`
	Warning  StyleSet `json:"warning"`
	Negative StyleSet `json:"negative"`
}

// Elevation names one of the three stacking tiers.
type Elevation string

// The elevation tiers, lowest first.
const (
	ElevationLowest  Elevation = "lowest"
	ElevationMiddle  Elevation = "middle"
	ElevationHighest Elevation = "highest"
)

// BuildStyleSet resolves the six interaction states from two base positions
// on a ramp. The per-state multipliers are fixed design constants; offsets
// that leave [0,1] are clamped by the ramp itself.
func BuildStyleSet(r ramp.Ramp, backgroundBase, foregroundBase, step float64) StyleSet {
	bg, fg := backgroundBase, foregroundBase
	style := func(background, border, foreground float64) Style {
		return Style{
			Background: r.Hex(background),
			Border:     r.Hex(border),
			Foreground: r.Hex(foreground),
		}
	}
	return StyleSet{
		Default:  style(bg, bg+step, fg),
		Hovered:  style(bg+step, bg+step, fg),
		Pressed:  style(bg+step*1.5, bg+step, fg),
		Active:   style(bg+step*2.2, bg+step*3, fg+step*6),
		Disabled: style(bg, bg+step*0.5, bg+step*4),
		Inverted: style(fg+step*6, bg-step*3, bg+step*2),
	}
}

// stylePair is a (backgroundBase, foregroundBase) position for one role.
type stylePair struct {
	bg float64
	fg float64
}

// layerTable fixes the ramp positions for every role of one elevation. The
// 21 pairs are visual-design data carried over from the theme's design
// tokens, not derived.
type layerTable struct {
	base    stylePair
	variant stylePair
	on      stylePair
	chroma  stylePair // shared by accent, positive, warning, negative
}

var layerTables = map[Elevation]layerTable{
	ElevationLowest: {
		base:    stylePair{bg: 0.2, fg: 1},
		variant: stylePair{bg: 0.2, fg: 0.7},
		on:      stylePair{bg: 0.1, fg: 1},
		chroma:  stylePair{bg: 0.1, fg: 0.5},
	},
	ElevationMiddle: {
		base:    stylePair{bg: 0.1, fg: 1},
		variant: stylePair{bg: 0.1, fg: 0.7},
		on:      stylePair{bg: 0, fg: 1},
		chroma:  stylePair{bg: 0.1, fg: 0.5},
	},
	ElevationHighest: {
		base:    stylePair{bg: 0, fg: 1},
		variant: stylePair{bg: 0, fg: 0.7},
		on:      stylePair{bg: 0.1, fg: 1},
		chroma:  stylePair{bg: 0.1, fg: 0.5},
	},
}

// BuildLayer resolves the seven style sets of one elevation from a ramp set.
// Base, variant and on draw from the neutral ramp; accent, positive, warning
// and negative draw from the blue, green, yellow and red ramps.
func BuildLayer(set ramp.Set, elevation Elevation) (Layer, error) {
	table, ok := layerTables[elevation]
	if !ok {
		return Layer{}, fmt.Errorf("unknown elevation %q", elevation)
	}
	return Layer{
		Base:     BuildStyleSet(set.Neutral, table.base.bg, table.base.fg, DefaultStep),
		Variant:  BuildStyleSet(set.Neutral, table.variant.bg, table.variant.fg, DefaultStep),
		On:       BuildStyleSet(set.Neutral, table.on.bg, table.on.fg, DefaultStep),
		Accent:   BuildStyleSet(set.Blue, table.chroma.bg, table.chroma.fg, DefaultStep),
		Positive: BuildStyleSet(set.Green, table.chroma.bg, table.chroma.fg, DefaultStep),
		Warning:  BuildStyleSet(set.Yellow, table.chroma.bg, table.chroma.fg, DefaultStep),
		Negative: BuildStyleSet(set.Red, table.chroma.bg, table.chroma.fg, DefaultStep),
	}, nil
}
