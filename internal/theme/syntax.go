package theme

import (
	"fmt"

	"github.com/glaze-ui/glaze/internal/ramp"
)

// HighlightStyle is one fully resolved syntax token style. Every field is
// concrete in the output; partial overrides exist only during construction.
type HighlightStyle struct {
	Color     string `json:"color"`
	Weight    string `json:"weight"`
	Italic    bool   `json:"italic"`
	Underline bool   `json:"underline"`
}

// syntaxDefault positions one token on a ramp.
type syntaxDefault struct {
	ramp      string
	position  float64
	weight    string
	italic    bool
	underline bool
}

// syntaxDefaults is the bundled token catalogue. Positions are design
// constants; every token here is present in every resolved theme.
var syntaxDefaults = map[string]syntaxDefault{
	"attribute":       {ramp: "blue", position: 0.5},
	"boolean":         {ramp: "green", position: 0.5},
	"comment":         {ramp: "neutral", position: 0.71},
	"constant":        {ramp: "green", position: 0.5},
	"constructor":     {ramp: "blue", position: 0.5},
	"embedded":        {ramp: "neutral", position: 0.9},
	"emphasis":        {ramp: "blue", position: 0.5, italic: true},
	"emphasis.strong": {ramp: "blue", position: 0.5, weight: "bold"},
	"enum":            {ramp: "orange", position: 0.5},
	"function":        {ramp: "yellow", position: 0.5},
	"hint":            {ramp: "blue", position: 0.6, weight: "bold"},
	"keyword":         {ramp: "blue", position: 0.5},
	"label":           {ramp: "blue", position: 0.5},
	"link_text":       {ramp: "orange", position: 0.5, italic: true},
	"link_uri":        {ramp: "green", position: 0.5, underline: true},
	"number":          {ramp: "green", position: 0.5},
	"operator":        {ramp: "neutral", position: 0.6},
	"predictive":      {ramp: "neutral", position: 0.57, italic: true},
	"preproc":         {ramp: "neutral", position: 1},
	"primary":         {ramp: "neutral", position: 0.9},
	"property":        {ramp: "blue", position: 0.6},
	"punctuation":     {ramp: "neutral", position: 0.86},
	"string":          {ramp: "orange", position: 0.5},
	"tag":             {ramp: "blue", position: 0.5},
	"text.literal":    {ramp: "orange", position: 0.5},
	"title":           {ramp: "yellow", position: 0.5, weight: "bold"},
	"type":            {ramp: "cyan", position: 0.5},
	"variable":        {ramp: "neutral", position: 0.86},
	"variant":         {ramp: "blue", position: 0.5},
}

const defaultWeight = "normal"

// resolveSyntax computes the default style for every bundled token and
// overlays the author's partial overrides field by field. Override entries
// for unknown tokens are added as-is so extensions can introduce tokens.
func resolveSyntax(ramps ramp.Set, overrides map[string]SyntaxOverride) (map[string]HighlightStyle, error) {
	resolved := make(map[string]HighlightStyle, len(syntaxDefaults))
	for token, def := range syntaxDefaults {
		r, err := ramps.ByName(def.ramp)
		if err != nil {
			return nil, fmt.Errorf("syntax token %s: %w", token, err)
		}
		weight := def.weight
		if weight == "" {
			weight = defaultWeight
		}
		resolved[token] = HighlightStyle{
			Color:     r.Hex(def.position),
			Weight:    weight,
			Italic:    def.italic,
			Underline: def.underline,
		}
	}

	for token, override := range overrides {
		style, ok := resolved[token]
		if !ok {
			style = HighlightStyle{
				Color:  ramps.Neutral.Hex(0.9),
				Weight: defaultWeight,
			}
		}
		if override.Color != nil {
			style.Color = *override.Color
		}
		if override.Weight != nil {
			style.Weight = *override.Weight
		}
		if override.Italic != nil {
			style.Italic = *override.Italic
		}
		if override.Underline != nil {
			style.Underline = *override.Underline
		}
		resolved[token] = style
	}

	return resolved, nil
}
