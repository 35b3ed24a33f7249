// Package ramp turns seed colors into the continuous perceptual gradients a
// theme draws every surface color from.
package ramp

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/glaze-ui/glaze/internal/curve"
)

// totalSteps is fixed system-wide; every scale has totalSteps+1 samples.
const totalSteps = 100

// isLightThreshold is the perceived-lightness cutoff (LCH lightness, 0-100
// scale) above which a color counts as light.
const isLightThreshold = 55

// Color is an immutable sample on a scale. All fields are derived from the
// HSL input at construction.
type Color struct {
	Step    int      `json:"step"`
	L       float64  `json:"l"` // LCH lightness, 0-100
	C       float64  `json:"c"` // LCH chroma
	H       float64  `json:"h"` // LCH hue, degrees
	RGBA    [4]uint8 `json:"rgba"`
	Hex     string   `json:"hex"`
	IsLight bool     `json:"is_light"`
}

// ChannelRange describes how one HSL channel sweeps across a family. Hue is
// in degrees; saturation and lightness are 0-100 percentages.
type ChannelRange struct {
	Start float64     `yaml:"start"`
	End   float64     `yaml:"end"`
	Curve curve.Curve `yaml:"-"`
}

// FamilyConfig defines a color family by its per-channel ranges.
type FamilyConfig struct {
	Name       string
	Hue        ChannelRange
	Saturation ChannelRange
	Lightness  ChannelRange
}

// Scale is an ordered, fixed-length gradient of 101 colors plus the parallel
// hex values.
type Scale struct {
	Colors []Color  `json:"colors"`
	Values []string `json:"values"`
}

// Family is a named pair of forward and inverted scales.
type Family struct {
	Name     string `json:"name"`
	Scale    Scale  `json:"scale"`
	Inverted Scale  `json:"inverted"`
}

func newColor(step int, hue, saturation, lightness float64) Color {
	c := colorful.Hsl(hue, saturation, lightness).Clamped()
	h, chroma, l := c.Hcl()
	r, g, b := c.RGB255()
	lch := l * 100
	return Color{
		Step:    step,
		L:       lch,
		C:       chroma,
		H:       h,
		RGBA:    [4]uint8{r, g, b, 0xFF},
		Hex:     c.Hex(),
		IsLight: lch > isLightThreshold,
	}
}

func lerp(start, end, t float64) float64 {
	return start + (end-start)*t
}

// generateColor samples one family config at step/totalSteps, easing each
// channel independently before interpolating its range. Saturation and
// lightness percentages are scaled to the 0-1 HSL convention here.
func generateColor(hueEase, satEase, lightEase curve.EasingFunc, cfg FamilyConfig, step int) Color {
	progress := float64(step) / totalSteps
	hue := lerp(cfg.Hue.Start, cfg.Hue.End, hueEase(progress))
	saturation := lerp(cfg.Saturation.Start, cfg.Saturation.End, satEase(progress)) / 100
	lightness := lerp(cfg.Lightness.Start, cfg.Lightness.End, lightEase(progress)) / 100
	return newColor(step, hue, saturation, lightness)
}

// NewScale builds the 101-step scale for a family config. Inversion applies
// to every channel's easing uniformly; step order stays ascending either way.
func NewScale(cfg FamilyConfig, inverted bool) Scale {
	hueEase := cfg.Hue.Curve.Easing(inverted)
	satEase := cfg.Saturation.Curve.Easing(inverted)
	lightEase := cfg.Lightness.Curve.Easing(inverted)

	colors := make([]Color, 0, totalSteps+1)
	values := make([]string, 0, totalSteps+1)
	for step := 0; step <= totalSteps; step++ {
		c := generateColor(hueEase, satEase, lightEase, cfg, step)
		colors = append(colors, c)
		values = append(values, c.Hex)
	}
	return Scale{Colors: colors, Values: values}
}

// NewFamily builds the forward and inverted scales for a config. Pure
// function of the config; safe to memoize.
func NewFamily(cfg FamilyConfig) Family {
	return Family{
		Name:     cfg.Name,
		Scale:    NewScale(cfg, false),
		Inverted: NewScale(cfg, true),
	}
}

// At returns the color at a step index, clamped to the scale's ends.
func (s Scale) At(step int) (Color, error) {
	if len(s.Colors) == 0 {
		return Color{}, fmt.Errorf("scale has no colors")
	}
	if step < 0 {
		step = 0
	}
	if step >= len(s.Colors) {
		step = len(s.Colors) - 1
	}
	return s.Colors[step], nil
}
