package ramp

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Lab lightness/chroma step used by darken, brighten and desaturate,
// matching the chroma.js Kn constant (18 on the 0-100 Lab scale).
const labStep = 0.18

// Ramp is a continuous color gradient over [0,1]. Ramps are value-semantic:
// every transformation returns a new ramp. By construction convention t=0 is
// the end furthest from the text color; appearance reversal is applied once
// when the ramp set is built, never per call.
type Ramp struct {
	stops []colorful.Color
}

// FromColor builds the default ramp for an arbitrary anchor color: a 3-stop
// gradient from a darkened, desaturated variant through the anchor to a
// brightened, desaturated variant, interpolated in CIE-LAB so midtones stay
// clean.
func FromColor(hex string) (Ramp, error) {
	anchor, err := colorful.Hex(hex)
	if err != nil {
		return Ramp{}, fmt.Errorf("parse ramp anchor %q: %w", hex, err)
	}
	start := darken(desaturate(anchor, 1), 4)
	end := brighten(desaturate(anchor, 1), 5)
	return Ramp{stops: []colorful.Color{start, anchor, end}}, nil
}

// FromStops builds a ramp from an explicit ordered stop list.
func FromStops(hexes ...string) (Ramp, error) {
	if len(hexes) < 2 {
		return Ramp{}, fmt.Errorf("ramp needs at least 2 stops, got %d", len(hexes))
	}
	stops := make([]colorful.Color, 0, len(hexes))
	for _, hex := range hexes {
		c, err := colorful.Hex(hex)
		if err != nil {
			return Ramp{}, fmt.Errorf("parse ramp stop %q: %w", hex, err)
		}
		stops = append(stops, c)
	}
	return Ramp{stops: stops}, nil
}

// FromScale builds a ramp over a family scale's discrete colors.
func FromScale(scale Scale) (Ramp, error) {
	if len(scale.Colors) < 2 {
		return Ramp{}, fmt.Errorf("scale needs at least 2 colors, got %d", len(scale.Colors))
	}
	stops := make([]colorful.Color, 0, len(scale.Colors))
	for _, c := range scale.Colors {
		parsed, err := colorful.Hex(c.Hex)
		if err != nil {
			return Ramp{}, fmt.Errorf("parse scale color %q: %w", c.Hex, err)
		}
		stops = append(stops, parsed)
	}
	return Ramp{stops: stops}, nil
}

// Reversed returns a new ramp traversing the same colors from the other end.
func (r Ramp) Reversed() Ramp {
	stops := make([]colorful.Color, len(r.stops))
	for i, c := range r.stops {
		stops[len(stops)-1-i] = c
	}
	return Ramp{stops: stops}
}

// At evaluates the ramp at t in [0,1], blending between adjacent stops in
// CIE-LAB. Out-of-domain values clamp to the end colors.
func (r Ramp) At(t float64) Color {
	if len(r.stops) == 0 {
		return Color{}
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	c := r.sample(t)
	h, s, l := c.Hsl()
	out := newColor(int(math.Round(t*totalSteps)), h, s, l)
	// Round-trip through HSL can wobble the hex in the last bit; keep the
	// blended color authoritative.
	out.Hex = c.Hex()
	red, green, blue := c.RGB255()
	out.RGBA = [4]uint8{red, green, blue, 0xFF}
	return out
}

// Hex evaluates the ramp at t and returns the hex value alone.
func (r Ramp) Hex(t float64) string {
	return r.At(t).Hex
}

// Values samples the ramp at each of the 101 canonical steps.
func (r Ramp) Values() []string {
	values := make([]string, 0, totalSteps+1)
	for step := 0; step <= totalSteps; step++ {
		values = append(values, r.Hex(float64(step)/totalSteps))
	}
	return values
}

func (r Ramp) sample(t float64) colorful.Color {
	last := len(r.stops) - 1
	if last == 0 {
		return r.stops[0]
	}
	position := t * float64(last)
	index := int(math.Floor(position))
	if index >= last {
		return r.stops[last]
	}
	return r.stops[index].BlendLab(r.stops[index+1], position-float64(index)).Clamped()
}

func darken(c colorful.Color, amount float64) colorful.Color {
	l, a, b := c.Lab()
	return colorful.Lab(l-labStep*amount, a, b).Clamped()
}

func brighten(c colorful.Color, amount float64) colorful.Color {
	return darken(c, -amount)
}

func desaturate(c colorful.Color, amount float64) colorful.Color {
	h, chroma, l := c.Hcl()
	chroma -= labStep * amount
	if chroma < 0 {
		chroma = 0
	}
	return colorful.Hcl(h, chroma, l).Clamped()
}
