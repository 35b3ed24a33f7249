package ramp

import "fmt"

// Names lists the semantic hue names of a set in canonical order.
var Names = []string{
	"neutral",
	"red",
	"orange",
	"yellow",
	"green",
	"cyan",
	"blue",
	"violet",
	"magenta",
}

// Set maps the 9 semantic hue names to their ramps. Built once per theme and
// read-only afterwards.
type Set struct {
	Neutral Ramp
	Red     Ramp
	Orange  Ramp
	Yellow  Ramp
	Green   Ramp
	Cyan    Ramp
	Blue    Ramp
	Violet  Ramp
	Magenta Ramp
}

// ByName returns the ramp for a semantic hue name.
func (s Set) ByName(name string) (Ramp, error) {
	switch name {
	case "neutral":
		return s.Neutral, nil
	case "red":
		return s.Red, nil
	case "orange":
		return s.Orange, nil
	case "yellow":
		return s.Yellow, nil
	case "green":
		return s.Green, nil
	case "cyan":
		return s.Cyan, nil
	case "blue":
		return s.Blue, nil
	case "violet":
		return s.Violet, nil
	case "magenta":
		return s.Magenta, nil
	}
	return Ramp{}, fmt.Errorf("unknown ramp name %q", name)
}

// Reversed returns a set with every ramp reversed. Light-appearance themes
// apply this once at construction so that t=0 always points away from the
// text color.
func (s Set) Reversed() Set {
	return Set{
		Neutral: s.Neutral.Reversed(),
		Red:     s.Red.Reversed(),
		Orange:  s.Orange.Reversed(),
		Yellow:  s.Yellow.Reversed(),
		Green:   s.Green.Reversed(),
		Cyan:    s.Cyan.Reversed(),
		Blue:    s.Blue.Reversed(),
		Violet:  s.Violet.Reversed(),
		Magenta: s.Magenta.Reversed(),
	}
}
