package theme

import (
	"testing"

	"github.com/glaze-ui/glaze/internal/ramp"
)

func testRamp(t *testing.T) ramp.Ramp {
	t.Helper()
	r, err := ramp.FromStops("#000000", "#808080", "#ffffff")
	if err != nil {
		t.Fatalf("FromStops: %v", err)
	}
	return r
}

func testRampSet(t *testing.T) ramp.Set {
	t.Helper()
	neutral := testRamp(t)
	chroma := func(hex string) ramp.Ramp {
		r, err := ramp.FromColor(hex)
		if err != nil {
			t.Fatalf("FromColor(%s): %v", hex, err)
		}
		return r
	}
	return ramp.Set{
		Neutral: neutral,
		Red:     chroma("#f85149"),
		Orange:  chroma("#db6d28"),
		Yellow:  chroma("#d29922"),
		Green:   chroma("#3fb950"),
		Cyan:    chroma("#39c5cf"),
		Blue:    chroma("#58a6ff"),
		Violet:  chroma("#bc8cff"),
		Magenta: chroma("#db61a2"),
	}
}

func assertComplete(t *testing.T, set StyleSet) {
	t.Helper()
	for name, style := range map[string]Style{
		"default":  set.Default,
		"hovered":  set.Hovered,
		"pressed":  set.Pressed,
		"active":   set.Active,
		"disabled": set.Disabled,
		"inverted": set.Inverted,
	} {
		if style.Background == "" || style.Border == "" || style.Foreground == "" {
			t.Fatalf("state %s incomplete: %+v", name, style)
		}
	}
}

func TestBuildStyleSetComplete(t *testing.T) {
	set := BuildStyleSet(testRamp(t), 0.2, 1.0, DefaultStep)
	assertComplete(t, set)
}

func TestBuildStyleSetOffsets(t *testing.T) {
	r := testRamp(t)
	set := BuildStyleSet(r, 0.2, 1.0, DefaultStep)

	if set.Default.Background != r.Hex(0.2) {
		t.Fatalf("default background: got %q, want %q", set.Default.Background, r.Hex(0.2))
	}
	if set.Hovered.Background != r.Hex(0.28) {
		t.Fatalf("hovered background: got %q, want %q", set.Hovered.Background, r.Hex(0.28))
	}
	if set.Pressed.Background != r.Hex(0.2+DefaultStep*1.5) {
		t.Fatalf("pressed background: got %q", set.Pressed.Background)
	}
	if set.Active.Foreground != r.Hex(1+DefaultStep*6) {
		t.Fatalf("active foreground: got %q", set.Active.Foreground)
	}
	if set.Disabled.Foreground != r.Hex(0.2+DefaultStep*4) {
		t.Fatalf("disabled foreground: got %q", set.Disabled.Foreground)
	}
	if set.Inverted.Background != r.Hex(1+DefaultStep*6) {
		t.Fatalf("inverted background: got %q", set.Inverted.Background)
	}
}

func TestBuildStyleSetClampsOverflow(t *testing.T) {
	r := testRamp(t)
	set := BuildStyleSet(r, 0.2, 1.0, DefaultStep)
	// fgBase + 6*step exceeds 1; the ramp clamps to its end color.
	if set.Active.Foreground != r.Hex(1) {
		t.Fatalf("overflowed offset should clamp to ramp end, got %q", set.Active.Foreground)
	}
}

func TestBuildLayerRoles(t *testing.T) {
	set := testRampSet(t)
	layer, err := BuildLayer(set, ElevationLowest)
	if err != nil {
		t.Fatalf("BuildLayer: %v", err)
	}

	for name, styleSet := range map[string]StyleSet{
		"base":     layer.Base,
		"variant":  layer.Variant,
		"on":       layer.On,
		"accent":   layer.Accent,
		"positive": layer.Positive,
		"warning":  layer.Warning,
		"negative": layer.Negative,
	} {
		t.Run(name, func(t *testing.T) {
			assertComplete(t, styleSet)
		})
	}

	// Chromatic roles draw from their own ramps.
	if layer.Accent.Default.Background != set.Blue.Hex(0.1) {
		t.Fatalf("accent should draw from the blue ramp")
	}
	if layer.Negative.Default.Background != set.Red.Hex(0.1) {
		t.Fatalf("negative should draw from the red ramp")
	}
}

func TestBuildLayerElevationTable(t *testing.T) {
	set := testRampSet(t)

	lowest, err := BuildLayer(set, ElevationLowest)
	if err != nil {
		t.Fatalf("BuildLayer lowest: %v", err)
	}
	middle, err := BuildLayer(set, ElevationMiddle)
	if err != nil {
		t.Fatalf("BuildLayer middle: %v", err)
	}
	highest, err := BuildLayer(set, ElevationHighest)
	if err != nil {
		t.Fatalf("BuildLayer highest: %v", err)
	}

	if lowest.Base.Default.Background != set.Neutral.Hex(0.2) {
		t.Fatalf("lowest base background off table")
	}
	if middle.Base.Default.Background != set.Neutral.Hex(0.1) {
		t.Fatalf("middle base background off table")
	}
	if highest.Base.Default.Background != set.Neutral.Hex(0) {
		t.Fatalf("highest base background off table")
	}
}

func TestBuildLayerUnknownElevation(t *testing.T) {
	if _, err := BuildLayer(testRampSet(t), Elevation("basement")); err == nil {
		t.Fatal("expected error for unknown elevation")
	}
}
