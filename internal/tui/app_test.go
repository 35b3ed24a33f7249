package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/glaze-ui/glaze/internal/theme"
)

func testHolder(t *testing.T) *theme.Holder {
	t.Helper()
	cfg := &theme.Config{
		Name:       "preview-test",
		Appearance: theme.AppearanceDark,
		Color: theme.ColorInput{
			Neutral: "#888888",
			Red:     "#f85149",
			Orange:  "#db6d28",
			Yellow:  "#d29922",
			Green:   "#3fb950",
			Cyan:    "#39c5cf",
			Blue:    "#58a6ff",
			Violet:  "#bc8cff",
			Magenta: "#db61a2",
		},
	}
	resolved, err := theme.New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("theme.New: %v", err)
	}
	holder := &theme.Holder{}
	holder.Load(resolved)
	return holder
}

func TestRunRequiresLoadedTheme(t *testing.T) {
	if err := Run(&theme.Holder{}); err == nil {
		t.Fatal("expected error when no theme is loaded")
	}
}

func TestViewSwitching(t *testing.T) {
	holder := testHolder(t)
	current, err := holder.Current()
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	m := initialModel(holder, current)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = next.(model)
	if m.view != viewRamps {
		t.Fatalf("expected ramps view, got %v", m.view)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m = next.(model)
	if m.view != viewPlayers {
		t.Fatalf("expected players view after g, got %v", m.view)
	}
}

func TestViewRendersEachScreen(t *testing.T) {
	holder := testHolder(t)
	current, err := holder.Current()
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	m := initialModel(holder, current)
	m.width = 100
	m.height = 40

	for view, marker := range map[viewID]string{
		viewLayers:  "Layers",
		viewRamps:   "Ramps",
		viewPlayers: "Players",
		viewSyntax:  "Syntax",
	} {
		m.view = view
		if rendered := m.View(); !strings.Contains(rendered, marker) {
			t.Fatalf("view %v missing marker %q", view, marker)
		}
	}
	if !strings.Contains(m.View(), "preview-test") {
		t.Fatal("view missing theme name")
	}
}

func TestThemeSwapRestyles(t *testing.T) {
	holder := testHolder(t)
	current, err := holder.Current()
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	m := initialModel(holder, current)

	light := &theme.Config{
		Name:       "swapped",
		Appearance: theme.AppearanceLight,
		Color: theme.ColorInput{
			Neutral: "#888888",
			Red:     "#cf222e",
			Orange:  "#bc4c00",
			Yellow:  "#9a6700",
			Green:   "#1a7f37",
			Cyan:    "#1b7c83",
			Blue:    "#0969da",
			Violet:  "#8250df",
			Magenta: "#bf3989",
		},
	}
	swapped, err := theme.New(light, zerolog.Nop())
	if err != nil {
		t.Fatalf("theme.New: %v", err)
	}
	holder.Load(swapped)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(model)
	if m.theme.Name != "swapped" {
		t.Fatalf("model did not pick up swapped theme, still %q", m.theme.Name)
	}
}
