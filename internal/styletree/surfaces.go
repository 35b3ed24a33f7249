package styletree

import (
	"fmt"

	"github.com/glaze-ui/glaze/internal/merge"
	"github.com/glaze-ui/glaze/internal/theme"
)

// Workspace builds the outermost surface: window chrome, title bar and the
// tab bar. Tabs are a toggleable (inactive/active pane) of interactive
// states, the cross product the renderer paints directly.
func Workspace(ctx Context) (merge.Fragment, error) {
	t := ctx.Theme

	tabBar, err := buildTabBar(ctx)
	if err != nil {
		return nil, fmt.Errorf("workspace tab bar: %w", err)
	}

	titlePadding, err := Padding(SpacingSpec{All: Pt(8)})
	if err != nil {
		return nil, fmt.Errorf("workspace title bar: %w", err)
	}

	return merge.Fragment{
		"background": t.Lowest.Base.Default.Background,
		"title_bar": merge.Fragment{
			"container": container(t.Lowest.Base.Default),
			"title":     text(ctx, t.Lowest.Base.Default.Foreground),
			"padding":   titlePadding,
		},
		"tab_bar":      tabBar,
		"modal_shadow": shadow(t.Shadows.Modal),
	}, nil
}

func buildTabBar(ctx Context) (merge.Fragment, error) {
	t := ctx.Theme

	tab := func(set theme.StyleSet) (merge.Fragment, error) {
		return merge.Interactive(merge.InteractiveSpec{
			Base: merge.Fragment{
				"container": container(set.Default),
				"label":     text(ctx, set.Default.Foreground),
			},
			State: merge.InteractiveState{
				Hovered: merge.Fragment{"container": container(set.Hovered)},
				Clicked: merge.Fragment{"container": container(set.Pressed)},
			},
		})
	}

	inactive, err := tab(t.Middle.Variant)
	if err != nil {
		return nil, err
	}
	active, err := tab(t.Middle.Base)
	if err != nil {
		return nil, err
	}

	return merge.Toggleable(merge.ToggleableSpec{
		Base:  inactive,
		State: merge.ToggleableState{Active: active},
	})
}

// Editor builds the text surface: background, gutter, selections and the
// handful of editor-owned syntax-adjacent colors.
func Editor(ctx Context) (merge.Fragment, error) {
	t := ctx.Theme

	gutterPadding, err := Padding(SpacingSpec{Left: Pt(4), Right: Pt(12)})
	if err != nil {
		return nil, fmt.Errorf("editor gutter: %w", err)
	}

	selections := make([]any, 0, len(t.Players))
	for _, player := range t.Players {
		selections = append(selections, merge.Fragment{
			"cursor":    player.Cursor,
			"selection": player.Selection,
		})
	}

	return merge.Fragment{
		"background":       t.Highest.Base.Default.Background,
		"text":             text(ctx, t.Highest.Base.Default.Foreground),
		"active_line":      t.Highest.On.Default.Background,
		"highlighted_line": t.Highest.On.Hovered.Background,
		"gutter": merge.Fragment{
			"line_number":        t.Highest.Variant.Default.Foreground,
			"line_number_active": t.Highest.Base.Default.Foreground,
			"padding":            gutterPadding,
		},
		"selections": selections,
		"diagnostics": merge.Fragment{
			"error":   t.Highest.Negative.Default.Foreground,
			"warning": t.Highest.Warning.Default.Foreground,
			"info":    t.Highest.Accent.Default.Foreground,
			"hint":    t.Highest.Variant.Default.Foreground,
		},
	}, nil
}

// StatusBar builds the bottom chrome: mode indicators and diagnostic
// summary buttons with full interaction states.
func StatusBar(ctx Context) (merge.Fragment, error) {
	t := ctx.Theme

	diagnosticButton, err := merge.Interactive(merge.InteractiveSpec{
		Base: merge.Fragment{
			"container": container(t.Lowest.Base.Default),
			"label":     text(ctx, t.Lowest.Variant.Default.Foreground),
		},
		State: merge.InteractiveState{
			Hovered:  merge.Fragment{"container": container(t.Lowest.Base.Hovered)},
			Clicked:  merge.Fragment{"container": container(t.Lowest.Base.Pressed)},
			Disabled: merge.Fragment{"label": text(ctx, t.Lowest.Base.Disabled.Foreground)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("status bar diagnostics: %w", err)
	}

	padding, err := Padding(SpacingSpec{Left: Pt(6), Right: Pt(6)})
	if err != nil {
		return nil, fmt.Errorf("status bar: %w", err)
	}

	return merge.Fragment{
		"container":         container(t.Lowest.Base.Default),
		"padding":           padding,
		"diagnostic_button": diagnosticButton,
		"positive":          t.Lowest.Positive.Default.Foreground,
		"negative":          t.Lowest.Negative.Default.Foreground,
	}, nil
}

// ContextMenu builds the right-click menu: items are a toggleable
// (unselected/selected) of interactive states.
func ContextMenu(ctx Context) (merge.Fragment, error) {
	t := ctx.Theme

	item := func(set theme.StyleSet) (merge.Fragment, error) {
		return merge.Interactive(merge.InteractiveSpec{
			Base: merge.Fragment{
				"container": container(set.Default),
				"label":     text(ctx, set.Default.Foreground),
				"keystroke": text(ctx, t.Middle.Variant.Default.Foreground),
			},
			State: merge.InteractiveState{
				Hovered: merge.Fragment{"container": container(set.Hovered)},
				Clicked: merge.Fragment{"container": container(set.Pressed)},
			},
		})
	}

	unselected, err := item(t.Middle.Base)
	if err != nil {
		return nil, fmt.Errorf("context menu item: %w", err)
	}
	selected, err := item(t.Middle.Accent)
	if err != nil {
		return nil, fmt.Errorf("context menu selected item: %w", err)
	}

	entry, err := merge.Toggleable(merge.ToggleableSpec{
		Base:  unselected,
		State: merge.ToggleableState{Active: selected},
	})
	if err != nil {
		return nil, fmt.Errorf("context menu: %w", err)
	}

	return merge.Fragment{
		"container": container(t.Middle.Base.Default),
		"item":      entry,
		"separator": t.Middle.Base.Default.Border,
		"shadow":    shadow(t.Shadows.Popover),
	}, nil
}

// Tooltip builds hover tooltips and their keystroke hints.
func Tooltip(ctx Context) (merge.Fragment, error) {
	t := ctx.Theme

	padding, err := Padding(SpacingSpec{All: Pt(4), Left: Pt(8), Right: Pt(8)})
	if err != nil {
		return nil, fmt.Errorf("tooltip: %w", err)
	}

	return merge.Fragment{
		"container": container(t.Middle.Base.Default),
		"text":      text(ctx, t.Middle.Base.Default.Foreground),
		"keystroke": merge.Fragment{
			"container": container(t.Middle.On.Default),
			"text":      text(ctx, t.Middle.Variant.Default.Foreground),
		},
		"padding": padding,
		"shadow":  shadow(t.Shadows.Popover),
	}, nil
}

func shadow(s theme.Shadow) merge.Fragment {
	return merge.Fragment{
		"blur":   s.Blur,
		"offset": []any{s.Offset[0], s.Offset[1]},
		"color":  s.Color,
	}
}
