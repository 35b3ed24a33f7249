// Package styletree assembles the nested style values the rendering toolkit
// consumes, one builder per UI surface. Builders take the resolved theme
// explicitly; there is no hidden current-theme lookup.
package styletree

import (
	"github.com/glaze-ui/glaze/internal/merge"
	"github.com/glaze-ui/glaze/internal/theme"
)

// Context carries the resolved theme and the base typography every builder
// derives from.
type Context struct {
	Theme      *theme.Theme
	FontFamily string
	FontSize   float64
}

// DefaultContext returns a context with the standard editor typography.
func DefaultContext(t *theme.Theme) Context {
	return Context{
		Theme:      t,
		FontFamily: "Zed Mono",
		FontSize:   14,
	}
}

// Build assembles the full style tree: one entry per surface.
func Build(ctx Context) (merge.Fragment, error) {
	tree := merge.Fragment{}
	for _, surface := range []struct {
		name  string
		build func(Context) (merge.Fragment, error)
	}{
		{"workspace", Workspace},
		{"editor", Editor},
		{"status_bar", StatusBar},
		{"context_menu", ContextMenu},
		{"tooltip", Tooltip},
	} {
		built, err := surface.build(ctx)
		if err != nil {
			return nil, err
		}
		tree[surface.name] = built
	}
	return tree, nil
}

// container flattens one resolved style into the background/border/
// foreground record surfaces are painted from.
func container(s theme.Style) merge.Fragment {
	return merge.Fragment{
		"background": s.Background,
		"border":     s.Border,
		"foreground": s.Foreground,
	}
}

func text(ctx Context, color string) merge.Fragment {
	return merge.Fragment{
		"family": ctx.FontFamily,
		"size":   ctx.FontSize,
		"color":  color,
	}
}
