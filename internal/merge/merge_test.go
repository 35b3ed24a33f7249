package merge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeepNestedMaps(t *testing.T) {
	base := Fragment{
		"text": Fragment{"color": "#ffffff", "size": 10},
		"padding": Fragment{"top": 4, "bottom": 4},
	}
	override := Fragment{
		"text": Fragment{"color": "#eeeeee"},
	}

	got := Deep(base, override)

	require.Equal(t, Fragment{
		"text": Fragment{"color": "#eeeeee", "size": 10},
		"padding": Fragment{"top": 4, "bottom": 4},
	}, got)
}

func TestDeepReplacesSlicesWholesale(t *testing.T) {
	base := Fragment{"shadow": []any{1, 2, 3}}
	override := Fragment{"shadow": []any{9}}

	got := Deep(base, override)

	require.Equal(t, []any{9}, got["shadow"])
}

func TestDeepDoesNotMutateInputs(t *testing.T) {
	base := Fragment{"nested": Fragment{"a": 1}}
	override := Fragment{"nested": Fragment{"b": 2}}

	got := Deep(base, override)
	got["nested"].(Fragment)["a"] = 99

	require.Equal(t, 1, base["nested"].(Fragment)["a"])
	require.NotContains(t, base["nested"].(Fragment), "b")
	require.NotContains(t, override["nested"].(Fragment), "a")
}

func TestInteractiveEmptyFragmentIsIdempotent(t *testing.T) {
	base := Fragment{"color": "#ffffff", "fontSize": 10}

	got, err := Interactive(InteractiveSpec{
		Base:  base,
		State: InteractiveState{Hovered: Fragment{}},
	})
	require.NoError(t, err)
	require.Equal(t, base, got["hovered"])
}

func TestInteractiveOverridePrecedence(t *testing.T) {
	got, err := Interactive(InteractiveSpec{
		Base:  Fragment{"a": 1, "b": 2},
		State: InteractiveState{Hovered: Fragment{"b": 3}},
	})
	require.NoError(t, err)
	require.Equal(t, Fragment{"a": 1, "b": 3}, got["hovered"])
}

func TestInteractiveExpansion(t *testing.T) {
	got, err := Interactive(InteractiveSpec{
		Base: Fragment{"fontSize": 10, "color": "#FFFFFF"},
		State: InteractiveState{
			Hovered: Fragment{"color": "#EEEEEE"},
			Clicked: Fragment{"color": "#CCCCCC"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, Fragment{
		"default": Fragment{"color": "#FFFFFF", "fontSize": 10},
		"hovered": Fragment{"color": "#EEEEEE", "fontSize": 10},
		"clicked": Fragment{"color": "#CCCCCC", "fontSize": 10},
	}, got)
}

func TestInteractiveMergesExtraStatesOntoResolvedDefault(t *testing.T) {
	got, err := Interactive(InteractiveSpec{
		Base: Fragment{"color": "#111111", "weight": "normal"},
		State: InteractiveState{
			Default: Fragment{"color": "#222222"},
			Hovered: Fragment{"weight": "bold"},
		},
	})
	require.NoError(t, err)
	// Hovered inherits from the resolved default, not from base.
	require.Equal(t, Fragment{"color": "#222222", "weight": "bold"}, got["hovered"])
}

func TestInteractiveMissingDefaultOrBase(t *testing.T) {
	_, err := Interactive(InteractiveSpec{
		State: InteractiveState{Hovered: Fragment{"color": "blue"}},
	})
	require.ErrorIs(t, err, ErrMissingDefaultOrBase)
}

func TestInteractiveInsufficientStates(t *testing.T) {
	_, err := Interactive(InteractiveSpec{
		State: InteractiveState{Default: Fragment{"fontSize": 10}},
	})
	require.ErrorIs(t, err, ErrInsufficientStates)
}

func TestToggleableExpansion(t *testing.T) {
	got, err := Toggleable(ToggleableSpec{
		Base: Fragment{"background": "#000000", "color": "#CCCCCC"},
		State: ToggleableState{
			Active: Fragment{"color": "#FFFFFF"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, Fragment{
		"inactive": Fragment{"background": "#000000", "color": "#CCCCCC"},
		"active":   Fragment{"background": "#000000", "color": "#FFFFFF"},
	}, got)
}

func TestToggleableMissingInactiveOrBase(t *testing.T) {
	_, err := Toggleable(ToggleableSpec{
		State: ToggleableState{Active: Fragment{"color": "#FFFFFF"}},
	})
	require.ErrorIs(t, err, ErrMissingInactiveOrBase)
}

func TestToggleableMissingActiveState(t *testing.T) {
	_, err := Toggleable(ToggleableSpec{
		Base:  Fragment{"color": "#FFFFFF"},
		State: ToggleableState{},
	})
	require.ErrorIs(t, err, ErrMissingActiveState)
}

func TestToggleableComposesWithInteractive(t *testing.T) {
	inactive, err := Interactive(InteractiveSpec{
		Base:  Fragment{"color": "#888888"},
		State: InteractiveState{Hovered: Fragment{"color": "#999999"}},
	})
	require.NoError(t, err)

	active, err := Interactive(InteractiveSpec{
		Base:  Fragment{"color": "#ffffff"},
		State: InteractiveState{Hovered: Fragment{"color": "#eeeeee"}},
	})
	require.NoError(t, err)

	got, err := Toggleable(ToggleableSpec{
		Base:  inactive,
		State: ToggleableState{Active: active},
	})
	require.NoError(t, err)

	branch := got["active"].(Fragment)
	require.Equal(t, "#eeeeee", branch["hovered"].(Fragment)["color"])
	branch = got["inactive"].(Fragment)
	require.Equal(t, "#999999", branch["hovered"].(Fragment)["color"])
}
