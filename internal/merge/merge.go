// Package merge expands partial per-state style fragments into complete
// per-state records. It is a construction-time expansion, not a runtime
// state machine: builders describe what differs per state and get back every
// state fully specified.
package merge

import "errors"

// Expansion errors. None are recovered internally; they abort the build at
// the style-tree call site.
var (
	// ErrMissingDefaultOrBase is returned when Interactive has neither a
	// base nor a default state to resolve from.
	ErrMissingDefaultOrBase = errors.New("interactive: missing default state or base")
	// ErrInsufficientStates is returned when Interactive resolves a default
	// but no additional states, which indicates a misused call.
	ErrInsufficientStates = errors.New("interactive: needs at least one state beyond default")
	// ErrMissingInactiveOrBase is returned when Toggleable has neither a
	// base nor an inactive state.
	ErrMissingInactiveOrBase = errors.New("toggleable: missing inactive state or base")
	// ErrMissingActiveState is returned when Toggleable has no active state.
	ErrMissingActiveState = errors.New("toggleable: missing active state")
)

// Fragment is a JSON-shaped partial style value. A nil fragment means
// "absent"; an empty fragment is a present, empty override.
type Fragment = map[string]any

// Deep merges override onto base: nested maps merge key by key, while
// slices and scalar leaves are replaced wholesale by the overriding value.
// Neither input is mutated; the result is freshly allocated.
func Deep(base, override Fragment) Fragment {
	result := cloneFragment(base)
	for key, value := range override {
		if overrideMap, ok := value.(Fragment); ok {
			if baseMap, ok := result[key].(Fragment); ok {
				result[key] = Deep(baseMap, overrideMap)
				continue
			}
		}
		result[key] = cloneValue(value)
	}
	return result
}

// InteractiveState holds the optional per-state fragments of an interactive
// element.
type InteractiveState struct {
	Default  Fragment
	Hovered  Fragment
	Clicked  Fragment
	Selected Fragment
	Disabled Fragment
}

// InteractiveSpec is the input to Interactive: a base fragment and the
// per-state deltas.
type InteractiveSpec struct {
	Base  Fragment
	State InteractiveState
}

// Interactive resolves a default state from base and state.Default, then
// merges each supplied extra state onto that resolved default. The result
// maps "default" plus each supplied state name to a complete fragment.
func Interactive(spec InteractiveSpec) (Fragment, error) {
	var defaultState Fragment
	switch {
	case spec.Base != nil && spec.State.Default != nil:
		defaultState = Deep(spec.Base, spec.State.Default)
	case spec.Base != nil:
		defaultState = cloneFragment(spec.Base)
	case spec.State.Default != nil:
		defaultState = cloneFragment(spec.State.Default)
	default:
		return nil, ErrMissingDefaultOrBase
	}

	result := Fragment{"default": defaultState}
	extra := 0
	for _, state := range []struct {
		name     string
		fragment Fragment
	}{
		{"hovered", spec.State.Hovered},
		{"clicked", spec.State.Clicked},
		{"selected", spec.State.Selected},
		{"disabled", spec.State.Disabled},
	} {
		if state.fragment == nil {
			continue
		}
		result[state.name] = Deep(defaultState, state.fragment)
		extra++
	}

	if extra == 0 {
		return nil, ErrInsufficientStates
	}
	return result, nil
}

// ToggleableState holds the two branches of a toggleable element.
type ToggleableState struct {
	Inactive Fragment
	Active   Fragment
}

// ToggleableSpec is the input to Toggleable.
type ToggleableSpec struct {
	Base  Fragment
	State ToggleableState
}

// Toggleable resolves the inactive branch from base and state.Inactive and
// the active branch by merging state.Active onto base. Both branches in the
// result are complete. Branches are frequently Interactive outputs, giving
// the toggle-by-interaction cross product the renderer paints from.
func Toggleable(spec ToggleableSpec) (Fragment, error) {
	var inactive Fragment
	switch {
	case spec.Base != nil && spec.State.Inactive != nil:
		inactive = Deep(spec.Base, spec.State.Inactive)
	case spec.Base != nil:
		inactive = cloneFragment(spec.Base)
	case spec.State.Inactive != nil:
		inactive = cloneFragment(spec.State.Inactive)
	default:
		return nil, ErrMissingInactiveOrBase
	}

	if spec.State.Active == nil {
		return nil, ErrMissingActiveState
	}
	base := spec.Base
	if base == nil {
		base = Fragment{}
	}

	return Fragment{
		"inactive": inactive,
		"active":   Deep(base, spec.State.Active),
	}, nil
}

func cloneFragment(fragment Fragment) Fragment {
	result := make(Fragment, len(fragment))
	for key, value := range fragment {
		result[key] = cloneValue(value)
	}
	return result
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case Fragment:
		return cloneFragment(v)
	case []any:
		cloned := make([]any, len(v))
		for i, item := range v {
			cloned[i] = cloneValue(item)
		}
		return cloned
	default:
		return value
	}
}
