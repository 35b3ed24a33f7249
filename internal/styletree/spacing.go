package styletree

import (
	"errors"

	"github.com/glaze-ui/glaze/internal/merge"
)

// ErrMalformedSpacing is returned when a padding or margin spec sets none of
// its sides.
var ErrMalformedSpacing = errors.New("spacing spec needs at least one of all/top/bottom/left/right")

// SpacingSpec describes padding or margin: All fills every side a specific
// field leaves unset.
type SpacingSpec struct {
	All    *float64
	Top    *float64
	Bottom *float64
	Left   *float64
	Right  *float64
}

// Padding expands a spacing spec into a complete four-side record.
func Padding(spec SpacingSpec) (merge.Fragment, error) {
	return expandSpacing(spec)
}

// Margin expands a spacing spec into a complete four-side record.
func Margin(spec SpacingSpec) (merge.Fragment, error) {
	return expandSpacing(spec)
}

func expandSpacing(spec SpacingSpec) (merge.Fragment, error) {
	if spec.All == nil && spec.Top == nil && spec.Bottom == nil && spec.Left == nil && spec.Right == nil {
		return nil, ErrMalformedSpacing
	}
	side := func(value *float64) float64 {
		if value != nil {
			return *value
		}
		if spec.All != nil {
			return *spec.All
		}
		return 0
	}
	return merge.Fragment{
		"top":    side(spec.Top),
		"bottom": side(spec.Bottom),
		"left":   side(spec.Left),
		"right":  side(spec.Right),
	}, nil
}

// Pt is a convenience for building spacing specs inline.
func Pt(value float64) *float64 {
	return &value
}
