// Package curve provides the cubic-bezier easing presets used by the color
// ramp engine.
package curve

// Curve is an immutable cubic-bezier timing function definition. The four
// control scalars are the coordinates of the two inner control points
// (X1,Y1) and (X2,Y2); the outer anchors are fixed at (0,0) and (1,1).
type Curve struct {
	Name string
	X1   float64
	Y1   float64
	X2   float64
	Y2   float64
}

// The preset catalogue. Control points are design constants; the shapes bias
// where along a ramp each channel changes fastest.
var (
	// Linear collapses the bezier to the identity function.
	Linear = Curve{Name: "linear", X1: 0.5, Y1: 0.5, X2: 0.5, Y2: 0.5}
	// Lightness concentrates change at low progress.
	Lightness = Curve{Name: "lightness", X1: 0.2, Y1: 0, X2: 0, Y2: 1}
	// Saturation holds saturation longer before releasing it.
	Saturation = Curve{Name: "saturation", X1: 0.67, Y1: 0.6, X2: 0.55, Y2: 1}
)

// EasingFunc maps normalized progress in [0,1] to eased progress in [0,1].
type EasingFunc func(float64) float64

// Easing builds the timing function for the curve. When inverted is true the
// control points are taken in reverse order, producing the mirror-image
// curve: inverted(x) == 1 - forward(1-x). Control points are not validated;
// malformed points yield a non-monotonic function.
func (c Curve) Easing(inverted bool) EasingFunc {
	x1, y1, x2, y2 := c.X1, c.Y1, c.X2, c.Y2
	if inverted {
		x1, y1, x2, y2 = 1-x2, 1-y2, 1-x1, 1-y1
	}
	b := newBezier(x1, y1, x2, y2)
	return b.eval
}

// bezier is a unit cubic-bezier solver in polynomial form.
type bezier struct {
	ax, bx, cx float64
	ay, by, cy float64
}

func newBezier(x1, y1, x2, y2 float64) bezier {
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	return bezier{
		ax: 1 - cx - bx,
		bx: bx,
		cx: cx,
		ay: 1 - cy - by,
		by: by,
		cy: cy,
	}
}

func (b bezier) sampleX(t float64) float64 {
	return ((b.ax*t+b.bx)*t + b.cx) * t
}

func (b bezier) sampleY(t float64) float64 {
	return ((b.ay*t+b.by)*t + b.cy) * t
}

func (b bezier) sampleDerivX(t float64) float64 {
	return (3*b.ax*t+2*b.bx)*t + b.cx
}

const solveEpsilon = 1e-7

// solveT finds the parameter t whose x-coordinate matches the input, Newton
// first, bisection when the derivative collapses.
func (b bezier) solveT(x float64) float64 {
	t := x
	for i := 0; i < 8; i++ {
		xErr := b.sampleX(t) - x
		if xErr < solveEpsilon && xErr > -solveEpsilon {
			return t
		}
		d := b.sampleDerivX(t)
		if d < 1e-6 && d > -1e-6 {
			break
		}
		t -= xErr / d
	}

	lo, hi := 0.0, 1.0
	t = x
	for hi-lo > solveEpsilon {
		if b.sampleX(t) < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}

func (b bezier) eval(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return b.sampleY(b.solveT(x))
}
