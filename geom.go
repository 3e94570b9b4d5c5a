package textstate

import (
	"math"

	"github.com/gogpu/textstate/shape"
)

// Point, Size, and Rect are the geometry value types shared with the
// shape package, aliased so callers work in one coordinate vocabulary.
type (
	Point = shape.Point
	Size  = shape.Size
	Rect  = shape.Rect
)

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return shape.Pt(x, y)
}

// sizeEpsilon is the tolerance under which two sizes count as equal.
// Sub-1e-4 differences come from float rounding in layout math, not
// from real constraint changes, and must not dirty the layout.
const sizeEpsilon = 1e-4

// approxEq reports whether two values are equal within sizeEpsilon.
func approxEq(a, b float64) bool {
	return math.Abs(a-b) < sizeEpsilon
}

// sizeApproxEq reports whether two sizes are equal within sizeEpsilon
// on both axes.
func sizeApproxEq(a, b Size) bool {
	return approxEq(a.Width, b.Width) && approxEq(a.Height, b.Height)
}

// clamp limits v to [lo, hi]. When hi < lo the lower bound wins.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
