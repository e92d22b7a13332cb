package plot

import "math"

// Rect is an axis-aligned rectangle in either data or screen space.
// X0/Y0 need not be less than X1/Y1; use Normalize before comparing edges.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// EmptyRect returns the rectangle representing "no data": all coordinates
// are NaN. This is the value reported to auto-ranging when a glyph holds no
// rows, or holds no bound along an axis.
func EmptyRect() Rect {
	nan := math.NaN()
	return Rect{X0: nan, Y0: nan, X1: nan, Y1: nan}
}

// IsEmpty reports whether the rectangle carries no bound on either axis.
func (r Rect) IsEmpty() bool {
	return math.IsNaN(r.X0) && math.IsNaN(r.X1) && math.IsNaN(r.Y0) && math.IsNaN(r.Y1)
}

// Normalize returns the rectangle with X0 <= X1 and Y0 <= Y1.
func (r Rect) Normalize() Rect {
	if r.X0 > r.X1 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y0 > r.Y1 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// Union returns the smallest rectangle covering both r and o.
// NaN coordinates are treated as "no bound" and lose to finite ones.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: nanMin(r.X0, o.X0),
		Y0: nanMin(r.Y0, o.Y0),
		X1: nanMax(r.X1, o.X1),
		Y1: nanMax(r.Y1, o.Y1),
	}
}

// ContainsX reports whether x lies within the normalized horizontal extent,
// boundaries inclusive.
func (r Rect) ContainsX(x float64) bool {
	n := r.Normalize()
	return x >= n.X0 && x <= n.X1
}

// nanMin returns the smaller of a and b, ignoring NaN operands.
func nanMin(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	}
	return math.Min(a, b)
}

// nanMax returns the larger of a and b, ignoring NaN operands.
func nanMax(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	}
	return math.Max(a, b)
}

// SpanDirection selects the orientation of a span (crosshair) query.
type SpanDirection int

const (
	// SpanHorizontal queries along a horizontal line through the pointer.
	SpanHorizontal SpanDirection = iota
	// SpanVertical queries along a vertical line through the pointer.
	SpanVertical
)

// PointGeometry is a single-pixel pointer query in screen space.
type PointGeometry struct {
	SX, SY float64
}

// SpanGeometry is a full-width or full-height line query through a screen
// position, as produced by crosshair-style tools.
type SpanGeometry struct {
	SX, SY    float64
	Direction SpanDirection
}

// RectGeometry is a rectangular region query in screen space, as produced
// by box-select tools. Corner order is not significant.
type RectGeometry struct {
	SX0, SY0, SX1, SY1 float64
}

// XBounds returns the query's horizontal extent with lo <= hi.
func (g RectGeometry) XBounds() (lo, hi float64) {
	if g.SX0 > g.SX1 {
		return g.SX1, g.SX0
	}
	return g.SX0, g.SX1
}

// YBounds returns the query's vertical extent with lo <= hi.
func (g RectGeometry) YBounds() (lo, hi float64) {
	if g.SY0 > g.SY1 {
		return g.SY1, g.SY0
	}
	return g.SY0, g.SY1
}
