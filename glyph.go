package plot

import (
	"math"

	"github.com/gogpu/gg"
)

// GlyphView is the live half of a glyph: raw data arrays, cached screen
// coordinates, the spatial index, rendering, and hit-testing. Views are
// created from their descriptor's NewView method.
//
// Views are single-owner and not safe for concurrent use. Arrays and the
// index are rebuilt wholesale by SetData/MapData; render and hit-test
// operations assume a stable snapshot and never block or suspend.
type GlyphView interface {
	// SetData resolves the descriptor's field specs against src, rebuilds
	// the view's raw arrays and derived scalars, and re-indexes.
	SetData(src *DataSource) error

	// MapData recomputes cached screen-space arrays from the current
	// scales. Call after every viewport or scale change.
	MapData()

	// Bounds reports the glyph's data-space extent for auto-ranging.
	// Axes the glyph never constrains are reported as NaN.
	Bounds() Rect

	// DataSize returns the number of rows currently bound.
	DataSize() int

	// Render paints the rows in indices to dc, or all rows when indices
	// is nil. Rows with non-finite screen coordinates are skipped.
	Render(dc *gg.Context, indices []int) error

	// HitTestPoint returns the rows hit by a single-pixel pointer query.
	HitTestPoint(geom PointGeometry) *Selection

	// HitTestSpan returns the rows hit by a crosshair span query.
	HitTestSpan(geom SpanGeometry) *Selection

	// HitTestRect returns the rows fully contained by a region query.
	HitTestRect(geom RectGeometry) *Selection

	// DrawLegend paints a legend swatch for the given row into the bbox.
	DrawLegend(dc *gg.Context, bbox Rect, index int) error
}

// glyphView is the state shared by all concrete views: the viewport frame,
// the axis scales, and the spatial index over bound rows.
type glyphView struct {
	frame  Frame
	xScale Scale
	yScale Scale
	index  *SpatialIndex
	size   int
}

func newGlyphView(opts ...ViewOption) glyphView {
	options := defaultViewOptions()
	for _, opt := range opts {
		opt(&options)
	}

	v := glyphView{
		frame:  options.frame,
		xScale: options.xScale,
		yScale: options.yScale,
		index:  NewSpatialIndex(),
	}

	if options.accelerator != nil {
		// Injected accelerator: registration failure falls back to
		// software silently, matching the probe path.
		if err := RegisterAccelerator(options.accelerator); err != nil {
			Logger().Warn("glyph accelerator not available", "err", err)
		}
	}
	// The one suspension point: capability probing runs off the render
	// loop, and the view is fully usable before it resolves.
	go probeAccelerator(options.provider)

	return v
}

// SetFrame replaces the viewport frame. Cached screen arrays derived from
// scales are unaffected; values derived from the frame are computed on
// demand and need no invalidation.
func (v *glyphView) SetFrame(f Frame) { v.frame = f }

// Frame returns the current viewport frame.
func (v *glyphView) Frame() Frame { return v.frame }

// SetScales replaces the axis scales. Call MapData afterward to rebuild
// the cached screen-space arrays.
func (v *glyphView) SetScales(x, y Scale) {
	v.xScale = x
	v.yScale = y
}

// DataSize returns the number of rows currently bound.
func (v *glyphView) DataSize() int { return v.size }

// allIndices returns 0..size-1, the trivial match set.
func (v *glyphView) allIndices() []int {
	out := make([]int, v.size)
	for i := range out {
		out[i] = i
	}
	return out
}

// filterPairs normalizes each candidate row's screen boundary pair so
// lo <= hi, then keeps the rows where test holds, preserving candidate
// order. Reversed pairs are handled here, at the point of comparison, so
// raw arrays keep whatever order the source provided.
func filterPairs(candidates []int, s0, s1 []float64, test func(lo, hi float64) bool) []int {
	var out []int
	for _, i := range candidates {
		if i >= len(s0) || i >= len(s1) {
			continue
		}
		lo, hi := s0[i], s1[i]
		if lo > hi {
			lo, hi = hi, lo
		}
		if test(lo, hi) {
			out = append(out, i)
		}
	}
	return out
}

// roundAll rounds every element of vs to the nearest integer pixel,
// independently per element. Rounding happens after projection so each
// boundary lands exactly on the pixel it will be drawn at. Non-finite
// entries stay non-finite and are skipped at render time.
func roundAll(vs []float64) {
	for i, v := range vs {
		vs[i] = math.Round(v)
	}
}
