package plot

import (
	"errors"
	"math"

	"github.com/gogpu/gg"
)

// VStrip is the descriptor for a collection of vertical strips: rendered
// elements spanning the full vertical plot extent between two horizontal
// data-space boundaries. X0 and X1 name where each boundary comes from;
// they are not required to be in order — a row with X0 > X1 renders and
// hit-tests identically to its swapped twin.
//
// VStrip is pure schema plus defaults. NewView pairs it with the live view
// that owns arrays, the spatial index, and rendering.
type VStrip struct {
	X0, X1 FieldSpec

	Line  LineVisuals
	Fill  FillVisuals
	Hatch HatchVisuals
}

// NewVStrip creates a vertical strip descriptor with default field
// bindings (columns "x0" and "x1") and default visual channels.
func NewVStrip() *VStrip {
	return &VStrip{
		X0:    Field("x0"),
		X1:    Field("x1"),
		Line:  NewLineVisuals(),
		Fill:  NewFillVisuals(),
		Hatch: NewHatchVisuals(),
	}
}

// NewView creates the live view for this descriptor.
func (m *VStrip) NewView(opts ...ViewOption) *VStripView {
	return &VStripView{
		glyphView: newGlyphView(opts...),
		model:     m,
	}
}

// VStripView owns the per-frame state of a VStrip: the raw boundary
// arrays, their cached screen-space projections, the spatial index, and
// the conservative query-expansion bound maxWidth. All state is rebuilt
// wholesale by SetData (data changes) and MapData (viewport changes);
// no operation here blocks or suspends.
type VStripView struct {
	glyphView
	model *VStrip

	x0, x1   []float64 // data-space boundaries, insertion order
	sx0, sx1 []float64 // screen-space boundaries, rounded to pixels

	// maxWidth is the widest data-space strip, used solely to expand
	// spatial-index query windows. It is a conservative global bound, not
	// a per-row value: one comparison per query beats a per-row width
	// lookup before the index has narrowed candidates.
	maxWidth float64
}

var _ GlyphView = (*VStripView)(nil)

// SetData binds src through the descriptor's field specs, recomputes
// maxWidth, and rebuilds the spatial index. Screen-space arrays are left
// stale; call MapData before rendering or hit-testing against a new
// viewport.
func (v *VStripView) SetData(src *DataSource) error {
	x0, err := v.model.X0.Resolve(src)
	if err != nil {
		return err
	}
	x1, err := v.model.X1.Resolve(src)
	if err != nil {
		return err
	}

	v.x0, v.x1 = x0, x1
	v.size = src.Len()

	v.maxWidth = 0
	for i := range v.x0 {
		w := math.Abs(v.x1[i] - v.x0[i])
		if isFinite(w) && w > v.maxWidth {
			v.maxWidth = w
		}
	}

	v.indexData()
	Logger().Debug("vstrip data bound", "rows", v.size, "max_width", v.maxWidth)
	return nil
}

// indexData rebuilds the spatial index from the raw arrays. Each row is
// stored as an x-extent with the degenerate y sentinel; the index exists
// to cull hit-test candidates, never to answer vertical queries.
func (v *VStripView) indexData() {
	v.index = NewSpatialIndex()
	for i := range v.x0 {
		v.index.Add(v.x0[i], indexYSentinel, v.x1[i], indexYSentinel, i)
	}
}

// MaxWidth returns the widest data-space strip, or 0 with no rows bound.
func (v *VStripView) MaxWidth() float64 { return v.maxWidth }

// Bounds reports the horizontal data extent across all boundaries and NaN
// vertically: a vertical strip never constrains the y auto-range.
func (v *VStripView) Bounds() Rect {
	b := v.index.Bounds()
	nan := math.NaN()
	return Rect{X0: b.X0, Y0: nan, X1: b.X1, Y1: nan}
}

// MapData projects the raw boundary arrays to screen space through the
// x-scale and rounds each entry to the nearest integer pixel. Rounding
// happens after projection, independently per element. The full-height
// vertical extents are not cached here — they come from the frame on
// demand, since they change on every resize, pan, or zoom.
func (v *VStripView) MapData() {
	v.sx0 = v.xScale.ComputeV(v.x0)
	v.sx1 = v.xScale.ComputeV(v.x1)
	roundAll(v.sx0)
	roundAll(v.sx1)
}

// Render paints the rows in indices, or all rows when indices is nil,
// using the cached screen coordinates.
func (v *VStripView) Render(dc *gg.Context, indices []int) error {
	return v.render(dc, indices, v.sx0, v.sx1)
}

// RenderWith is Render operating on an externally supplied screen
// coordinate snapshot instead of the live arrays. Selection overlays use
// it to redraw a subset against coordinates captured earlier.
func (v *VStripView) RenderWith(dc *gg.Context, indices []int, sx0, sx1 []float64) error {
	return v.render(dc, indices, sx0, sx1)
}

func (v *VStripView) render(dc *gg.Context, indices []int, sx0, sx1 []float64) error {
	if indices == nil {
		indices = v.allIndices()
	}
	top, bottom := v.frame.YRange()
	if err := v.drawRegions(dc, indices, sx0, sx1, top, bottom); err != nil {
		return err
	}
	return v.drawLines(dc, indices, sx0, sx1, top, bottom)
}

// drawRegions paints the filled strip bodies with the fill and hatch
// channels. The accelerated path handles plain fills only; hatched or
// per-row-styled batches stay on the software path.
func (v *VStripView) drawRegions(dc *gg.Context, indices []int, sx0, sx1 []float64, top, bottom float64) error {
	if a := Accelerator(); a != nil && a.CanAccelerate(GlyphFill) &&
		v.model.Fill.Visible() && !v.model.Hatch.Visible() &&
		len(v.model.Fill.Colors) == 0 && len(v.model.Fill.Alphas) == 0 {
		batch := gatherBatch(indices, sx0, sx1, top, bottom)
		target := renderTargetFor(dc)
		err := a.FillStrips(target, batch, &v.model.Fill)
		if err == nil {
			return a.Flush(target)
		}
		if !errors.Is(err, ErrFallbackToSoftware) {
			Logger().Warn("accelerated strip fill failed", "accelerator", a.Name(), "err", err)
		}
	}

	fillVisible := v.model.Fill.Visible()
	hatchVisible := v.model.Hatch.Visible()
	if !fillVisible && !hatchVisible {
		return nil
	}
	for _, i := range indices {
		if i >= len(sx0) || i >= len(sx1) {
			continue
		}
		// One non-finite coordinate poisons the sum, so a single check
		// guards both boundaries.
		if !isFinite(sx0[i] + sx1[i]) {
			continue
		}
		x, w := spanExtent(sx0[i], sx1[i])
		if fillVisible {
			v.model.Fill.Apply(dc, i)
			dc.DrawRectangle(x, top, w, bottom-top)
			if err := dc.Fill(); err != nil {
				return err
			}
		}
		if hatchVisible {
			v.model.Hatch.Paint(dc, i, x, top, w, bottom-top)
		}
	}
	return nil
}

// drawLines strokes the two vertical boundary segments of each strip as a
// separate path after the fill, so line style never affects fill geometry
// and vice versa.
func (v *VStripView) drawLines(dc *gg.Context, indices []int, sx0, sx1 []float64, top, bottom float64) error {
	if !v.model.Line.Visible() {
		return nil
	}
	if a := Accelerator(); a != nil && a.CanAccelerate(GlyphStroke) &&
		len(v.model.Line.Colors) == 0 && len(v.model.Line.Alphas) == 0 && len(v.model.Line.Widths) == 0 {
		batch := gatherBatch(indices, sx0, sx1, top, bottom)
		target := renderTargetFor(dc)
		err := a.StrokeStrips(target, batch, &v.model.Line)
		if err == nil {
			return a.Flush(target)
		}
		if !errors.Is(err, ErrFallbackToSoftware) {
			Logger().Warn("accelerated strip stroke failed", "accelerator", a.Name(), "err", err)
		}
	}

	for _, i := range indices {
		if i >= len(sx0) || i >= len(sx1) {
			continue
		}
		if !isFinite(sx0[i] + sx1[i]) {
			continue
		}
		v.model.Line.Apply(dc, i)
		dc.MoveTo(sx0[i], top)
		dc.LineTo(sx0[i], bottom)
		dc.MoveTo(sx1[i], top)
		dc.LineTo(sx1[i], bottom)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// HitTestPoint returns the strips whose screen extent contains the query
// pixel, boundaries inclusive. Boundary order never matters: pairs are
// normalized at comparison time.
func (v *VStripView) HitTestPoint(geom PointGeometry) *Selection {
	candidates := v.candidates(geom.SX, geom.SX)
	hits := filterPairs(candidates, v.sx0, v.sx1, func(lo, hi float64) bool {
		return geom.SX >= lo && geom.SX <= hi
	})
	return NewSelection(hits)
}

// HitTestSpan returns the strips hit by a crosshair span. A horizontal
// span crosses every strip trivially; a vertical span behaves exactly
// like a point query at the span's screen x.
func (v *VStripView) HitTestSpan(geom SpanGeometry) *Selection {
	if geom.Direction == SpanHorizontal {
		return NewSelection(v.allIndices())
	}
	return v.HitTestPoint(PointGeometry{SX: geom.SX, SY: geom.SY})
}

// HitTestRect returns the strips whose full screen extent is contained
// within the query rectangle's x-bounds — strict containment, both
// boundaries inside, not mere overlap.
func (v *VStripView) HitTestRect(geom RectGeometry) *Selection {
	qlo, qhi := geom.XBounds()
	candidates := v.candidates(qlo, qhi)
	hits := filterPairs(candidates, v.sx0, v.sx1, func(lo, hi float64) bool {
		return lo >= qlo && hi <= qhi
	})
	return NewSelection(hits)
}

// candidates inverts the screen-space query extent into data space,
// expands it by maxWidth on both sides, and asks the spatial index for
// intersecting rows. The expansion guarantees no strip whose projection
// could overlap the query is missed regardless of boundary order; the
// exact filter then discards the overshoot. The query's y-range is the
// zero-width sentinel band — vertical position is irrelevant to strips.
func (v *VStripView) candidates(sxLo, sxHi float64) []int {
	x0 := v.xScale.Invert(sxLo)
	x1 := v.xScale.Invert(sxHi)
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	return v.index.Indices(Rect{
		X0: x0 - v.maxWidth,
		Y0: indexYSentinel,
		X1: x1 + v.maxWidth,
		Y1: indexYSentinel,
	})
}

// DrawLegend delegates to the shared area-glyph swatch painter; strips
// add no geometry of their own to legend entries.
func (v *VStripView) DrawLegend(dc *gg.Context, bbox Rect, index int) error {
	return drawAreaLegend(dc, bbox, &v.model.Fill, &v.model.Hatch, &v.model.Line, index)
}

// gatherBatch collects the finite rows of indices into an accelerator
// batch, preserving order.
func gatherBatch(indices []int, sx0, sx1 []float64, top, bottom float64) StripBatch {
	batch := StripBatch{Top: top, Bottom: bottom}
	for _, i := range indices {
		if i >= len(sx0) || i >= len(sx1) {
			continue
		}
		if !isFinite(sx0[i] + sx1[i]) {
			continue
		}
		batch.SX0 = append(batch.SX0, sx0[i])
		batch.SX1 = append(batch.SX1, sx1[i])
	}
	return batch
}

// spanExtent returns the left edge and non-negative width of a boundary
// pair in either order.
func spanExtent(a, b float64) (x, w float64) {
	if a > b {
		a, b = b, a
	}
	return a, b - a
}
