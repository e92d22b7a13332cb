package plot

import (
	"errors"
	"math"

	"github.com/gogpu/gg"
)

// HStrip is the horizontal sibling of VStrip: elements spanning the full
// horizontal plot extent between two vertical data-space boundaries. Y0
// and Y1 default to columns "y0" and "y1" and may be in either order.
type HStrip struct {
	Y0, Y1 FieldSpec

	Line  LineVisuals
	Fill  FillVisuals
	Hatch HatchVisuals
}

// NewHStrip creates a horizontal strip descriptor with default field
// bindings (columns "y0" and "y1") and default visual channels.
func NewHStrip() *HStrip {
	return &HStrip{
		Y0:    Field("y0"),
		Y1:    Field("y1"),
		Line:  NewLineVisuals(),
		Fill:  NewFillVisuals(),
		Hatch: NewHatchVisuals(),
	}
}

// NewView creates the live view for this descriptor.
func (m *HStrip) NewView(opts ...ViewOption) *HStripView {
	return &HStripView{
		glyphView: newGlyphView(opts...),
		model:     m,
	}
}

// HStripView owns the per-frame state of an HStrip. It mirrors VStripView
// with the axes swapped: y boundaries, a maxHeight query-expansion bound,
// and strips spanning the frame's width.
type HStripView struct {
	glyphView
	model *HStrip

	y0, y1   []float64 // data-space boundaries, insertion order
	sy0, sy1 []float64 // screen-space boundaries, rounded to pixels

	// maxHeight is the tallest data-space strip, the conservative bound
	// for spatial-index query expansion.
	maxHeight float64
}

var _ GlyphView = (*HStripView)(nil)

// SetData binds src through the descriptor's field specs, recomputes
// maxHeight, and rebuilds the spatial index.
func (v *HStripView) SetData(src *DataSource) error {
	y0, err := v.model.Y0.Resolve(src)
	if err != nil {
		return err
	}
	y1, err := v.model.Y1.Resolve(src)
	if err != nil {
		return err
	}

	v.y0, v.y1 = y0, y1
	v.size = src.Len()

	v.maxHeight = 0
	for i := range v.y0 {
		h := math.Abs(v.y1[i] - v.y0[i])
		if isFinite(h) && h > v.maxHeight {
			v.maxHeight = h
		}
	}

	v.indexData()
	Logger().Debug("hstrip data bound", "rows", v.size, "max_height", v.maxHeight)
	return nil
}

// indexData rebuilds the spatial index, storing each row as a y-extent
// with the degenerate x sentinel.
func (v *HStripView) indexData() {
	v.index = NewSpatialIndex()
	for i := range v.y0 {
		v.index.Add(indexYSentinel, v.y0[i], indexYSentinel, v.y1[i], i)
	}
}

// MaxHeight returns the tallest data-space strip, or 0 with no rows bound.
func (v *HStripView) MaxHeight() float64 { return v.maxHeight }

// Bounds reports the vertical data extent across all boundaries and NaN
// horizontally: a horizontal strip never constrains the x auto-range.
func (v *HStripView) Bounds() Rect {
	b := v.index.Bounds()
	nan := math.NaN()
	return Rect{X0: nan, Y0: b.Y0, X1: nan, Y1: b.Y1}
}

// MapData projects the raw boundary arrays through the y-scale and rounds
// each entry to the nearest integer pixel, after projection, per element.
func (v *HStripView) MapData() {
	v.sy0 = v.yScale.ComputeV(v.y0)
	v.sy1 = v.yScale.ComputeV(v.y1)
	roundAll(v.sy0)
	roundAll(v.sy1)
}

// Render paints the rows in indices, or all rows when indices is nil.
func (v *HStripView) Render(dc *gg.Context, indices []int) error {
	return v.render(dc, indices, v.sy0, v.sy1)
}

// RenderWith is Render operating on an externally supplied screen
// coordinate snapshot instead of the live arrays.
func (v *HStripView) RenderWith(dc *gg.Context, indices []int, sy0, sy1 []float64) error {
	return v.render(dc, indices, sy0, sy1)
}

func (v *HStripView) render(dc *gg.Context, indices []int, sy0, sy1 []float64) error {
	if indices == nil {
		indices = v.allIndices()
	}
	left, right := v.frame.XRange()
	if err := v.drawRegions(dc, indices, sy0, sy1, left, right); err != nil {
		return err
	}
	return v.drawLines(dc, indices, sy0, sy1, left, right)
}

func (v *HStripView) drawRegions(dc *gg.Context, indices []int, sy0, sy1 []float64, left, right float64) error {
	if a := Accelerator(); a != nil && a.CanAccelerate(GlyphFill) &&
		v.model.Fill.Visible() && !v.model.Hatch.Visible() &&
		len(v.model.Fill.Colors) == 0 && len(v.model.Fill.Alphas) == 0 {
		batch := gatherBatch(indices, sy0, sy1, left, right)
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
		if i >= len(sy0) || i >= len(sy1) {
			continue
		}
		if !isFinite(sy0[i] + sy1[i]) {
			continue
		}
		y, h := spanExtent(sy0[i], sy1[i])
		if fillVisible {
			v.model.Fill.Apply(dc, i)
			dc.DrawRectangle(left, y, right-left, h)
			if err := dc.Fill(); err != nil {
				return err
			}
		}
		if hatchVisible {
			v.model.Hatch.Paint(dc, i, left, y, right-left, h)
		}
	}
	return nil
}

func (v *HStripView) drawLines(dc *gg.Context, indices []int, sy0, sy1 []float64, left, right float64) error {
	if !v.model.Line.Visible() {
		return nil
	}
	if a := Accelerator(); a != nil && a.CanAccelerate(GlyphStroke) &&
		len(v.model.Line.Colors) == 0 && len(v.model.Line.Alphas) == 0 && len(v.model.Line.Widths) == 0 {
		batch := gatherBatch(indices, sy0, sy1, left, right)
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
		if i >= len(sy0) || i >= len(sy1) {
			continue
		}
		if !isFinite(sy0[i] + sy1[i]) {
			continue
		}
		v.model.Line.Apply(dc, i)
		dc.MoveTo(left, sy0[i])
		dc.LineTo(right, sy0[i])
		dc.MoveTo(left, sy1[i])
		dc.LineTo(right, sy1[i])
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// HitTestPoint returns the strips whose screen extent contains the query
// pixel, boundaries inclusive.
func (v *HStripView) HitTestPoint(geom PointGeometry) *Selection {
	candidates := v.candidates(geom.SY, geom.SY)
	hits := filterPairs(candidates, v.sy0, v.sy1, func(lo, hi float64) bool {
		return geom.SY >= lo && geom.SY <= hi
	})
	return NewSelection(hits)
}

// HitTestSpan returns the strips hit by a crosshair span. A vertical span
// crosses every horizontal strip trivially; a horizontal span behaves
// exactly like a point query at the span's screen y.
func (v *HStripView) HitTestSpan(geom SpanGeometry) *Selection {
	if geom.Direction == SpanVertical {
		return NewSelection(v.allIndices())
	}
	return v.HitTestPoint(PointGeometry{SX: geom.SX, SY: geom.SY})
}

// HitTestRect returns the strips whose full screen extent is contained
// within the query rectangle's y-bounds.
func (v *HStripView) HitTestRect(geom RectGeometry) *Selection {
	qlo, qhi := geom.YBounds()
	candidates := v.candidates(qlo, qhi)
	hits := filterPairs(candidates, v.sy0, v.sy1, func(lo, hi float64) bool {
		return lo >= qlo && hi <= qhi
	})
	return NewSelection(hits)
}

// candidates mirrors VStripView.candidates along the y-axis: invert the
// screen extent through the y-scale, expand by maxHeight, query with the
// zero-width sentinel band on x.
func (v *HStripView) candidates(syLo, syHi float64) []int {
	y0 := v.yScale.Invert(syLo)
	y1 := v.yScale.Invert(syHi)
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return v.index.Indices(Rect{
		X0: indexYSentinel,
		Y0: y0 - v.maxHeight,
		X1: indexYSentinel,
		Y1: y1 + v.maxHeight,
	})
}

// DrawLegend delegates to the shared area-glyph swatch painter.
func (v *HStripView) DrawLegend(dc *gg.Context, bbox Rect, index int) error {
	return drawAreaLegend(dc, bbox, &v.model.Fill, &v.model.Hatch, &v.model.Line, index)
}
