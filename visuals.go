package plot

import "github.com/gogpu/gg"

// Visual channels hold the styling values a glyph reads while rendering.
// Each channel has scalar defaults plus optional per-row vectors; a vector,
// when present, overrides the scalar for the rows it covers. Channels are
// read-only inputs to rendering — views never mutate them.

// LineVisuals is the stroke channel.
type LineVisuals struct {
	Color      gg.RGBA
	Alpha      float64
	Width      float64
	Cap        gg.LineCap
	Join       gg.LineJoin
	Dash       []float64
	DashOffset float64

	// Per-row overrides.
	Colors []gg.RGBA
	Alphas []float64
	Widths []float64
}

// NewLineVisuals returns the default stroke channel: opaque black, 1px.
func NewLineVisuals() LineVisuals {
	return LineVisuals{Color: gg.RGB(0, 0, 0), Alpha: 1, Width: 1}
}

// Visible reports whether the channel can produce any output at all.
func (v *LineVisuals) Visible() bool {
	if len(v.Colors) > 0 || len(v.Alphas) > 0 || len(v.Widths) > 0 {
		return true
	}
	return v.Alpha > 0 && v.Width > 0 && v.Color.A > 0
}

func (v *LineVisuals) colorAt(i int) gg.RGBA {
	c := v.Color
	if i < len(v.Colors) {
		c = v.Colors[i]
	}
	a := v.Alpha
	if i < len(v.Alphas) {
		a = v.Alphas[i]
	}
	c.A *= a
	return c
}

func (v *LineVisuals) widthAt(i int) float64 {
	if i < len(v.Widths) {
		return v.Widths[i]
	}
	return v.Width
}

// Apply configures dc's stroke state for row i.
func (v *LineVisuals) Apply(dc *gg.Context, i int) {
	c := v.colorAt(i)
	dc.SetRGBA(c.R, c.G, c.B, c.A)
	dc.SetLineWidth(v.widthAt(i))
	dc.SetLineCap(v.Cap)
	dc.SetLineJoin(v.Join)
	if len(v.Dash) > 0 {
		dc.SetDash(v.Dash...)
		dc.SetDashOffset(v.DashOffset)
	} else {
		dc.ClearDash()
	}
}

// FillVisuals is the solid fill channel.
type FillVisuals struct {
	Color gg.RGBA
	Alpha float64

	// Per-row overrides.
	Colors []gg.RGBA
	Alphas []float64
}

// NewFillVisuals returns the default fill channel: opaque light gray.
func NewFillVisuals() FillVisuals {
	return FillVisuals{Color: gg.RGB(0.8, 0.8, 0.8), Alpha: 1}
}

// Visible reports whether the channel can produce any output at all.
func (v *FillVisuals) Visible() bool {
	if len(v.Colors) > 0 || len(v.Alphas) > 0 {
		return true
	}
	return v.Alpha > 0 && v.Color.A > 0
}

func (v *FillVisuals) colorAt(i int) gg.RGBA {
	c := v.Color
	if i < len(v.Colors) {
		c = v.Colors[i]
	}
	a := v.Alpha
	if i < len(v.Alphas) {
		a = v.Alphas[i]
	}
	c.A *= a
	return c
}

// Apply configures dc's fill color for row i.
func (v *FillVisuals) Apply(dc *gg.Context, i int) {
	c := v.colorAt(i)
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}

// HatchPattern selects the repeating stroke pattern of the hatch channel.
type HatchPattern int

const (
	// HatchNone disables hatching.
	HatchNone HatchPattern = iota
	// HatchDiagonal draws lines rising left to right.
	HatchDiagonal
	// HatchBackDiagonal draws lines falling left to right.
	HatchBackDiagonal
	// HatchHorizontal draws horizontal lines.
	HatchHorizontal
	// HatchVertical draws vertical lines.
	HatchVertical
	// HatchCross draws horizontal and vertical lines.
	HatchCross
)

// HatchVisuals is the hatch overlay channel, painted between fill and
// stroke as a clipped set of pattern lines.
type HatchVisuals struct {
	Color   gg.RGBA
	Alpha   float64
	Pattern HatchPattern
	Spacing float64
	Weight  float64

	// Per-row overrides.
	Colors   []gg.RGBA
	Patterns []HatchPattern
}

// NewHatchVisuals returns the default hatch channel: disabled, black lines
// 12px apart when a pattern is chosen.
func NewHatchVisuals() HatchVisuals {
	return HatchVisuals{Color: gg.RGB(0, 0, 0), Alpha: 1, Spacing: 12, Weight: 1}
}

// Visible reports whether the channel can produce any output at all.
func (v *HatchVisuals) Visible() bool {
	if len(v.Patterns) > 0 {
		return true
	}
	return v.Pattern != HatchNone && v.Alpha > 0 && v.Color.A > 0
}

func (v *HatchVisuals) patternAt(i int) HatchPattern {
	if i < len(v.Patterns) {
		return v.Patterns[i]
	}
	return v.Pattern
}

func (v *HatchVisuals) colorAt(i int) gg.RGBA {
	c := v.Color
	if i < len(v.Colors) {
		c = v.Colors[i]
	}
	c.A *= v.Alpha
	return c
}

// Paint hatches the rectangle (x, y, w, h) for row i. The pattern lines
// are clipped to the rectangle so they never bleed into neighbors.
func (v *HatchVisuals) Paint(dc *gg.Context, i int, x, y, w, h float64) {
	pattern := v.patternAt(i)
	if pattern == HatchNone || w <= 0 || h <= 0 {
		return
	}
	spacing := v.Spacing
	if spacing <= 0 {
		spacing = 12
	}

	c := v.colorAt(i)
	dc.Push()
	dc.ClipRect(x, y, w, h)
	dc.SetRGBA(c.R, c.G, c.B, c.A)
	dc.SetLineWidth(v.Weight)
	dc.ClearDash()

	switch pattern {
	case HatchDiagonal:
		for d := x - h; d < x+w; d += spacing {
			dc.MoveTo(d, y+h)
			dc.LineTo(d+h, y)
		}
	case HatchBackDiagonal:
		for d := x - h; d < x+w; d += spacing {
			dc.MoveTo(d, y)
			dc.LineTo(d+h, y+h)
		}
	case HatchHorizontal:
		for yy := y + spacing/2; yy < y+h; yy += spacing {
			dc.MoveTo(x, yy)
			dc.LineTo(x+w, yy)
		}
	case HatchVertical:
		for xx := x + spacing/2; xx < x+w; xx += spacing {
			dc.MoveTo(xx, y)
			dc.LineTo(xx, y+h)
		}
	case HatchCross:
		for yy := y + spacing/2; yy < y+h; yy += spacing {
			dc.MoveTo(x, yy)
			dc.LineTo(x+w, yy)
		}
		for xx := x + spacing/2; xx < x+w; xx += spacing {
			dc.MoveTo(xx, y)
			dc.LineTo(xx, y+h)
		}
	}
	_ = dc.Stroke()
	dc.Pop()
}
