package plot

import "github.com/gogpu/gg"

// drawAreaLegend paints the generic legend swatch shared by area glyphs:
// the fill and hatch channels over the bbox interior, then the line
// channel around its border. No glyph-specific geometry is drawn; every
// area glyph's legend entry looks the same modulo its channel values.
func drawAreaLegend(dc *gg.Context, bbox Rect, fill *FillVisuals, hatch *HatchVisuals, line *LineVisuals, index int) error {
	b := bbox.Normalize()
	w, h := b.X1-b.X0, b.Y1-b.Y0
	if w <= 0 || h <= 0 {
		return nil
	}

	if fill != nil && fill.Visible() {
		fill.Apply(dc, index)
		dc.DrawRectangle(b.X0, b.Y0, w, h)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	if hatch != nil && hatch.Visible() {
		hatch.Paint(dc, index, b.X0, b.Y0, w, h)
	}
	if line != nil && line.Visible() {
		line.Apply(dc, index)
		dc.DrawRectangle(b.X0, b.Y0, w, h)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}
