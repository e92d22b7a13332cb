// Command stripdemo renders a strip plot with the plot glyph library and
// reports hit-test results for a sample pointer position.
package main

import (
	"flag"
	"log"

	"github.com/gogpu/gg"
	"github.com/gogpu/plot"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 500, "image height")
		output  = flag.String("output", "strips.png", "output file")
		pointer = flag.Float64("pointer", 260, "screen x for the sample hit test")
	)
	flag.Parse()

	src := plot.NewDataSource()
	if err := src.SetColumn("x0", []float64{1, 4, 9, 14}); err != nil {
		log.Fatalf("Failed to set column: %v", err)
	}
	// The third strip is deliberately reversed; it renders the same.
	if err := src.SetColumn("x1", []float64{2.5, 6, 7.5, 17}); err != nil {
		log.Fatalf("Failed to set column: %v", err)
	}

	frame := plot.Frame{Left: 40, Right: float64(*width) - 20, Top: 20, Bottom: float64(*height) - 40}
	xScale := plot.NewLinearScale(0, 20, frame.Left, frame.Right)
	yScale := plot.NewLinearScale(0, 1, frame.Bottom, frame.Top)

	strip := plot.NewVStrip()
	strip.Fill.Color = gg.RGBA{R: 0.35, G: 0.55, B: 0.85, A: 1}
	strip.Fill.Alpha = 0.5
	strip.Line.Color = gg.RGB(0.1, 0.2, 0.45)
	strip.Hatch.Pattern = plot.HatchDiagonal
	strip.Hatch.Color = gg.RGBA{R: 0.1, G: 0.2, B: 0.45, A: 0.4}

	view := strip.NewView(
		plot.WithFrame(frame),
		plot.WithScales(xScale, yScale),
	)
	if err := view.SetData(src); err != nil {
		log.Fatalf("Failed to bind data: %v", err)
	}
	view.MapData()

	dc := gg.NewContext(*width, *height)
	dc.ClearWithColor(gg.RGB(1, 1, 1))
	if err := view.Render(dc, nil); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	// Legend swatch in the top-right corner.
	swatch := plot.Rect{X0: frame.Right - 70, Y0: frame.Top + 10, X1: frame.Right - 10, Y1: frame.Top + 40}
	if err := view.DrawLegend(dc, swatch, 0); err != nil {
		log.Fatalf("Failed to draw legend: %v", err)
	}

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	sel := view.HitTestPoint(plot.PointGeometry{SX: *pointer, SY: frame.Top + frame.Height()/2})
	log.Printf("Saved %s (%dx%d); pointer at x=%.0f hits strips %v\n",
		*output, *width, *height, *pointer, sel.Indices())
}
