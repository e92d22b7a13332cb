// Package plot provides retained-mode plotting glyphs for the GoGPU ecosystem.
//
// # Overview
//
// plot sits on top of github.com/gogpu/gg and implements the glyph layer of
// an interactive 2D plotting pipeline: declarative glyph descriptors, live
// views holding per-frame derived state, spatial indexing for sub-linear
// hit-testing, and rendering through a gg drawing context.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gg"
//	    "github.com/gogpu/plot"
//	)
//
//	src := plot.NewDataSource()
//	src.SetColumn("x0", []float64{1, 4, 9})
//	src.SetColumn("x1", []float64{2, 6, 11})
//
//	strip := plot.NewVStrip()
//	view := strip.NewView(
//	    plot.WithFrame(plot.Frame{Left: 0, Right: 600, Top: 0, Bottom: 400}),
//	    plot.WithScales(plot.NewLinearScale(0, 12, 0, 600), plot.NewLinearScale(0, 1, 400, 0)),
//	)
//	if err := view.SetData(src); err != nil {
//	    // missing column, length mismatch
//	}
//	view.MapData()
//
//	dc := gg.NewContext(600, 400)
//	view.Render(dc, nil)
//	dc.SavePNG("strips.png")
//
//	sel := view.HitTestPoint(plot.PointGeometry{SX: 120, SY: 80})
//
// # Architecture
//
// Each glyph is split into a descriptor (fields, defaults, visual channels)
// and a view (raw arrays, cached screen coordinates, spatial index). The
// descriptor is consumed once by SetData to populate the view's owned
// arrays; the view is rebuilt wholesale on data or viewport changes and is
// never mutated concurrently.
//
// Rendering always works through the software path of gg. An optional
// glyph accelerator can be registered (see RegisterAccelerator) and is
// probed asynchronously at view setup; its absence changes raster
// performance only, never hit-testing or logical rendering outcomes.
//
// # Coordinate Spaces
//
// Data space is the plot's logical coordinate system; screen space is pixel
// coordinates of the rendering surface (origin top-left, y down). Scale
// objects map between the two in both directions.
package plot

// Version is the current version of the library.
const Version = "0.3.0"
