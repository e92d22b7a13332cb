package plot

import "github.com/gogpu/gpucontext"

// ViewOption configures a glyph view during creation.
// Use functional options to customize view behavior:
//
//	view := strip.NewView(
//	    plot.WithFrame(frame),
//	    plot.WithScales(xScale, yScale),
//	    plot.WithDeviceProvider(app.GPUContextProvider()),
//	)
type ViewOption func(*viewOptions)

// viewOptions holds optional configuration for view creation.
type viewOptions struct {
	frame       Frame
	xScale      Scale
	yScale      Scale
	provider    gpucontext.DeviceProvider
	accelerator GlyphAccelerator
}

// defaultViewOptions returns the default view options: a unit frame and
// identity-like scales, so a bare view is renderable immediately.
func defaultViewOptions() viewOptions {
	return viewOptions{
		frame:  Frame{Left: 0, Right: 1, Top: 0, Bottom: 1},
		xScale: NewLinearScale(0, 1, 0, 1),
		yScale: NewLinearScale(0, 1, 0, 1),
	}
}

// WithFrame sets the view's viewport frame in screen pixels.
func WithFrame(f Frame) ViewOption {
	return func(o *viewOptions) {
		o.frame = f
	}
}

// WithScales sets the view's axis scales.
func WithScales(x, y Scale) ViewOption {
	return func(o *viewOptions) {
		o.xScale = x
		o.yScale = y
	}
}

// WithDeviceProvider supplies a GPU device provider to probe for the
// optional accelerated backend. The probe runs asynchronously; the view is
// fully usable through the software path before it resolves, and whether
// or not it succeeds.
func WithDeviceProvider(p gpucontext.DeviceProvider) ViewOption {
	return func(o *viewOptions) {
		o.provider = p
	}
}

// WithAccelerator injects a glyph accelerator directly, registering it
// during view creation. Use for dependency injection of custom or test
// accelerators; most applications register a backend package instead.
func WithAccelerator(a GlyphAccelerator) ViewOption {
	return func(o *viewOptions) {
		o.accelerator = a
	}
}
