package plot

// Frame is the plot's viewport rectangle in screen pixels. It changes on
// every resize, pan, or zoom; views read it on demand rather than caching
// values derived from it.
type Frame struct {
	Left, Right float64
	Top, Bottom float64
}

// Width returns the frame width in pixels.
func (f Frame) Width() float64 { return f.Right - f.Left }

// Height returns the frame height in pixels.
func (f Frame) Height() float64 { return f.Bottom - f.Top }

// XRange returns the horizontal screen extent.
func (f Frame) XRange() (left, right float64) { return f.Left, f.Right }

// YRange returns the vertical screen extent.
func (f Frame) YRange() (top, bottom float64) { return f.Top, f.Bottom }
