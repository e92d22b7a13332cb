package plot

import (
	"errors"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// ErrFallbackToSoftware indicates the glyph accelerator cannot handle this
// operation. The caller should transparently fall back to software
// rendering through gg.
var ErrFallbackToSoftware = errors.New("plot: falling back to software rendering")

// GlyphOp describes operation types for accelerator capability checking.
type GlyphOp uint32

const (
	// GlyphFill represents filled glyph body rendering.
	GlyphFill GlyphOp = 1 << iota

	// GlyphStroke represents glyph boundary stroking.
	GlyphStroke

	// GlyphHatch represents hatch overlay rendering.
	GlyphHatch
)

// RenderTarget provides pixel buffer access for accelerator output.
// Data is laid out row by row with the given Stride; Format describes the
// pixel layout (RGBA8Unorm for gg pixmaps).
type RenderTarget struct {
	Data          []uint8
	Width, Height int
	Stride        int // bytes per row
	Format        gputypes.TextureFormat
}

// StripBatch is one render call's worth of strips: parallel screen
// boundary arrays along the strip axis plus the shared extent on the
// cross axis (Top/Bottom of the frame for vertical strips, Left/Right
// for horizontal ones). Boundary pairs may be in either order.
type StripBatch struct {
	SX0, SX1    []float64
	Top, Bottom float64
}

// GlyphAccelerator is an optional GPU acceleration provider for glyph
// rendering.
//
// When registered via RegisterAccelerator, views try the accelerator first
// for supported operations. If it returns ErrFallbackToSoftware or any
// error, rendering transparently falls back to the gg software path; the
// accelerator never affects hit-testing or logical rendering outcomes.
type GlyphAccelerator interface {
	// Name returns the accelerator name (e.g., "wgpu", "vulkan").
	Name() string

	// Init initializes GPU resources. Called once during registration.
	Init() error

	// Close releases GPU resources.
	Close()

	// CanAccelerate reports whether the accelerator supports the given
	// operation. This is a fast check used to skip the GPU entirely.
	CanAccelerate(op GlyphOp) bool

	// FillStrips renders the filled bodies of a strip batch to the target.
	// Returns ErrFallbackToSoftware if the batch cannot be accelerated.
	FillStrips(target RenderTarget, batch StripBatch, fill *FillVisuals) error

	// StrokeStrips renders the boundary lines of a strip batch to the
	// target. Returns ErrFallbackToSoftware if it cannot be accelerated.
	StrokeStrips(target RenderTarget, batch StripBatch, line *LineVisuals) error

	// Flush dispatches any pending operations to the target pixel buffer.
	// Batch-capable accelerators accumulate work during FillStrips and
	// StrokeStrips and dispatch it in a single pass on Flush.
	Flush(target RenderTarget) error
}

// DeviceProviderAware is an optional interface for accelerators that can
// share a GPU device with an external provider (e.g., a gogpu window)
// instead of creating their own.
type DeviceProviderAware interface {
	SetDeviceProvider(provider gpucontext.DeviceProvider) error
}

var (
	accelMu sync.RWMutex
	accel   GlyphAccelerator
)

// RegisterAccelerator registers a glyph accelerator for optional GPU
// rendering.
//
// Only one accelerator can be registered; subsequent calls replace the
// previous one. Init is called during registration and a failing Init
// leaves the previous accelerator in place.
func RegisterAccelerator(a GlyphAccelerator) error {
	if a == nil {
		return errors.New("plot: accelerator must not be nil")
	}
	if err := a.Init(); err != nil {
		return err
	}
	propagateLogger(a, Logger())
	accelMu.Lock()
	old := accel
	accel = a
	accelMu.Unlock()
	if old != nil {
		old.Close()
	}
	return nil
}

// Accelerator returns the currently registered glyph accelerator, or nil.
func Accelerator() GlyphAccelerator {
	accelMu.RLock()
	a := accel
	accelMu.RUnlock()
	return a
}

// CloseAccelerator releases the registered accelerator, if any. Call at
// application shutdown; the accelerator is the only long-lived resource
// this package holds.
func CloseAccelerator() {
	accelMu.Lock()
	old := accel
	accel = nil
	accelMu.Unlock()
	if old != nil {
		old.Close()
	}
}

// probeAccelerator shares the view's device provider with the registered
// accelerator. It runs on its own goroutine during view setup — the single
// suspension point in a view's life — and the view renders correctly
// through the software path before, and whether or not, it completes.
func probeAccelerator(provider gpucontext.DeviceProvider) {
	if provider == nil {
		return
	}
	a := Accelerator()
	if a == nil {
		Logger().Debug("no glyph accelerator registered, software rendering")
		return
	}
	dpa, ok := a.(DeviceProviderAware)
	if !ok {
		return
	}
	if err := dpa.SetDeviceProvider(provider); err != nil {
		// Non-fatal: the accelerator keeps (or creates) its own device.
		Logger().Warn("glyph accelerator device sharing failed", "accelerator", a.Name(), "err", err)
		return
	}
	Logger().Info("glyph accelerator attached", "accelerator", a.Name())
}

// renderTargetFor exposes dc's pixel buffer as an accelerator target.
func renderTargetFor(dc *gg.Context) RenderTarget {
	pm := dc.ResizeTarget()
	return RenderTarget{
		Data:   pm.Data(),
		Width:  pm.Width(),
		Height: pm.Height(),
		Stride: pm.Width() * 4,
		Format: gputypes.TextureFormatRGBA8Unorm,
	}
}
