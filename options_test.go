package plot

import (
	"errors"
	"testing"
)

var errTest = errors.New("plot: test error")

func TestDefaultViewOptions(t *testing.T) {
	o := defaultViewOptions()
	if o.frame.Width() != 1 || o.frame.Height() != 1 {
		t.Errorf("default frame = %+v", o.frame)
	}
	if o.xScale == nil || o.yScale == nil {
		t.Error("default scales must be non-nil")
	}
	if o.provider != nil || o.accelerator != nil {
		t.Error("GPU options must default to nil")
	}
}

func TestWithFrame(t *testing.T) {
	o := defaultViewOptions()
	WithFrame(Frame{Left: 10, Right: 110, Top: 20, Bottom: 220})(&o)
	if o.frame.Width() != 100 || o.frame.Height() != 200 {
		t.Errorf("frame = %+v", o.frame)
	}
}

func TestWithScales(t *testing.T) {
	o := defaultViewOptions()
	x := NewLinearScale(0, 10, 0, 100)
	y := NewLogScale(1, 100, 200, 0)
	WithScales(x, y)(&o)
	if o.xScale != Scale(x) || o.yScale != Scale(y) {
		t.Error("scales not applied")
	}
}

func TestWithAcceleratorRegisters(t *testing.T) {
	resetAccelerator()
	t.Cleanup(resetAccelerator)

	mock := &mockAccelerator{name: "injected"}
	view := NewVStrip().NewView(WithAccelerator(mock))
	if view == nil {
		t.Fatal("NewView returned nil")
	}
	if Accelerator() != GlyphAccelerator(mock) {
		t.Error("injected accelerator was not registered")
	}
}

func TestWithAcceleratorInitFailureIsAbsorbed(t *testing.T) {
	resetAccelerator()
	t.Cleanup(resetAccelerator)

	mock := &mockAccelerator{name: "broken", initErr: errTest}
	view := NewVStrip().NewView(WithAccelerator(mock))
	if view == nil {
		t.Fatal("NewView returned nil")
	}
	// Registration failed silently; the software path stays available.
	if Accelerator() != nil {
		t.Error("failed accelerator should not be registered")
	}

	src := NewDataSource()
	if err := src.SetColumn("x0", []float64{1}); err != nil {
		t.Fatalf("SetColumn: %v", err)
	}
	if err := src.SetColumn("x1", []float64{2}); err != nil {
		t.Fatalf("SetColumn: %v", err)
	}
	if err := view.SetData(src); err != nil {
		t.Fatalf("SetData after failed accelerator init: %v", err)
	}
}
