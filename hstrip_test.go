package plot

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

// newHStripView builds an HStrip view over a 600x400 frame with a y-scale
// mapping data 0..10 onto screen 400..0 (pixel y grows downward).
func newHStripView(t *testing.T, y0, y1 []float64) *HStripView {
	t.Helper()
	src := NewDataSource()
	if err := src.SetColumn("y0", y0); err != nil {
		t.Fatalf("SetColumn: %v", err)
	}
	if err := src.SetColumn("y1", y1); err != nil {
		t.Fatalf("SetColumn: %v", err)
	}
	view := NewHStrip().NewView(
		WithFrame(Frame{Left: 0, Right: 600, Top: 0, Bottom: 400}),
		WithScales(NewLinearScale(0, 20, 0, 600), NewLinearScale(0, 10, 400, 0)),
	)
	if err := view.SetData(src); err != nil {
		t.Fatalf("SetData: %v", err)
	}
	view.MapData()
	return view
}

// sy converts data-space y to the fixture's screen space.
func sy(y float64) float64 { return 400 - y*40 }

func TestHStripMaxHeight(t *testing.T) {
	tests := []struct {
		name   string
		y0, y1 []float64
		want   float64
	}{
		{"ordered rows", []float64{1, 4}, []float64{5, 6}, 4},
		{"reversed row dominates", []float64{1, 9}, []float64{5, 2}, 7},
		{"zero rows", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := newHStripView(t, tt.y0, tt.y1)
			if got := view.MaxHeight(); got != tt.want {
				t.Errorf("MaxHeight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHStripBounds(t *testing.T) {
	view := newHStripView(t, []float64{1, 9}, []float64{5, 2})
	b := view.Bounds()
	if b.Y0 != 1 || b.Y1 != 9 {
		t.Errorf("Bounds y = [%v, %v], want [1, 9]", b.Y0, b.Y1)
	}
	if !math.IsNaN(b.X0) || !math.IsNaN(b.X1) {
		t.Errorf("Bounds x = [%v, %v], want NaN", b.X0, b.X1)
	}
}

func TestHStripPointHit(t *testing.T) {
	// Second row reversed: covers data [2, 9] after normalization.
	view := newHStripView(t, []float64{1, 9}, []float64{5, 2})

	tests := []struct {
		name  string
		dataY float64
		want  []int
	}{
		{"inside both", 3, []int{0, 1}},
		{"inside second only", 7, []int{1}},
		{"outside all", 9.5, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := view.HitTestPoint(PointGeometry{SX: 300, SY: sy(tt.dataY)})
			assertSameIndices(t, sel.Indices(), tt.want)
		})
	}
}

func TestHStripSpanHit(t *testing.T) {
	view := newHStripView(t, []float64{1, 9}, []float64{5, 2})

	t.Run("vertical hits every row", func(t *testing.T) {
		sel := view.HitTestSpan(SpanGeometry{SX: 300, SY: -20, Direction: SpanVertical})
		if sel.Len() != view.DataSize() {
			t.Errorf("vertical span hit %d rows, want %d", sel.Len(), view.DataSize())
		}
	})

	t.Run("horizontal behaves like point", func(t *testing.T) {
		span := view.HitTestSpan(SpanGeometry{SX: 300, SY: sy(7), Direction: SpanHorizontal})
		point := view.HitTestPoint(PointGeometry{SX: 300, SY: sy(7)})
		assertSameIndices(t, span.Indices(), point.Indices())
	})
}

func TestHStripRectHitStrictContainment(t *testing.T) {
	// Identity y-scale so screen pixels equal data coordinates.
	src := NewDataSource()
	if err := src.SetColumn("y0", []float64{100, 99}); err != nil {
		t.Fatalf("SetColumn: %v", err)
	}
	if err := src.SetColumn("y1", []float64{200, 200}); err != nil {
		t.Fatalf("SetColumn: %v", err)
	}
	view := NewHStrip().NewView(
		WithFrame(Frame{Left: 0, Right: 600, Top: 0, Bottom: 400}),
		WithScales(NewLinearScale(0, 600, 0, 600), NewLinearScale(0, 400, 0, 400)),
	)
	if err := view.SetData(src); err != nil {
		t.Fatalf("SetData: %v", err)
	}
	view.MapData()

	tests := []struct {
		name string
		geom RectGeometry
		want []int
	}{
		{"exact interval", RectGeometry{0, 100, 600, 200}, []int{0}},
		{"covers both", RectGeometry{0, 99, 600, 200}, []int{0, 1}},
		{"one pixel short", RectGeometry{0, 100, 600, 199}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := view.HitTestRect(tt.geom)
			assertSameIndices(t, sel.Indices(), tt.want)
		})
	}
}

func TestHStripRenderFill(t *testing.T) {
	view := newHStripView(t, []float64{2}, []float64{4})
	view.model.Fill.Color = gg.RGB(0, 0, 1)
	view.model.Line.Alpha = 0

	dc := gg.NewContext(600, 400)
	dc.ClearWithColor(gg.RGB(1, 1, 1))
	if err := view.Render(dc, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}

	pm := dc.ResizeTarget()
	// Data y 3 maps to screen y 280; the strip spans the full width.
	if c := pm.GetPixel(300, 280); !(c.B > 0.5 && c.R < 0.5) {
		t.Errorf("pixel inside strip = %+v, want blue fill", c)
	}
	if c := pm.GetPixel(10, 280); !(c.B > 0.5 && c.R < 0.5) {
		t.Errorf("pixel near frame left = %+v, want blue (strip spans full width)", c)
	}
	if c := pm.GetPixel(300, 100); !isWhite(c) {
		t.Errorf("pixel outside strip = %+v, want white", c)
	}
}
