package plot

import (
	"math"
	"testing"
)

func TestLinearScaleCompute(t *testing.T) {
	tests := []struct {
		name  string
		scale *LinearScale
		v     float64
		want  float64
	}{
		{"source start", NewLinearScale(0, 10, 0, 100), 0, 0},
		{"source end", NewLinearScale(0, 10, 0, 100), 10, 100},
		{"midpoint", NewLinearScale(0, 10, 0, 100), 5, 50},
		{"outside range", NewLinearScale(0, 10, 0, 100), 20, 200},
		{"negative data", NewLinearScale(-10, 10, 0, 100), -5, 25},
		{"reversed target", NewLinearScale(0, 10, 100, 0), 2, 80},
		{"degenerate source", NewLinearScale(5, 5, 0, 100), 5, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.scale.Compute(tt.v)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Compute(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestLinearScaleInvertRoundTrip(t *testing.T) {
	scales := []struct {
		name  string
		scale *LinearScale
	}{
		{"forward", NewLinearScale(0, 20, 0, 600)},
		{"reversed target", NewLinearScale(0, 1, 400, 0)},
		{"offset", NewLinearScale(-3, 7, 40, 760)},
	}
	values := []float64{-3, 0, 0.25, 1, 6.9, 19.3}

	for _, ts := range scales {
		t.Run(ts.name, func(t *testing.T) {
			for _, v := range values {
				back := ts.scale.Invert(ts.scale.Compute(v))
				if math.Abs(back-v) > 1e-9 {
					t.Errorf("Invert(Compute(%v)) = %v", v, back)
				}
			}
		})
	}
}

func TestLinearScaleInvertDegenerate(t *testing.T) {
	s := NewLinearScale(2, 8, 50, 50)
	if got := s.Invert(50); got != 2 {
		t.Errorf("degenerate target Invert = %v, want source start 2", got)
	}
}

func TestLinearScaleComputeV(t *testing.T) {
	s := NewLinearScale(0, 10, 0, 100)
	got := s.ComputeV([]float64{0, 5, 10})
	want := []float64{0, 50, 100}
	if len(got) != len(want) {
		t.Fatalf("ComputeV length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ComputeV[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLinearScaleComputeVEmpty(t *testing.T) {
	s := NewLinearScale(0, 10, 0, 100)
	if got := s.ComputeV(nil); len(got) != 0 {
		t.Errorf("ComputeV(nil) length = %d, want 0", len(got))
	}
}

func TestLogScaleCompute(t *testing.T) {
	s := NewLogScale(1, 1000, 0, 300)
	tests := []struct {
		v    float64
		want float64
	}{
		{1, 0},
		{10, 100},
		{100, 200},
		{1000, 300},
	}
	for _, tt := range tests {
		got := s.Compute(tt.v)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Compute(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestLogScaleNonPositive(t *testing.T) {
	s := NewLogScale(1, 1000, 0, 300)
	if got := s.Compute(-5); !math.IsNaN(got) {
		t.Errorf("Compute(-5) = %v, want NaN", got)
	}
}

func TestLogScaleInvertRoundTrip(t *testing.T) {
	s := NewLogScale(1, 1000, 0, 300)
	for _, v := range []float64{1, 2.5, 10, 999} {
		back := s.Invert(s.Compute(v))
		if math.Abs(back-v)/v > 1e-9 {
			t.Errorf("Invert(Compute(%v)) = %v", v, back)
		}
	}
}
