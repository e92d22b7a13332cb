package plot

import (
	"math"
	"testing"
)

func TestFilterPairs(t *testing.T) {
	s0 := []float64{10, 50, 30}
	s1 := []float64{20, 40, 35} // row 1 reversed: [40, 50]

	t.Run("normalizes reversed pairs", func(t *testing.T) {
		hits := filterPairs([]int{0, 1, 2}, s0, s1, func(lo, hi float64) bool {
			return lo <= 45 && 45 <= hi
		})
		assertSameIndices(t, hits, []int{1})
	})

	t.Run("preserves candidate order", func(t *testing.T) {
		hits := filterPairs([]int{2, 0}, s0, s1, func(lo, hi float64) bool {
			return true
		})
		if len(hits) != 2 || hits[0] != 2 || hits[1] != 0 {
			t.Errorf("hits = %v, want [2 0]", hits)
		}
	})

	t.Run("skips out-of-range candidates", func(t *testing.T) {
		hits := filterPairs([]int{0, 7}, s0, s1, func(lo, hi float64) bool {
			return true
		})
		assertSameIndices(t, hits, []int{0})
	})
}

func TestRoundAll(t *testing.T) {
	vs := []float64{1.4, 1.5, -2.5, 0, math.NaN()}
	roundAll(vs)
	want := []float64{1, 2, -3, 0}
	for i, w := range want {
		if vs[i] != w {
			t.Errorf("roundAll[%d] = %v, want %v", i, vs[i], w)
		}
	}
	if !math.IsNaN(vs[4]) {
		t.Errorf("roundAll[4] = %v, want NaN preserved", vs[4])
	}
}

func TestGlyphViewAllIndices(t *testing.T) {
	v := glyphView{size: 3}
	got := v.allIndices()
	if len(got) != 3 || got[0] != 0 || got[2] != 2 {
		t.Errorf("allIndices() = %v, want [0 1 2]", got)
	}

	empty := glyphView{}
	if got := empty.allIndices(); len(got) != 0 {
		t.Errorf("allIndices() on empty view = %v", got)
	}
}

func TestGlyphViewSetScales(t *testing.T) {
	view := newStripView(t, []float64{2}, []float64{4})

	// Halve the x resolution and remap; the strip moves accordingly.
	view.SetScales(NewLinearScale(0, 20, 0, 300), NewLinearScale(0, 1, 400, 0))
	view.MapData()

	if sel := view.HitTestPoint(PointGeometry{SX: 45, SY: 100}); !sel.Contains(0) {
		t.Errorf("hit at remapped position missed: %v", sel.Indices())
	}
	if sel := view.HitTestPoint(PointGeometry{SX: 90, SY: 100}); !sel.IsEmpty() {
		t.Errorf("hit at stale position matched: %v", sel.Indices())
	}
}

func TestGlyphViewSetFrame(t *testing.T) {
	view := newStripView(t, []float64{2}, []float64{4})
	view.SetFrame(Frame{Left: 10, Right: 310, Top: 5, Bottom: 205})
	f := view.Frame()
	if f.Width() != 300 || f.Height() != 200 {
		t.Errorf("Frame = %+v", f)
	}
}
