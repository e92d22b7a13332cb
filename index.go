package plot

import (
	"math"

	"github.com/tidwall/rtree"
)

// indexYSentinel is the y-extent stored for glyphs that carry no vertical
// geometry (and, mirrored, the x-extent for glyphs with no horizontal
// geometry). The index structure is rectangle-based, so one-dimensional
// glyphs store a degenerate band on the unused axis. The value is never
// meaningful geometry; queries against the unused axis pass the same
// zero-width band.
const indexYSentinel = 0.0

// SpatialIndex is a 2D rectangle index over glyph rows, used to cull
// candidates before hit-testing touches per-row geometry and to answer the
// full-bounds query for auto-ranging.
//
// The index is rebuilt wholesale when the source data changes; it is never
// mutated while queries run.
type SpatialIndex struct {
	tree rtree.RTreeG[int]
	size int
}

// NewSpatialIndex creates an empty index. The tree grows on demand as
// rows are added.
func NewSpatialIndex() *SpatialIndex {
	return &SpatialIndex{}
}

// Add inserts row i with the given rectangle. Coordinate pairs may be in
// either order; they are normalized per axis before insertion. Rows with a
// non-finite coordinate are skipped — they can never be hit and would
// poison the tree's bounds.
func (ix *SpatialIndex) Add(x0, y0, x1, y1 float64, i int) {
	if !isFinite(x0) || !isFinite(y0) || !isFinite(x1) || !isFinite(y1) {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	ix.tree.Insert([2]float64{x0, y0}, [2]float64{x1, y1}, i)
	ix.size++
}

// Indices returns the rows whose stored rectangle intersects r, in
// index-traversal order.
func (ix *SpatialIndex) Indices(r Rect) []int {
	n := r.Normalize()
	var out []int
	ix.tree.Search([2]float64{n.X0, n.Y0}, [2]float64{n.X1, n.Y1},
		func(_, _ [2]float64, i int) bool {
			out = append(out, i)
			return true
		})
	return out
}

// Bounds returns the union of all stored rectangles, or EmptyRect when the
// index holds no rows.
func (ix *SpatialIndex) Bounds() Rect {
	if ix.size == 0 {
		return EmptyRect()
	}
	min, max := ix.tree.Bounds()
	return Rect{X0: min[0], Y0: min[1], X1: max[0], Y1: max[1]}
}

// Len returns the number of indexed rows.
func (ix *SpatialIndex) Len() int { return ix.size }

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
