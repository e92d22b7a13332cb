package plot

// Selection is the result of a hit-testing query: the ordered set of row
// indices that matched. Order follows the order candidates were yielded by
// the spatial index. Selections are returned by views and never consumed
// by them; an empty Selection is a normal outcome, not an error.
type Selection struct {
	indices []int
}

// NewSelection creates a selection holding the given row indices.
// The slice is owned by the Selection afterward.
func NewSelection(indices []int) *Selection {
	return &Selection{indices: indices}
}

// EmptySelection creates a selection with no matches.
func EmptySelection() *Selection {
	return &Selection{}
}

// Indices returns the matched row indices in match order.
// The returned slice must not be modified.
func (s *Selection) Indices() []int { return s.indices }

// Len returns the number of matched rows.
func (s *Selection) Len() int { return len(s.indices) }

// IsEmpty reports whether no rows matched.
func (s *Selection) IsEmpty() bool { return len(s.indices) == 0 }

// Contains reports whether row i is part of the selection.
func (s *Selection) Contains(i int) bool {
	for _, idx := range s.indices {
		if idx == i {
			return true
		}
	}
	return false
}
