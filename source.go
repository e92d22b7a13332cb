package plot

import (
	"errors"
	"fmt"
)

// Common errors returned when resolving field specs against a data source.
var (
	// ErrMissingColumn is returned when a field spec names a column the
	// source does not hold.
	ErrMissingColumn = errors.New("plot: missing column")

	// ErrColumnLength is returned when a column's length disagrees with
	// the source's established row count.
	ErrColumnLength = errors.New("plot: column length mismatch")
)

// DataSource is a columnar table: named float64 columns of equal length.
// It is the binding layer between user data and glyph views; views resolve
// their field specs against it in SetData and copy nothing afterward.
type DataSource struct {
	columns map[string][]float64
	length  int
	sized   bool
}

// NewDataSource creates an empty data source.
func NewDataSource() *DataSource {
	return &DataSource{columns: make(map[string][]float64)}
}

// SetColumn stores a column under the given name. The first column fixes
// the source's row count; later columns must match it.
func (s *DataSource) SetColumn(name string, values []float64) error {
	if s.sized && len(values) != s.length {
		return fmt.Errorf("%w: column %q has %d rows, source has %d",
			ErrColumnLength, name, len(values), s.length)
	}
	if !s.sized {
		s.length = len(values)
		s.sized = true
	}
	s.columns[name] = values
	return nil
}

// Column returns the named column and whether it is present. A stored
// zero-row column is present with a nil slice.
func (s *DataSource) Column(name string) ([]float64, bool) {
	col, ok := s.columns[name]
	return col, ok
}

// Len returns the number of rows.
func (s *DataSource) Len() int { return s.length }

// FieldSpec designates where a glyph coordinate comes from: a named column
// of the data source, or a constant applied to every row.
type FieldSpec struct {
	field   string
	value   float64
	isValue bool
}

// Field creates a spec that resolves to the named column.
func Field(name string) FieldSpec {
	return FieldSpec{field: name}
}

// Value creates a spec that resolves to the given constant for every row.
func Value(v float64) FieldSpec {
	return FieldSpec{value: v, isValue: true}
}

// IsValue reports whether the spec is a constant rather than a column
// reference.
func (f FieldSpec) IsValue() bool { return f.isValue }

// FieldName returns the referenced column name, or "" for constants.
func (f FieldSpec) FieldName() string { return f.field }

// Resolve produces the per-row array for this spec against src. Constants
// are expanded to the source's row count.
func (f FieldSpec) Resolve(src *DataSource) ([]float64, error) {
	if f.isValue {
		out := make([]float64, src.Len())
		for i := range out {
			out[i] = f.value
		}
		return out, nil
	}
	col, ok := src.Column(f.field)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, f.field)
	}
	return col, nil
}
