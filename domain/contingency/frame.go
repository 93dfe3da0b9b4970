package contingency

import (
	"colloc/domain/core"
)

// Canonical column names for a 2x2 contingency table. One row per
// linguistic item (e.g. a collocate of a node word): observed joint
// frequencies, expected frequencies under independence, and the sample
// size the row was drawn from.
const (
	ColO11 = "O11"
	ColO12 = "O12"
	ColO21 = "O21"
	ColO22 = "O22"
	ColE11 = "E11"
	ColE12 = "E12"
	ColE21 = "E21"
	ColE22 = "E22"
	ColN   = "N"
)

// ObservedColumns lists the four observed cell counts.
var ObservedColumns = []string{ColO11, ColO12, ColO21, ColO22}

// ExpectedColumns lists the four expected cell counts.
var ExpectedColumns = []string{ColE11, ColE12, ColE21, ColE22}

// Frame is a columnar table of contingency rows. Columns are named
// float64 slices of equal length; insertion order is preserved so that
// derived and score columns appear after the counts they came from.
type Frame struct {
	rows    int
	order   []string
	columns map[string][]float64
}

// NewFrame creates an empty frame with a fixed row count.
func NewFrame(rows int) *Frame {
	return &Frame{
		rows:    rows,
		columns: make(map[string][]float64),
	}
}

// FromColumns builds a frame from named columns. All columns must have
// the same length; the iteration order of score/derived columns added
// later is stable, but the initial order follows ObservedColumns,
// ExpectedColumns, N, then any remaining names.
func FromColumns(cols map[string][]float64) (*Frame, error) {
	rows := -1
	for name, values := range cols {
		if rows == -1 {
			rows = len(values)
		} else if len(values) != rows {
			return nil, core.NewLengthMismatchError(name, len(values), rows)
		}
	}
	if rows <= 0 {
		return nil, core.ErrEmptyFrame
	}

	f := NewFrame(rows)
	canonical := append(append(append([]string{}, ObservedColumns...), ExpectedColumns...), ColN)
	for _, name := range canonical {
		if values, ok := cols[name]; ok {
			f.setColumn(name, values)
		}
	}
	for name, values := range cols {
		if !f.Has(name) {
			f.setColumn(name, values)
		}
	}
	return f, nil
}

// FromObserved builds a frame holding only the four observed counts.
func FromObserved(o11, o12, o21, o22 []float64) (*Frame, error) {
	return FromColumns(map[string][]float64{
		ColO11: o11,
		ColO12: o12,
		ColO21: o21,
		ColO22: o22,
	})
}

// Rows returns the number of rows in the frame.
func (f *Frame) Rows() int {
	return f.rows
}

// Columns returns the column names in insertion order.
func (f *Frame) Columns() []string {
	names := make([]string, len(f.order))
	copy(names, f.order)
	return names
}

// Has reports whether the named column exists.
func (f *Frame) Has(name string) bool {
	_, ok := f.columns[name]
	return ok
}

// HasAll reports whether every named column exists.
func (f *Frame) HasAll(names ...string) bool {
	for _, name := range names {
		if !f.Has(name) {
			return false
		}
	}
	return true
}

// Column returns the named column. The slice is the frame's backing
// storage, not a copy.
func (f *Frame) Column(name string) ([]float64, error) {
	values, ok := f.columns[name]
	if !ok {
		return nil, core.NewColumnNotFoundError(name)
	}
	return values, nil
}

// SetColumn attaches values under name, overwriting any existing column
// of that name. The frame takes ownership of the slice.
func (f *Frame) SetColumn(name string, values []float64) error {
	if len(values) != f.rows {
		return core.NewLengthMismatchError(name, len(values), f.rows)
	}
	f.setColumn(name, values)
	return nil
}

func (f *Frame) setColumn(name string, values []float64) {
	if _, exists := f.columns[name]; !exists {
		f.order = append(f.order, name)
	}
	f.columns[name] = values
}

// Copy returns an independent deep copy of the frame.
func (f *Frame) Copy() *Frame {
	out := NewFrame(f.rows)
	for _, name := range f.order {
		values := make([]float64, f.rows)
		copy(values, f.columns[name])
		out.setColumn(name, values)
	}
	return out
}
