// Package dataset provides the tabular data model used by the inspection
// routines: an ordered collection of named float64 columns, row-aligned with
// a target vector purely by position.
//
// Tables are immutable after construction. Operations that need a modified
// view, such as permuting one column, return a copy and never touch the
// source table. Column order is fixed at construction time so that iteration
// over features is deterministic.
package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/featdrift/featdrift/pkg/errors"
)

// Table is an ordered set of uniquely named numeric columns of equal length.
type Table struct {
	names []string
	index map[string]int
	data  *mat.Dense
}

// New builds a Table from column names and a backing matrix. The matrix must
// have exactly one column per name. The matrix is cloned so later mutation of
// the caller's matrix cannot alias the table.
func New(names []string, data *mat.Dense) (*Table, error) {
	if data == nil {
		return nil, errors.NewModelError("dataset.New", "nil matrix", errors.ErrEmptyData)
	}
	r, c := data.Dims()
	if len(names) != c {
		return nil, errors.NewDimensionError("dataset.New", len(names), c, 1)
	}

	index := make(map[string]int, len(names))
	for j, name := range names {
		if name == "" {
			return nil, errors.NewValueError("dataset.New", "empty column name")
		}
		if _, dup := index[name]; dup {
			return nil, errors.NewValueError("dataset.New", "duplicate column name: "+name)
		}
		index[name] = j
	}

	cloned := mat.NewDense(r, c, nil)
	cloned.Copy(data)

	return &Table{
		names: append([]string(nil), names...),
		index: index,
		data:  cloned,
	}, nil
}

// FromColumns builds a Table from per-column slices, all of equal length.
func FromColumns(names []string, cols [][]float64) (*Table, error) {
	if len(cols) == 0 {
		return nil, errors.NewModelError("dataset.FromColumns", "no columns", errors.ErrEmptyData)
	}
	if len(names) != len(cols) {
		return nil, errors.NewDimensionError("dataset.FromColumns", len(names), len(cols), 1)
	}

	rows := len(cols[0])
	for _, col := range cols {
		if len(col) != rows {
			return nil, errors.NewDimensionError("dataset.FromColumns", rows, len(col), 0)
		}
	}

	data := mat.NewDense(rows, len(cols), nil)
	for j, col := range cols {
		for i, v := range col {
			data.Set(i, j, v)
		}
	}
	return New(names, data)
}

// Rows returns the number of rows.
func (t *Table) Rows() int {
	r, _ := t.data.Dims()
	return r
}

// Cols returns the number of columns.
func (t *Table) Cols() int {
	_, c := t.data.Dims()
	return c
}

// Names returns the column names in their fixed declaration order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

// ColumnIndex returns the position of a named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	j, ok := t.index[name]
	return j, ok
}

// Column returns a copy of the values of a named column.
func (t *Table) Column(name string) ([]float64, error) {
	j, ok := t.index[name]
	if !ok {
		return nil, errors.NewValueError("Table.Column", "unknown column: "+name)
	}
	r := t.Rows()
	out := make([]float64, r)
	for i := 0; i < r; i++ {
		out[i] = t.data.At(i, j)
	}
	return out, nil
}

// Matrix exposes the table as a read-only gonum matrix for model prediction.
// Callers must not type-assert and mutate the result.
func (t *Table) Matrix() mat.Matrix {
	return t.data
}

// WithColumnPermuted returns a copy of the table in which column j is
// reordered by perm: row i of the new column holds the old value at row
// perm[i]. All other columns are shared-by-value copies and remain untouched.
// perm must have exactly one entry per row.
func (t *Table) WithColumnPermuted(j int, perm []int) (*Table, error) {
	r, c := t.data.Dims()
	if j < 0 || j >= c {
		return nil, errors.NewValueError("Table.WithColumnPermuted", "column index out of range")
	}
	if len(perm) != r {
		return nil, errors.NewDimensionError("Table.WithColumnPermuted", r, len(perm), 0)
	}

	data := mat.NewDense(r, c, nil)
	data.Copy(t.data)
	for i, src := range perm {
		if src < 0 || src >= r {
			return nil, errors.NewValueError("Table.WithColumnPermuted", "permutation index out of range")
		}
		data.Set(i, j, t.data.At(src, j))
	}

	return &Table{
		names: t.names, // immutable after construction, safe to share
		index: t.index,
		data:  data,
	}, nil
}
