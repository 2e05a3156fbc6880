package model

import (
	"fmt"
	"math"
)

// Table is an immutable snapshot of observations: one row per entity, one
// float64 column per named field. NaN marks a missing value.
type Table struct {
	fields  []string
	columns map[string][]float64
	ids     []string
	n       int
}

// NewTable creates an empty table with capacity for n rows. Columns are added
// during construction; once handed to the validator the table is never
// mutated.
func NewTable(n int) *Table {
	return &Table{columns: make(map[string][]float64), n: n}
}

// SetIDs attaches row identities, e.g. plant codes. Length must match the
// row count.
func (t *Table) SetIDs(ids []string) error {
	if len(ids) != t.n {
		return fmt.Errorf("id column has %d entries, table has %d rows", len(ids), t.n)
	}
	t.ids = ids
	return nil
}

// AddColumn registers a field. Values must have one entry per row; use NaN
// for nulls.
func (t *Table) AddColumn(field string, values []float64) error {
	if len(values) != t.n {
		return fmt.Errorf("column %s has %d values, table has %d rows", field, len(values), t.n)
	}
	if _, ok := t.columns[field]; ok {
		return fmt.Errorf("column %s already exists", field)
	}
	t.fields = append(t.fields, field)
	t.columns[field] = values
	return nil
}

// DeriveRatio adds a column computed as numerator/denominator per row.
// Rows where the denominator is zero or null yield a null, so they drop out
// of quantile and center computation instead of aborting the run.
func (t *Table) DeriveRatio(field, numerator, denominator string) error {
	num, ok := t.columns[numerator]
	if !ok {
		return fmt.Errorf("unknown numerator column %s", numerator)
	}
	den, ok := t.columns[denominator]
	if !ok {
		return fmt.Errorf("unknown denominator column %s", denominator)
	}
	values := make([]float64, t.n)
	for i := range values {
		if math.IsNaN(num[i]) || math.IsNaN(den[i]) || den[i] == 0 {
			values[i] = math.NaN()
			continue
		}
		values[i] = num[i] / den[i]
	}
	return t.AddColumn(field, values)
}

// Len returns the number of rows.
func (t *Table) Len() int { return t.n }

// Fields returns the column names in insertion order.
func (t *Table) Fields() []string { return t.fields }

// HasField reports whether the named column exists.
func (t *Table) HasField(field string) bool {
	_, ok := t.columns[field]
	return ok
}

// Column returns the raw values of a field, nulls included. The returned
// slice is shared; callers must not modify it.
func (t *Table) Column(field string) ([]float64, bool) {
	c, ok := t.columns[field]
	return c, ok
}

// NonNull returns the non-null values of a field together with their
// original row indices.
func (t *Table) NonNull(field string) (values []float64, rows []int) {
	c, ok := t.columns[field]
	if !ok {
		return nil, nil
	}
	for i, v := range c {
		if !math.IsNaN(v) {
			values = append(values, v)
			rows = append(rows, i)
		}
	}
	return values, rows
}

// RowID returns the identity of row i, falling back to the row number when
// no ID column was attached.
func (t *Table) RowID(i int) string {
	if t.ids != nil && i >= 0 && i < len(t.ids) {
		return t.ids[i]
	}
	return fmt.Sprintf("row-%d", i)
}
