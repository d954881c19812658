package entity

import "time"

// MonthLayout is the label format of every monthly bucket.
const MonthLayout = "2006-01"

// Table is an immutable, in-memory view over line item records.
// Every derived view is a new Table; rows are never modified in place.
type Table struct {
	rows []LineItemRecord
}

// NewTable cria uma nova tabela a partir de uma cópia das linhas informadas.
func NewTable(rows []LineItemRecord) Table {
	cp := make([]LineItemRecord, len(rows))
	copy(cp, rows)
	return Table{rows: cp}
}

// Rows returns a copy of the table rows.
func (t Table) Rows() []LineItemRecord {
	cp := make([]LineItemRecord, len(t.rows))
	copy(cp, t.rows)
	return cp
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.rows)
}

// IsEmpty reports whether the table has no rows.
func (t Table) IsEmpty() bool {
	return len(t.rows) == 0
}

// Each calls fn for every row, in order, without copying the table.
func (t Table) Each(fn func(LineItemRecord)) {
	for _, r := range t.rows {
		fn(r)
	}
}

// Where returns a new table holding the rows matching keep.
func (t Table) Where(keep func(LineItemRecord) bool) Table {
	out := make([]LineItemRecord, 0, len(t.rows))
	for _, r := range t.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return Table{rows: out}
}

// CreatedAtBounds returns the min and max created_at. ok is false for an empty table.
func (t Table) CreatedAtBounds() (minAt, maxAt time.Time, ok bool) {
	if len(t.rows) == 0 {
		return time.Time{}, time.Time{}, false
	}
	minAt, maxAt = t.rows[0].CreatedAt, t.rows[0].CreatedAt
	for _, r := range t.rows[1:] {
		if r.CreatedAt.Before(minAt) {
			minAt = r.CreatedAt
		}
		if r.CreatedAt.After(maxAt) {
			maxAt = r.CreatedAt
		}
	}
	return minAt, maxAt, true
}

// LoadStats describes the outcome of a dataset load.
type LoadStats struct {
	Source      string `json:"source"`
	Identity    string `json:"identity,omitempty"`
	RowsRead    int    `json:"rows_read"`
	RowsKept    int    `json:"rows_kept"`
	RowsDropped int    `json:"rows_dropped"`
}
