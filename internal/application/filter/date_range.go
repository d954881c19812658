// Package filter restricts the line item table to the date range selected by the user.
package filter

import (
	"time"

	"github.com/diillson/billing-dashboard-go/internal/domain/entity"
	"github.com/diillson/billing-dashboard-go/internal/shared/types"
)

// DefaultLookbackDays is the width of the default window.
const DefaultLookbackDays = 365

// endOfWeek snaps t forward to the Sunday closing its week (weeks start on Monday).
func endOfWeek(t time.Time) time.Time {
	// time.Weekday conta domingo como 0; a semana aqui começa na segunda.
	offset := (7 - int(t.Weekday())) % 7
	return t.AddDate(0, 0, offset)
}

// DefaultRange ends at the Sunday closing the week of the latest created_at and
// starts DefaultLookbackDays earlier. ok is false for an empty table.
func DefaultRange(table entity.Table) (rng entity.DateRange, ok bool) {
	_, latest, ok := table.CreatedAtBounds()
	if !ok {
		return entity.DateRange{}, false
	}
	end := endOfWeek(latest)
	return entity.DateRange{Start: end.AddDate(0, 0, -DefaultLookbackDays), End: end}, true
}

// Validate rejects ranges whose start is after their end.
func Validate(rng entity.DateRange) error {
	if rng.Start.After(rng.End) {
		return &types.InvalidRangeError{Start: rng.Start, End: rng.End}
	}
	return nil
}

// Apply returns a new table with the rows whose created_at lies within rng,
// both ends included.
func Apply(table entity.Table, rng entity.DateRange) (entity.Table, error) {
	if err := Validate(rng); err != nil {
		return entity.Table{}, err
	}
	return table.Where(func(r entity.LineItemRecord) bool {
		return rng.Contains(r.CreatedAt)
	}), nil
}

// Select resolves the range of the current interaction. A requested range
// wins and is remembered in the session; otherwise the session's last range
// is reused; otherwise the default range of the table applies and the
// session is left untouched. A partial
// request (only start or only end) completes the missing side from the
// range that would otherwise apply.
func Select(table entity.Table, session *entity.Session, start, end *time.Time) (entity.DateRange, error) {
	base, ok := DefaultRange(table)
	if session != nil && session.Range != nil {
		base, ok = *session.Range, true
	}

	if start == nil && end == nil {
		if !ok {
			return entity.DateRange{}, nil
		}
		return base, nil
	}

	rng := base
	if start != nil {
		rng.Start = *start
	}
	if end != nil {
		rng.End = *end
	}
	if !ok && (start == nil || end == nil) {
		return entity.DateRange{}, &types.InvalidRangeError{Reason: "the dataset is empty; both --start and --end are required"}
	}
	if err := Validate(rng); err != nil {
		return entity.DateRange{}, err
	}

	if session != nil {
		session.Remember(rng)
	}
	return rng, nil
}
