// Package analytics derives the revenue, subscription, product and customer
// metrics of the billing report from an already filtered line item table.
//
// Every function is pure: it never mutates the input table and returns the
// zero value (zero amounts, zero counts, empty series) for an empty table.
package analytics

import (
	"sort"
	"time"

	"github.com/diillson/billing-dashboard-go/internal/domain/entity"
)

// monthStart truncates t to the first instant of its calendar month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// monthEnd returns the last instant of the calendar month of t.
func monthEnd(t time.Time) time.Time {
	return monthStart(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// addMonths shifts t by n calendar months, clamping the day to the length of
// the target month (Mar 31 - 1 month = Feb 28/29) instead of overflowing.
func addMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	target := first.AddDate(0, n, 0)
	lastDay := monthStart(target).AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(target.Year(), target.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// months lists the first instant of every month from first to last, inclusive.
func months(first, last time.Time) []time.Time {
	start, end := monthStart(first), monthStart(last)
	if start.After(end) {
		return nil
	}
	var out []time.Time
	for m := start; !m.After(end); m = m.AddDate(0, 1, 0) {
		out = append(out, m)
	}
	return out
}

// DenseMonthlySeries materializes a contiguous monthly series covering every
// month from first to last. Months missing from values are filled with zero.
func DenseMonthlySeries(values map[string]float64, first, last time.Time) []entity.MonthlyValue {
	span := months(first, last)
	out := make([]entity.MonthlyValue, 0, len(span))
	for _, m := range span {
		label := m.Format(entity.MonthLayout)
		out = append(out, entity.MonthlyValue{Month: label, Value: values[label]})
	}
	return out
}

// sparseMonthlySeries orders the observed months without filling gaps.
func sparseMonthlySeries(values map[string]float64) []entity.MonthlyValue {
	labels := make([]string, 0, len(values))
	for label := range values {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	out := make([]entity.MonthlyValue, 0, len(labels))
	for _, label := range labels {
		out = append(out, entity.MonthlyValue{Month: label, Value: values[label]})
	}
	return out
}

// sumByMonth sums total_amount per calendar month.
func sumByMonth(table entity.Table) map[string]float64 {
	sums := make(map[string]float64)
	table.Each(func(r entity.LineItemRecord) {
		sums[r.Month()] += r.TotalAmount
	})
	return sums
}

// countDistinctByMonth counts distinct non-empty keys per calendar month.
func countDistinctByMonth(table entity.Table, key func(entity.LineItemRecord) string) map[string]float64 {
	seen := make(map[string]map[string]struct{})
	table.Each(func(r entity.LineItemRecord) {
		k := key(r)
		if k == "" {
			return
		}
		m := r.Month()
		if seen[m] == nil {
			seen[m] = make(map[string]struct{})
		}
		seen[m][k] = struct{}{}
	})

	counts := make(map[string]float64, len(seen))
	for m, keys := range seen {
		counts[m] = float64(len(keys))
	}
	return counts
}

func mean(values []entity.MonthlyValue) float64 {
	if len(values) == 0 {
		return 0
	}
	var total float64
	for _, v := range values {
		total += v.Value
	}
	return total / float64(len(values))
}
