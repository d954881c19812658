package analytics

import (
	"sort"

	"github.com/diillson/billing-dashboard-go/internal/domain/entity"
)

// RevenueByCategory sums revenue per value of dim, highest revenue first.
// Ties keep ascending category order.
func RevenueByCategory(table entity.Table, dim entity.Dimension) []entity.CategoryRevenue {
	sums := make(map[string]float64)
	table.Each(func(r entity.LineItemRecord) {
		sums[dim.Value(r)] += r.TotalAmount
	})

	out := make([]entity.CategoryRevenue, 0, len(sums))
	for category, revenue := range sums {
		out = append(out, entity.CategoryRevenue{Category: category, Revenue: revenue})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Category < out[j].Category
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Revenue > out[j].Revenue
	})
	return out
}

// CategoryValues lists the distinct values of dim in order of first appearance.
func CategoryValues(table entity.Table, dim entity.Dimension) []string {
	seen := make(map[string]struct{})
	var values []string
	table.Each(func(r entity.LineItemRecord) {
		v := dim.Value(r)
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		values = append(values, v)
	})
	return values
}

// CategoryMonthlyTrend sums revenue per month for rows whose dim equals value.
// Months without revenue are omitted.
func CategoryMonthlyTrend(table entity.Table, dim entity.Dimension, value string) []entity.MonthlyValue {
	selected := table.Where(func(r entity.LineItemRecord) bool {
		return dim.Value(r) == value
	})
	return sparseMonthlySeries(sumByMonth(selected))
}
