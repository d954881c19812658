package analytics

import (
	"sort"
	"time"

	"github.com/diillson/billing-dashboard-go/internal/domain/entity"
)

const (
	// ChurnWindowMonths is how long a customer may stay silent before counting as churned.
	ChurnWindowMonths = 3
	// ActiveWindowMonths is the look-back used for current active customers.
	ActiveWindowMonths = 1
	// DefaultTopCustomers is the size of the top customer list.
	DefaultTopCustomers = 10
)

// clvBuckets are right-closed: (0,50], (50,100], (100,500], (500,1000], (1000,inf).
var clvBuckets = []struct {
	label string
	upper float64
}{
	{"0-50", 50},
	{"50-100", 100},
	{"100-500", 500},
	{"500-1000", 1000},
	{"1000+", 0},
}

func customerName(r entity.LineItemRecord) string {
	if r.CustomerName == "" {
		return entity.UnknownCategory
	}
	return r.CustomerName
}

// CustomerLifetimeValues sums revenue per customer name, in ascending name order.
// Rows without a name are attributed to entity.UnknownCategory.
func CustomerLifetimeValues(table entity.Table) []entity.CustomerValue {
	sums := make(map[string]float64)
	table.Each(func(r entity.LineItemRecord) {
		sums[customerName(r)] += r.TotalAmount
	})

	out := make([]entity.CustomerValue, 0, len(sums))
	for name, clv := range sums {
		out = append(out, entity.CustomerValue{Customer: name, CLV: clv})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Customer < out[j].Customer
	})
	return out
}

// AverageRevenuePerCustomer is the mean CLV across customers.
func AverageRevenuePerCustomer(clv []entity.CustomerValue) float64 {
	if len(clv) == 0 {
		return 0
	}
	var total float64
	for _, c := range clv {
		total += c.CLV
	}
	return total / float64(len(clv))
}

// TopCustomers returns the n customers with the highest CLV. The sort is
// stable, so ties keep the order of clv.
func TopCustomers(clv []entity.CustomerValue, n int) []entity.CustomerValue {
	out := make([]entity.CustomerValue, len(clv))
	copy(out, clv)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CLV > out[j].CLV
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// lastActivity returns the latest created_at per non-empty customer_id.
func lastActivity(table entity.Table) map[string]time.Time {
	last := make(map[string]time.Time)
	table.Each(func(r entity.LineItemRecord) {
		if r.CustomerID == "" {
			return
		}
		if cur, ok := last[r.CustomerID]; !ok || r.CreatedAt.After(cur) {
			last[r.CustomerID] = r.CreatedAt
		}
	})
	return last
}

// ChurnRate is the share of customers whose last activity is more than
// ChurnWindowMonths before asOf. It is zero when no customer is observed.
func ChurnRate(table entity.Table, asOf time.Time) float64 {
	last := lastActivity(table)
	if len(last) == 0 {
		return 0
	}
	cutoff := addMonths(asOf, -ChurnWindowMonths)

	var churned int
	for _, at := range last {
		if at.Before(cutoff) {
			churned++
		}
	}
	return float64(churned) / float64(len(last))
}

// ActiveCustomers counts distinct customers with activity in the last
// ActiveWindowMonths before the latest created_at of the window.
func ActiveCustomers(table entity.Table) int {
	_, latest, ok := table.CreatedAtBounds()
	if !ok {
		return 0
	}
	cutoff := addMonths(latest, -ActiveWindowMonths)

	active := make(map[string]struct{})
	table.Each(func(r entity.LineItemRecord) {
		if r.CustomerID != "" && !r.CreatedAt.Before(cutoff) {
			active[r.CustomerID] = struct{}{}
		}
	})
	return len(active)
}

// TotalCustomers counts distinct non-empty customer ids.
func TotalCustomers(table entity.Table) int {
	return len(lastActivity(table))
}

// ActiveCustomersOverTime counts distinct customers with activity per month.
func ActiveCustomersOverTime(table entity.Table) []entity.MonthlyValue {
	first, last, ok := table.CreatedAtBounds()
	if !ok {
		return []entity.MonthlyValue{}
	}
	counts := countDistinctByMonth(table, func(r entity.LineItemRecord) string {
		return r.CustomerID
	})
	return DenseMonthlySeries(counts, first, last)
}

// CLVSegments buckets customers by lifetime value. Customers with a
// non-positive CLV fall outside every bucket.
func CLVSegments(clv []entity.CustomerValue) []entity.CLVSegment {
	out := make([]entity.CLVSegment, len(clvBuckets))
	for i, b := range clvBuckets {
		out[i].Label = b.label
	}
	for _, c := range clv {
		if c.CLV <= 0 {
			continue
		}
		for i, b := range clvBuckets {
			if b.upper == 0 || c.CLV <= b.upper {
				out[i].Customers++
				break
			}
		}
	}
	return out
}

// CustomerMetricsFor assembles the customer analysis section.
func CustomerMetricsFor(table entity.Table, asOf time.Time, topN int) entity.CustomerMetrics {
	clv := CustomerLifetimeValues(table)
	return entity.CustomerMetrics{
		AverageRevenuePerCustomer: AverageRevenuePerCustomer(clv),
		ChurnRate:                 ChurnRate(table, asOf),
		ActiveCustomers:           ActiveCustomers(table),
		TotalCustomers:            TotalCustomers(table),
		LifetimeValues:            clv,
		TopCustomers:              TopCustomers(clv, topN),
		Segments:                  CLVSegments(clv),
	}
}
