package analytics

import (
	"time"

	"github.com/diillson/billing-dashboard-go/internal/domain/entity"
)

// Options parameterize the metric pass.
type Options struct {
	// Dimension used by the revenue breakdown and the category trend.
	Dimension entity.Dimension
	// CategoryValue selects the category trend. Empty picks the first value
	// observed in the window.
	CategoryValue string
	// AsOf is the evaluation instant of the churn computation.
	AsOf time.Time
	// TopN bounds the top customer list; zero means DefaultTopCustomers.
	TopN int
}

// Compute runs every metric over the filtered table.
func Compute(table entity.Table, rng entity.DateRange, opts Options) entity.ReportMetrics {
	dim := opts.Dimension
	if dim == "" {
		dim = entity.DimensionProductType
	}
	topN := opts.TopN
	if topN <= 0 {
		topN = DefaultTopCustomers
	}

	selected := opts.CategoryValue
	if selected == "" {
		if values := CategoryValues(table, dim); len(values) > 0 {
			selected = values[0]
		}
	}

	report := entity.ReportMetrics{
		Range:                 rng,
		AsOf:                  opts.AsOf,
		Rows:                  table.Len(),
		Revenue:               RevenueKPIsFor(table, rng),
		MonthlyRevenue:        MonthlyRevenue(table),
		MRR:                   MRRSeries(table),
		Subscriptions:         SubscriptionCounts(table),
		ActiveSubscriptions:   ActiveSubscriptionsOverTime(table),
		Dimension:             dim,
		RevenueByCategory:     RevenueByCategory(table, dim),
		SelectedCategory:      selected,
		Customers:             CustomerMetricsFor(table, opts.AsOf, topN),
		ActiveCustomersSeries: ActiveCustomersOverTime(table),
	}
	if selected != "" {
		report.CategoryTrend = CategoryMonthlyTrend(table, dim, selected)
	}
	return report
}
