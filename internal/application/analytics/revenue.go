package analytics

import (
	"strings"

	"github.com/diillson/billing-dashboard-go/internal/domain/entity"
)

// paidStatuses are the header statuses counted as collected revenue.
var paidStatuses = []string{"paid", "completed"}

// TotalRevenue sums total_amount over every row.
func TotalRevenue(table entity.Table) float64 {
	var total float64
	table.Each(func(r entity.LineItemRecord) {
		total += r.TotalAmount
	})
	return total
}

// MonthlyRevenue returns the revenue per calendar month, contiguous from the
// first to the last observed month.
func MonthlyRevenue(table entity.Table) []entity.MonthlyValue {
	first, last, ok := table.CreatedAtBounds()
	if !ok {
		return []entity.MonthlyValue{}
	}
	return DenseMonthlySeries(sumByMonth(table), first, last)
}

// AverageMonthlyRevenue is the mean of the gap-filled monthly revenue series.
func AverageMonthlyRevenue(table entity.Table) float64 {
	return mean(MonthlyRevenue(table))
}

// MRRSeries returns the monthly recurring revenue: revenue of rows linked to a
// subscription, contiguous over the months spanned by those rows.
func MRRSeries(table entity.Table) []entity.MonthlyValue {
	recurring := table.Where(entity.LineItemRecord.IsRecurring)
	first, last, ok := recurring.CreatedAtBounds()
	if !ok {
		return []entity.MonthlyValue{}
	}
	return DenseMonthlySeries(sumByMonth(recurring), first, last)
}

// CurrentMRR is the MRR of the most recent month, or zero without subscriptions.
func CurrentMRR(series []entity.MonthlyValue) float64 {
	if len(series) == 0 {
		return 0
	}
	return series[len(series)-1].Value
}

// AverageSubscriptionAmount is the mean total_amount of paid or completed rows.
func AverageSubscriptionAmount(table entity.Table) float64 {
	var total float64
	var n int
	table.Each(func(r entity.LineItemRecord) {
		for _, s := range paidStatuses {
			if strings.EqualFold(r.HeaderStatus, s) {
				total += r.TotalAmount
				n++
				return
			}
		}
	})
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// RevenueKPIsFor computes the revenue tiles for table filtered by rng.
func RevenueKPIsFor(table entity.Table, rng entity.DateRange) entity.RevenueKPIs {
	kpis := entity.RevenueKPIs{
		TotalRevenue:              TotalRevenue(table),
		MonthlyAverageRevenue:     AverageMonthlyRevenue(table),
		CurrentMRR:                CurrentMRR(MRRSeries(table)),
		AverageSubscriptionAmount: AverageSubscriptionAmount(table),
	}

	if days := rng.Days(); days > 0 {
		kpis.DailyAverageRevenue = kpis.TotalRevenue / float64(days)
	}

	table.Each(func(r entity.LineItemRecord) {
		kpis.TotalDiscounts += r.DiscountAmount
		kpis.TotalRefunds += r.RefundAmount
	})
	if n := table.Len(); n > 0 {
		kpis.AverageDiscount = kpis.TotalDiscounts / float64(n)
		kpis.AverageRefund = kpis.TotalRefunds / float64(n)
	}

	return kpis
}
