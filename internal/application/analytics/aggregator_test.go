package analytics

import (
	"testing"

	"github.com/diillson/billing-dashboard-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestCompute_Scenario(t *testing.T) {
	rng := entity.DateRange{Start: day("2023-01-01"), End: day("2023-03-31")}

	report := Compute(scenarioTable(), rng, Options{AsOf: day("2023-04-01")})

	assert.Equal(t, 3, report.Rows)
	assert.Equal(t, 350.0, report.Revenue.TotalRevenue)
	assert.InDelta(t, 350.0/90, report.Revenue.DailyAverageRevenue, 1e-9)
	assert.Equal(t, 175.0, report.Customers.AverageRevenuePerCustomer)
	assert.Equal(t, entity.DimensionProductType, report.Dimension)
	assert.Equal(t, entity.UnknownCategory, report.SelectedCategory)
	assert.Equal(t, []entity.CategoryRevenue{{Category: entity.UnknownCategory, Revenue: 350}}, report.RevenueByCategory)
	assert.Len(t, report.CategoryTrend, 3)
	assert.Equal(t, day("2023-04-01"), report.AsOf)
}

func TestCompute_SelectedCategory(t *testing.T) {
	rng := entity.DateRange{Start: day("2023-01-01"), End: day("2023-03-31")}

	report := Compute(productTable(), rng, Options{
		Dimension:     entity.DimensionProductName,
		CategoryValue: "Pro",
		TopN:          1,
	})

	assert.Equal(t, "Pro", report.SelectedCategory)
	assert.Equal(t, []entity.MonthlyValue{{Month: "2023-03", Value: 80}}, report.CategoryTrend)
	assert.Len(t, report.Customers.TopCustomers, 1)
}

func TestCompute_EmptyTable(t *testing.T) {
	rng := entity.DateRange{Start: day("2023-01-01"), End: day("2023-03-31")}

	var report entity.ReportMetrics
	assert.NotPanics(t, func() {
		report = Compute(entity.NewTable(nil), rng, Options{AsOf: day("2023-04-01")})
	})

	assert.Zero(t, report.Revenue.TotalRevenue)
	assert.Empty(t, report.Customers.LifetimeValues)
	assert.Zero(t, report.Customers.ChurnRate)
	assert.Empty(t, report.MonthlyRevenue)
	assert.Empty(t, report.RevenueByCategory)
	assert.Empty(t, report.SelectedCategory)
	assert.Nil(t, report.CategoryTrend)
}
