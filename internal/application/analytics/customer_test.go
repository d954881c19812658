package analytics

import (
	"testing"

	"github.com/diillson/billing-dashboard-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerLifetimeValues_Scenario(t *testing.T) {
	clv := CustomerLifetimeValues(scenarioTable())

	assert.Equal(t, []entity.CustomerValue{
		{Customer: "A", CLV: 150},
		{Customer: "B", CLV: 200},
	}, clv)
	assert.Equal(t, 175.0, AverageRevenuePerCustomer(clv))
}

func TestCustomerLifetimeValues_TotalMatchesRevenue(t *testing.T) {
	anonymous := sale("", "2023-02-02", 12.5)
	table := entity.NewTable([]entity.LineItemRecord{
		sale("A", "2023-01-01", 10.25),
		sale("B", "2023-01-02", 3.75),
		sale("A", "2023-01-03", -2),
		anonymous,
	})

	var total float64
	for _, c := range CustomerLifetimeValues(table) {
		total += c.CLV
	}

	assert.InDelta(t, TotalRevenue(table), total, 1e-9)
}

func TestTopCustomers(t *testing.T) {
	clv := []entity.CustomerValue{
		{Customer: "a", CLV: 10},
		{Customer: "b", CLV: 30},
		{Customer: "c", CLV: 30},
		{Customer: "d", CLV: 5},
	}

	top := TopCustomers(clv, 3)

	assert.Equal(t, []entity.CustomerValue{
		{Customer: "b", CLV: 30},
		{Customer: "c", CLV: 30},
		{Customer: "a", CLV: 10},
	}, top)
	assert.Equal(t, "a", clv[0].Customer, "input must not be reordered")
	assert.Len(t, TopCustomers(clv, 10), 4)
}

func TestChurnRate(t *testing.T) {
	table := entity.NewTable([]entity.LineItemRecord{
		sale("A", "2023-01-15", 10),
		sale("A", "2023-05-20", 10),
		sale("B", "2023-02-01", 10),
		sale("C", "2023-03-31", 10),
	})

	tests := []struct {
		name string
		asOf string
		want float64
	}{
		// corte em 2023-03-30: só B ficou antes dele
		{name: "one of three", asOf: "2023-06-30", want: 1.0 / 3},
		// corte em 2023-02-28 clampado a partir de 2023-05-31
		{name: "clamped cutoff", asOf: "2023-05-31", want: 1.0 / 3},
		{name: "nobody", asOf: "2023-04-01", want: 0},
		{name: "everybody", asOf: "2024-01-01", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChurnRate(table, day(tt.asOf))
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestChurnRate_SkipsRowsWithoutCustomer(t *testing.T) {
	orphan := sale("X", "2020-01-01", 10)
	orphan.CustomerID = ""
	table := entity.NewTable([]entity.LineItemRecord{orphan, sale("A", "2023-05-01", 10)})

	assert.Zero(t, ChurnRate(table, day("2023-06-01")))
	assert.Equal(t, 1, TotalCustomers(table))
}

func TestActiveCustomers(t *testing.T) {
	table := entity.NewTable([]entity.LineItemRecord{
		sale("A", "2023-01-15", 10),
		sale("B", "2023-02-28", 10),
		sale("C", "2023-03-15", 10),
		sale("D", "2023-03-31", 10),
	})

	// corte em 2023-02-28 (31 de março menos um mês)
	assert.Equal(t, 3, ActiveCustomers(table))
	assert.Equal(t, 4, TotalCustomers(table))
}

func TestActiveCustomersOverTime(t *testing.T) {
	table := entity.NewTable([]entity.LineItemRecord{
		sale("A", "2023-01-15", 10),
		sale("A", "2023-01-20", 10),
		sale("B", "2023-01-21", 10),
		sale("A", "2023-03-01", 10),
	})

	assert.Equal(t, []entity.MonthlyValue{
		{Month: "2023-01", Value: 2},
		{Month: "2023-02", Value: 0},
		{Month: "2023-03", Value: 1},
	}, ActiveCustomersOverTime(table))
}

func TestCLVSegments(t *testing.T) {
	clv := []entity.CustomerValue{
		{Customer: "a", CLV: 50},
		{Customer: "b", CLV: 50.01},
		{Customer: "c", CLV: 500},
		{Customer: "d", CLV: 1000.5},
		{Customer: "e", CLV: 0},
		{Customer: "f", CLV: -20},
	}

	segments := CLVSegments(clv)

	require.Len(t, segments, 5)
	assert.Equal(t, []entity.CLVSegment{
		{Label: "0-50", Customers: 1},
		{Label: "50-100", Customers: 1},
		{Label: "100-500", Customers: 1},
		{Label: "500-1000", Customers: 0},
		{Label: "1000+", Customers: 1},
	}, segments)
}

func TestCustomerMetrics_EmptyTable(t *testing.T) {
	m := CustomerMetricsFor(entity.NewTable(nil), day("2023-01-01"), DefaultTopCustomers)

	assert.Empty(t, m.LifetimeValues)
	assert.Empty(t, m.TopCustomers)
	assert.Zero(t, m.ChurnRate)
	assert.Zero(t, m.AverageRevenuePerCustomer)
	assert.Zero(t, m.ActiveCustomers)
}
