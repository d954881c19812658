package analytics

import (
	"testing"

	"github.com/diillson/billing-dashboard-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptions_OpenEndedIsActiveEveryMonth(t *testing.T) {
	table := entity.NewTable([]entity.LineItemRecord{
		subscriptionRow("sub_1", "2023-01-01", dayPtr("2023-01-01"), nil, 10),
		sale("A", "2023-06-01", 5),
	})

	counts := SubscriptionCounts(table)
	assert.Equal(t, entity.SubscriptionCounts{Total: 1, Active: 1, Canceled: 0}, counts)

	series := ActiveSubscriptionsOverTime(table)
	require.Len(t, series, 6)
	assert.Equal(t, "2023-01", series[0].Month)
	assert.Equal(t, "2023-06", series[5].Month)
	for _, mv := range series {
		assert.Equal(t, 1.0, mv.Value, mv.Month)
	}
}

func TestSubscriptionCounts_Partition(t *testing.T) {
	table := entity.NewTable([]entity.LineItemRecord{
		// cancelada antes da última data observada
		subscriptionRow("sub_old", "2023-01-15", dayPtr("2023-01-15"), dayPtr("2023-03-31"), 10),
		// renovada: uma linha fechada e uma aberta
		subscriptionRow("sub_renewed", "2023-02-01", dayPtr("2023-02-01"), dayPtr("2023-03-01"), 10),
		subscriptionRow("sub_renewed", "2023-03-01", dayPtr("2023-03-01"), nil, 10),
		// termina depois da referência
		subscriptionRow("sub_future", "2023-05-01", dayPtr("2023-05-01"), dayPtr("2023-07-01"), 10),
		// termina exatamente na referência
		subscriptionRow("sub_edge", "2023-04-01", dayPtr("2023-04-01"), dayPtr("2023-06-01"), 10),
		sale("A", "2023-06-01", 5),
	})

	counts := SubscriptionCounts(table)

	assert.Equal(t, 4, counts.Total)
	assert.Equal(t, 2, counts.Active)
	assert.Equal(t, 2, counts.Canceled)
	assert.Equal(t, counts.Total, counts.Active+counts.Canceled)
}

func TestActiveSubscriptionsOverTime_Overlap(t *testing.T) {
	table := entity.NewTable([]entity.LineItemRecord{
		subscriptionRow("sub_1", "2023-01-15", dayPtr("2023-01-15"), dayPtr("2023-03-01"), 10),
		subscriptionRow("sub_2", "2023-03-20", nil, dayPtr("2023-03-31"), 10),
		sale("A", "2023-05-05", 1),
	})

	assert.Equal(t, []entity.MonthlyValue{
		{Month: "2023-01", Value: 2},
		{Month: "2023-02", Value: 2},
		{Month: "2023-03", Value: 2},
		{Month: "2023-04", Value: 0},
		{Month: "2023-05", Value: 0},
	}, ActiveSubscriptionsOverTime(table))
}

func TestSubscriptions_EmptyTable(t *testing.T) {
	empty := entity.NewTable(nil)

	assert.Equal(t, entity.SubscriptionCounts{}, SubscriptionCounts(empty))
	assert.Empty(t, ActiveSubscriptionsOverTime(empty))
}
