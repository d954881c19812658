package analytics

import (
	"time"

	"github.com/diillson/billing-dashboard-go/internal/domain/entity"
)

func day(s string) time.Time {
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func sale(customer, created string, total float64) entity.LineItemRecord {
	return entity.LineItemRecord{
		HeaderID:     "inv-" + customer + "-" + created,
		LineItemID:   "li-" + customer + "-" + created,
		CreatedAt:    day(created),
		CustomerID:   "cus_" + customer,
		CustomerName: customer,
		TotalAmount:  total,
	}
}

func subscriptionRow(id, created string, start, end *time.Time, total float64) entity.LineItemRecord {
	r := sale("S", created, total)
	r.LineItemID = "li-" + id + "-" + created
	r.SubscriptionID = id
	r.SubscriptionPeriodStartedAt = start
	r.SubscriptionPeriodEndedAt = end
	return r
}

// scenarioTable has customer A in January and March and B in February.
func scenarioTable() entity.Table {
	return entity.NewTable([]entity.LineItemRecord{
		sale("A", "2023-01-15", 100),
		sale("A", "2023-03-10", 50),
		sale("B", "2023-02-01", 200),
	})
}

func sumSeries(series []entity.MonthlyValue) float64 {
	var total float64
	for _, mv := range series {
		total += mv.Value
	}
	return total
}
