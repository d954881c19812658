package analytics

import (
	"testing"

	"github.com/diillson/billing-dashboard-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func product(typ, name, created string, total float64) entity.LineItemRecord {
	r := sale("A", created, total)
	r.ProductType = typ
	r.ProductName = name
	return r
}

func productTable() entity.Table {
	return entity.NewTable([]entity.LineItemRecord{
		product("service", "Basic", "2023-01-05", 50),
		product("good", "Mug", "2023-01-06", 20),
		product("service", "Pro", "2023-03-05", 80),
		product("", "Sticker", "2023-03-06", 20),
		product("good", "Mug", "2023-03-07", 10),
	})
}

func TestRevenueByCategory(t *testing.T) {
	got := RevenueByCategory(productTable(), entity.DimensionProductType)

	assert.Equal(t, []entity.CategoryRevenue{
		{Category: "service", Revenue: 130},
		{Category: "good", Revenue: 30},
		{Category: entity.UnknownCategory, Revenue: 20},
	}, got)
}

func TestRevenueByCategory_TiesKeepKeyOrder(t *testing.T) {
	table := entity.NewTable([]entity.LineItemRecord{
		product("t", "Zeta", "2023-01-01", 10),
		product("t", "Alpha", "2023-01-02", 10),
		product("t", "Mid", "2023-01-03", 10),
	})

	got := RevenueByCategory(table, entity.DimensionProductName)

	assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, []string{got[0].Category, got[1].Category, got[2].Category})
}

func TestCategoryValues_FirstAppearance(t *testing.T) {
	assert.Equal(t, []string{"service", "good", entity.UnknownCategory}, CategoryValues(productTable(), entity.DimensionProductType))
	assert.Equal(t, []string{"Basic", "Mug", "Pro", "Sticker"}, CategoryValues(productTable(), entity.DimensionProductName))
}

func TestCategoryMonthlyTrend_IsSparse(t *testing.T) {
	got := CategoryMonthlyTrend(productTable(), entity.DimensionProductName, "Mug")

	assert.Equal(t, []entity.MonthlyValue{
		{Month: "2023-01", Value: 20},
		{Month: "2023-03", Value: 10},
	}, got)
	assert.Empty(t, CategoryMonthlyTrend(productTable(), entity.DimensionProductName, "Nope"))
}
