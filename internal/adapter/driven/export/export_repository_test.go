package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/diillson/billing-dashboard-go/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() entity.ReportMetrics {
	return entity.ReportMetrics{
		Range: entity.DateRange{
			Start: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		Rows:           3,
		Revenue:        entity.RevenueKPIs{TotalRevenue: 350, CurrentMRR: 50},
		MonthlyRevenue: []entity.MonthlyValue{{Month: "2023-01", Value: 100}, {Month: "2023-02", Value: 200}, {Month: "2023-03", Value: 50}},
		Subscriptions:  entity.SubscriptionCounts{Total: 2, Active: 1, Canceled: 1},
		Dimension:      entity.DimensionProductType,
		RevenueByCategory: []entity.CategoryRevenue{
			{Category: "service", Revenue: 300},
			{Category: "good", Revenue: 50},
		},
		SelectedCategory: "service",
		CategoryTrend:    []entity.MonthlyValue{{Month: "2023-01", Value: 100}},
		Customers: entity.CustomerMetrics{
			AverageRevenuePerCustomer: 175,
			ChurnRate:                 0.5,
			TopCustomers:              []entity.CustomerValue{{Customer: "B", CLV: 200}, {Customer: "A", CLV: 150}},
			Segments:                  []entity.CLVSegment{{Label: "100-500", Customers: 2}},
		},
	}
}

func TestExportReportToCSV(t *testing.T) {
	dir := t.TempDir()

	path, err := NewExportRepository().ExportReportToCSV(sampleReport(), "billing", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "billing_"))
	assert.Equal(t, ".csv", filepath.Ext(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"Section", "Label", "Value"}, records[0])
	assert.Contains(t, records, []string{"Revenue", "Total Revenue", "350.00"})
	assert.Contains(t, records, []string{"Monthly Revenue", "2023-02", "200.00"})
	assert.Contains(t, records, []string{"Revenue by Product Type", "service", "300.00"})
	assert.Contains(t, records, []string{"Top Customers", "B", "200.00"})
	assert.Contains(t, records, []string{"Customers", "Churn Rate", "0.5000"})
}

func TestExportReportToJSON(t *testing.T) {
	path, err := NewExportRepository().ExportReportToJSON(sampleReport(), "billing", t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded entity.ReportMetrics
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 350.0, decoded.Revenue.TotalRevenue)
	assert.Equal(t, "service", decoded.SelectedCategory)
	assert.Len(t, decoded.MonthlyRevenue, 3)
}

func TestExportReportToPDF(t *testing.T) {
	path, err := NewExportRepository().ExportReportToPDF(sampleReport(), "billing", t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
}

func TestExportReport_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports", "2023")

	path, err := NewExportRepository().ExportReportToCSV(entity.ReportMetrics{}, "empty", dir)

	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestExportOverviewToHTML(t *testing.T) {
	md := "# Billing Overview\n\n<script>alert(1)</script>\n\n[click](javascript:alert(1))\n\n| Metric | Value |\n|---|---|\n| MRR | 50 |\n"

	path, err := NewExportRepository().ExportOverviewToHTML(md, "overview", t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	page := string(data)

	assert.Contains(t, page, `<h1 id="billing-overview">Billing Overview</h1>`)
	assert.Contains(t, page, "<table>")
	assert.NotContains(t, page, "<script")
	assert.NotContains(t, page, "javascript:")
}

func TestCleanRichTags(t *testing.T) {
	assert.Equal(t, "Total", cleanRichTags("[bold]Total[/bold]"))
	assert.Equal(t, "red", cleanRichTags("\x1b[31mred\x1b[0m"))
}
