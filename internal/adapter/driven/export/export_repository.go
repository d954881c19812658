package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/diillson/billing-dashboard-go/internal/domain/entity"
	"github.com/diillson/billing-dashboard-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	markdown *markdownRenderer
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{markdown: newMarkdownRenderer()}
}

// --- Funções de Exportação do Relatório de Faturamento ---

// ExportReportToCSV writes the report as section,label,value rows.
func (r *ExportRepositoryImpl) ExportReportToCSV(report entity.ReportMetrics, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	records := [][]string{{"Section", "Label", "Value"}}
	add := func(section, label, value string) {
		records = append(records, []string{section, cleanRichTags(label), value})
	}
	money := func(v float64) string { return fmt.Sprintf("%.2f", v) }

	add("Period", "Date Range", report.Range.String())
	add("Period", "Rows", fmt.Sprintf("%d", report.Rows))

	rev := report.Revenue
	add("Revenue", "Total Revenue", money(rev.TotalRevenue))
	add("Revenue", "Monthly Average Revenue", money(rev.MonthlyAverageRevenue))
	add("Revenue", "Daily Average Revenue", money(rev.DailyAverageRevenue))
	add("Revenue", "Current MRR", money(rev.CurrentMRR))
	add("Revenue", "Total Discounts", money(rev.TotalDiscounts))
	add("Revenue", "Average Discount", money(rev.AverageDiscount))
	add("Revenue", "Total Refunds", money(rev.TotalRefunds))
	add("Revenue", "Average Refund", money(rev.AverageRefund))

	add("Subscriptions", "Total Subscriptions", fmt.Sprintf("%d", report.Subscriptions.Total))
	add("Subscriptions", "Current Active Subscriptions", fmt.Sprintf("%d", report.Subscriptions.Active))
	add("Subscriptions", "Canceled/Expired Subscriptions", fmt.Sprintf("%d", report.Subscriptions.Canceled))
	add("Subscriptions", "Average Subscription Amount", money(rev.AverageSubscriptionAmount))

	cust := report.Customers
	add("Customers", "Average Revenue per Customer", money(cust.AverageRevenuePerCustomer))
	add("Customers", "Churn Rate", fmt.Sprintf("%.4f", cust.ChurnRate))
	add("Customers", "Current Active Customers", fmt.Sprintf("%d", cust.ActiveCustomers))
	add("Customers", "Total Customers", fmt.Sprintf("%d", cust.TotalCustomers))

	for _, mv := range report.MonthlyRevenue {
		add("Monthly Revenue", mv.Month, money(mv.Value))
	}
	for _, mv := range report.MRR {
		add("MRR", mv.Month, money(mv.Value))
	}
	for _, mv := range report.ActiveSubscriptions {
		add("Active Subscriptions", mv.Month, fmt.Sprintf("%.0f", mv.Value))
	}
	for _, c := range report.RevenueByCategory {
		add("Revenue by "+report.Dimension.Title(), c.Category, money(c.Revenue))
	}
	for _, mv := range report.CategoryTrend {
		add("Monthly Revenue for "+cleanRichTags(report.SelectedCategory), mv.Month, money(mv.Value))
	}
	for _, c := range cust.TopCustomers {
		add("Top Customers", c.Customer, money(c.CLV))
	}
	for _, s := range cust.Segments {
		add("CLV Segments", s.Label, fmt.Sprintf("%d", s.Customers))
	}

	if err := writer.WriteAll(records); err != nil {
		return "", fmt.Errorf("error writing CSV records: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportReportToJSON(report entity.ReportMetrics, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportReportToPDF(report entity.ReportMetrics, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{31, 119, 180}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Generated by Billing Dashboard (Go) | %s", time.Now().Format("2006-01-02"))
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", pdf.PageNo())), "", 0, "R", false, 0, "")
	})

	drawSection := func(title string, content string) {
		if content == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(cleanRichTags(content)), "", "L", false)
		pdf.Ln(6)
	}

	series := func(values []entity.MonthlyValue, format string) string {
		var b strings.Builder
		for _, mv := range values {
			b.WriteString(fmt.Sprintf("%s: "+format+"\n", mv.Month, mv.Value))
		}
		return strings.TrimSpace(b.String())
	}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Account Overview Report"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Period: %s  |  Rows: %d", report.Range.String(), report.Rows)), "", 1, "L", true, 0, "")
	pdf.Ln(8)

	rev := report.Revenue
	drawSection("Current Period Revenue Metrics", fmt.Sprintf(
		"Total Revenue: $%.2f\nMonthly Average Revenue: $%.2f\nDaily Average Revenue: $%.2f\nCurrent MRR: $%.2f\n"+
			"Total Discounts: $%.2f\nAverage Discount: $%.2f\nTotal Refunds: $%.2f\nAverage Refund: $%.2f",
		rev.TotalRevenue, rev.MonthlyAverageRevenue, rev.DailyAverageRevenue, rev.CurrentMRR,
		rev.TotalDiscounts, rev.AverageDiscount, rev.TotalRefunds, rev.AverageRefund))
	drawSection("Monthly Revenue", series(report.MonthlyRevenue, "$%.2f"))
	drawSection("Monthly Recurring Revenue (MRR) Trend", series(report.MRR, "$%.2f"))

	subs := report.Subscriptions
	drawSection("Subscription Metrics", fmt.Sprintf(
		"Total Subscriptions: %d\nCurrent Active Subscriptions: %d\nCanceled/Expired Subscriptions: %d\nAverage Subscription Amount: $%.2f",
		subs.Total, subs.Active, subs.Canceled, rev.AverageSubscriptionAmount))
	drawSection("Active Subscriptions Over Time", series(report.ActiveSubscriptions, "%.0f"))

	var cat strings.Builder
	for _, c := range report.RevenueByCategory {
		cat.WriteString(fmt.Sprintf("%s: $%.2f\n", c.Category, c.Revenue))
	}
	drawSection("Total Revenue by "+report.Dimension.Title(), strings.TrimSpace(cat.String()))
	if report.SelectedCategory != "" {
		drawSection("Monthly Revenue for "+report.SelectedCategory, series(report.CategoryTrend, "$%.2f"))
	}

	cust := report.Customers
	drawSection("Customer Analysis", fmt.Sprintf(
		"Average Revenue per Customer: $%.2f\nChurn Rate: %.2f%%\nCurrent Active Customers (Last Month): %d\nTotal Customers: %d",
		cust.AverageRevenuePerCustomer, cust.ChurnRate*100, cust.ActiveCustomers, cust.TotalCustomers))

	var top strings.Builder
	for i, c := range cust.TopCustomers {
		top.WriteString(fmt.Sprintf("%d. %s: $%.2f\n", i+1, c.Customer, c.CLV))
	}
	drawSection("Top Customer List", strings.TrimSpace(top.String()))

	var seg strings.Builder
	for _, s := range cust.Segments {
		seg.WriteString(fmt.Sprintf("%s: %d\n", s.Label, s.Customers))
	}
	drawSection("Customer Lifetime Value (CLV) Distribution", strings.TrimSpace(seg.String()))

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Exportação da Visão Geral ---

// ExportOverviewToHTML renders markdown to a sanitized standalone HTML page.
func (r *ExportRepositoryImpl) ExportOverviewToHTML(markdown, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "html")
	if err != nil {
		return "", err
	}

	body, err := r.markdown.ToHTMLSanitized(markdown)
	if err != nil {
		return "", err
	}

	page := fmt.Sprintf("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>Billing Dashboard</title>\n</head>\n<body>\n%s</body>\n</html>\n", body)
	if err := os.WriteFile(outputFilename, []byte(page), 0644); err != nil {
		return "", fmt.Errorf("error writing HTML file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// Regex para limpar formatação pterm (rich tags) e sequências ANSI de cor/estilo.
var richTagRegex = regexp.MustCompile(`\[/?([a-zA-Z]+|#[0-9a-fA-F]{6})\]`)
var ansiRegex = regexp.MustCompile(`\x1B\[[0-9;]*[A-Za-z]`)

// cleanRichTags remove tags de formatação do pterm e sequências ANSI.
func cleanRichTags(text string) string {
	text = richTagRegex.ReplaceAllString(text, "")
	text = ansiRegex.ReplaceAllString(text, "")
	return text
}
