package repository

import (
	"github.com/diillson/billing-dashboard-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportReportToCSV(report entity.ReportMetrics, filename string, outputDir string) (string, error)
	ExportReportToJSON(report entity.ReportMetrics, filename string, outputDir string) (string, error)
	ExportReportToPDF(report entity.ReportMetrics, filename string, outputDir string) (string, error)

	// Overview
	ExportOverviewToHTML(markdown string, filename string, outputDir string) (string, error)
}
