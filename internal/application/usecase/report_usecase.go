package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diillson/billing-dashboard-go/internal/adapter/driven/dataset"
	"github.com/diillson/billing-dashboard-go/internal/application/analytics"
	"github.com/diillson/billing-dashboard-go/internal/application/filter"
	"github.com/diillson/billing-dashboard-go/internal/domain/entity"
	"github.com/diillson/billing-dashboard-go/internal/domain/repository"
	"github.com/diillson/billing-dashboard-go/internal/shared/types"
	"github.com/diillson/billing-dashboard-go/pkg/console"
)

// ReportUseCase handles the billing report: load, filter, aggregate, present.
type ReportUseCase struct {
	newDataset  repository.DatasetRepositoryFactory
	sessionRepo repository.SessionRepository
	exportRepo  repository.ExportRepository
	configRepo  repository.ConfigRepository
	console     types.ConsoleInterface
}

// NewReportUseCase creates a new report use case.
func NewReportUseCase(
	newDataset repository.DatasetRepositoryFactory,
	sessionRepo repository.SessionRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *ReportUseCase {
	return &ReportUseCase{
		newDataset:  newDataset,
		sessionRepo: sessionRepo,
		exportRepo:  exportRepo,
		configRepo:  configRepo,
		console:     console,
	}
}

// MergeConfig aplica os valores do arquivo de configuração aos argumentos
// que não foram informados na linha de comando.
func MergeConfig(args *types.CLIArgs, cfg *types.Config) {
	if cfg == nil {
		return
	}
	if args.Source == "" {
		args.Source = cfg.Source
	}
	if args.AWSProfile == "" {
		args.AWSProfile = cfg.AWSProfile
	}
	if args.AWSRegion == "" {
		args.AWSRegion = cfg.AWSRegion
	}
	if args.StateFile == "" {
		args.StateFile = cfg.StateFile
	}
	if args.Category == "" {
		args.Category = cfg.Category
	}
	if args.ReportName == "" {
		args.ReportName = cfg.ReportName
	}
	if len(args.ReportType) == 0 {
		args.ReportType = cfg.ReportType
	}
	if args.Dir == "" {
		args.Dir = cfg.Dir
	}
}

// LoadConfig reads the config file named in args, if any, and merges it.
func (uc *ReportUseCase) LoadConfig(args *types.CLIArgs) (*types.Config, error) {
	if args.ConfigFile == "" {
		return &types.Config{}, nil
	}
	cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
	if err != nil {
		return nil, err
	}
	MergeConfig(args, cfg)
	uc.console.LogDebug("Loaded configuration from %s", args.ConfigFile)
	return cfg, nil
}

// RunReport executa a funcionalidade principal do relatório.
func (uc *ReportUseCase) RunReport(ctx context.Context, args *types.CLIArgs) (*entity.ReportMetrics, error) {
	cfg, err := uc.LoadConfig(args)
	if err != nil {
		return nil, err
	}

	dim, err := entity.ParseDimension(args.Category)
	if err != nil {
		return nil, err
	}

	if cfg.Warehouse.Enabled() {
		uc.console.LogWarning("%s; reading %s instead of %s.%s", types.ErrWarehouseDisabled, args.Source, cfg.Warehouse.Schema, cfg.Warehouse.Platform)
		uc.console.LogDebug("Warehouse query:\n%s", dataset.BuildWarehouseQuery(cfg.Warehouse.Schema, cfg.Warehouse.Platform))
	}

	table, err := loadDataset(ctx, uc.console, uc.newDataset(args.AWSProfile, args.AWSRegion), args.Source)
	if err != nil {
		return nil, err
	}

	session := uc.loadSession(args)
	rng, err := filter.Select(table, session, args.Start, args.End)
	if err != nil {
		return nil, err
	}
	filtered, err := filter.Apply(table, rng)
	if err != nil {
		return nil, err
	}
	uc.saveSession(args.StateFile, session)

	if filtered.IsEmpty() {
		uc.console.LogWarning("No rows between %s; metrics default to zero.", rng.String())
	}

	asOf := args.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	report := analytics.Compute(filtered, rng, analytics.Options{
		Dimension:     dim,
		CategoryValue: args.CategoryValue,
		AsOf:          asOf,
	})

	uc.Render(report)
	uc.export(report, args)

	return &report, nil
}

// loadDataset carrega a tabela exibindo um spinner enquanto o arquivo é lido.
func loadDataset(ctx context.Context, out types.ConsoleInterface, repo repository.DatasetRepository, source string) (entity.Table, error) {
	status := out.Status("Loading data...")
	table, stats, err := repo.Load(ctx, source)
	status.Stop()
	if err != nil {
		return entity.Table{}, err
	}

	if stats.Identity != "" {
		out.LogInfo("Read %s as %s", stats.Source, stats.Identity)
	}
	out.LogSuccess("Loaded %d rows from %s", stats.RowsKept, stats.Source)
	if stats.RowsDropped > 0 {
		out.LogWarning("Dropped %d rows without a valid created_at", stats.RowsDropped)
	}
	return table, nil
}

// loadSession returns the persisted session, or a fresh one when the state
// file is unreadable or a reset was requested. An empty StateFile selects
// the repository default.
func (uc *ReportUseCase) loadSession(args *types.CLIArgs) *entity.Session {
	if args.ResetRange {
		uc.console.LogInfo("Forgetting the saved date range")
		return &entity.Session{}
	}
	session, err := uc.sessionRepo.Load(args.StateFile)
	if err != nil {
		uc.console.LogWarning("Ignoring saved date range: %s", err)
		return &entity.Session{}
	}
	if session.Range != nil {
		uc.console.LogDebug("Reusing saved date range %s", session.Range.String())
	}
	return session
}

func (uc *ReportUseCase) saveSession(path string, session *entity.Session) {
	if err := uc.sessionRepo.Save(path, session); err != nil {
		uc.console.LogWarning("Could not save the selected date range: %s", err)
	}
}

// export grava o relatório nos formatos solicitados.
func (uc *ReportUseCase) export(report entity.ReportMetrics, args *types.CLIArgs) {
	if args.ReportName == "" {
		return
	}
	reportTypes := args.ReportType
	if len(reportTypes) == 0 {
		reportTypes = []string{"csv"}
	}

	for _, reportType := range reportTypes {
		var (
			path string
			err  error
		)
		switch strings.ToLower(reportType) {
		case "csv":
			path, err = uc.exportRepo.ExportReportToCSV(report, args.ReportName, args.Dir)
		case "json":
			path, err = uc.exportRepo.ExportReportToJSON(report, args.ReportName, args.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportReportToPDF(report, args.ReportName, args.Dir)
		default:
			err = errors.New("unsupported report type")
		}

		name := strings.ToUpper(reportType)
		if err != nil {
			uc.console.LogError("Failed to export report to %s: %s", name, err)
			continue
		}
		uc.console.LogSuccess("Successfully exported report to %s: %s", name, path)
	}
}

// Render exibe o relatório completo no console.
func (uc *ReportUseCase) Render(report entity.ReportMetrics) {
	uc.console.Println()
	uc.console.LogInfo("Account Overview Report (%s, %d rows)", report.Range.String(), report.Rows)

	uc.renderRevenue(report)
	uc.renderSubscriptions(report)
	uc.renderProducts(report)
	uc.renderCustomers(report)
}

func (uc *ReportUseCase) renderRevenue(report entity.ReportMetrics) {
	rev := report.Revenue
	uc.console.DisplayKPITiles("Current Period Revenue Metrics", []types.KPITile{
		{Label: "Total Revenue", Value: console.FormatMoney(rev.TotalRevenue, 0)},
		{Label: "Monthly Average Revenue", Value: console.FormatMoney(rev.MonthlyAverageRevenue, 0)},
		{Label: "Daily Average Revenue", Value: console.FormatMoney(rev.DailyAverageRevenue, 0)},
		{Label: "Current MRR", Value: console.FormatMoney(rev.CurrentMRR, 0)},
		{Label: "Total Discounts", Value: console.FormatMoney(rev.TotalDiscounts, 0)},
		{Label: "Average Discount", Value: console.FormatMoney(rev.AverageDiscount, 0)},
		{Label: "Total Refunds", Value: console.FormatMoney(rev.TotalRefunds, 0)},
		{Label: "Average Refund", Value: console.FormatMoney(rev.AverageRefund, 0)},
	})

	uc.console.DisplayTrendBars("Monthly Revenue", toAmounts(report.MonthlyRevenue), true)
	if len(report.MRR) == 0 {
		uc.console.LogWarning("No subscription revenue in the selected range.")
		return
	}
	uc.console.DisplayTrendBars("Monthly Recurring Revenue (MRR) Trend", toAmounts(report.MRR), true)
}

func (uc *ReportUseCase) renderSubscriptions(report entity.ReportMetrics) {
	subs := report.Subscriptions
	uc.console.DisplayKPITiles("Subscription Metrics", []types.KPITile{
		{Label: "Total Subscriptions", Value: console.FormatCount(float64(subs.Total))},
		{Label: "Current Active Subscriptions", Value: console.FormatCount(float64(subs.Active))},
		{Label: "Canceled/Expired Subscriptions", Value: console.FormatCount(float64(subs.Canceled))},
		{Label: "Average Subscription Amount", Value: console.FormatMoney(report.Revenue.AverageSubscriptionAmount, 2)},
	})
	uc.console.DisplayTrendBars("Active Subscriptions Over Time", toAmounts(report.ActiveSubscriptions), false)
}

func (uc *ReportUseCase) renderProducts(report entity.ReportMetrics) {
	title := report.Dimension.Title()

	values := make([]types.CategoryAmount, len(report.RevenueByCategory))
	for i, c := range report.RevenueByCategory {
		values[i] = types.CategoryAmount{Category: c.Category, Amount: c.Revenue}
	}
	uc.console.DisplayCategoryBars(fmt.Sprintf("Total Revenue by %s", title), values)

	if report.SelectedCategory == "" {
		return
	}
	if len(report.CategoryTrend) == 0 {
		uc.console.LogWarning("No revenue for %s %q in the selected range.", title, report.SelectedCategory)
		return
	}
	uc.console.DisplayTrendBars(fmt.Sprintf("Monthly Revenue for %s", report.SelectedCategory), toAmounts(report.CategoryTrend), true)
}

func (uc *ReportUseCase) renderCustomers(report entity.ReportMetrics) {
	cust := report.Customers
	uc.console.DisplayKPITiles("Customer Analysis", []types.KPITile{
		{Label: "Average Revenue per Customer", Value: console.FormatMoney(cust.AverageRevenuePerCustomer, 2)},
		{Label: "Churn Rate", Value: console.FormatPercent(cust.ChurnRate)},
		{Label: "Current Active Customers (Last Month)", Value: console.FormatCount(float64(cust.ActiveCustomers))},
	})

	uc.console.DisplayTrendBars("Active Customers Over Time", toAmounts(report.ActiveCustomersSeries), false)

	segments := uc.console.CreateTable()
	segments.AddColumn("CLV Segment")
	segments.AddColumn("Customers")
	for _, s := range cust.Segments {
		segments.AddRow(s.Label, s.Customers)
	}
	uc.console.Println()
	uc.console.LogInfo("Customer Lifetime Value (CLV) Distribution")
	uc.console.Print(segments.Render())

	if len(cust.TopCustomers) == 0 {
		return
	}
	top := uc.console.CreateTable()
	top.AddColumn("#")
	top.AddColumn("Customer")
	top.AddColumn("CLV")
	for i, c := range cust.TopCustomers {
		top.AddRow(i+1, c.Customer, console.FormatMoney(c.CLV, 2))
	}
	uc.console.Println()
	uc.console.LogInfo("Top Customer List")
	uc.console.Print(top.Render())
}

func toAmounts(series []entity.MonthlyValue) []types.MonthlyAmount {
	out := make([]types.MonthlyAmount, len(series))
	for i, mv := range series {
		out[i] = types.MonthlyAmount{Month: mv.Month, Amount: mv.Value}
	}
	return out
}
