package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/diillson/billing-dashboard-go/internal/domain/entity"
	"github.com/diillson/billing-dashboard-go/internal/domain/repository"
	"github.com/diillson/billing-dashboard-go/internal/shared/types"
)

type fakeConsole struct {
	out      strings.Builder
	debug    []string
	info     []string
	warnings []string
	errors   []string
	success  []string
	sections []string
}

func (c *fakeConsole) Print(a ...interface{})                 { fmt.Fprint(&c.out, a...) }
func (c *fakeConsole) Printf(format string, a ...interface{}) { fmt.Fprintf(&c.out, format, a...) }
func (c *fakeConsole) Println(a ...interface{})               { fmt.Fprintln(&c.out, a...) }

func (c *fakeConsole) LogDebug(format string, a ...interface{}) {
	c.debug = append(c.debug, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	c.info = append(c.info, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.success = append(c.success, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) Status(string) types.StatusHandle { return noopStatus{} }
func (c *fakeConsole) CreateTable() types.TableInterface { return &fakeTable{} }

func (c *fakeConsole) DisplayKPITiles(title string, tiles []types.KPITile) {
	c.sections = append(c.sections, title)
}
func (c *fakeConsole) DisplayTrendBars(title string, series []types.MonthlyAmount, currency bool) {
	c.sections = append(c.sections, title)
}
func (c *fakeConsole) DisplayCategoryBars(title string, values []types.CategoryAmount) {
	c.sections = append(c.sections, title)
}

type noopStatus struct{}

func (noopStatus) Update(string) {}
func (noopStatus) Stop()         {}

type fakeTable struct {
	columns []string
	rows    [][]interface{}
}

func (t *fakeTable) AddColumn(name string, options ...interface{}) { t.columns = append(t.columns, name) }
func (t *fakeTable) AddRow(cells ...interface{})                   { t.rows = append(t.rows, cells) }
func (t *fakeTable) Render() string {
	var b strings.Builder
	b.WriteString(strings.Join(t.columns, " | "))
	b.WriteString("\n")
	for _, r := range t.rows {
		b.WriteString(fmt.Sprintln(r...))
	}
	return b.String()
}

type fakeDataset struct {
	table  entity.Table
	stats  entity.LoadStats
	err    error
	source string
}

func (d *fakeDataset) Load(ctx context.Context, source string) (entity.Table, entity.LoadStats, error) {
	d.source = source
	stats := d.stats
	stats.Source = source
	return d.table, stats, d.err
}

// factory records the credentials the use case asked for.
func (d *fakeDataset) factory(profile, region *string) repository.DatasetRepositoryFactory {
	return func(p, r string) repository.DatasetRepository {
		if profile != nil {
			*profile = p
		}
		if region != nil {
			*region = r
		}
		return d
	}
}

type fakeSession struct {
	loaded  *entity.Session
	loadErr error
	saved   *entity.Session
	path    string
	saves   int
}

func (s *fakeSession) Load(path string) (*entity.Session, error) {
	s.path = path
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.loaded == nil {
		return &entity.Session{}, nil
	}
	return s.loaded, nil
}

func (s *fakeSession) Save(path string, session *entity.Session) error {
	s.path = path
	s.saved = session
	s.saves++
	return nil
}

type fakeExport struct {
	formats  []string
	markdown string
	err      error
}

func (e *fakeExport) record(format, filename, dir string) (string, error) {
	e.formats = append(e.formats, format)
	if e.err != nil {
		return "", e.err
	}
	return dir + "/" + filename + "." + format, nil
}

func (e *fakeExport) ExportReportToCSV(report entity.ReportMetrics, filename, dir string) (string, error) {
	return e.record("csv", filename, dir)
}
func (e *fakeExport) ExportReportToJSON(report entity.ReportMetrics, filename, dir string) (string, error) {
	return e.record("json", filename, dir)
}
func (e *fakeExport) ExportReportToPDF(report entity.ReportMetrics, filename, dir string) (string, error) {
	return e.record("pdf", filename, dir)
}
func (e *fakeExport) ExportOverviewToHTML(markdown, filename, dir string) (string, error) {
	e.markdown = markdown
	return e.record("html", filename, dir)
}

type fakeConfig struct {
	cfg *types.Config
	err error
}

func (c *fakeConfig) LoadConfigFile(string) (*types.Config, error) {
	return c.cfg, c.err
}

type fakeSchema struct{}

func (fakeSchema) Fields() []entity.SchemaField {
	return []entity.SchemaField{
		{Name: "header_id", Description: "ID of either the invoice or order.", PrimaryKey: true},
		{Name: "tax_rate", Description: "Tax rate applied to the line item."},
	}
}

func (fakeSchema) Platforms() []entity.PlatformMapping {
	return []entity.PlatformMapping{
		{Platform: "Stripe", Fields: map[string]string{"header_id": "invoice_line_item.invoice_id"}},
		{Platform: "Recurly", Fields: map[string]string{"header_id": "TBD", "tax_rate": "TBD"}},
	}
}
