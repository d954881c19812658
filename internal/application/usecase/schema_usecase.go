package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/diillson/billing-dashboard-go/internal/domain/entity"
	"github.com/diillson/billing-dashboard-go/internal/domain/repository"
	"github.com/diillson/billing-dashboard-go/internal/shared/types"
	"github.com/diillson/billing-dashboard-go/pkg/console"
)

const (
	// SampleRows is the number of example rows shown by the schema browser.
	SampleRows = 5

	notAvailable = "Currently not available"
)

// SchemaUseCase exibe o schema padronizado e o mapeamento por plataforma.
type SchemaUseCase struct {
	schemaRepo repository.SchemaRepository
	newDataset repository.DatasetRepositoryFactory
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
}

// NewSchemaUseCase creates a new schema use case.
func NewSchemaUseCase(
	schemaRepo repository.SchemaRepository,
	newDataset repository.DatasetRepositoryFactory,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *SchemaUseCase {
	return &SchemaUseCase{
		schemaRepo: schemaRepo,
		newDataset: newDataset,
		configRepo: configRepo,
		console:    console,
	}
}

// FieldMapping is one standard field with its source field on each platform.
type FieldMapping struct {
	Field   entity.SchemaField
	Sources []PlatformSource
}

// PlatformSource is the source field of one platform. Field is
// "Currently not available" when the platform does not document it.
type PlatformSource struct {
	Platform string
	Field    string
}

// Mappings returns the fields matching field and platform (case-insensitive,
// empty matches all), each with its per-platform source field.
func (uc *SchemaUseCase) Mappings(field, platform string) ([]FieldMapping, error) {
	var platforms []entity.PlatformMapping
	for _, p := range uc.schemaRepo.Platforms() {
		if platform == "" || strings.EqualFold(p.Platform, platform) {
			platforms = append(platforms, p)
		}
	}
	if len(platforms) == 0 {
		return nil, fmt.Errorf("unknown platform %q", platform)
	}

	var out []FieldMapping
	for _, f := range uc.schemaRepo.Fields() {
		if field != "" && !strings.EqualFold(f.Name, field) {
			continue
		}
		m := FieldMapping{Field: f}
		for _, p := range platforms {
			src, ok := p.SourceField(f.Name)
			if !ok {
				src = notAvailable
			}
			m.Sources = append(m.Sources, PlatformSource{Platform: p.Platform, Field: src})
		}
		out = append(out, m)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("unknown field %q", field)
	}
	return out, nil
}

// Sample returns up to n rows that carry a subscription period start.
func Sample(table entity.Table, n int) []entity.LineItemRecord {
	var out []entity.LineItemRecord
	for _, r := range table.Rows() {
		if len(out) == n {
			break
		}
		if r.SubscriptionPeriodStartedAt != nil {
			out = append(out, r)
		}
	}
	return out
}

// Browse exibe o schema no console.
func (uc *SchemaUseCase) Browse(ctx context.Context, args *types.SchemaArgs) error {
	if args.ConfigFile != "" {
		cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return err
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
	}

	mappings, err := uc.Mappings(args.Field, args.Platform)
	if err != nil {
		return err
	}

	uc.console.Println()
	uc.console.LogInfo("Standardized Billing Line Item Model Schema Overview")

	if args.Sample {
		if err := uc.showSample(ctx, args); err != nil {
			return err
		}
	}

	uc.console.Println()
	uc.console.LogInfo("Schema Breakdown")
	uc.console.Println("Each field includes its definition and the respective table.field_name from the original source.")

	for _, m := range mappings {
		name := m.Field.Name
		if m.Field.PrimaryKey {
			name = "🔑 " + name
		}
		uc.console.Println()
		uc.console.Println(console.BrightCyan(name))
		uc.console.Println("  " + m.Field.Description)
		for _, s := range m.Sources {
			field := s.Field
			if field == notAvailable {
				field = console.BrightYellow(field)
			}
			uc.console.Printf("  • %s: %s\n", console.BrightMagenta(s.Platform), field)
		}
	}
	return nil
}

func (uc *SchemaUseCase) showSample(ctx context.Context, args *types.SchemaArgs) error {
	table, err := loadDataset(ctx, uc.console, uc.newDataset(args.AWSProfile, args.AWSRegion), args.Source)
	if err != nil {
		return err
	}

	rows := Sample(table, SampleRows)
	if len(rows) == 0 {
		uc.console.LogWarning("No rows with a subscription period start to show.")
		return nil
	}

	t := uc.console.CreateTable()
	for _, col := range []string{"header_id", "line_item_id", "created_at", "product_name", "total_amount", "subscription_id", "subscription_period_started_at", "customer_name"} {
		t.AddColumn(col)
	}
	for _, r := range rows {
		t.AddRow(
			r.HeaderID,
			r.LineItemID,
			r.CreatedAt.Format(entity.DateLayout),
			r.ProductName,
			console.FormatMoney(r.TotalAmount, 2),
			r.SubscriptionID,
			r.SubscriptionPeriodStartedAt.Format(entity.DateLayout),
			r.CustomerName,
		)
	}

	uc.console.Println()
	uc.console.LogInfo("Table Example")
	uc.console.Print(t.Render())
	return nil
}
