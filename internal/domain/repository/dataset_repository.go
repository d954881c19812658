package repository

import (
	"context"

	"github.com/diillson/billing-dashboard-go/internal/domain/entity"
)

// DatasetRepository loads the standardized line item table from a source
// location: a local CSV path or an s3://bucket/key URL.
type DatasetRepository interface {
	Load(ctx context.Context, source string) (entity.Table, entity.LoadStats, error)
}

// WarehouseClient runs a query against a columnar warehouse and returns the
// resulting rows keyed by column name.
type WarehouseClient interface {
	Execute(ctx context.Context, query string) ([]map[string]interface{}, error)
}

// DatasetRepositoryFactory builds a DatasetRepository for the AWS profile and
// region resolved at run time. Both may be empty.
type DatasetRepositoryFactory func(profile, region string) DatasetRepository
