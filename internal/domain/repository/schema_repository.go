package repository

import (
	"github.com/diillson/billing-dashboard-go/internal/domain/entity"
)

// SchemaRepository exposes the standardized schema and the platform field mappings.
type SchemaRepository interface {
	Fields() []entity.SchemaField
	Platforms() []entity.PlatformMapping
}
