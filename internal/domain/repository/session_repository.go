package repository

import (
	"github.com/diillson/billing-dashboard-go/internal/domain/entity"
)

// SessionRepository persists the per-user session between invocations.
type SessionRepository interface {
	Load(path string) (*entity.Session, error)
	Save(path string, session *entity.Session) error
}
