package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/diillson/billing-dashboard-go/internal/domain/entity"
	"github.com/diillson/billing-dashboard-go/internal/domain/repository"
	"gopkg.in/yaml.v3"
)

// DefaultStateFile returns ~/.billing-dashboard/session.yaml, falling back to
// the working directory when the home directory is unknown.
func DefaultStateFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".billing-dashboard-session.yaml"
	}
	return filepath.Join(home, ".billing-dashboard", "session.yaml")
}

// stateFile is the on-disk layout. Dates are stored as YYYY-MM-DD.
type stateFile struct {
	Start   string    `yaml:"start,omitempty"`
	End     string    `yaml:"end,omitempty"`
	SavedAt time.Time `yaml:"saved_at,omitempty"`
}

// SessionRepositoryImpl implementa o SessionRepository em um arquivo YAML.
type SessionRepositoryImpl struct {
	now func() time.Time
}

// NewSessionRepository cria uma nova implementação do SessionRepository.
func NewSessionRepository() repository.SessionRepository {
	return &SessionRepositoryImpl{now: time.Now}
}

// Load reads the session at path, or at DefaultStateFile when path is empty.
// A missing file is an empty session.
func (r *SessionRepositoryImpl) Load(path string) (*entity.Session, error) {
	if path == "" {
		path = DefaultStateFile()
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &entity.Session{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading session file: %w", err)
	}

	var state stateFile
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("error parsing session file %s: %w", path, err)
	}
	if state.Start == "" || state.End == "" {
		return &entity.Session{}, nil
	}

	start, err := time.Parse(entity.DateLayout, state.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date in session file: %w", err)
	}
	end, err := time.Parse(entity.DateLayout, state.End)
	if err != nil {
		return nil, fmt.Errorf("invalid end date in session file: %w", err)
	}

	return &entity.Session{Range: &entity.DateRange{Start: start, End: end}}, nil
}

// Save overwrites the session at path (last write wins).
func (r *SessionRepositoryImpl) Save(path string, session *entity.Session) error {
	if path == "" {
		path = DefaultStateFile()
	}
	state := stateFile{SavedAt: r.now().UTC().Truncate(time.Second)}
	if session != nil && session.Range != nil {
		state.Start = session.Range.Start.Format(entity.DateLayout)
		state.End = session.Range.End.Format(entity.DateLayout)
	}

	data, err := yaml.Marshal(&state)
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating session directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing session file: %w", err)
	}
	return nil
}
