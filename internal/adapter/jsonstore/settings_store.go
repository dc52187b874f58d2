package jsonstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/garagehub/vehicle-service/internal/core/domain"
)

// SettingsStore persists the two singleton documents, profile.json and
// company.json. Loads of a never-saved document return domain.ErrNotFound so
// the service layer can answer with defaults.
type SettingsStore struct {
	mu          sync.Mutex
	profilePath string
	companyPath string
}

func NewSettingsStore(dataDir string) *SettingsStore {
	return &SettingsStore{
		profilePath: filepath.Join(dataDir, "profile.json"),
		companyPath: filepath.Join(dataDir, "company.json"),
	}
}

func (s *SettingsStore) LoadProfile(ctx context.Context) (*domain.Profile, error) {
	var profile domain.Profile
	if err := s.load(s.profilePath, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *SettingsStore) SaveProfile(ctx context.Context, profile *domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(s.profilePath, profile)
}

func (s *SettingsStore) LoadCompany(ctx context.Context) (*domain.Company, error) {
	var company domain.Company
	if err := s.load(s.companyPath, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (s *SettingsStore) SaveCompany(ctx context.Context, company *domain.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(s.companyPath, company)
}

func (s *SettingsStore) load(path string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := readJSON(path, v)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, filepath.Base(path))
	}
	return err
}
