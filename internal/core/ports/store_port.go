package ports

import (
	"context"

	"github.com/garagehub/vehicle-service/internal/core/domain"
)

type UserRepository interface {
	List(ctx context.Context) ([]*domain.User, error)
	Upsert(ctx context.Context, user *domain.User) error
}

// SettingsRepository persists the two singleton documents. Load returns
// domain.ErrNotFound when nothing has been saved yet; callers supply
// defaults.
type SettingsRepository interface {
	LoadProfile(ctx context.Context) (*domain.Profile, error)
	SaveProfile(ctx context.Context, profile *domain.Profile) error
	LoadCompany(ctx context.Context) (*domain.Company, error)
	SaveCompany(ctx context.Context, company *domain.Company) error
}
