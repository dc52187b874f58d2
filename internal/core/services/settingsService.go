package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/garagehub/vehicle-service/internal/core/domain"
	"github.com/garagehub/vehicle-service/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

// SettingsService owns the user list and the two singleton documents. Both
// singletons are last-write-wins; reads fall back to defaults while nothing
// has been saved.
type SettingsService struct {
	users        ports.UserRepository
	settings     ports.SettingsRepository
	logger       ports.LoggerPort
	validate     *validator.Validate
	mockPassword string
}

func NewSettingsService(
	users ports.UserRepository,
	settings ports.SettingsRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	mockPassword string,
) *SettingsService {
	return &SettingsService{
		users:        users,
		settings:     settings,
		logger:       logger,
		validate:     validate,
		mockPassword: mockPassword,
	}
}

func (s *SettingsService) Users(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *SettingsService) Profile(ctx context.Context) (*domain.Profile, error) {
	profile, err := s.settings.LoadProfile(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultProfile(), nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *SettingsService) UpdateProfile(ctx context.Context, update *domain.ProfileUpdate) (*domain.Profile, error) {
	// Mock password check: the stored credential is a configured constant,
	// not a real hash.
	if update.CurrentPassword != "" && update.NewPassword != "" {
		if update.CurrentPassword != s.mockPassword {
			return nil, domain.ErrWrongPassword
		}
	}

	profile := &domain.Profile{
		ID:           1,
		Name:         update.Name,
		Email:        update.Email,
		Phone:        update.Phone,
		Company:      update.Company,
		ProfileImage: update.ProfileImage,
		UpdatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if update.NewPassword != "" {
		profile.PasswordHash = "hash_" + update.NewPassword
	}

	if err := s.settings.SaveProfile(ctx, profile); err != nil {
		s.logger.Error("Failed to save profile", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	// Mirror contact fields into the logged-in user's record so the users
	// listing stays consistent with the profile document.
	if err := s.users.Upsert(ctx, &domain.User{
		ID:    1,
		Name:  update.Name,
		Email: update.Email,
		Role:  domain.Admin,
	}); err != nil {
		s.logger.Warn("Failed to mirror profile into users list", map[string]interface{}{
			"error": err.Error(),
		})
	}

	s.logger.Info("Profile updated", map[string]interface{}{"id": profile.ID})
	return profile, nil
}

func (s *SettingsService) Company(ctx context.Context) (*domain.Company, error) {
	company, err := s.settings.LoadCompany(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultCompany(), nil
	}
	if err != nil {
		return nil, err
	}
	return company, nil
}

func (s *SettingsService) UpdateCompany(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	if err := s.validate.Struct(company); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			return nil, fmt.Errorf("%w: field %s is required", domain.ErrInvalidInput, fieldErrors[0].Field())
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	company.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	if err := s.settings.SaveCompany(ctx, company); err != nil {
		s.logger.Error("Failed to save company info", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Company info updated", map[string]interface{}{
		"name": company.Name,
	})
	return company, nil
}
