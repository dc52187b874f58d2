package jsonstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/garagehub/vehicle-service/internal/core/domain"
)

// VehicleStore keeps the full vehicle list in memory and rewrites
// vehicles.json after every mutation. A single RWMutex guards the list; the
// HTTP layer serves requests concurrently.
type VehicleStore struct {
	baseStore
	vehicles []*domain.Vehicle
}

func NewVehicleStore(dataDir string) (*VehicleStore, error) {
	s := &VehicleStore{baseStore: baseStore{path: filepath.Join(dataDir, "vehicles.json")}}

	err := readJSON(s.path, &s.vehicles)
	if os.IsNotExist(err) {
		s.vehicles = seedVehicles()
		if err := writeJSON(s.path, s.vehicles); err != nil {
			return nil, fmt.Errorf("seed vehicles: %w", err)
		}
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *VehicleStore) List(ctx context.Context) ([]*domain.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out, nil
}

// GetByID returns a detached copy. Callers mutate it freely and persist via
// Update; a mutation that is never persisted must not be visible to other
// readers.
func (s *VehicleStore) GetByID(ctx context.Context, id int) (*domain.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.vehicles {
		if v.ID == id {
			clone := *v
			clone.Media.Photos = append(make([]string, 0, len(v.Media.Photos)), v.Media.Photos...)
			clone.Media.Videos = append(make([]string, 0, len(v.Media.Videos)), v.Media.Videos...)
			clone.OptionalFeatures = append(make([]string, 0, len(v.OptionalFeatures)), v.OptionalFeatures...)
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("%w: vehicle %d", domain.ErrNotFound, id)
}

func (s *VehicleStore) Insert(ctx context.Context, vehicle *domain.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vehicles = append(s.vehicles, vehicle)
	return writeJSON(s.path, s.vehicles)
}

func (s *VehicleStore) Update(ctx context.Context, id int, vehicle *domain.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.vehicles {
		if v.ID == id {
			s.vehicles[i] = vehicle
			return writeJSON(s.path, s.vehicles)
		}
	}
	return fmt.Errorf("%w: vehicle %d", domain.ErrNotFound, id)
}

func (s *VehicleStore) Delete(ctx context.Context, id int) (*domain.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.vehicles {
		if v.ID == id {
			s.vehicles = append(s.vehicles[:i], s.vehicles[i+1:]...)
			if err := writeJSON(s.path, s.vehicles); err != nil {
				return nil, err
			}
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: vehicle %d", domain.ErrNotFound, id)
}

func seedVehicles() []*domain.Vehicle {
	created, _ := time.Parse(time.RFC3339, "2024-01-15T10:30:00Z")
	return []*domain.Vehicle{{
		ID:                1,
		VehicleID:         "#00001",
		Category:          domain.CategoryCar,
		Brand:             "Toyota",
		Model:             "Corolla",
		LicensePlate:      "ABC-1234",
		Year:              2023,
		ModelYear:         2023,
		Price:             85000,
		Mileage:           15000,
		Color:             "White",
		BodyType:          "Sedan",
		Doors:             4,
		Transmission:      "Automatic",
		Steering:          "Hydraulic",
		Fuel:              "Flex",
		EngineSize:        "2.0 - 2.9",
		OptionalFeatures:  []string{"Air Conditioning", "Power Steering", "Power Windows"},
		TaxPaid:           true,
		LicensingUpToDate: true,
		Status:            domain.StatusAvailable,
		Description:       "Vehicle in excellent condition",
		Media:             domain.Media{Photos: []string{}, Videos: []string{}},
		CreatedAt:         created,
	}}
}
