package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/garagehub/vehicle-service/internal/core/domain"
	"github.com/garagehub/vehicle-service/internal/core/ports"
)

type VehicleService struct {
	repo    ports.VehicleRepository
	counter ports.CounterRepository
	media   ports.MediaStorage
	logger  ports.LoggerPort
}

func NewVehicleService(
	repo ports.VehicleRepository,
	counter ports.CounterRepository,
	media ports.MediaStorage,
	logger ports.LoggerPort,
) *VehicleService {
	return &VehicleService{
		repo:    repo,
		counter: counter,
		media:   media,
		logger:  logger,
	}
}

func (s *VehicleService) List(ctx context.Context, filter domain.VehicleFilter, page, limit int) (*domain.VehiclePage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	vehicles, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list vehicles", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	filtered := make([]*domain.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if filter.Matches(v) {
			filtered = append(filtered, v)
		}
	}

	total := len(filtered)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &domain.VehiclePage{
		Vehicles:      filtered[start:end],
		TotalPages:    totalPages,
		CurrentPage:   page,
		TotalVehicles: total,
		HasNextPage:   page < totalPages,
		HasPrevPage:   page > 1,
	}, nil
}

func (s *VehicleService) Get(ctx context.Context, id int) (*domain.Vehicle, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *VehicleService) Create(ctx context.Context, vehicle *domain.Vehicle, files *ports.MediaFiles) (*domain.Vehicle, error) {
	vehicles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	vehicle.LicensePlate = domain.NormalizePlate(vehicle.LicensePlate)
	if vehicle.LicensePlate != "" {
		for _, existing := range vehicles {
			if existing.LicensePlate == vehicle.LicensePlate {
				return nil, fmt.Errorf("%w: %s", domain.ErrDuplicatePlate, vehicle.LicensePlate)
			}
		}
	}

	// Record ids are the lowest free positive integer, so gaps left by
	// deletion get reused. The display code below never goes backwards.
	vehicle.ID = lowestFreeID(vehicles)

	number, err := s.counter.NextVehicleNumber(ctx)
	if err != nil {
		s.logger.Error("Failed to advance vehicle counter", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	vehicle.VehicleID = fmt.Sprintf("#%05d", number)

	applyCreateDefaults(vehicle)
	vehicle.CreatedAt = time.Now().UTC()

	vehicle.Media = domain.Media{Photos: []string{}, Videos: []string{}}
	if err := s.saveNewMedia(vehicle.ID, &vehicle.Media, files); err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, vehicle); err != nil {
		s.logger.Error("Failed to persist vehicle", map[string]interface{}{
			"error": err.Error(),
			"id":    vehicle.ID,
		})
		return nil, err
	}

	s.logger.Info("Vehicle created", map[string]interface{}{
		"id":         vehicle.ID,
		"vehicle_id": vehicle.VehicleID,
	})
	return vehicle, nil
}

func (s *VehicleService) Update(ctx context.Context, id int, update *domain.VehicleUpdate, files *ports.MediaFiles) (*domain.Vehicle, error) {
	vehicle, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.LicensePlate != nil {
		plate := domain.NormalizePlate(*update.LicensePlate)
		if plate != "" {
			vehicles, err := s.repo.List(ctx)
			if err != nil {
				return nil, err
			}
			for _, other := range vehicles {
				if other.ID != id && other.LicensePlate == plate {
					return nil, fmt.Errorf("%w: %s", domain.ErrDuplicatePlate, plate)
				}
			}
		}
		vehicle.LicensePlate = plate
	}

	applyUpdate(vehicle, update)

	// An empty order list means no reorder was requested, not "remove all".
	if len(update.ExistingPhotosOrder) > 0 {
		vehicle.Media.Photos = reorderMedia(vehicle.Media.Photos, update.ExistingPhotosOrder)
	}
	if len(update.ExistingVideosOrder) > 0 {
		vehicle.Media.Videos = reorderMedia(vehicle.Media.Videos, update.ExistingVideosOrder)
	}
	if err := s.saveNewMedia(id, &vehicle.Media, files); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, vehicle); err != nil {
		return nil, err
	}

	s.logger.Info("Vehicle updated", map[string]interface{}{"id": id})
	return vehicle, nil
}

// Patch merges the provided keys over the stored document, nothing more: no
// type coercion and no plate-uniqueness re-check. PUT re-validates the plate;
// PATCH deliberately does not.
func (s *VehicleService) Patch(ctx context.Context, id int, fields map[string]json.RawMessage) (*domain.Vehicle, error) {
	vehicle, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(vehicle)
	if err != nil {
		return nil, err
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	for key, value := range fields {
		doc[key] = value
	}
	merged, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	var patched domain.Vehicle
	if err := json.Unmarshal(merged, &patched); err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}

	if err := s.repo.Update(ctx, id, &patched); err != nil {
		return nil, err
	}

	s.logger.Info("Vehicle patched", map[string]interface{}{"id": id})
	return &patched, nil
}

func (s *VehicleService) Delete(ctx context.Context, id int) (*domain.Vehicle, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Vehicle deleted", map[string]interface{}{"id": id})
	return removed, nil
}

func (s *VehicleService) saveNewMedia(recordID int, media *domain.Media, files *ports.MediaFiles) error {
	if files.Empty() {
		return nil
	}

	photoBase := len(media.Photos)
	for i, header := range files.Photos {
		path, err := s.media.SaveUpload(ports.MediaKindPhoto, recordID, photoBase+i, header)
		if err != nil {
			return err
		}
		media.Photos = append(media.Photos, path)
	}
	videoBase := len(media.Videos)
	for i, header := range files.Videos {
		path, err := s.media.SaveUpload(ports.MediaKindVideo, recordID, videoBase+i, header)
		if err != nil {
			return err
		}
		media.Videos = append(media.Videos, path)
	}
	if files.Inspection != nil {
		path, err := s.media.SaveUpload(ports.MediaKindInspection, recordID, -1, files.Inspection)
		if err != nil {
			return err
		}
		media.Inspection = &path
	}

	// Compatibility path: base64 data-URLs inside JSON bodies. Entries that
	// are already served paths are appended untouched.
	photoBase = len(media.Photos)
	for i, data := range files.PhotoData {
		path, err := s.saveDataEntry(ports.MediaKindPhoto, recordID, photoBase+i, data)
		if err != nil {
			return err
		}
		media.Photos = append(media.Photos, path)
	}
	videoBase = len(media.Videos)
	for i, data := range files.VideoData {
		path, err := s.saveDataEntry(ports.MediaKindVideo, recordID, videoBase+i, data)
		if err != nil {
			return err
		}
		media.Videos = append(media.Videos, path)
	}
	if files.InspectionData != "" {
		path, err := s.saveDataEntry(ports.MediaKindInspection, recordID, -1, files.InspectionData)
		if err != nil {
			return err
		}
		media.Inspection = &path
	}
	return nil
}

func (s *VehicleService) saveDataEntry(kind string, recordID, index int, data string) (string, error) {
	if !strings.HasPrefix(data, "data:") {
		return data, nil
	}
	return s.media.SaveDataURL(kind, recordID, index, data)
}

// reorderMedia keeps only the entries of order that exist in current, in the
// order given. Current entries missing from order are dropped.
func reorderMedia(current, order []string) []string {
	existing := make(map[string]bool, len(current))
	for _, url := range current {
		existing[url] = true
	}
	reordered := make([]string, 0, len(order))
	for _, url := range order {
		if existing[url] {
			reordered = append(reordered, url)
		}
	}
	return reordered
}

func lowestFreeID(vehicles []*domain.Vehicle) int {
	used := make(map[int]bool, len(vehicles))
	for _, v := range vehicles {
		used[v.ID] = true
	}
	id := 1
	for used[id] {
		id++
	}
	return id
}

func applyCreateDefaults(v *domain.Vehicle) {
	if v.Category == "" {
		v.Category = domain.CategoryCar
	}
	if v.Status == "" {
		v.Status = domain.StatusAvailable
	}
	if v.Year == 0 {
		v.Year = time.Now().Year()
	}
	if v.ModelYear == 0 {
		v.ModelYear = v.Year
	}
	if v.Doors == 0 {
		v.Doors = 4
	}
	if v.OptionalFeatures == nil {
		v.OptionalFeatures = []string{}
	}
}

func applyUpdate(v *domain.Vehicle, u *domain.VehicleUpdate) {
	if u.Category != nil {
		v.Category = *u.Category
	}
	if u.Brand != nil {
		v.Brand = *u.Brand
	}
	if u.Model != nil {
		v.Model = *u.Model
	}
	if u.Year != nil {
		v.Year = *u.Year
	}
	if u.ModelYear != nil {
		v.ModelYear = *u.ModelYear
	}
	if u.Price != nil {
		v.Price = *u.Price
	}
	if u.Mileage != nil {
		v.Mileage = *u.Mileage
	}
	if u.Color != nil {
		v.Color = *u.Color
	}
	if u.BodyType != nil {
		v.BodyType = *u.BodyType
	}
	if u.Doors != nil {
		v.Doors = *u.Doors
	}
	if u.Transmission != nil {
		v.Transmission = *u.Transmission
	}
	if u.Steering != nil {
		v.Steering = *u.Steering
	}
	if u.Fuel != nil {
		v.Fuel = *u.Fuel
	}
	if u.EngineSize != nil {
		v.EngineSize = *u.EngineSize
	}
	if u.OptionalFeatures != nil {
		v.OptionalFeatures = u.OptionalFeatures
	}
	if u.Armored != nil {
		v.Armored = *u.Armored
	}
	if u.Auction != nil {
		v.Auction = *u.Auction
	}
	if u.TaxPaid != nil {
		v.TaxPaid = *u.TaxPaid
	}
	if u.LicensingUpToDate != nil {
		v.LicensingUpToDate = *u.LicensingUpToDate
	}
	if u.Status != nil {
		v.Status = *u.Status
	}
	if u.Description != nil {
		v.Description = *u.Description
	}
}
