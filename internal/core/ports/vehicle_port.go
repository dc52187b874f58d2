package ports

import (
	"context"
	"encoding/json"
	"mime/multipart"

	"github.com/garagehub/vehicle-service/internal/core/domain"
)

// VehicleRepository is the flat-JSON record store. Implementations load the
// whole list at construction and persist it after every mutation.
type VehicleRepository interface {
	List(ctx context.Context) ([]*domain.Vehicle, error)
	GetByID(ctx context.Context, id int) (*domain.Vehicle, error)
	Insert(ctx context.Context, vehicle *domain.Vehicle) error
	// Update replaces the record currently stored under id. The replacement
	// may carry a different id (PATCH can rewrite any field).
	Update(ctx context.Context, id int, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id int) (*domain.Vehicle, error)
}

// CounterRepository hands out the monotonically increasing display-code
// sequence, persisted independently of the record ids.
type CounterRepository interface {
	NextVehicleNumber(ctx context.Context) (int, error)
}

type VehicleService interface {
	List(ctx context.Context, filter domain.VehicleFilter, page, limit int) (*domain.VehiclePage, error)
	Get(ctx context.Context, id int) (*domain.Vehicle, error)
	Create(ctx context.Context, vehicle *domain.Vehicle, files *MediaFiles) (*domain.Vehicle, error)
	Update(ctx context.Context, id int, update *domain.VehicleUpdate, files *MediaFiles) (*domain.Vehicle, error)
	Patch(ctx context.Context, id int, fields map[string]json.RawMessage) (*domain.Vehicle, error)
	Delete(ctx context.Context, id int) (*domain.Vehicle, error)
}

// MediaFiles carries pending media of a create or update request. Multipart
// uploads arrive as file headers; the JSON compatibility path submits base64
// data-URLs instead.
type MediaFiles struct {
	Photos         []*multipart.FileHeader
	Videos         []*multipart.FileHeader
	Inspection     *multipart.FileHeader
	PhotoData      []string
	VideoData      []string
	InspectionData string
}

func (f *MediaFiles) Empty() bool {
	if f == nil {
		return true
	}
	return len(f.Photos) == 0 && len(f.Videos) == 0 && f.Inspection == nil &&
		len(f.PhotoData) == 0 && len(f.VideoData) == 0 && f.InspectionData == ""
}
