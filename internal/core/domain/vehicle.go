package domain

import (
	"strings"
	"time"
)

type Category string

const (
	CategoryCar        Category = "Car"
	CategoryMotorcycle Category = "Motorcycle"
)

type VehicleStatus string

const (
	StatusAvailable     VehicleStatus = "Available"
	StatusSold          VehicleStatus = "Sold"
	StatusReserved      VehicleStatus = "Reserved"
	StatusInMaintenance VehicleStatus = "InMaintenance"
	StatusUnavailable   VehicleStatus = "Unavailable"
)

// Media is the bundle of upload references attached to a vehicle. Photos and
// videos keep their insertion order; at most one inspection document.
type Media struct {
	Photos     []string `json:"photos"`
	Videos     []string `json:"videos"`
	Inspection *string  `json:"inspection"`
}

// swagger:model domain.Vehicle
type Vehicle struct {
	ID                 int           `json:"id"`
	VehicleID          string        `json:"vehicleId"`
	Category           Category      `json:"category"`
	Brand              string        `json:"brand"`
	Model              string        `json:"model"`
	LicensePlate       string        `json:"licensePlate"`
	Year               int           `json:"year"`
	ModelYear          int           `json:"modelYear"`
	Price              float64       `json:"price"`
	Mileage            int           `json:"mileage"`
	Color              string        `json:"color"`
	BodyType           string        `json:"bodyType"`
	Doors              int           `json:"doors"`
	Transmission       string        `json:"transmission"`
	Steering           string        `json:"steering"`
	Fuel               string        `json:"fuel"`
	EngineSize         string        `json:"engineSize"`
	OptionalFeatures   []string      `json:"optionalFeatures"`
	Armored            bool          `json:"armored"`
	Auction            bool          `json:"auction"`
	TaxPaid            bool          `json:"taxPaid"`
	LicensingUpToDate  bool          `json:"licensingUpToDate"`
	Status             VehicleStatus `json:"status"`
	Description        string        `json:"description"`
	Media              Media         `json:"media"`
	CreatedAt          time.Time     `json:"createdAt"`
}

// VehicleUpdate carries the fields of a full update. Nil pointers mean the
// caller did not send the field, so the stored value is kept. Non-empty
// order lists rewrite existing media; entries not present in current media
// are dropped.
type VehicleUpdate struct {
	Category            *Category
	Brand               *string
	Model               *string
	LicensePlate        *string
	Year                *int
	ModelYear           *int
	Price               *float64
	Mileage             *int
	Color               *string
	BodyType            *string
	Doors               *int
	Transmission        *string
	Steering            *string
	Fuel                *string
	EngineSize          *string
	OptionalFeatures    []string
	Armored             *bool
	Auction             *bool
	TaxPaid             *bool
	LicensingUpToDate   *bool
	Status              *VehicleStatus
	Description         *string
	ExistingPhotosOrder []string
	ExistingVideosOrder []string
}

// VehicleFilter narrows list results by exact-match equality.
type VehicleFilter struct {
	Status   string
	Category string
}

func (f VehicleFilter) Matches(v *Vehicle) bool {
	if f.Status != "" && string(v.Status) != f.Status {
		return false
	}
	if f.Category != "" && string(v.Category) != f.Category {
		return false
	}
	return true
}

// VehiclePage is one page of list results together with pagination totals.
type VehiclePage struct {
	Vehicles      []*Vehicle
	TotalPages    int
	CurrentPage   int
	TotalVehicles int
	HasNextPage   bool
	HasPrevPage   bool
}

// NormalizePlate trims the plate before storage and comparison.
func NormalizePlate(plate string) string {
	return strings.TrimSpace(plate)
}

// Dropdown lists shared by the record schema and the spreadsheet import
// template. The template generator must stay aligned with these.
func Categories() []string {
	return []string{string(CategoryCar), string(CategoryMotorcycle)}
}

func Statuses() []string {
	return []string{
		string(StatusAvailable), string(StatusSold), string(StatusReserved),
		string(StatusInMaintenance), string(StatusUnavailable),
	}
}

func Colors() []string {
	return []string{
		"White", "Black", "Silver", "Gray", "Blue", "Red", "Green", "Yellow",
		"Brown", "Beige", "Gold", "Orange", "Pink", "Purple", "Other",
	}
}

func BodyTypes() []string {
	return []string{
		"Sedan", "Hatchback", "SUV", "Pickup", "Convertible", "Coupe",
		"Wagon", "Van", "Minivan", "Crossover", "Other",
	}
}

func Transmissions() []string {
	return []string{"Manual", "Automatic", "CVT", "Automated", "Semi-automatic"}
}

func Fuels() []string {
	return []string{"Flex", "Gasoline", "Ethanol", "Diesel", "Electric", "Hybrid", "CNG"}
}

func EngineSizes() []string {
	return []string{
		"1.0", "1.2", "1.3", "1.4", "1.5", "1.6", "1.7", "1.8", "1.9",
		"2.0 - 2.9", "3.0 - 3.9", "4.0 or more",
	}
}

func Steerings() []string {
	return []string{"Mechanical", "Hydraulic", "Electric", "Electro-hydraulic"}
}

func OptionalFeatureList() []string {
	return []string{
		"Air Conditioning", "Power Steering", "Power Windows", "Power Locks",
		"Alarm", "Sound System", "GPS", "Rear Camera", "Parking Sensor",
		"Airbags", "ABS", "Stability Control", "Traction Control",
		"Cruise Control", "Leather Seats", "Alloy Wheels", "Sunroof",
		"Fog Lights", "Bluetooth", "USB", "Aux Input",
		"Steering Wheel Controls", "Power Mirrors", "Folding Mirrors",
	}
}
