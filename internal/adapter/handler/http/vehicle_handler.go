package http

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/garagehub/vehicle-service/internal/core/domain"
	"github.com/garagehub/vehicle-service/internal/core/ports"
	"github.com/garagehub/vehicle-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	vehicleService *services.VehicleService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

func NewVehicleHandler(
	vehicleService *services.VehicleService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		logger:         logger,
		metrics:        metrics,
	}
}

type listVehiclesResponse struct {
	Vehicles      []*domain.Vehicle `json:"vehicles"`
	TotalPages    int               `json:"totalPages"`
	CurrentPage   int               `json:"currentPage"`
	TotalVehicles int               `json:"totalVehicles"`
	HasNextPage   bool              `json:"hasNextPage"`
	HasPrevPage   bool              `json:"hasPrevPage"`
}

type deleteVehicleResponse struct {
	Message string          `json:"message"`
	Vehicle *domain.Vehicle `json:"vehicle"`
}

// createVehicleRequest is the JSON body of the compatibility path; media
// arrives inline as base64 data-URLs. Price and mileage accept numbers or
// locale-formatted strings.
type createVehicleRequest struct {
	Category          string              `json:"category"`
	Brand             string              `json:"brand"`
	Model             string              `json:"model"`
	LicensePlate      string              `json:"licensePlate"`
	Year              int                 `json:"year"`
	ModelYear         int                 `json:"modelYear"`
	Price             domain.PriceValue   `json:"price"`
	Mileage           domain.MileageValue `json:"mileage"`
	Color             string              `json:"color"`
	BodyType          string              `json:"bodyType"`
	Doors             int                 `json:"doors"`
	Transmission      string              `json:"transmission"`
	Steering          string              `json:"steering"`
	Fuel              string              `json:"fuel"`
	EngineSize        string              `json:"engineSize"`
	OptionalFeatures  []string            `json:"optionalFeatures"`
	Armored           bool                `json:"armored"`
	Auction           bool                `json:"auction"`
	TaxPaid           bool                `json:"taxPaid"`
	LicensingUpToDate bool                `json:"licensingUpToDate"`
	Status            string              `json:"status"`
	Description       string              `json:"description"`
	Photos            []string            `json:"photos"`
	Videos            []string            `json:"videos"`
	Inspection        string              `json:"inspection"`
}

type updateVehicleRequest struct {
	Category            *string              `json:"category"`
	Brand               *string              `json:"brand"`
	Model               *string              `json:"model"`
	LicensePlate        *string              `json:"licensePlate"`
	Year                *int                 `json:"year"`
	ModelYear           *int                 `json:"modelYear"`
	Price               *domain.PriceValue   `json:"price"`
	Mileage             *domain.MileageValue `json:"mileage"`
	Color               *string              `json:"color"`
	BodyType            *string              `json:"bodyType"`
	Doors               *int                 `json:"doors"`
	Transmission        *string              `json:"transmission"`
	Steering            *string              `json:"steering"`
	Fuel                *string              `json:"fuel"`
	EngineSize          *string              `json:"engineSize"`
	OptionalFeatures    []string             `json:"optionalFeatures"`
	Armored             *bool                `json:"armored"`
	Auction             *bool                `json:"auction"`
	TaxPaid             *bool                `json:"taxPaid"`
	LicensingUpToDate   *bool                `json:"licensingUpToDate"`
	Status              *string              `json:"status"`
	Description         *string              `json:"description"`
	ExistingPhotosOrder []string             `json:"existingPhotosOrder"`
	ExistingVideosOrder []string             `json:"existingVideosOrder"`
	Photos              []string             `json:"photos"`
	Videos              []string             `json:"videos"`
	Inspection          string               `json:"inspection"`
}

// @Summary List vehicles
// @Description Filter by status/category with offset pagination
// @Tags vehicles
// @Produce json
// @Param status query string false "Exact status match"
// @Param category query string false "Exact category match"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} listVehiclesResponse
// @Router /api/vehicles [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 10)
	filter := domain.VehicleFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
	}

	result, err := h.vehicleService.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		respondError(c, h.logger, "list vehicles", err)
		return
	}

	c.JSON(http.StatusOK, listVehiclesResponse{
		Vehicles:      result.Vehicles,
		TotalPages:    result.TotalPages,
		CurrentPage:   result.CurrentPage,
		TotalVehicles: result.TotalVehicles,
		HasNextPage:   result.HasNextPage,
		HasPrevPage:   result.HasPrevPage,
	})
}

// @Summary Get a vehicle
// @Tags vehicles
// @Produce json
// @Param id path int true "Record id"
// @Success 200 {object} domain.Vehicle
// @Failure 404 {object} errorResponse
// @Router /api/vehicles/{id} [get]
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := vehicleID(c)
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "get vehicle", err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// @Summary Create a vehicle
// @Description Accepts multipart form data with file uploads, or a JSON body
// @Description with base64 data-URL media (compatibility path)
// @Tags vehicles
// @Accept mpfd
// @Accept json
// @Produce json
// @Success 201 {object} domain.Vehicle
// @Failure 400 {object} errorResponse "Duplicate license plate or bad payload"
// @Failure 500 {object} errorResponse
// @Router /api/vehicles [post]
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var (
		vehicle *domain.Vehicle
		files   *ports.MediaFiles
	)

	if c.ContentType() == "multipart/form-data" {
		var err error
		vehicle, files, err = createFromForm(c)
		if err != nil {
			h.logger.Warn("Rejected vehicle form", map[string]interface{}{
				"error": err.Error(),
			})
			newErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
	} else {
		var req createVehicleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warn("Failed JSON parse in create vehicle", map[string]interface{}{
				"error": err.Error(),
			})
			newErrorResponse(c, http.StatusBadRequest, "invalid or missing JSON body")
			return
		}
		vehicle = req.toVehicle()
		files = &ports.MediaFiles{
			PhotoData:      req.Photos,
			VideoData:      req.Videos,
			InspectionData: req.Inspection,
		}
	}

	created, err := h.vehicleService.Create(c.Request.Context(), vehicle, files)
	if err != nil {
		respondError(c, h.logger, "create vehicle", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Update a vehicle
// @Description Replaces the non-media fields present in the payload; media is
// @Description merged (explicit order lists rewrite it, new uploads append)
// @Tags vehicles
// @Accept mpfd
// @Accept json
// @Produce json
// @Param id path int true "Record id"
// @Success 200 {object} domain.Vehicle
// @Failure 400 {object} errorResponse "Duplicate license plate"
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/vehicles/{id} [put]
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := vehicleID(c)
	if !ok {
		return
	}

	var (
		update *domain.VehicleUpdate
		files  *ports.MediaFiles
	)

	if c.ContentType() == "multipart/form-data" {
		form, err := c.MultipartForm()
		if err != nil {
			newErrorResponse(c, http.StatusBadRequest, "invalid multipart form")
			return
		}
		update, files, err = updateFromForm(form)
		if err != nil {
			h.logger.Warn("Rejected vehicle update form", map[string]interface{}{
				"error": err.Error(),
				"id":    id,
			})
			newErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
	} else {
		var req updateVehicleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warn("Failed JSON parse in update vehicle", map[string]interface{}{
				"error": err.Error(),
				"id":    id,
			})
			newErrorResponse(c, http.StatusBadRequest, "invalid or missing JSON body")
			return
		}
		update = req.toUpdate()
		files = &ports.MediaFiles{
			PhotoData:      req.Photos,
			VideoData:      req.Videos,
			InspectionData: req.Inspection,
		}
	}

	updated, err := h.vehicleService.Update(c.Request.Context(), id, update, files)
	if err != nil {
		respondError(c, h.logger, "update vehicle", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Partially update a vehicle
// @Description Shallow merge of the provided keys; no coercion, no
// @Description plate-uniqueness re-check
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path int true "Record id"
// @Success 200 {object} domain.Vehicle
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/vehicles/{id} [patch]
func (h *VehicleHandler) PatchVehicle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := vehicleID(c)
	if !ok {
		return
	}

	var fields map[string]json.RawMessage
	if err := c.ShouldBindJSON(&fields); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid or missing JSON body")
		return
	}

	patched, err := h.vehicleService.Patch(c.Request.Context(), id, fields)
	if err != nil {
		respondError(c, h.logger, "patch vehicle", err)
		return
	}
	c.JSON(http.StatusOK, patched)
}

// @Summary Delete a vehicle
// @Tags vehicles
// @Produce json
// @Param id path int true "Record id"
// @Success 200 {object} deleteVehicleResponse "Removed record for confirmation"
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/vehicles/{id} [delete]
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, ok := vehicleID(c)
	if !ok {
		return
	}

	removed, err := h.vehicleService.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "delete vehicle", err)
		return
	}
	c.JSON(http.StatusOK, deleteVehicleResponse{
		Message: "Vehicle deleted successfully",
		Vehicle: removed,
	})
}

// vehicleID parses the path id; a non-numeric id behaves like an unknown
// record.
func vehicleID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		newErrorResponse(c, http.StatusNotFound, "vehicle not found")
		return 0, false
	}
	return id, true
}

func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func (r createVehicleRequest) toVehicle() *domain.Vehicle {
	return &domain.Vehicle{
		Category:          domain.Category(r.Category),
		Brand:             r.Brand,
		Model:             r.Model,
		LicensePlate:      r.LicensePlate,
		Year:              r.Year,
		ModelYear:         r.ModelYear,
		Price:             float64(r.Price),
		Mileage:           int(r.Mileage),
		Color:             r.Color,
		BodyType:          r.BodyType,
		Doors:             r.Doors,
		Transmission:      r.Transmission,
		Steering:          r.Steering,
		Fuel:              r.Fuel,
		EngineSize:        r.EngineSize,
		OptionalFeatures:  r.OptionalFeatures,
		Armored:           r.Armored,
		Auction:           r.Auction,
		TaxPaid:           r.TaxPaid,
		LicensingUpToDate: r.LicensingUpToDate,
		Status:            domain.VehicleStatus(r.Status),
		Description:       r.Description,
	}
}

func (r updateVehicleRequest) toUpdate() *domain.VehicleUpdate {
	update := &domain.VehicleUpdate{
		Brand:               r.Brand,
		Model:               r.Model,
		LicensePlate:        r.LicensePlate,
		Year:                r.Year,
		ModelYear:           r.ModelYear,
		Color:               r.Color,
		BodyType:            r.BodyType,
		Doors:               r.Doors,
		Transmission:        r.Transmission,
		Steering:            r.Steering,
		Fuel:                r.Fuel,
		EngineSize:          r.EngineSize,
		OptionalFeatures:    r.OptionalFeatures,
		Armored:             r.Armored,
		Auction:             r.Auction,
		TaxPaid:             r.TaxPaid,
		LicensingUpToDate:   r.LicensingUpToDate,
		Description:         r.Description,
		ExistingPhotosOrder: r.ExistingPhotosOrder,
		ExistingVideosOrder: r.ExistingVideosOrder,
	}
	if r.Category != nil {
		category := domain.Category(*r.Category)
		update.Category = &category
	}
	if r.Status != nil {
		status := domain.VehicleStatus(*r.Status)
		update.Status = &status
	}
	if r.Price != nil {
		price := float64(*r.Price)
		update.Price = &price
	}
	if r.Mileage != nil {
		mileage := int(*r.Mileage)
		update.Mileage = &mileage
	}
	return update
}

// createFromForm coerces the string-typed multipart fields into a typed
// record, failing closed on unparseable numeric input.
func createFromForm(c *gin.Context) (*domain.Vehicle, *ports.MediaFiles, error) {
	v := &domain.Vehicle{
		Category:          domain.Category(c.PostForm("category")),
		Brand:             c.PostForm("brand"),
		Model:             c.PostForm("model"),
		LicensePlate:      c.PostForm("licensePlate"),
		Color:             c.PostForm("color"),
		BodyType:          c.PostForm("bodyType"),
		Transmission:      c.PostForm("transmission"),
		Steering:          c.PostForm("steering"),
		Fuel:              c.PostForm("fuel"),
		EngineSize:        c.PostForm("engineSize"),
		OptionalFeatures:  c.PostFormArray("optionalFeatures"),
		Armored:           formBool(c.PostForm("armored")),
		Auction:           formBool(c.PostForm("auction")),
		TaxPaid:           formBool(c.PostForm("taxPaid")),
		LicensingUpToDate: formBool(c.PostForm("licensingUpToDate")),
		Status:            domain.VehicleStatus(c.PostForm("status")),
		Description:       c.PostForm("description"),
	}

	var err error
	if v.Year, err = formInt(c.PostForm("year"), "year"); err != nil {
		return nil, nil, err
	}
	if v.ModelYear, err = formInt(c.PostForm("modelYear"), "modelYear"); err != nil {
		return nil, nil, err
	}
	if v.Doors, err = formInt(c.PostForm("doors"), "doors"); err != nil {
		return nil, nil, err
	}
	if raw := c.PostForm("price"); raw != "" {
		if v.Price, err = domain.ParsePrice(raw); err != nil {
			return nil, nil, err
		}
	}
	if raw := c.PostForm("mileage"); raw != "" {
		if v.Mileage, err = domain.ParseMileage(raw); err != nil {
			return nil, nil, err
		}
	}

	files := &ports.MediaFiles{}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		fillFormFiles(files, form)
	}
	return v, files, nil
}

func updateFromForm(form *multipart.Form) (*domain.VehicleUpdate, *ports.MediaFiles, error) {
	update := &domain.VehicleUpdate{}

	value := func(key string) (string, bool) {
		values, ok := form.Value[key]
		if !ok || len(values) == 0 {
			return "", false
		}
		return values[0], true
	}

	stringFields := map[string]**string{
		"brand":        &update.Brand,
		"model":        &update.Model,
		"licensePlate": &update.LicensePlate,
		"color":        &update.Color,
		"bodyType":     &update.BodyType,
		"transmission": &update.Transmission,
		"steering":     &update.Steering,
		"fuel":         &update.Fuel,
		"engineSize":   &update.EngineSize,
		"description":  &update.Description,
	}
	for key, target := range stringFields {
		if raw, ok := value(key); ok {
			raw := raw
			*target = &raw
		}
	}

	if raw, ok := value("category"); ok {
		category := domain.Category(raw)
		update.Category = &category
	}
	if raw, ok := value("status"); ok {
		status := domain.VehicleStatus(raw)
		update.Status = &status
	}

	intFields := map[string]**int{
		"year":      &update.Year,
		"modelYear": &update.ModelYear,
		"doors":     &update.Doors,
	}
	for key, target := range intFields {
		if raw, ok := value(key); ok {
			parsed, err := formInt(raw, key)
			if err != nil {
				return nil, nil, err
			}
			*target = &parsed
		}
	}

	if raw, ok := value("price"); ok {
		price, err := domain.ParsePrice(raw)
		if err != nil {
			return nil, nil, err
		}
		update.Price = &price
	}
	if raw, ok := value("mileage"); ok {
		mileage, err := domain.ParseMileage(raw)
		if err != nil {
			return nil, nil, err
		}
		update.Mileage = &mileage
	}

	boolFields := map[string]**bool{
		"armored":           &update.Armored,
		"auction":           &update.Auction,
		"taxPaid":           &update.TaxPaid,
		"licensingUpToDate": &update.LicensingUpToDate,
	}
	for key, target := range boolFields {
		if raw, ok := value(key); ok {
			parsed := formBool(raw)
			*target = &parsed
		}
	}

	if values, ok := form.Value["optionalFeatures"]; ok {
		update.OptionalFeatures = values
	}

	// Order lists arrive as JSON-encoded strings inside the form.
	for key, target := range map[string]*[]string{
		"existingPhotosOrder": &update.ExistingPhotosOrder,
		"existingVideosOrder": &update.ExistingVideosOrder,
	} {
		if raw, ok := value(key); ok {
			if err := json.Unmarshal([]byte(raw), target); err != nil {
				return nil, nil, fmt.Errorf("%w: malformed %s", domain.ErrInvalidInput, key)
			}
		}
	}

	files := &ports.MediaFiles{}
	fillFormFiles(files, form)
	return update, files, nil
}

func fillFormFiles(files *ports.MediaFiles, form *multipart.Form) {
	files.Photos = form.File["photos"]
	files.Videos = form.File["videos"]
	if inspections := form.File["inspection"]; len(inspections) > 0 {
		files.Inspection = inspections[0]
	}
}

func formBool(raw string) bool {
	return strings.EqualFold(raw, "true")
}

func formInt(raw, field string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: unparseable %s %q", domain.ErrInvalidInput, field, raw)
	}
	return value, nil
}
