package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/garagehub/vehicle-service/internal/core/domain"
	"github.com/garagehub/vehicle-service/internal/core/ports"
	"github.com/garagehub/vehicle-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

// CatalogHandler issues shareable catalog tokens and serves the tokenized
// public listing endpoints.
type CatalogHandler struct {
	vehicleService *services.VehicleService
	tokens         ports.TokenService
	publicBaseURL  string
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

func NewCatalogHandler(
	vehicleService *services.VehicleService,
	tokens ports.TokenService,
	publicBaseURL string,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *CatalogHandler {
	return &CatalogHandler{
		vehicleService: vehicleService,
		tokens:         tokens,
		publicBaseURL:  publicBaseURL,
		logger:         logger,
		metrics:        metrics,
	}
}

type shareCatalogResponse struct {
	Token     string `json:"token"`
	PublicURL string `json:"publicUrl"`
	ExpiresIn string `json:"expiresIn"`
}

type validateCatalogResponse struct {
	Valid    bool `json:"valid"`
	GarageID int  `json:"garageId"`
}

type publicVehiclesResponse struct {
	Vehicles    []*domain.Vehicle `json:"vehicles"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
}

// Single-garage deployment; the token carries the id so multi-garage
// installs only have to change the issuer.
const defaultGarageID = 1

// @Summary Share catalog
// @Description Issues a signed public-catalog token and the URL embedding it
// @Tags catalog
// @Produce json
// @Success 200 {object} shareCatalogResponse
// @Failure 500 {object} errorResponse
// @Router /api/vehicles/share-catalog [post]
func (h *CatalogHandler) ShareCatalog(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	token, err := h.tokens.IssueCatalogToken(defaultGarageID)
	if err != nil {
		respondError(c, h.logger, "share catalog", err)
		return
	}

	h.logger.Info("Issued catalog token", map[string]interface{}{
		"garageId": defaultGarageID,
	})
	c.JSON(http.StatusOK, shareCatalogResponse{
		Token:     token,
		PublicURL: fmt.Sprintf("%s/public-catalog?token=%s", h.publicBaseURL, token),
		ExpiresIn: "30 days",
	})
}

// @Summary Validate a catalog token
// @Tags catalog
// @Produce json
// @Param token path string true "Catalog token"
// @Success 200 {object} validateCatalogResponse
// @Failure 401 {object} errorResponse "Expired or malformed token"
// @Router /api/public/catalog/{token} [get]
func (h *CatalogHandler) ValidateCatalog(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, err := h.tokens.VerifyCatalogToken(c.Param("token"))
	if err != nil {
		respondError(c, h.logger, "validate catalog token", err)
		return
	}
	c.JSON(http.StatusOK, validateCatalogResponse{
		Valid:    true,
		GarageID: payload.GarageID,
	})
}

// @Summary List vehicles in a shared catalog
// @Description Tokenized read-only listing; smaller default page size than
// @Description the private listing
// @Tags catalog
// @Produce json
// @Param token path string true "Catalog token"
// @Param status query string false "Exact status match"
// @Param category query string false "Exact category match"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(8)
// @Success 200 {object} publicVehiclesResponse
// @Failure 401 {object} errorResponse
// @Router /api/public/catalog/{token}/vehicles [get]
func (h *CatalogHandler) PublicVehicles(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, err := h.tokens.VerifyCatalogToken(c.Param("token")); err != nil {
		respondError(c, h.logger, "public vehicle listing", err)
		return
	}

	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 8)
	filter := domain.VehicleFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
	}

	result, err := h.vehicleService.List(c.Request.Context(), filter, page, limit)
	if err != nil {
		respondError(c, h.logger, "public vehicle listing", err)
		return
	}
	c.JSON(http.StatusOK, publicVehiclesResponse{
		Vehicles:    result.Vehicles,
		TotalPages:  result.TotalPages,
		CurrentPage: result.CurrentPage,
	})
}

// @Summary Get a vehicle from a shared catalog
// @Tags catalog
// @Produce json
// @Param token path string true "Catalog token"
// @Param id path int true "Record id"
// @Success 200 {object} domain.Vehicle
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /api/public/catalog/{token}/vehicles/{id} [get]
func (h *CatalogHandler) PublicVehicle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, err := h.tokens.VerifyCatalogToken(c.Param("token")); err != nil {
		respondError(c, h.logger, "public vehicle fetch", err)
		return
	}

	id, ok := vehicleID(c)
	if !ok {
		return
	}
	vehicle, err := h.vehicleService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, "public vehicle fetch", err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}
