package http

import (
	"net/http"
	"time"

	"github.com/garagehub/vehicle-service/internal/core/domain"
	"github.com/garagehub/vehicle-service/internal/core/ports"
	"github.com/garagehub/vehicle-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
	logger          ports.LoggerPort
	metrics         ports.MetricsPort
}

func NewSettingsHandler(
	settingsService *services.SettingsService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger,
		metrics:         metrics,
	}
}

type profileResponse struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Company      string `json:"company"`
	ProfileImage string `json:"profileImage"`
}

type updateProfileResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	User    profileResponse `json:"user"`
}

type updateCompanyResponse struct {
	Message string          `json:"message"`
	Company *domain.Company `json:"company"`
}

// @Summary Get the account profile
// @Tags settings
// @Produce json
// @Success 200 {object} profileResponse
// @Failure 500 {object} errorResponse
// @Router /api/profile [get]
func (h *SettingsHandler) GetProfile(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	profile, err := h.settingsService.Profile(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "get profile", err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// @Summary Update the account profile
// @Description Optionally rotates the password when currentPassword matches
// @Tags settings
// @Accept json
// @Produce json
// @Param profile body domain.ProfileUpdate true "Fields to change"
// @Success 200 {object} updateProfileResponse
// @Failure 400 {object} errorResponse "Wrong current password"
// @Failure 500 {object} errorResponse
// @Router /api/profile [put]
func (h *SettingsHandler) UpdateProfile(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var update domain.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid or missing JSON body")
		return
	}

	profile, err := h.settingsService.UpdateProfile(c.Request.Context(), &update)
	if err != nil {
		respondError(c, h.logger, "update profile", err)
		return
	}
	c.JSON(http.StatusOK, updateProfileResponse{
		Success: true,
		Message: "Profile updated successfully",
		User:    toProfileResponse(profile),
	})
}

// @Summary Get the company record
// @Tags settings
// @Produce json
// @Success 200 {object} domain.Company
// @Failure 500 {object} errorResponse
// @Router /api/company [get]
func (h *SettingsHandler) GetCompany(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	company, err := h.settingsService.Company(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "get company", err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// @Summary Update the company record
// @Tags settings
// @Accept json
// @Produce json
// @Param company body domain.Company true "Company data; name, address, phone and email are required"
// @Success 200 {object} updateCompanyResponse
// @Failure 400 {object} errorResponse "Missing required field"
// @Failure 500 {object} errorResponse
// @Router /api/company [put]
func (h *SettingsHandler) UpdateCompany(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var company domain.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid or missing JSON body")
		return
	}

	saved, err := h.settingsService.UpdateCompany(c.Request.Context(), &company)
	if err != nil {
		respondError(c, h.logger, "update company", err)
		return
	}
	c.JSON(http.StatusOK, updateCompanyResponse{
		Message: "Company updated successfully",
		Company: saved,
	})
}

func toProfileResponse(p *domain.Profile) profileResponse {
	return profileResponse{
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		Company:      p.Company,
		ProfileImage: p.ProfileImage,
	}
}
