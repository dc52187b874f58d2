package http

import (
	"net/http"
	"time"

	"github.com/garagehub/vehicle-service/internal/core/domain"
	"github.com/garagehub/vehicle-service/internal/core/ports"
	"github.com/garagehub/vehicle-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the prototype auth endpoints. Login and register are
// stand-ins: any credential pair is accepted, the fixed demo identity comes
// back with a real signed token.
type UserHandler struct {
	settingsService *services.SettingsService
	tokens          ports.TokenService
	logger          ports.LoggerPort
	metrics         ports.MetricsPort
}

func NewUserHandler(
	settingsService *services.SettingsService,
	tokens ports.TokenService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *UserHandler {
	return &UserHandler{
		settingsService: settingsService,
		tokens:          tokens,
		logger:          logger,
		metrics:         metrics,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// @Summary Log in
// @Description Prototype login; credentials are not verified
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Email and password"
// @Success 200 {object} authResponse
// @Failure 400 {object} errorResponse
// @Router /api/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid or missing JSON body")
		return
	}

	user := &domain.User{
		ID:    1,
		Name:  "Demo User",
		Email: req.Email,
		Role:  domain.Admin,
	}
	token, err := h.tokens.IssueAuthToken(user)
	if err != nil {
		respondError(c, h.logger, "login", err)
		return
	}
	c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// @Summary Register
// @Description Prototype registration; nothing is persisted
// @Tags auth
// @Accept json
// @Produce json
// @Param account body registerRequest true "New account data"
// @Success 200 {object} authResponse
// @Failure 400 {object} errorResponse
// @Router /api/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid or missing JSON body")
		return
	}

	name := req.Name
	if name == "" {
		name = "New User"
	}
	user := &domain.User{
		ID:    2,
		Name:  name,
		Email: req.Email,
		Role:  domain.AppUser,
	}
	token, err := h.tokens.IssueAuthToken(user)
	if err != nil {
		respondError(c, h.logger, "register", err)
		return
	}
	c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} domain.User
// @Failure 500 {object} errorResponse
// @Router /api/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	users, err := h.settingsService.Users(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "list users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}
