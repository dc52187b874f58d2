package app

import (
	"context"
	"fmt"

	"github.com/garagehub/vehicle-service/internal/adapter/handler/http"
	"github.com/garagehub/vehicle-service/internal/adapter/jsonstore"
	"github.com/garagehub/vehicle-service/internal/adapter/logger"
	"github.com/garagehub/vehicle-service/internal/adapter/media"
	"github.com/garagehub/vehicle-service/internal/adapter/prometheus"
	"github.com/garagehub/vehicle-service/internal/config"
	"github.com/garagehub/vehicle-service/internal/core/ports"
	"github.com/garagehub/vehicle-service/internal/core/services"

	"github.com/go-playground/validator/v10"
)

type App struct {
	Config     *config.Container
	Logger     ports.LoggerPort
	HTTPRouter *http.Router
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	// Storage
	vehicleStore, err := jsonstore.NewVehicleStore(cfg.Storage.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open vehicle store: %w", err)
	}
	counterStore, err := jsonstore.NewCounterStore(cfg.Storage.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open counter store: %w", err)
	}
	userStore, err := jsonstore.NewUserStore(cfg.Storage.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open user store: %w", err)
	}
	settingsStore := jsonstore.NewSettingsStore(cfg.Storage.DataDir)

	mediaStorage, err := media.NewStorage(cfg.Storage.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open media storage: %w", err)
	}

	// Validate
	validate := validator.New()

	// Observability
	metrics := prometheus.NewPrometheusAdapter()

	// Services
	vehicleService := services.NewVehicleService(vehicleStore, counterStore, mediaStorage, loggerAdapter)
	settingsService := services.NewSettingsService(userStore, settingsStore, loggerAdapter, validate, cfg.App.MockPassword)

	// HTTP Handlers
	tokenService := http.NewJWTTokenService(cfg.Token.Secret, loggerAdapter)
	vehicleHandler := http.NewVehicleHandler(vehicleService, loggerAdapter, metrics)
	catalogHandler := http.NewCatalogHandler(vehicleService, tokenService, cfg.HTTP.PublicBaseURL, loggerAdapter, metrics)
	settingsHandler := http.NewSettingsHandler(settingsService, loggerAdapter, metrics)
	userHandler := http.NewUserHandler(settingsService, tokenService, loggerAdapter, metrics)

	// Init HTTP router
	router, err := http.NewRouter(
		cfg.HTTP,
		mediaStorage.Dir(),
		vehicleHandler,
		catalogHandler,
		settingsHandler,
		userHandler,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		Config:     cfg,
		Logger:     loggerAdapter,
		HTTPRouter: router,
	}, nil
}

// Runs all services
func (a *App) Run() error {
	listenAddr := fmt.Sprintf("%s:%s", a.Config.HTTP.URL, a.Config.HTTP.Port)
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": listenAddr,
	})

	if err := a.HTTPRouter.Serve(listenAddr); err != nil {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Stops all services
func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)
	a.Logger.Info("Application stopped successfully", nil)
	if adapter, ok := a.Logger.(*logger.LoggerAdapter); ok {
		_ = adapter.Sync()
	}
	return nil
}
