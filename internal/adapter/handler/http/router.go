package http

import (
	"net/http"

	"github.com/garagehub/vehicle-service/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	router *gin.Engine
}

func NewRouter(
	cfg *config.HTTP,
	uploadDir string,
	vehicleHandler *VehicleHandler,
	catalogHandler *CatalogHandler,
	settingsHandler *SettingsHandler,
	userHandler *UserHandler,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Uploaded media
	router.Static("/uploads", uploadDir)

	api := router.Group("/api")

	// Vehicle routes. share-catalog shares the group with /:id; gin
	// resolves the literal segment first.
	vehicles := api.Group("/vehicles")
	{
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.POST("", vehicleHandler.CreateVehicle)
		vehicles.POST("/share-catalog", catalogHandler.ShareCatalog)
		vehicles.GET("/:id", vehicleHandler.GetVehicle)
		vehicles.PUT("/:id", vehicleHandler.UpdateVehicle)
		vehicles.PATCH("/:id", vehicleHandler.PatchVehicle)
		vehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)
	}

	// Public catalog routes, guarded by the token in the path
	catalog := api.Group("/public/catalog/:token")
	{
		catalog.GET("", catalogHandler.ValidateCatalog)
		catalog.GET("/vehicles", catalogHandler.PublicVehicles)
		catalog.GET("/vehicles/:id", catalogHandler.PublicVehicle)
	}

	// Settings routes
	api.GET("/profile", settingsHandler.GetProfile)
	api.PUT("/profile", settingsHandler.UpdateProfile)
	api.GET("/company", settingsHandler.GetCompany)
	api.PUT("/company", settingsHandler.UpdateCompany)

	// Auth and user routes
	api.POST("/login", userHandler.Login)
	api.POST("/register", userHandler.Register)
	api.GET("/users", userHandler.ListUsers)

	return &Router{router: router}, nil
}

func (r *Router) Serve(addr string) error {
	return r.router.Run(addr)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
