package config

import (
	"os"

	"github.com/joho/godotenv"
)

type (
	Container struct {
		App     *App
		Token   *Token
		HTTP    *HTTP
		Storage *Storage
	}

	App struct {
		Name         string
		Env          string
		MockPassword string
	}

	Token struct {
		Secret string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
		PublicBaseURL  string
	}

	Storage struct {
		DataDir   string
		UploadDir string
	}
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		// Missing .env is fine; everything has a default
		_ = godotenv.Load()
	}

	app := &App{
		Name:         getEnv("APP_NAME", "vehicle-service"),
		Env:          getEnv("APP_ENV", "development"),
		MockPassword: getEnv("MOCK_PASSWORD", "123456"),
	}

	token := &Token{
		Secret: getEnv("TOKEN_SECRET", "mock_secret_key"),
	}

	http := &HTTP{
		Env:            app.Env,
		Port:           getEnv("HTTP_PORT", "3001"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		URL:            getEnv("HTTP_URL", ""),
		PublicBaseURL:  getEnv("PUBLIC_BASE_URL", "http://localhost:5173"),
	}

	storage := &Storage{
		DataDir:   getEnv("DATA_DIR", "mock_data"),
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
	}

	return &Container{
		App:     app,
		Token:   token,
		HTTP:    http,
		Storage: storage,
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
