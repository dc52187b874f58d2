package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	gohttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/garagehub/vehicle-service/internal/adapter/jsonstore"
	"github.com/garagehub/vehicle-service/internal/adapter/media"
	"github.com/garagehub/vehicle-service/internal/adapter/prometheus"
	"github.com/garagehub/vehicle-service/internal/config"
	"github.com/garagehub/vehicle-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

var testMetrics = prometheus.NewPrometheusAdapter()

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dataDir := t.TempDir()
	uploadDir := t.TempDir()

	vehicleStore, err := jsonstore.NewVehicleStore(dataDir)
	require.NoError(t, err)
	counterStore, err := jsonstore.NewCounterStore(dataDir)
	require.NoError(t, err)
	userStore, err := jsonstore.NewUserStore(dataDir)
	require.NoError(t, err)
	settingsStore := jsonstore.NewSettingsStore(dataDir)
	mediaStorage, err := media.NewStorage(uploadDir)
	require.NoError(t, err)

	logger := nopLogger{}
	vehicleService := services.NewVehicleService(vehicleStore, counterStore, mediaStorage, logger)
	settingsService := services.NewSettingsService(userStore, settingsStore, logger, validator.New(), "123456")

	tokens := NewJWTTokenService("test-secret", logger)
	router, err := NewRouter(
		&config.HTTP{Env: "test", AllowedOrigins: "*"},
		uploadDir,
		NewVehicleHandler(vehicleService, logger, testMetrics),
		NewCatalogHandler(vehicleService, tokens, "http://localhost:3000", logger, testMetrics),
		NewSettingsHandler(settingsService, logger, testMetrics),
		NewUserHandler(settingsService, tokens, logger, testMetrics),
	)
	require.NoError(t, err)
	return router.Engine()
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, gohttp.MethodGet, "/health", nil)
	require.Equal(t, gohttp.StatusOK, w.Code)
}

func TestListVehiclesEnvelope(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, gohttp.MethodGet, "/api/vehicles", nil)
	require.Equal(t, gohttp.StatusOK, w.Code)

	body := decode(t, w)
	require.Contains(t, body, "vehicles")
	require.Contains(t, body, "totalPages")
	require.Contains(t, body, "currentPage")
	require.Contains(t, body, "totalVehicles")
	require.Contains(t, body, "hasNextPage")
	require.Contains(t, body, "hasPrevPage")
	require.EqualValues(t, 1, body["totalVehicles"])
}

func TestCreateVehicleJSONWithLocalePrice(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, gohttp.MethodPost, "/api/vehicles", map[string]interface{}{
		"brand":        "Honda",
		"model":        "Civic",
		"licensePlate": "XYZ-9876",
		"price":        "R$ 45.000,00",
		"mileage":      "25.000",
	})
	require.Equal(t, gohttp.StatusCreated, w.Code)

	body := decode(t, w)
	require.EqualValues(t, 2, body["id"])
	require.Equal(t, "#00001", body["vehicleId"])
	require.EqualValues(t, 45000, body["price"])
	require.EqualValues(t, 25000, body["mileage"])
	require.Equal(t, "Car", body["category"])
	require.Equal(t, "Available", body["status"])
}

func TestCreateVehicleDuplicatePlate(t *testing.T) {
	router := newTestRouter(t)

	// Seed record carries ABC-1234.
	w := doJSON(t, router, gohttp.MethodPost, "/api/vehicles", map[string]interface{}{
		"brand":        "Honda",
		"licensePlate": "ABC-1234",
	})
	require.Equal(t, gohttp.StatusBadRequest, w.Code)
	require.Contains(t, decode(t, w), "error")
}

func TestCreateVehicleMultipart(t *testing.T) {
	router := newTestRouter(t)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("brand", "Fiat"))
	require.NoError(t, form.WriteField("model", "Uno"))
	require.NoError(t, form.WriteField("licensePlate", "FIA-0001"))
	require.NoError(t, form.WriteField("price", "R$ 20.000,00"))
	require.NoError(t, form.WriteField("optionalFeatures", "ABS"))
	require.NoError(t, form.WriteField("optionalFeatures", "Airbags"))
	part, err := form.CreateFormFile("photos", "front.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg bytes"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(gohttp.MethodPost, "/api/vehicles", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, gohttp.StatusCreated, w.Code)

	body := decode(t, w)
	require.EqualValues(t, 20000, body["price"])
	require.ElementsMatch(t, []interface{}{"ABS", "Airbags"}, body["optionalFeatures"])
	mediaDoc := body["media"].(map[string]interface{})
	require.Len(t, mediaDoc["photos"], 1)
}

func TestGetVehicleNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, gohttp.MethodGet, "/api/vehicles/99", nil)
	require.Equal(t, gohttp.StatusNotFound, w.Code)

	w = doJSON(t, router, gohttp.MethodGet, "/api/vehicles/abc", nil)
	require.Equal(t, gohttp.StatusNotFound, w.Code)
}

func TestPatchVehicle(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, gohttp.MethodPatch, "/api/vehicles/1", map[string]interface{}{
		"status": "Sold",
	})
	require.Equal(t, gohttp.StatusOK, w.Code)
	body := decode(t, w)
	require.Equal(t, "Sold", body["status"])
	require.Equal(t, "Toyota", body["brand"])
}

func TestDeleteVehicleFreesID(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, gohttp.MethodDelete, "/api/vehicles/1", nil)
	require.Equal(t, gohttp.StatusOK, w.Code)
	body := decode(t, w)
	require.Equal(t, "Vehicle deleted successfully", body["message"])
	require.Contains(t, body, "vehicle")

	w = doJSON(t, router, gohttp.MethodPost, "/api/vehicles", map[string]interface{}{
		"brand": "Honda",
	})
	require.Equal(t, gohttp.StatusCreated, w.Code)
	require.EqualValues(t, 1, decode(t, w)["id"])
}

func TestShareAndBrowseCatalog(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, gohttp.MethodPost, "/api/vehicles/share-catalog", nil)
	require.Equal(t, gohttp.StatusOK, w.Code)
	share := decode(t, w)
	token := share["token"].(string)
	require.NotEmpty(t, token)
	require.Equal(t, "http://localhost:3000/public-catalog?token="+token, share["publicUrl"])
	require.Equal(t, "30 days", share["expiresIn"])

	w = doJSON(t, router, gohttp.MethodGet, "/api/public/catalog/"+token, nil)
	require.Equal(t, gohttp.StatusOK, w.Code)
	validated := decode(t, w)
	require.Equal(t, true, validated["valid"])
	require.EqualValues(t, 1, validated["garageId"])

	w = doJSON(t, router, gohttp.MethodGet, "/api/public/catalog/"+token+"/vehicles", nil)
	require.Equal(t, gohttp.StatusOK, w.Code)
	listing := decode(t, w)
	require.Contains(t, listing, "vehicles")
	require.Contains(t, listing, "totalPages")
	require.Contains(t, listing, "currentPage")
	require.NotContains(t, listing, "hasNextPage")

	w = doJSON(t, router, gohttp.MethodGet, "/api/public/catalog/"+token+"/vehicles/1", nil)
	require.Equal(t, gohttp.StatusOK, w.Code)
}

func TestPublicCatalogRejectsBadToken(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{
		"/api/public/catalog/garbage",
		"/api/public/catalog/garbage/vehicles",
		"/api/public/catalog/garbage/vehicles/1",
	} {
		w := doJSON(t, router, gohttp.MethodGet, path, nil)
		require.Equal(t, gohttp.StatusUnauthorized, w.Code, path)
	}
}

func TestPublicCatalogDefaultPageSize(t *testing.T) {
	router := newTestRouter(t)

	for i := 0; i < 10; i++ {
		w := doJSON(t, router, gohttp.MethodPost, "/api/vehicles", map[string]interface{}{
			"brand":        "Fiat",
			"licensePlate": fmt.Sprintf("FIA-%04d", i),
		})
		require.Equal(t, gohttp.StatusCreated, w.Code)
	}

	w := doJSON(t, router, gohttp.MethodPost, "/api/vehicles/share-catalog", nil)
	token := decode(t, w)["token"].(string)

	w = doJSON(t, router, gohttp.MethodGet, "/api/public/catalog/"+token+"/vehicles", nil)
	require.Equal(t, gohttp.StatusOK, w.Code)
	listing := decode(t, w)
	require.Len(t, listing["vehicles"], 8)
	require.EqualValues(t, 2, listing["totalPages"])
}

func TestProfileRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, gohttp.MethodGet, "/api/profile", nil)
	require.Equal(t, gohttp.StatusOK, w.Code)
	profile := decode(t, w)
	require.Equal(t, "Admin User", profile["name"])
	require.NotContains(t, profile, "password_hash")

	w = doJSON(t, router, gohttp.MethodPut, "/api/profile", map[string]interface{}{
		"name":  "Jane Roe",
		"email": "jane@garage.com",
	})
	require.Equal(t, gohttp.StatusOK, w.Code)
	updated := decode(t, w)
	require.Equal(t, true, updated["success"])
	require.Equal(t, "Jane Roe", updated["user"].(map[string]interface{})["name"])

	w = doJSON(t, router, gohttp.MethodGet, "/api/profile", nil)
	require.Equal(t, "Jane Roe", decode(t, w)["name"])
}

func TestUpdateProfileWrongPassword(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, gohttp.MethodPut, "/api/profile", map[string]interface{}{
		"name":            "Jane Roe",
		"currentPassword": "wrong",
		"newPassword":     "next",
	})
	require.Equal(t, gohttp.StatusBadRequest, w.Code)
}

func TestCompanyValidation(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, gohttp.MethodPut, "/api/company", map[string]interface{}{
		"name": "Garage X",
	})
	require.Equal(t, gohttp.StatusBadRequest, w.Code)

	w = doJSON(t, router, gohttp.MethodPut, "/api/company", map[string]interface{}{
		"name":    "Garage X",
		"address": "Main St 1",
		"phone":   "(11) 0000-0000",
		"email":   "contact@garagex.com",
	})
	require.Equal(t, gohttp.StatusOK, w.Code)
	body := decode(t, w)
	require.Equal(t, "Company updated successfully", body["message"])

	w = doJSON(t, router, gohttp.MethodGet, "/api/company", nil)
	require.Equal(t, gohttp.StatusOK, w.Code)
	require.Equal(t, "Garage X", decode(t, w)["name"])
}

func TestAuthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, gohttp.MethodPost, "/api/login", map[string]interface{}{
		"email":    "anyone@anywhere.com",
		"password": "whatever",
	})
	require.Equal(t, gohttp.StatusOK, w.Code)
	login := decode(t, w)
	require.NotEmpty(t, login["token"])
	user := login["user"].(map[string]interface{})
	require.Equal(t, "Demo User", user["name"])
	require.Equal(t, "admin", user["role"])

	w = doJSON(t, router, gohttp.MethodPost, "/api/register", map[string]interface{}{
		"name":  "Fresh Face",
		"email": "fresh@face.com",
	})
	require.Equal(t, gohttp.StatusOK, w.Code)
	registered := decode(t, w)
	require.Equal(t, "Fresh Face", registered["user"].(map[string]interface{})["name"])

	w = doJSON(t, router, gohttp.MethodGet, "/api/users", nil)
	require.Equal(t, gohttp.StatusOK, w.Code)
	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 2)
}
