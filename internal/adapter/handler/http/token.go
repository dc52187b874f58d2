package http

import (
	"errors"
	"time"

	"github.com/garagehub/vehicle-service/internal/core/domain"
	"github.com/garagehub/vehicle-service/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTTokenService signs the mock auth tokens and the public catalog
// capability with HS256. Catalog tokens carry no exp claim, so they never
// expire; verification still distinguishes expired from invalid for tokens
// that do carry one.
type JWTTokenService struct {
	secretKey []byte
	logger    ports.LoggerPort
}

func NewJWTTokenService(secretKey string, logger ports.LoggerPort) *JWTTokenService {
	return &JWTTokenService{
		secretKey: []byte(secretKey),
		logger:    logger,
	}
}

func (j *JWTTokenService) IssueAuthToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secretKey)
}

func (j *JWTTokenService) IssueCatalogToken(garageID int) (string, error) {
	claims := jwt.MapClaims{
		"garageId":  garageID,
		"type":      domain.CatalogTokenType,
		"timestamp": time.Now().Unix(),
		"random":    uuid.New().String(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secretKey)
	if err != nil {
		j.logger.Error("Failed to sign catalog token", map[string]interface{}{
			"error": err.Error(),
		})
		return "", err
	}
	return token, nil
}

func (j *JWTTokenService) VerifyCatalogToken(token string) (*domain.CatalogPayload, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	if tokenType, _ := claims["type"].(string); tokenType != domain.CatalogTokenType {
		return nil, domain.ErrTokenInvalid
	}

	garageID, _ := claims["garageId"].(float64)
	timestamp, _ := claims["timestamp"].(float64)
	random, _ := claims["random"].(string)
	return &domain.CatalogPayload{
		GarageID:  int(garageID),
		Timestamp: int64(timestamp),
		Random:    random,
	}, nil
}
