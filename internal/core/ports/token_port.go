package ports

import "github.com/garagehub/vehicle-service/internal/core/domain"

// TokenService signs and verifies the JWTs of the mock auth endpoints and
// the public catalog capability.
type TokenService interface {
	IssueAuthToken(user *domain.User) (string, error)
	IssueCatalogToken(garageID int) (string, error)
	VerifyCatalogToken(token string) (*domain.CatalogPayload, error)
}
