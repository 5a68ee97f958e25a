package service

import (
	"fmt"

	"github.com/benefix/card-service/internal/apperr"
	"github.com/benefix/card-service/internal/models"
)

// AuthService resolves the partner company behind an API key.
type AuthService struct {
	companies CompanyRepository
}

// NewAuthService initializes the auth service.
func NewAuthService(companies CompanyRepository) *AuthService {
	return &AuthService{companies: companies}
}

// VerifyAPIKey returns the company owning the key, or Unauthorized if the key
// is unknown.
func (s *AuthService) VerifyAPIKey(apiKey string) (*models.Company, error) {
	company, err := s.companies.FindByAPIKey(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to look up company: %w", err)
	}
	if company == nil {
		return nil, apperr.Unauthorized("API Key")
	}
	return company, nil
}
