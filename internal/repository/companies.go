package repository

import (
	"database/sql"
	"fmt"

	"github.com/benefix/card-service/internal/models"
)

// Companies provides database operations on partner companies
type Companies struct {
	db *sql.DB
}

// NewCompanies initializes the company repository
func NewCompanies(db *sql.DB) *Companies {
	return &Companies{db: db}
}

// FindByAPIKey retrieves a company by its API key, or nil if absent
func (r *Companies) FindByAPIKey(apiKey string) (*models.Company, error) {
	company := &models.Company{}
	query := `
		SELECT id, name, api_key
		FROM benefits.companies
		WHERE api_key = $1`
	err := r.db.QueryRow(query, apiKey).
		Scan(&company.ID, &company.Name, &company.APIKey)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	return company, nil
}
