package repository

import (
	"database/sql"
	"fmt"

	"github.com/benefix/card-service/internal/models"
)

// Employees provides database operations on employees
type Employees struct {
	db *sql.DB
}

// NewEmployees initializes the employee repository
func NewEmployees(db *sql.DB) *Employees {
	return &Employees{db: db}
}

// FindByID retrieves an employee by id, or nil if absent
func (r *Employees) FindByID(id int64) (*models.Employee, error) {
	employee := &models.Employee{}
	query := `
		SELECT id, full_name, email, company_id
		FROM benefits.employees
		WHERE id = $1`
	err := r.db.QueryRow(query, id).
		Scan(&employee.ID, &employee.FullName, &employee.Email, &employee.CompanyID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	return employee, nil
}
