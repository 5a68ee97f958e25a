package models

// Employee represents an employee of a partner company
type Employee struct {
	ID        int64  `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	CompanyID int64  `json:"company_id"`
}
