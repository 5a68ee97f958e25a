package models

// Company represents a partner company issuing cards to its employees
type Company struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	APIKey string `json:"-"` // Not serialized
}
