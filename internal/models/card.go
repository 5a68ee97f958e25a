package models

// CardType is the spending category a card is scoped to.
type CardType string

const (
	TypeGroceries  CardType = "groceries"
	TypeRestaurant CardType = "restaurant"
	TypeTransport  CardType = "transport"
	TypeEducation  CardType = "education"
	TypeHealth     CardType = "health"
)

// Valid reports whether t is one of the known spending categories.
func (t CardType) Valid() bool {
	switch t {
	case TypeGroceries, TypeRestaurant, TypeTransport, TypeEducation, TypeHealth:
		return true
	}
	return false
}

// Card represents a benefits card issued to an employee.
// SecurityCode holds a bcrypt hash; the plaintext code exists only between
// generation and hashing. Password is nil until the card is activated.
type Card struct {
	ID             int64    `json:"id"`
	EmployeeID     int64    `json:"employee_id"`
	Number         string   `json:"number"`
	CardholderName string   `json:"cardholder_name"`
	SecurityCode   string   `json:"-"`               // Not serialized
	ExpirationDate string   `json:"expiration_date"` // MM/YY
	Password       *string  `json:"-"`               // Not serialized
	IsVirtual      bool     `json:"is_virtual"`
	IsBlocked      bool     `json:"is_blocked"`
	Type           CardType `json:"type"`
}

// IsActive reports whether the card has been activated.
func (c *Card) IsActive() bool {
	return c.Password != nil
}
