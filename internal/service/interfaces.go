package service

import "github.com/benefix/card-service/internal/models"

// Collaborator contracts consumed by the services. The Postgres repository
// satisfies all repository interfaces; tests supply fakes. Lookups return
// (nil, nil) when the record is absent — callers decide whether that is an
// error.

// CardRepository provides card persistence and lookup.
type CardRepository interface {
	Insert(card *models.Card) (int64, error)
	FindByID(id int64) (*models.Card, error)
	FindByDetails(number, cardholderName, expirationDate string) (*models.Card, error)
	FindByTypeAndEmployeeID(cardType models.CardType, employeeID int64) (*models.Card, error)
	FindByExpirationDate(expirationDate string) ([]models.Card, error)
	UpdatePassword(id int64, passwordHash string) error
}

// RechargeRepository provides the credit ledger for a card.
type RechargeRepository interface {
	Insert(recharge *models.Recharge) (int64, error)
	FindByCardID(cardID int64) ([]models.Recharge, error)
}

// PurchaseRepository provides the debit ledger for a card.
type PurchaseRepository interface {
	Insert(purchase *models.Purchase) (int64, error)
	FindByCardID(cardID int64) ([]models.Purchase, error)
}

// EmployeeRepository resolves employee identity.
type EmployeeRepository interface {
	FindByID(id int64) (*models.Employee, error)
}

// CompanyRepository resolves partner companies by API key.
type CompanyRepository interface {
	FindByAPIKey(apiKey string) (*models.Company, error)
}

// Hasher is the one-way hash capability for security codes and passwords.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Compare(plaintext, digest string) bool
}

// CardGenerator produces card numbers and security codes.
type CardGenerator interface {
	CardNumber() (string, error)
	SecurityCode() (string, error)
}
