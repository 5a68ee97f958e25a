package repository

import (
	"database/sql"
	"fmt"

	"github.com/benefix/card-service/internal/models"
)

const cardColumns = `id, employee_id, number, cardholder_name, security_code, expiration_date, password, is_virtual, is_blocked, type`

// Cards provides database operations on cards
type Cards struct {
	db *sql.DB
}

// NewCards initializes the card repository
func NewCards(db *sql.DB) *Cards {
	return &Cards{db: db}
}

// Insert creates a new card and returns its id
func (r *Cards) Insert(card *models.Card) (int64, error) {
	query := `
		INSERT INTO benefits.cards
			(employee_id, number, cardholder_name, security_code, expiration_date, is_virtual, is_blocked, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id`
	err := r.db.QueryRow(query,
		card.EmployeeID, card.Number, card.CardholderName, card.SecurityCode,
		card.ExpirationDate, card.IsVirtual, card.IsBlocked, card.Type).
		Scan(&card.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert card: %w", err)
	}
	return card.ID, nil
}

// FindByID retrieves a card by id, or nil if absent
func (r *Cards) FindByID(id int64) (*models.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM benefits.cards WHERE id = $1`
	return scanCard(r.db.QueryRow(query, id))
}

// FindByDetails retrieves a card by its number, cardholder name and
// expiration date, or nil if absent
func (r *Cards) FindByDetails(number, cardholderName, expirationDate string) (*models.Card, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM benefits.cards
		WHERE number = $1 AND cardholder_name = $2 AND expiration_date = $3`
	return scanCard(r.db.QueryRow(query, number, cardholderName, expirationDate))
}

// FindByTypeAndEmployeeID retrieves an employee's card of the given category,
// or nil if absent
func (r *Cards) FindByTypeAndEmployeeID(cardType models.CardType, employeeID int64) (*models.Card, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM benefits.cards
		WHERE type = $1 AND employee_id = $2`
	return scanCard(r.db.QueryRow(query, cardType, employeeID))
}

// FindByExpirationDate retrieves all cards expiring on the given MM/YY date
func (r *Cards) FindByExpirationDate(expirationDate string) ([]models.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM benefits.cards WHERE expiration_date = $1`
	rows, err := r.db.Query(query, expirationDate)
	if err != nil {
		return nil, fmt.Errorf("failed to find expiring cards: %w", err)
	}
	defer rows.Close()

	var cards []models.Card
	for rows.Next() {
		card := models.Card{}
		var password sql.NullString
		if err := rows.Scan(&card.ID, &card.EmployeeID, &card.Number, &card.CardholderName,
			&card.SecurityCode, &card.ExpirationDate, &password,
			&card.IsVirtual, &card.IsBlocked, &card.Type); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		if password.Valid {
			card.Password = &password.String
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cards: %w", err)
	}
	return cards, nil
}

// UpdatePassword sets the card's password hash
func (r *Cards) UpdatePassword(id int64, passwordHash string) error {
	query := `
		UPDATE benefits.cards
		SET password = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`
	if _, err := r.db.Exec(query, id, passwordHash); err != nil {
		return fmt.Errorf("failed to update card password: %w", err)
	}
	return nil
}

func scanCard(row *sql.Row) (*models.Card, error) {
	card := &models.Card{}
	var password sql.NullString
	err := row.Scan(&card.ID, &card.EmployeeID, &card.Number, &card.CardholderName,
		&card.SecurityCode, &card.ExpirationDate, &password,
		&card.IsVirtual, &card.IsBlocked, &card.Type)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find card: %w", err)
	}
	if password.Valid {
		card.Password = &password.String
	}
	return card, nil
}
