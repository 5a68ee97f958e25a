package repository

import (
	"database/sql"
	"fmt"

	"github.com/benefix/card-service/internal/models"
)

// Purchases provides database operations on the debit ledger
type Purchases struct {
	db *sql.DB
}

// NewPurchases initializes the purchase repository
func NewPurchases(db *sql.DB) *Purchases {
	return &Purchases{db: db}
}

// Insert appends a purchase and returns its id
func (r *Purchases) Insert(purchase *models.Purchase) (int64, error) {
	query := `
		INSERT INTO benefits.purchases (card_id, amount, created_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, purchase.CardID, purchase.Amount).
		Scan(&purchase.ID, &purchase.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert purchase: %w", err)
	}
	return purchase.ID, nil
}

// FindByCardID retrieves all purchases for a card
func (r *Purchases) FindByCardID(cardID int64) ([]models.Purchase, error) {
	query := `
		SELECT id, card_id, amount, created_at
		FROM benefits.purchases
		WHERE card_id = $1
		ORDER BY id`
	rows, err := r.db.Query(query, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to find purchases: %w", err)
	}
	defer rows.Close()

	var purchases []models.Purchase
	for rows.Next() {
		purchase := models.Purchase{}
		if err := rows.Scan(&purchase.ID, &purchase.CardID, &purchase.Amount, &purchase.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		purchases = append(purchases, purchase)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read purchases: %w", err)
	}
	return purchases, nil
}
