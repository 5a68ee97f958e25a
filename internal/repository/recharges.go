package repository

import (
	"database/sql"
	"fmt"

	"github.com/benefix/card-service/internal/models"
)

// Recharges provides database operations on the credit ledger
type Recharges struct {
	db *sql.DB
}

// NewRecharges initializes the recharge repository
func NewRecharges(db *sql.DB) *Recharges {
	return &Recharges{db: db}
}

// Insert appends a recharge and returns its id
func (r *Recharges) Insert(recharge *models.Recharge) (int64, error) {
	query := `
		INSERT INTO benefits.recharges (card_id, amount, created_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, recharge.CardID, recharge.Amount).
		Scan(&recharge.ID, &recharge.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert recharge: %w", err)
	}
	return recharge.ID, nil
}

// FindByCardID retrieves all recharges for a card
func (r *Recharges) FindByCardID(cardID int64) ([]models.Recharge, error) {
	query := `
		SELECT id, card_id, amount, created_at
		FROM benefits.recharges
		WHERE card_id = $1
		ORDER BY id`
	rows, err := r.db.Query(query, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to find recharges: %w", err)
	}
	defer rows.Close()

	var recharges []models.Recharge
	for rows.Next() {
		recharge := models.Recharge{}
		if err := rows.Scan(&recharge.ID, &recharge.CardID, &recharge.Amount, &recharge.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recharge: %w", err)
		}
		recharges = append(recharges, recharge)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recharges: %w", err)
	}
	return recharges, nil
}
