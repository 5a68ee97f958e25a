package models

// Purchase is an append-only debit entry on a card's ledger
type Purchase struct {
	ID        int64  `json:"id"`
	CardID    int64  `json:"card_id"`
	Amount    int    `json:"amount"`
	CreatedAt string `json:"created_at"`
}
