package models

// Recharge is an append-only credit entry on a card's ledger
type Recharge struct {
	ID        int64  `json:"id"`
	CardID    int64  `json:"card_id"`
	Amount    int    `json:"amount"`
	CreatedAt string `json:"created_at"`
}
