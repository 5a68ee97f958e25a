package service

import (
	"fmt"
	"time"

	"github.com/benefix/card-service/internal/apperr"
	"github.com/benefix/card-service/internal/models"
)

// Guard predicates shared by the card, recharge and purchase flows. Each
// raises one specific typed failure; the flows compose them in a fixed order
// (existence, state, secret) and short-circuit on the first failure.

func (s *CardService) ensureCardExists(cardID int64) (*models.Card, error) {
	card, err := s.cards.FindByID(cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up card: %w", err)
	}
	if card == nil {
		return nil, apperr.NotFound("Card")
	}
	return card, nil
}

// ensureCardIsNotActive rejects cards that already carry a password.
func ensureCardIsNotActive(card *models.Card) error {
	if card.IsActive() {
		return apperr.Conflict("Password")
	}
	return nil
}

// ensureCardIsActive rejects cards that have not been activated yet.
func ensureCardIsActive(card *models.Card) error {
	if !card.IsActive() {
		return apperr.Forbidden("Card")
	}
	return nil
}

func ensureCardIsNotExpired(card *models.Card) error {
	diff, err := monthsUntilExpiration(card.ExpirationDate, time.Now())
	if err != nil {
		return err
	}
	if diff < 0 {
		return apperr.Forbidden("Card")
	}
	return nil
}

func ensureCardIsNotBlocked(card *models.Card) error {
	if card.IsBlocked {
		return apperr.Forbidden("Card")
	}
	return nil
}

func (s *CardService) ensureSecurityCodeIsValid(card *models.Card, securityCode string) error {
	if !s.hasher.Compare(securityCode, card.SecurityCode) {
		return apperr.Unauthorized("CVC")
	}
	return nil
}

func ensureCardHasBalance(statement *Statement, amount int) error {
	if statement.Balance < amount {
		return apperr.Forbidden("Balance")
	}
	return nil
}
