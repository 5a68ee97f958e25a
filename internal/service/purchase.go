package service

import (
	"fmt"

	"github.com/benefix/card-service/internal/apperr"
	"github.com/benefix/card-service/internal/models"
	"github.com/sirupsen/logrus"
)

// PurchaseService appends debit entries to a card's ledger.
type PurchaseService struct {
	cardSvc   *CardService
	purchases PurchaseRepository
	hasher    Hasher
	log       *logrus.Logger
}

// NewPurchaseService initializes the purchase service.
func NewPurchaseService(cardSvc *CardService, purchases PurchaseRepository, hasher Hasher, log *logrus.Logger) *PurchaseService {
	return &PurchaseService{cardSvc: cardSvc, purchases: purchases, hasher: hasher, log: log}
}

// Purchase debits amount from the card. The card must exist, be activated,
// not be expired and not be blocked; the password must match and the balance
// must cover the amount.
func (s *PurchaseService) Purchase(cardID int64, password string, amount int) error {
	card, err := s.cardSvc.ensureCardExists(cardID)
	if err != nil {
		return err
	}
	if err := ensureCardIsActive(card); err != nil {
		return err
	}
	if err := ensureCardIsNotExpired(card); err != nil {
		return err
	}
	if err := ensureCardIsNotBlocked(card); err != nil {
		return err
	}
	if !s.hasher.Compare(password, *card.Password) {
		return apperr.Unauthorized("Password")
	}

	statement, err := s.cardSvc.CalculateBalance(cardID)
	if err != nil {
		return err
	}
	if err := ensureCardHasBalance(statement, amount); err != nil {
		return err
	}

	purchase := &models.Purchase{CardID: cardID, Amount: amount}
	if _, err := s.purchases.Insert(purchase); err != nil {
		return fmt.Errorf("failed to record purchase: %w", err)
	}

	s.log.Infof("Card %d debited: %d", cardID, amount)
	return nil
}
