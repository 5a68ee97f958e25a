package service

import (
	"fmt"

	"github.com/benefix/card-service/internal/models"
	"github.com/sirupsen/logrus"
)

// RechargeService appends credit entries to a card's ledger.
type RechargeService struct {
	cardSvc   *CardService
	recharges RechargeRepository
	log       *logrus.Logger
}

// NewRechargeService initializes the recharge service.
func NewRechargeService(cardSvc *CardService, recharges RechargeRepository, log *logrus.Logger) *RechargeService {
	return &RechargeService{cardSvc: cardSvc, recharges: recharges, log: log}
}

// RechargeCard credits amount onto the card. The card must exist, be
// activated and not be expired.
func (s *RechargeService) RechargeCard(cardID int64, amount int) error {
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

	recharge := &models.Recharge{CardID: cardID, Amount: amount}
	if _, err := s.recharges.Insert(recharge); err != nil {
		return fmt.Errorf("failed to record recharge: %w", err)
	}

	s.log.Infof("Card %d recharged: %d", cardID, amount)
	return nil
}
