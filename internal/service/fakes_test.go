package service

import (
	"fmt"

	"github.com/benefix/card-service/internal/models"
)

// In-memory collaborators for exercising the services without a store.

type fakeCardRepo struct {
	cards  map[int64]*models.Card
	nextID int64
}

func newFakeCardRepo() *fakeCardRepo {
	return &fakeCardRepo{cards: make(map[int64]*models.Card), nextID: 1}
}

func (r *fakeCardRepo) Insert(card *models.Card) (int64, error) {
	card.ID = r.nextID
	r.nextID++
	stored := *card
	r.cards[card.ID] = &stored
	return card.ID, nil
}

func (r *fakeCardRepo) FindByID(id int64) (*models.Card, error) {
	card, ok := r.cards[id]
	if !ok {
		return nil, nil
	}
	copied := *card
	return &copied, nil
}

func (r *fakeCardRepo) FindByDetails(number, cardholderName, expirationDate string) (*models.Card, error) {
	for _, card := range r.cards {
		if card.Number == number && card.CardholderName == cardholderName && card.ExpirationDate == expirationDate {
			copied := *card
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeCardRepo) FindByTypeAndEmployeeID(cardType models.CardType, employeeID int64) (*models.Card, error) {
	for _, card := range r.cards {
		if card.Type == cardType && card.EmployeeID == employeeID {
			copied := *card
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeCardRepo) FindByExpirationDate(expirationDate string) ([]models.Card, error) {
	var cards []models.Card
	for _, card := range r.cards {
		if card.ExpirationDate == expirationDate {
			cards = append(cards, *card)
		}
	}
	return cards, nil
}

func (r *fakeCardRepo) UpdatePassword(id int64, passwordHash string) error {
	card, ok := r.cards[id]
	if !ok {
		return fmt.Errorf("card %d not found", id)
	}
	card.Password = &passwordHash
	return nil
}

func (r *fakeCardRepo) add(card models.Card) int64 {
	card.ID = r.nextID
	r.nextID++
	r.cards[card.ID] = &card
	return card.ID
}

type fakeRechargeRepo struct {
	entries []models.Recharge
}

func (r *fakeRechargeRepo) Insert(recharge *models.Recharge) (int64, error) {
	recharge.ID = int64(len(r.entries) + 1)
	r.entries = append(r.entries, *recharge)
	return recharge.ID, nil
}

func (r *fakeRechargeRepo) FindByCardID(cardID int64) ([]models.Recharge, error) {
	var out []models.Recharge
	for _, entry := range r.entries {
		if entry.CardID == cardID {
			out = append(out, entry)
		}
	}
	return out, nil
}

type fakePurchaseRepo struct {
	entries []models.Purchase
}

func (r *fakePurchaseRepo) Insert(purchase *models.Purchase) (int64, error) {
	purchase.ID = int64(len(r.entries) + 1)
	r.entries = append(r.entries, *purchase)
	return purchase.ID, nil
}

func (r *fakePurchaseRepo) FindByCardID(cardID int64) ([]models.Purchase, error) {
	var out []models.Purchase
	for _, entry := range r.entries {
		if entry.CardID == cardID {
			out = append(out, entry)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[int64]*models.Employee
}

func (r *fakeEmployeeRepo) FindByID(id int64) (*models.Employee, error) {
	return r.employees[id], nil
}

type fakeCompanyRepo struct {
	companies map[string]*models.Company
}

func (r *fakeCompanyRepo) FindByAPIKey(apiKey string) (*models.Company, error) {
	return r.companies[apiKey], nil
}

// fakeHasher marks digests deterministically so tests stay fast.
type fakeHasher struct{}

func (fakeHasher) Hash(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func (fakeHasher) Compare(plaintext, digest string) bool {
	return digest == "hashed:"+plaintext
}

type fakeGenerator struct{}

func (fakeGenerator) CardNumber() (string, error) {
	return "5234-1234-5678-9012", nil
}

func (fakeGenerator) SecurityCode() (string, error) {
	return "123", nil
}
