package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benefix/card-service/internal/apperr"
	"github.com/benefix/card-service/internal/models"
)

func newPurchaseFixture() (*PurchaseService, *cardServiceFixture) {
	f := newCardServiceFixture()
	return NewPurchaseService(f.svc, f.purchases, fakeHasher{}, testLogger()), f
}

func TestPurchase(t *testing.T) {
	svc, f := newPurchaseFixture()
	id := f.cards.add(activeCard(1))
	f.recharges.Insert(&models.Recharge{CardID: id, Amount: 100})

	require.NoError(t, svc.Purchase(id, "1234", 60))

	statement, err := f.svc.CalculateBalance(id)
	require.NoError(t, err)
	assert.Equal(t, 40, statement.Balance)
}

func TestPurchaseCardNotFound(t *testing.T) {
	svc, _ := newPurchaseFixture()

	err := svc.Purchase(42, "1234", 10)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindNotFound, appErr.Kind)
}

func TestPurchaseCardNotActiveForbidden(t *testing.T) {
	svc, f := newPurchaseFixture()
	card := activeCard(1)
	card.Password = nil
	id := f.cards.add(card)

	err := svc.Purchase(id, "1234", 10)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindForbidden, appErr.Kind)
}

func TestPurchaseBlockedCardForbidden(t *testing.T) {
	svc, f := newPurchaseFixture()
	card := activeCard(1)
	card.IsBlocked = true
	id := f.cards.add(card)
	f.recharges.Insert(&models.Recharge{CardID: id, Amount: 100})

	err := svc.Purchase(id, "1234", 10)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindForbidden, appErr.Kind)
}

func TestPurchaseWrongPasswordUnauthorized(t *testing.T) {
	svc, f := newPurchaseFixture()
	id := f.cards.add(activeCard(1))
	f.recharges.Insert(&models.Recharge{CardID: id, Amount: 100})

	err := svc.Purchase(id, "0000", 10)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindUnauthorized, appErr.Kind)
	assert.Contains(t, appErr.Message, "Password")
	assert.Empty(t, f.purchases.entries)
}

func TestPurchaseInsufficientBalanceForbidden(t *testing.T) {
	svc, f := newPurchaseFixture()
	id := f.cards.add(activeCard(1))
	f.recharges.Insert(&models.Recharge{CardID: id, Amount: 50})

	err := svc.Purchase(id, "1234", 60)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindForbidden, appErr.Kind)
	assert.Contains(t, appErr.Message, "Balance")
	assert.Empty(t, f.purchases.entries)
}

func TestPurchaseExactBalanceAllowed(t *testing.T) {
	svc, f := newPurchaseFixture()
	id := f.cards.add(activeCard(1))
	f.recharges.Insert(&models.Recharge{CardID: id, Amount: 50})

	require.NoError(t, svc.Purchase(id, "1234", 50))

	statement, err := f.svc.CalculateBalance(id)
	require.NoError(t, err)
	assert.Equal(t, 0, statement.Balance)
}
