package jobs

import (
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/benefix/card-service/internal/models"
)

type stubCardRepo struct {
	byExpiration map[string][]models.Card
}

func (r *stubCardRepo) Insert(card *models.Card) (int64, error) { return 0, nil }
func (r *stubCardRepo) FindByID(id int64) (*models.Card, error) { return nil, nil }
func (r *stubCardRepo) FindByDetails(number, cardholderName, expirationDate string) (*models.Card, error) {
	return nil, nil
}
func (r *stubCardRepo) FindByTypeAndEmployeeID(cardType models.CardType, employeeID int64) (*models.Card, error) {
	return nil, nil
}
func (r *stubCardRepo) FindByExpirationDate(expirationDate string) ([]models.Card, error) {
	return r.byExpiration[expirationDate], nil
}
func (r *stubCardRepo) UpdatePassword(id int64, passwordHash string) error { return nil }

type stubEmployeeRepo struct{ employees map[int64]*models.Employee }

func (r *stubEmployeeRepo) FindByID(id int64) (*models.Employee, error) {
	return r.employees[id], nil
}

type recordingSender struct {
	sent []string
	err  error
}

func (s *recordingSender) SendExpiryReminder(to, fullName, cardType, expirationDate string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, fmt.Sprintf("%s:%s", to, expirationDate))
	return nil
}

func TestExpiryReminderRun(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	thisMonth := time.Now().Format("01/06")

	cards := &stubCardRepo{byExpiration: map[string][]models.Card{
		thisMonth: {
			{ID: 1, EmployeeID: 1, Type: models.TypeGroceries, ExpirationDate: thisMonth},
			{ID: 2, EmployeeID: 2, Type: models.TypeHealth, ExpirationDate: thisMonth},
			{ID: 3, EmployeeID: 9, Type: models.TypeHealth, ExpirationDate: thisMonth}, // unknown employee
		},
	}}
	employees := &stubEmployeeRepo{employees: map[int64]*models.Employee{
		1: {ID: 1, FullName: "Ana Maria Souza Oliveira", Email: "ana@acme.example"},
		2: {ID: 2, FullName: "Bruno Lima", Email: ""}, // no address on file
	}}
	sender := &recordingSender{}

	NewExpiryReminder(cards, employees, sender, logger).Run()

	assert.Equal(t, []string{"ana@acme.example:" + thisMonth}, sender.sent)
}

func TestExpiryReminderSendFailureDoesNotAbort(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	thisMonth := time.Now().Format("01/06")

	cards := &stubCardRepo{byExpiration: map[string][]models.Card{
		thisMonth: {{ID: 1, EmployeeID: 1, ExpirationDate: thisMonth}},
	}}
	employees := &stubEmployeeRepo{employees: map[int64]*models.Employee{
		1: {ID: 1, FullName: "Ana", Email: "ana@acme.example"},
	}}
	sender := &recordingSender{err: errors.New("smtp down")}

	// Must not panic or abort; errors are swallowed after logging.
	NewExpiryReminder(cards, employees, sender, logger).Run()
	assert.Empty(t, sender.sent)
}
