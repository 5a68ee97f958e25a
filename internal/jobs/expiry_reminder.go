package jobs

import (
	"time"

	"github.com/benefix/card-service/internal/service"
	"github.com/sirupsen/logrus"
)

// MailSender delivers expiry reminders to employees.
type MailSender interface {
	SendExpiryReminder(to, fullName, cardType, expirationDate string) error
}

// ExpiryReminder is a scheduled sweep that mails employees whose cards expire
// in the current month. Failures are logged and never abort the sweep.
type ExpiryReminder struct {
	cards     service.CardRepository
	employees service.EmployeeRepository
	sender    MailSender
	log       *logrus.Logger
}

// NewExpiryReminder initializes the reminder job
func NewExpiryReminder(cards service.CardRepository, employees service.EmployeeRepository, sender MailSender, log *logrus.Logger) *ExpiryReminder {
	return &ExpiryReminder{cards: cards, employees: employees, sender: sender, log: log}
}

// Run mails one reminder per card expiring this month.
func (j *ExpiryReminder) Run() {
	expiration := time.Now().Format("01/06")
	cards, err := j.cards.FindByExpirationDate(expiration)
	if err != nil {
		j.log.Errorf("Expiry sweep failed: %v", err)
		return
	}

	sent := 0
	for _, card := range cards {
		employee, err := j.employees.FindByID(card.EmployeeID)
		if err != nil {
			j.log.Errorf("Expiry sweep: failed to look up employee %d: %v", card.EmployeeID, err)
			continue
		}
		if employee == nil || employee.Email == "" {
			continue
		}
		if err := j.sender.SendExpiryReminder(employee.Email, employee.FullName, string(card.Type), card.ExpirationDate); err != nil {
			continue
		}
		sent++
	}

	j.log.Infof("Expiry sweep for %s: %d cards, %d reminders sent", expiration, len(cards), sent)
}
