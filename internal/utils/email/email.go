package email

import (
	"fmt"
	"net/smtp"

	"github.com/benefix/card-service/internal/config"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendExpiryReminder notifies an employee that a benefits card expires soon
func (s *Sender) SendExpiryReminder(to, fullName, cardType, expirationDate string) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Your benefits card is about to expire"

	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your %s benefits card expires on %s.\n"+
			"Please contact your company's benefits administrator to request a replacement.\n"+
			"\nBest regards,\nBenefits Card Service",
		fullName, cardType, expirationDate,
	)
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
