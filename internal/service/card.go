package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/benefix/card-service/internal/apperr"
	"github.com/benefix/card-service/internal/models"
	"github.com/sirupsen/logrus"
)

const expirationLayout = "01/06" // MM/YY

// cardValidityYears is the fixed horizon between issuance and expiration.
const cardValidityYears = 5

// Statement is the derived balance of a card alongside both ledgers.
type Statement struct {
	Balance      int               `json:"balance"`
	Transactions []models.Purchase `json:"transactions"`
	Recharges    []models.Recharge `json:"recharges"`
}

// CardService orchestrates card creation, activation and balance computation.
type CardService struct {
	cards     CardRepository
	recharges RechargeRepository
	purchases PurchaseRepository
	employees EmployeeRepository
	hasher    Hasher
	gen       CardGenerator
	log       *logrus.Logger
}

// NewCardService initializes the card service with its collaborators.
func NewCardService(
	cards CardRepository,
	recharges RechargeRepository,
	purchases PurchaseRepository,
	employees EmployeeRepository,
	hasher Hasher,
	gen CardGenerator,
	log *logrus.Logger,
) *CardService {
	return &CardService{
		cards:     cards,
		recharges: recharges,
		purchases: purchases,
		employees: employees,
		hasher:    hasher,
		gen:       gen,
		log:       log,
	}
}

// BuildCardData assembles an unsaved card draft for the given employee and
// spending category. The draft's SecurityCode is still plaintext; CreateNewCard
// hashes it before anything is persisted.
func (s *CardService) BuildCardData(cardType models.CardType, employeeID int64) (*models.Card, error) {
	employee, err := s.employees.FindByID(employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up employee: %w", err)
	}
	if employee == nil {
		return nil, apperr.NotFound("Employee")
	}

	existing, err := s.cards.FindByTypeAndEmployeeID(cardType, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing card: %w", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("Card")
	}

	number, err := s.gen.CardNumber()
	if err != nil {
		return nil, err
	}
	securityCode, err := s.gen.SecurityCode()
	if err != nil {
		return nil, err
	}

	return &models.Card{
		EmployeeID:     employeeID,
		Number:         number,
		CardholderName: CardholderName(employee.FullName),
		SecurityCode:   securityCode,
		ExpirationDate: time.Now().AddDate(cardValidityYears, 0, 0).Format(expirationLayout),
		IsVirtual:      false,
		IsBlocked:      false,
		Type:           cardType,
	}, nil
}

// CreateNewCard hashes the draft's security code and persists the card,
// returning the new id. The plaintext code does not survive this call.
func (s *CardService) CreateNewCard(draft *models.Card) (int64, error) {
	codeHash, err := s.hasher.Hash(draft.SecurityCode)
	if err != nil {
		return 0, err
	}
	draft.SecurityCode = codeHash

	id, err := s.cards.Insert(draft)
	if err != nil {
		return 0, fmt.Errorf("failed to create card: %w", err)
	}

	s.log.Infof("Card created for employee %d: %s", draft.EmployeeID, draft.Type)
	return id, nil
}

// ActivateCard sets the card's password after running the activation checks in
// order: the card exists, is not already active, is not expired, and the
// supplied security code matches. This is the only path that sets a password.
// The card's blocked flag is deliberately not consulted here.
func (s *CardService) ActivateCard(cardID int64, securityCode, password string) error {
	card, err := s.ensureCardExists(cardID)
	if err != nil {
		return err
	}
	if err := ensureCardIsNotActive(card); err != nil {
		return err
	}
	if err := ensureCardIsNotExpired(card); err != nil {
		return err
	}
	if err := s.ensureSecurityCodeIsValid(card, securityCode); err != nil {
		return err
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	if err := s.cards.UpdatePassword(cardID, passwordHash); err != nil {
		return fmt.Errorf("failed to activate card: %w", err)
	}

	s.log.Infof("Card %d activated", cardID)
	return nil
}

// CalculateBalance derives the card's balance from both ledgers. The returned
// lists are the fetched rows as-is, empty when the card has no history.
func (s *CardService) CalculateBalance(cardID int64) (*Statement, error) {
	if _, err := s.ensureCardExists(cardID); err != nil {
		return nil, err
	}

	recharges, err := s.recharges.FindByCardID(cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recharges: %w", err)
	}
	purchases, err := s.purchases.FindByCardID(cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch purchases: %w", err)
	}
	if recharges == nil {
		recharges = []models.Recharge{}
	}
	if purchases == nil {
		purchases = []models.Purchase{}
	}

	balance := 0
	for _, recharge := range recharges {
		balance += recharge.Amount
	}
	for _, purchase := range purchases {
		balance -= purchase.Amount
	}

	return &Statement{
		Balance:      balance,
		Transactions: purchases,
		Recharges:    recharges,
	}, nil
}

// FindByID returns the card with the given id, or nil if absent.
func (s *CardService) FindByID(id int64) (*models.Card, error) {
	return s.cards.FindByID(id)
}

// FindByDetails returns the card matching the number, cardholder name and
// expiration date triple, or nil if absent.
func (s *CardService) FindByDetails(number, cardholderName, expirationDate string) (*models.Card, error) {
	return s.cards.FindByDetails(number, cardholderName, expirationDate)
}

// FindByTypeAndEmployeeID returns the employee's card of the given category,
// or nil if absent.
func (s *CardService) FindByTypeAndEmployeeID(cardType models.CardType, employeeID int64) (*models.Card, error) {
	return s.cards.FindByTypeAndEmployeeID(cardType, employeeID)
}

// CardholderName derives the name embossed on the card. Names of more than two
// tokens keep the first and last token, collapse interior tokens of three or
// more characters to their initial, drop shorter ones, and uppercase the
// result. Names of two or fewer tokens pass through with their original case.
func CardholderName(fullName string) string {
	tokens := strings.Fields(fullName)
	if len(tokens) <= 2 {
		return fullName
	}

	parts := make([]string, 0, len(tokens))
	for i, token := range tokens {
		if i != 0 && i != len(tokens)-1 {
			runes := []rune(token)
			if len(runes) < 3 {
				continue
			}
			token = string(runes[:1])
		}
		parts = append(parts, token)
	}
	return strings.ToUpper(strings.Join(parts, " "))
}

// monthsUntilExpiration returns the whole-month difference between the card's
// MM/YY expiration and now. Negative means expired.
func monthsUntilExpiration(expirationDate string, now time.Time) (int, error) {
	expiration, err := time.Parse(expirationLayout, expirationDate)
	if err != nil {
		return 0, fmt.Errorf("invalid expiration date %q: %w", expirationDate, err)
	}
	return (expiration.Year()-now.Year())*12 + int(expiration.Month()) - int(now.Month()), nil
}
