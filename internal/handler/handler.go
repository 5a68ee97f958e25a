package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/benefix/card-service/internal/apperr"
	"github.com/benefix/card-service/internal/models"
	"github.com/benefix/card-service/internal/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

var kindToStatus = map[apperr.Kind]int{
	apperr.KindUnauthorized: http.StatusUnauthorized,
	apperr.KindForbidden:    http.StatusForbidden,
	apperr.KindNotFound:     http.StatusNotFound,
	apperr.KindConflict:     http.StatusConflict,
}

// Handler exposes the card, recharge and purchase flows over HTTP.
type Handler struct {
	cards     *service.CardService
	recharges *service.RechargeService
	purchases *service.PurchaseService
	log       *logrus.Logger
}

// NewHandler initializes the HTTP handler
func NewHandler(cards *service.CardService, recharges *service.RechargeService, purchases *service.PurchaseService, log *logrus.Logger) *Handler {
	return &Handler{cards: cards, recharges: recharges, purchases: purchases, log: log}
}

type createCardRequest struct {
	EmployeeID int64           `json:"employee_id"`
	Type       models.CardType `json:"type"`
}

type createCardResponse struct {
	CardID         int64           `json:"card_id"`
	Number         string          `json:"number"`
	CardholderName string          `json:"cardholder_name"`
	ExpirationDate string          `json:"expiration_date"`
	Type           models.CardType `json:"type"`
}

// CreateCard handles card creation for an employee
func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.EmployeeID <= 0 || !req.Type.Valid() {
		http.Error(w, "employee_id and a valid card type are required", http.StatusBadRequest)
		return
	}

	draft, err := h.cards.BuildCardData(req.Type, req.EmployeeID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	id, err := h.cards.CreateNewCard(draft)
	if err != nil {
		h.writeError(w, err)
		return
	}

	// The plaintext security code is not part of the response; delivery to
	// the employee is the issuing company's channel.
	writeJSON(w, http.StatusCreated, createCardResponse{
		CardID:         id,
		Number:         draft.Number,
		CardholderName: draft.CardholderName,
		ExpirationDate: draft.ExpirationDate,
		Type:           draft.Type,
	})
}

type activateCardRequest struct {
	SecurityCode string `json:"security_code"`
	Password     string `json:"password"`
}

// ActivateCard handles card activation
func (h *Handler) ActivateCard(w http.ResponseWriter, r *http.Request) {
	cardID, ok := cardIDFromPath(w, r)
	if !ok {
		return
	}

	var req activateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.SecurityCode == "" || req.Password == "" {
		http.Error(w, "security_code and password are required", http.StatusBadRequest)
		return
	}

	if err := h.cards.ActivateCard(cardID, req.SecurityCode, req.Password); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// GetBalance handles balance statement requests
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	cardID, ok := cardIDFromPath(w, r)
	if !ok {
		return
	}

	statement, err := h.cards.CalculateBalance(cardID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statement)
}

type amountRequest struct {
	Amount int `json:"amount"`
}

// Recharge handles card top-ups
func (h *Handler) Recharge(w http.ResponseWriter, r *http.Request) {
	cardID, ok := cardIDFromPath(w, r)
	if !ok {
		return
	}

	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Amount <= 0 {
		http.Error(w, "amount must be positive", http.StatusBadRequest)
		return
	}

	if err := h.recharges.RechargeCard(cardID, req.Amount); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

type purchaseRequest struct {
	Password string `json:"password"`
	Amount   int    `json:"amount"`
}

// Purchase handles card debits
func (h *Handler) Purchase(w http.ResponseWriter, r *http.Request) {
	cardID, ok := cardIDFromPath(w, r)
	if !ok {
		return
	}

	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Password == "" || req.Amount <= 0 {
		http.Error(w, "password and a positive amount are required", http.StatusBadRequest)
		return
	}

	if err := h.purchases.Purchase(cardID, req.Password, req.Amount); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// writeError maps typed failures to client-error status codes; anything else
// is an infrastructure error and surfaces as a 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		http.Error(w, appErr.Message, kindToStatus[appErr.Kind])
		return
	}
	h.log.Errorf("Unhandled error: %v", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func cardIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	cardID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || cardID <= 0 {
		http.Error(w, "invalid card id", http.StatusBadRequest)
		return 0, false
	}
	return cardID, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
