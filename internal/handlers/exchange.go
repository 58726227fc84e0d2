package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkowalczyk/kantor/internal/logger"
	"github.com/mkowalczyk/kantor/internal/models"
)

// Exchanger defines the interface that the wallet service must implement.
type Exchanger interface {
	Exchange(ctx context.Context, from, to string, amount float64) (*models.Transaction, error)
}

// ExchangeRequest represents the JSON body for currency exchange
// swagger:model ExchangeRequest
type ExchangeRequest struct {
	// Source currency
	// required: true
	// default: PLN
	FromCurrency string `json:"from_currency"`

	// Target currency
	// required: true
	// default: USD
	ToCurrency string `json:"to_currency"`

	// Amount to exchange; requests over the available balance are clamped
	// down to it at commit time
	// required: true
	// default: 100.0
	Amount float64 `json:"amount"`
}

// ExchangePendingResponse represents an exchange awaiting confirmation
// swagger:model ExchangePendingResponse
type ExchangePendingResponse struct {
	// Status message
	// default: Confirmation required
	Message string `json:"message"`

	// Identifier to pass to the confirm/cancel endpoints
	ConfirmationID string `json:"confirmation_id"`

	// When the pending exchange expires
	ExpiresAt int64 `json:"expires_at"`
}

// ExchangeErrorResponse represents an error response for currency exchange
// swagger:model ExchangeErrorResponse
type ExchangeErrorResponse struct {
	// Error message
	// default: Invalid amount or currencies
	Error string `json:"error"`
}

// NewExchangeHandler returns an HTTP handler that stages an exchange behind
// the confirmation window. Rate resolution and clamping happen at commit
// time against the frozen reference table.
// @Summary Exchange currency
// @Description Stage a currency exchange pending user confirmation. Settlement uses the reference rate table captured at startup.
// @Tags exchange
// @Accept json
// @Produce json
// @Param request body handlers.ExchangeRequest true "Exchange Request"
// @Success 202 {object} handlers.ExchangePendingResponse "Confirmation required"
// @Failure 400 {object} handlers.ExchangeErrorResponse "Invalid amount or currencies"
// @Router /exchange [post]
func NewExchangeHandler(svc Exchanger, confirmations ConfirmationStarter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ExchangeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode exchange request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ExchangeErrorResponse{Error: "Invalid request body"})
			return
		}
		if req.FromCurrency == "" || req.ToCurrency == "" || req.Amount <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ExchangeErrorResponse{Error: "Invalid amount or currencies"})
			return
		}

		from, to, amount := req.FromCurrency, req.ToCurrency, req.Amount
		id, expiresAt := confirmations.Begin(func(ctx context.Context) (*models.Transaction, error) {
			return svc.Exchange(ctx, from, to, amount)
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(ExchangePendingResponse{
			Message:        "Confirmation required",
			ConfirmationID: id,
			ExpiresAt:      expiresAt.Unix(),
		})
	}
}

// RegisterExchangeHandler registers the exchange route.
func RegisterExchangeHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/exchange", h)
}
