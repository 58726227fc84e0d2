package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mkowalczyk/kantor/internal/logger"
	"github.com/mkowalczyk/kantor/internal/models"
	"github.com/mkowalczyk/kantor/internal/services"
)

// Withdrawer defines the interface that the wallet service must implement.
type Withdrawer interface {
	Withdraw(ctx context.Context, currency string, amount float64) (*models.Transaction, error)
}

// WithdrawBalanceReader reads a single currency balance, used to reject
// over-balance requests up front and to offer the "withdraw all" amount.
type WithdrawBalanceReader interface {
	Balance(currency string) float64
}

// ConfirmationStarter registers a pending operation awaiting confirmation.
type ConfirmationStarter interface {
	Begin(op services.PendingOp) (string, time.Time)
}

// WithdrawRequest represents the JSON body for withdrawing funds
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Currency code
	// required: true
	// default: PLN
	Currency string `json:"currency"`

	// Amount to withdraw
	// required: true
	// default: 50.0
	Amount float64 `json:"amount"`
}

// WithdrawPendingResponse represents a withdrawal awaiting confirmation
// swagger:model WithdrawPendingResponse
type WithdrawPendingResponse struct {
	// Status message
	// default: Confirmation required
	Message string `json:"message"`

	// Identifier to pass to the confirm/cancel endpoints
	ConfirmationID string `json:"confirmation_id"`

	// When the pending withdrawal expires
	ExpiresAt int64 `json:"expires_at"`
}

// WithdrawErrorResponse represents an error response for withdrawal
// swagger:model WithdrawErrorResponse
type WithdrawErrorResponse struct {
	// Error message
	// default: Insufficient funds
	Error string `json:"error"`

	// Currently available balance, set on insufficient funds so the
	// caller can resubmit with the full amount
	Available float64 `json:"available,omitempty"`
}

// NewWithdrawHandler returns an HTTP handler that stages a withdrawal
// behind the confirmation window. Nothing is committed until the user
// confirms; cancel or timeout discards the request silently.
// @Summary Withdraw funds
// @Description Stage a withdrawal pending user confirmation. Requests over the available balance are rejected with the available amount.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.WithdrawRequest true "Withdraw Request"
// @Success 202 {object} handlers.WithdrawPendingResponse "Confirmation required"
// @Failure 400 {object} handlers.WithdrawErrorResponse "Invalid amount or insufficient funds"
// @Router /wallet/withdraw [post]
func NewWithdrawHandler(
	svc Withdrawer,
	balances WithdrawBalanceReader,
	confirmations ConfirmationStarter,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req WithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode withdraw request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Invalid request body"})
			return
		}
		if req.Currency == "" || req.Amount <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WithdrawErrorResponse{Error: "Invalid amount or currency"})
			return
		}

		if available := balances.Balance(req.Currency); req.Amount > available {
			logger.Log.Warnw("withdrawal over available balance", "currency", req.Currency, "amount", req.Amount, "available", available)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WithdrawErrorResponse{
				Error:     "Insufficient funds",
				Available: available,
			})
			return
		}

		currency, amount := req.Currency, req.Amount
		id, expiresAt := confirmations.Begin(func(ctx context.Context) (*models.Transaction, error) {
			return svc.Withdraw(ctx, currency, amount)
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(WithdrawPendingResponse{
			Message:        "Confirmation required",
			ConfirmationID: id,
			ExpiresAt:      expiresAt.Unix(),
		})
	}
}

// RegisterWithdrawHandler registers the withdraw route.
func RegisterWithdrawHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/wallet/withdraw", h)
}
