package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkowalczyk/kantor/internal/logger"
	"github.com/mkowalczyk/kantor/internal/models"
	"github.com/mkowalczyk/kantor/internal/services"
)

// Depositor defines the interface that the wallet service must implement.
type Depositor interface {
	Deposit(ctx context.Context, currency string, amount float64) (*models.Transaction, error)
}

// DepositBalancesReader returns all balances after a deposit.
type DepositBalancesReader interface {
	Balances() map[string]float64
}

// DepositRequest represents the JSON body for depositing funds
// swagger:model DepositRequest
type DepositRequest struct {
	// Currency code
	// required: true
	// default: PLN
	Currency string `json:"currency"`

	// Amount to deposit
	// required: true
	// default: 100.0
	Amount float64 `json:"amount"`
}

// DepositResponse represents a successful deposit response
// swagger:model DepositResponse
type DepositResponse struct {
	// Success message
	// default: Account topped up successfully
	Message string `json:"message"`

	// The committed transaction
	Transaction *models.Transaction `json:"transaction"`

	// New balances keyed by currency code
	NewBalance map[string]float64 `json:"new_balance"`
}

// DepositErrorResponse represents an error response for deposit
// swagger:model DepositErrorResponse
type DepositErrorResponse struct {
	// Error message
	// default: Invalid amount
	Error string `json:"error"`
}

// NewDepositHandler returns an HTTP handler for depositing funds.
// Deposits commit immediately; only withdrawals and exchanges go through
// the confirmation window.
// @Summary Deposit funds
// @Description Add funds to a currency balance. An unseen currency is initialized at zero before the deposit is added.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.DepositRequest true "Deposit Request"
// @Success 200 {object} handlers.DepositResponse "Account topped up successfully"
// @Failure 400 {object} handlers.DepositErrorResponse "Invalid amount"
// @Router /wallet/deposit [post]
func NewDepositHandler(svc Depositor, balances DepositBalancesReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req DepositRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode deposit request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DepositErrorResponse{Error: "Invalid request body"})
			return
		}
		if req.Currency == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DepositErrorResponse{Error: "Invalid currency"})
			return
		}

		tx, err := svc.Deposit(ctx, req.Currency, req.Amount)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(DepositErrorResponse{Error: "Invalid amount"})
			default:
				logger.Log.Errorw("failed to deposit funds", "currency", req.Currency, "amount", req.Amount, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DepositErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DepositResponse{
			Message:     "Account topped up successfully",
			Transaction: tx,
			NewBalance:  balances.Balances(),
		})
	}
}

// RegisterDepositHandler registers the deposit route.
func RegisterDepositHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/wallet/deposit", h)
}
