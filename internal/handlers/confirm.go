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

// Confirmer resolves a pending operation to its terminal action.
type Confirmer interface {
	Confirm(ctx context.Context, id string) (*models.Transaction, error)
	Cancel(id string) error
}

// ConfirmBalancesReader returns all balances after a confirmed commit.
type ConfirmBalancesReader interface {
	Balances() map[string]float64
}

// ConfirmResponse represents a confirmed and committed operation
// swagger:model ConfirmResponse
type ConfirmResponse struct {
	// Success message
	// default: Transaction confirmed
	Message string `json:"message"`

	// The committed transaction
	Transaction *models.Transaction `json:"transaction"`

	// New balances keyed by currency code
	NewBalance map[string]float64 `json:"new_balance"`
}

// ConfirmErrorResponse represents an error response for confirm/cancel
// swagger:model ConfirmErrorResponse
type ConfirmErrorResponse struct {
	// Error message
	// default: Confirmation not found or expired
	Error string `json:"error"`
}

// CancelResponse represents a cancelled pending operation
// swagger:model CancelResponse
type CancelResponse struct {
	// Success message
	// default: Transaction cancelled
	Message string `json:"message"`
}

// NewConfirmHandler commits a pending withdrawal or exchange. The ledger's
// validation runs at this point, so a confirm can still fail with
// insufficient funds or a missing rate.
// @Summary Confirm a pending operation
// @Description Commit a previously staged withdrawal or exchange. Unknown or expired confirmations return 404.
// @Tags wallet
// @Produce json
// @Param id path string true "Confirmation ID"
// @Success 200 {object} handlers.ConfirmResponse "Transaction confirmed"
// @Failure 400 {object} handlers.ConfirmErrorResponse "Rejected by the ledger"
// @Failure 404 {object} handlers.ConfirmErrorResponse "Confirmation not found or expired"
// @Router /wallet/confirm/{id} [post]
func NewConfirmHandler(confirmations Confirmer, balances ConfirmBalancesReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		tx, err := confirmations.Confirm(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrConfirmationNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ConfirmErrorResponse{Error: "Confirmation not found or expired"})
			case errors.Is(err, services.ErrInsufficientFunds):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ConfirmErrorResponse{Error: "Insufficient funds"})
			case errors.Is(err, services.ErrNoRateAvailable):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ConfirmErrorResponse{Error: "No rate available"})
			case errors.Is(err, services.ErrInvalidAmount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ConfirmErrorResponse{Error: "Invalid amount"})
			default:
				logger.Log.Errorw("failed to confirm operation", "confirmation_id", id, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ConfirmErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ConfirmResponse{
			Message:     "Transaction confirmed",
			Transaction: tx,
			NewBalance:  balances.Balances(),
		})
	}
}

// NewCancelHandler discards a pending withdrawal or exchange.
// @Summary Cancel a pending operation
// @Description Discard a previously staged withdrawal or exchange without committing it.
// @Tags wallet
// @Produce json
// @Param id path string true "Confirmation ID"
// @Success 200 {object} handlers.CancelResponse "Transaction cancelled"
// @Failure 404 {object} handlers.ConfirmErrorResponse "Confirmation not found or expired"
// @Router /wallet/cancel/{id} [post]
func NewCancelHandler(confirmations Confirmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := confirmations.Cancel(id); err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ConfirmErrorResponse{Error: "Confirmation not found or expired"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CancelResponse{Message: "Transaction cancelled"})
	}
}

// RegisterConfirmHandlers registers the confirm and cancel routes.
func RegisterConfirmHandlers(r chi.Router, confirm, cancel http.HandlerFunc) {
	r.Post("/wallet/confirm/{id}", confirm)
	r.Post("/wallet/cancel/{id}", cancel)
}
