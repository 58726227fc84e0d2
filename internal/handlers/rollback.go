package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkowalczyk/kantor/internal/logger"
	"github.com/mkowalczyk/kantor/internal/models"
)

// Rollbacker defines the interface that the wallet service must implement.
type Rollbacker interface {
	Rollback(ctx context.Context, tx *models.Transaction)
}

// RollbackRequest carries the transaction record to reverse
// swagger:model RollbackRequest
type RollbackRequest struct {
	Transaction models.Transaction `json:"transaction"`
}

// RollbackResponse represents a completed rollback
// swagger:model RollbackResponse
type RollbackResponse struct {
	// Success message
	// default: Transaction rolled back
	Message string `json:"message"`

	// New balances keyed by currency code
	NewBalance map[string]float64 `json:"new_balance"`
}

// RollbackErrorResponse represents an error response for rollback
// swagger:model RollbackErrorResponse
type RollbackErrorResponse struct {
	// Error message
	// default: Invalid request body
	Error string `json:"error"`
}

// NewRollbackHandler reverses the balance effect of a committed
// transaction. Rollback is unconditional and leaves the history intact:
// the original record stays in the log, only balances are corrected.
// @Summary Roll back a transaction
// @Description Reverse the balance effect of a previously committed transaction. The historical record is not removed.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.RollbackRequest true "Rollback Request"
// @Success 200 {object} handlers.RollbackResponse "Transaction rolled back"
// @Failure 400 {object} handlers.RollbackErrorResponse "Invalid request body"
// @Router /wallet/rollback [post]
func NewRollbackHandler(svc Rollbacker, balances BalancesReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RollbackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Transaction.Type == "" {
			logger.Log.Errorw("failed to decode rollback request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RollbackErrorResponse{Error: "Invalid request body"})
			return
		}

		svc.Rollback(r.Context(), &req.Transaction)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RollbackResponse{
			Message:    "Transaction rolled back",
			NewBalance: balances.Balances(),
		})
	}
}

// RegisterRollbackHandler registers the rollback route.
func RegisterRollbackHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/wallet/rollback", h)
}
