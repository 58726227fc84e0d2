package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkowalczyk/kantor/internal/models"
)

// TransactionsReader defines the interface that the wallet service must implement.
type TransactionsReader interface {
	Transactions() []models.Transaction
}

// TransactionsResponse represents the transaction history, newest first
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
}

// NewGetTransactionsHandler returns an HTTP handler for the bounded
// transaction history.
// @Summary Get transaction history
// @Description Returns the most recent transactions, newest first. The history is bounded; older entries are evicted.
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.TransactionsResponse
// @Router /transactions [get]
func NewGetTransactionsHandler(svc TransactionsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TransactionsResponse{Transactions: svc.Transactions()})
	}
}

// RegisterGetTransactionsHandler registers the transactions route.
func RegisterGetTransactionsHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/transactions", h)
}
