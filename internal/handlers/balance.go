package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// BalancesReader defines the interface that the wallet service must implement.
type BalancesReader interface {
	Balances() map[string]float64
}

// BalanceResponse represents a successful response with all balances
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Balances keyed by currency code
	Balance map[string]float64 `json:"balance"`
}

// NewGetBalanceHandler returns an HTTP handler for fetching all balances.
// @Summary Get balances
// @Description Returns the balance of every currency held in the wallet
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.BalanceResponse
// @Router /balance [get]
func NewGetBalanceHandler(svc BalancesReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BalanceResponse{Balance: svc.Balances()})
	}
}

// RegisterGetBalanceHandler registers the balance route.
func RegisterGetBalanceHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/balance", h)
}
