package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mkowalczyk/kantor/internal/models"
)

// RatesReader defines the interface that the wallet service must implement.
type RatesReader interface {
	Snapshot() models.RatesSnapshot
}

// RatesResponse represents the live rate table with per-tick deltas
// swagger:model RatesResponse
type RatesResponse struct {
	// Rates as units of home currency per 1 unit of foreign currency
	Rates map[string]float64 `json:"rates"`

	// Delta against the previous tick per currency
	Changes map[string]float64 `json:"changes"`

	// Unix timestamp of the last table swap
	LastUpdate int64 `json:"last_update"`
}

// NewGetRatesHandler returns an HTTP handler for the live rate snapshot.
// @Summary Get exchange rates
// @Description Returns the live simulated rate table, the delta per currency since the previous tick, and the last update time
// @Tags exchange
// @Produce json
// @Success 200 {object} handlers.RatesResponse
// @Router /exchange/rates [get]
func NewGetRatesHandler(svc RatesReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := svc.Snapshot()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RatesResponse{
			Rates:      snap.Rates,
			Changes:    snap.Changes,
			LastUpdate: snap.LastUpdate,
		})
	}
}

// RegisterGetRatesHandler registers the rates route.
func RegisterGetRatesHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/exchange/rates", h)
}
