package repositories

import (
	"sync"

	"github.com/mkowalczyk/kantor/internal/models"
)

// BalanceRepository is the in-memory store of per-currency balances.
// All state lives here for the lifetime of the process; there is no
// persistence, and a restart resets the wallet.
type BalanceRepository struct {
	mu       sync.RWMutex
	balances map[string]float64
}

// NewBalanceRepository creates a store seeded with the given balances.
// A nil map starts the wallet empty.
func NewBalanceRepository(initial map[string]float64) *BalanceRepository {
	balances := make(map[string]float64, len(initial))
	for currency, amount := range initial {
		balances[currency] = models.Round2(amount)
	}
	return &BalanceRepository{balances: balances}
}

// Get returns the balance for a currency, 0 if the currency was never seen.
func (r *BalanceRepository) Get(currency string) float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.balances[currency]
}

// All returns a copy of every balance keyed by currency code.
func (r *BalanceRepository) All() map[string]float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]float64, len(r.balances))
	for currency, amount := range r.balances {
		out[currency] = amount
	}
	return out
}

// Add applies a signed delta to a currency balance, initializing an unseen
// currency at 0 first. The result is rounded to 2 decimals and returned.
// Add never rejects a negative result; validation is the ledger's job, and
// rollbacks must always apply.
func (r *BalanceRepository) Add(currency string, delta float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := models.Round2(r.balances[currency] + delta)
	r.balances[currency] = next
	return next
}
