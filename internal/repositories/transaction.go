package repositories

import (
	"sync"

	"github.com/mkowalczyk/kantor/internal/models"
)

// DefaultLogCapacity is how many transactions the history keeps.
const DefaultLogCapacity = 20

// TransactionLogRepository is an append-only, bounded, newest-first history
// of committed transactions. When the log exceeds its capacity the oldest
// entries are evicted. There is no removal API beyond eviction.
type TransactionLogRepository struct {
	mu       sync.RWMutex
	capacity int
	items    []models.Transaction
}

// NewTransactionLogRepository creates a log bounded to the given capacity.
// Non-positive capacity falls back to DefaultLogCapacity.
func NewTransactionLogRepository(capacity int) *TransactionLogRepository {
	if capacity <= 0 {
		capacity = DefaultLogCapacity
	}
	return &TransactionLogRepository{
		capacity: capacity,
		items:    make([]models.Transaction, 0, capacity),
	}
}

// Append inserts a transaction at the front, evicting the oldest entries
// if the log would grow past its capacity.
func (r *TransactionLogRepository) Append(tx models.Transaction) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append([]models.Transaction{tx}, r.items...)
	if len(r.items) > r.capacity {
		r.items = r.items[:r.capacity]
	}
}

// Latest returns the most recent transaction, or false if the log is empty.
func (r *TransactionLogRepository) Latest() (models.Transaction, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.items) == 0 {
		return models.Transaction{}, false
	}
	return r.items[0], true
}

// All returns a copy of the history, newest first.
func (r *TransactionLogRepository) All() []models.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Transaction, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of stored transactions.
func (r *TransactionLogRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
