package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mkowalczyk/kantor/internal/logger"
	"github.com/mkowalczyk/kantor/internal/models"
)

// ErrConfirmationNotFound is returned when the referenced confirmation does
// not exist, already reached a terminal action, or timed out.
var ErrConfirmationNotFound = errors.New("confirmation not found or expired")

// DefaultConfirmationTTL is how long a pending operation waits for the user.
const DefaultConfirmationTTL = 15 * time.Second

// PendingOp is a wallet mutation held back until the user confirms.
type PendingOp func(ctx context.Context) (*models.Transaction, error)

type pendingConfirmation struct {
	op    PendingOp
	timer *time.Timer
}

// ConfirmationService gates mutating operations behind a time-boxed
// confirm/cancel window. The operation is committed only when the user
// confirms; cancel and timeout silently discard it, so the common path never
// needs a rollback. Each pending operation reaches exactly one terminal
// action: removal from the map under the mutex makes confirm, cancel and
// timeout mutually exclusive even when they race.
type ConfirmationService struct {
	mu      sync.Mutex
	ttl     time.Duration
	pending map[string]*pendingConfirmation
}

// NewConfirmationService creates a service with the given confirmation
// window. Non-positive ttl falls back to DefaultConfirmationTTL.
func NewConfirmationService(ttl time.Duration) *ConfirmationService {
	if ttl <= 0 {
		ttl = DefaultConfirmationTTL
	}
	return &ConfirmationService{
		ttl:     ttl,
		pending: make(map[string]*pendingConfirmation),
	}
}

// Begin registers an operation awaiting confirmation and returns its id and
// expiry. If no terminal action arrives before the expiry, the operation is
// discarded.
func (s *ConfirmationService) Begin(op PendingOp) (string, time.Time) {
	id := uuid.NewString()
	expiresAt := time.Now().Add(s.ttl)

	s.mu.Lock()
	p := &pendingConfirmation{op: op}
	p.timer = time.AfterFunc(s.ttl, func() { s.expire(id) })
	s.pending[id] = p
	s.mu.Unlock()

	logger.Log.Infow("operation awaiting confirmation", "confirmation_id", id, "expires_at", expiresAt)
	return id, expiresAt
}

// Confirm commits the pending operation. The operation's own validation
// still applies, so a confirm can fail with a ledger error.
func (s *ConfirmationService) Confirm(ctx context.Context, id string) (*models.Transaction, error) {
	p, ok := s.take(id)
	if !ok {
		return nil, ErrConfirmationNotFound
	}

	tx, err := p.op(ctx)
	if err != nil {
		logger.Log.Warnw("confirmed operation rejected by ledger", "confirmation_id", id, "error", err)
		return nil, err
	}

	logger.Log.Infow("operation confirmed", "confirmation_id", id, "transaction_id", tx.TransactionID)
	return tx, nil
}

// Cancel discards the pending operation without committing it.
func (s *ConfirmationService) Cancel(id string) error {
	if _, ok := s.take(id); !ok {
		return ErrConfirmationNotFound
	}
	logger.Log.Infow("operation cancelled", "confirmation_id", id)
	return nil
}

// expire is the timeout path; a pending operation that was already
// confirmed or cancelled is left alone.
func (s *ConfirmationService) expire(id string) {
	if _, ok := s.take(id); ok {
		logger.Log.Infow("operation expired without confirmation", "confirmation_id", id)
	}
}

// take removes and returns the pending operation, stopping its timer.
// Exactly one caller wins for any id.
func (s *ConfirmationService) take(id string) (*pendingConfirmation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[id]
	if !ok {
		return nil, false
	}
	delete(s.pending, id)
	p.timer.Stop()
	return p, true
}

// PendingCount reports how many operations are awaiting confirmation.
func (s *ConfirmationService) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
