package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/mkowalczyk/kantor/internal/logger"
	"github.com/mkowalczyk/kantor/internal/models"
)

// RateMode selects how the live table evolves while the service runs.
type RateMode string

const (
	// RateModeDrift advances the table with the random-walk simulator on a
	// short fixed interval.
	RateModeDrift RateMode = "drift"
	// RateModeFeed re-fetches the external feed on a longer interval
	// instead of drifting.
	RateModeFeed RateMode = "feed"
)

// Default intervals for the two rate modes.
const (
	DefaultDriftInterval = 500 * time.Millisecond
	DefaultFeedInterval  = 30 * time.Second
)

// UpdateKind tags what changed in an Update event.
type UpdateKind string

const (
	UpdateRates    UpdateKind = "rates"
	UpdateBalances UpdateKind = "balances"
)

// Update is pushed to subscribers whenever the wallet state changes.
type Update struct {
	Kind       UpdateKind
	LastUpdate int64
}

// BalanceReader exposes read access to balances.
type BalanceReader interface {
	Get(currency string) float64
	All() map[string]float64
}

// TransactionLogReader exposes read access to the transaction history.
type TransactionLogReader interface {
	Latest() (models.Transaction, bool)
	All() []models.Transaction
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// WalletService is the single aggregate handed to every consumer: balances,
// the live rate table, the transaction history, and the mutating operations.
// It re-exposes the ledger's operations with no additional validation, swaps
// in a fresh rate table on every simulator tick, and notifies subscribers.
type WalletService struct {
	ledger   *Ledger
	balances BalanceReader
	txLog    TransactionLogReader
	sim      *RateSimulator
	feed     RatesFeed
	mode     RateMode
	interval time.Duration

	kafkaWriter KafkaWriter

	mu         sync.RWMutex
	rates      models.RateTable
	prevRates  models.RateTable
	lastUpdate time.Time

	subMu   sync.Mutex
	subs    map[int]chan Update
	nextSub int
}

// NewWalletService wires the facade. The initial table becomes both the
// first live table and the previous-tick reference for delta views. The
// kafka writer and feed may be nil.
func NewWalletService(
	ledger *Ledger,
	balances BalanceReader,
	txLog TransactionLogReader,
	sim *RateSimulator,
	feed RatesFeed,
	mode RateMode,
	interval time.Duration,
	initial models.RateTable,
	kafkaWriter KafkaWriter,
) *WalletService {
	if interval <= 0 {
		if mode == RateModeFeed {
			interval = DefaultFeedInterval
		} else {
			interval = DefaultDriftInterval
		}
	}
	return &WalletService{
		ledger:      ledger,
		balances:    balances,
		txLog:       txLog,
		sim:         sim,
		feed:        feed,
		mode:        mode,
		interval:    interval,
		kafkaWriter: kafkaWriter,
		rates:       initial.Clone(),
		prevRates:   initial.Clone(),
		lastUpdate:  time.Now(),
		subs:        make(map[int]chan Update),
	}
}

// Run advances the rate table on a fixed interval until the context is
// cancelled. In drift mode each tick applies the simulator's random walk;
// in feed mode each tick re-fetches the external feed and keeps the current
// table when the fetch fails.
func (s *WalletService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.advance(ctx)
		}
	}
}

// advance computes and swaps in the next rate table as one atomic update.
func (s *WalletService) advance(ctx context.Context) {
	var next models.RateTable

	switch {
	case s.mode == RateModeFeed && s.feed == nil:
		// feed mode without a feed would be a nil interface call
		logger.Log.Warnw("feed mode without a configured feed, drifting instead")
		next = s.sim.Tick(s.Rates())
	case s.mode == RateModeFeed:
		rates, err := s.feed.GetRates(ctx)
		if err != nil {
			logger.Log.Warnw("feed poll failed, keeping current rates", "error", err)
			return
		}
		next = rates
	default:
		next = s.sim.Tick(s.Rates())
	}

	s.mu.Lock()
	s.prevRates = s.rates
	s.rates = next
	s.lastUpdate = time.Now()
	last := s.lastUpdate
	s.mu.Unlock()

	s.notify(Update{Kind: UpdateRates, LastUpdate: last.Unix()})
}

// Deposit delegates to the ledger and publishes the committed transaction.
func (s *WalletService) Deposit(ctx context.Context, currency string, amount float64) (*models.Transaction, error) {
	tx, err := s.ledger.Deposit(currency, amount)
	if err != nil {
		return nil, err
	}
	s.afterCommit(ctx, tx)
	return tx, nil
}

// Withdraw delegates to the ledger and publishes the committed transaction.
func (s *WalletService) Withdraw(ctx context.Context, currency string, amount float64) (*models.Transaction, error) {
	tx, err := s.ledger.Withdraw(currency, amount)
	if err != nil {
		return nil, err
	}
	s.afterCommit(ctx, tx)
	return tx, nil
}

// Exchange delegates to the ledger and publishes the committed transaction.
func (s *WalletService) Exchange(ctx context.Context, from, to string, amount float64) (*models.Transaction, error) {
	tx, err := s.ledger.Exchange(from, to, amount)
	if err != nil {
		return nil, err
	}
	s.afterCommit(ctx, tx)
	return tx, nil
}

// Rollback reverses a committed transaction's balance effect.
func (s *WalletService) Rollback(ctx context.Context, tx *models.Transaction) {
	s.ledger.Rollback(tx)
	s.notify(Update{Kind: UpdateBalances, LastUpdate: s.LastUpdate().Unix()})
}

// Balances returns a copy of all balances keyed by currency code.
func (s *WalletService) Balances() map[string]float64 {
	return s.balances.All()
}

// Balance returns the balance of one currency, 0 if unseen.
func (s *WalletService) Balance(currency string) float64 {
	return s.balances.Get(currency)
}

// Rates returns a copy of the live rate table.
func (s *WalletService) Rates() models.RateTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rates.Clone()
}

// Snapshot returns the live table together with per-currency deltas against
// the previous tick and the last update time, as one consistent view.
func (s *WalletService) Snapshot() models.RatesSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	changes := make(models.RateTable, len(s.rates))
	for code, rate := range s.rates {
		prev, ok := s.prevRates[code]
		if !ok {
			// a currency the previous table never priced has no delta
			changes[code] = 0
			continue
		}
		changes[code] = models.Round4(rate - prev)
	}

	return models.RatesSnapshot{
		Rates:      s.rates.Clone(),
		Changes:    changes,
		LastUpdate: s.lastUpdate.Unix(),
	}
}

// Transactions returns the history, newest first.
func (s *WalletService) Transactions() []models.Transaction {
	return s.txLog.All()
}

// LastUpdate returns when the rate table was last replaced.
func (s *WalletService) LastUpdate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdate
}

// Subscribe registers a consumer for state-change events. It returns the
// event channel and an unsubscribe func. Events are delivered best-effort:
// a subscriber that stops draining its buffer misses updates rather than
// blocking wallet operations.
func (s *WalletService) Subscribe() (<-chan Update, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan Update, 16)
	s.subs[id] = ch

	cancel := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// notify pushes an update to every subscriber without blocking.
func (s *WalletService) notify(u Update) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for _, ch := range s.subs {
		select {
		case ch <- u:
		default:
		}
	}
}

// afterCommit publishes the transaction and notifies subscribers of the
// balance change.
func (s *WalletService) afterCommit(ctx context.Context, tx *models.Transaction) {
	s.publishTransaction(ctx, *tx)
	s.notify(Update{Kind: UpdateBalances, LastUpdate: s.LastUpdate().Unix()})
}

// publishTransaction publishes a committed transaction to Kafka. A nil
// writer disables publishing.
func (s *WalletService) publishTransaction(ctx context.Context, tx models.Transaction) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "transaction_id", tx.TransactionID)
		return
	}

	data, err := json.Marshal(tx)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", tx.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(tx.TransactionID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", tx.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", tx.TransactionID, "amount", tx.Amount)
	}
}
