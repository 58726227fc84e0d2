package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mkowalczyk/kantor/internal/logger"
	"github.com/mkowalczyk/kantor/internal/models"
)

var (
	// ErrInvalidAmount is returned when an operation is requested with a
	// zero or negative amount.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds is returned when a withdrawal asks for more than
	// the available balance. The caller may resubmit with the available
	// amount; the ledger never clamps a withdrawal silently.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNoRateAvailable is returned when an exchange involves a currency
	// absent from the reference rate table.
	ErrNoRateAvailable = errors.New("no rate available")
)

// BalanceStore is the balance access the ledger needs.
type BalanceStore interface {
	Get(currency string) float64
	All() map[string]float64
	Add(currency string, delta float64) float64
}

// TransactionAppender records committed transactions.
type TransactionAppender interface {
	Append(tx models.Transaction)
}

// Ledger owns validated balance mutation. Every operation either commits
// fully (mutating balances and appending exactly one transaction) or is
// rejected before any mutation. Exchange settlement uses a reference rate
// table frozen at construction time: pricing deliberately does not track
// the live drifting table.
type Ledger struct {
	mu        sync.Mutex
	balances  BalanceStore
	log       TransactionAppender
	reference models.RateTable
	home      string
	now       func() time.Time
}

// NewLedger creates a ledger over the given stores. The reference table is
// copied; later drift of the source map does not affect settlement. A nil
// now func defaults to time.Now.
func NewLedger(balances BalanceStore, log TransactionAppender, reference models.RateTable, home string, now func() time.Time) *Ledger {
	if now == nil {
		now = time.Now
	}
	return &Ledger{
		balances:  balances,
		log:       log,
		reference: reference.Clone(),
		home:      home,
		now:       now,
	}
}

// Deposit adds amount to a currency balance, initializing an unseen
// currency at 0 first, and records a deposit transaction.
func (l *Ledger) Deposit(currency string, amount float64) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	newBalance := l.balances.Add(currency, amount)

	tx := models.Transaction{
		TransactionID: uuid.NewString(),
		Type:          models.TransactionDeposit,
		Currency:      currency,
		Amount:        amount,
		Timestamp:     l.now().Unix(),
	}
	l.log.Append(tx)

	logger.Log.Infow("deposit committed", "currency", currency, "amount", amount, "balance", newBalance)
	return &tx, nil
}

// Withdraw subtracts amount from a currency balance and records a withdraw
// transaction. Requests over the available balance fail; the handler may
// resubmit with the available amount ("withdraw all").
func (l *Ledger) Withdraw(currency string, amount float64) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	available := l.balances.Get(currency)
	if amount > available {
		logger.Log.Warnw("withdrawal rejected", "currency", currency, "amount", amount, "available", available)
		return nil, ErrInsufficientFunds
	}

	newBalance := l.balances.Add(currency, -amount)

	tx := models.Transaction{
		TransactionID: uuid.NewString(),
		Type:          models.TransactionWithdraw,
		Currency:      currency,
		Amount:        amount,
		Timestamp:     l.now().Unix(),
	}
	l.log.Append(tx)

	logger.Log.Infow("withdrawal committed", "currency", currency, "amount", amount, "balance", newBalance)
	return &tx, nil
}

// Exchange converts amount of the from currency into the to currency at the
// frozen reference rates. A request over the available from balance is
// clamped down to it (unlike Withdraw, which rejects). Both currencies must
// resolve in the reference table.
func (l *Ledger) Exchange(from, to string, amount float64) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if available := l.balances.Get(from); amount > available {
		amount = available
	}
	if amount <= 0 {
		// Clamping an empty balance would commit a zero-amount record.
		return nil, ErrInvalidAmount
	}

	rateFrom, okFrom := l.resolveRate(from)
	rateTo, okTo := l.resolveRate(to)
	if !okFrom || !okTo {
		logger.Log.Warnw("exchange rejected, unknown rate", "from", from, "to", to)
		return nil, ErrNoRateAvailable
	}

	valueHome := amount
	if from != l.home {
		valueHome = amount * rateFrom
	}
	received := valueHome
	if to != l.home {
		received = valueHome / rateTo
	}
	received = models.Round2(received)

	fromBalance := l.balances.Add(from, -amount)
	toBalance := l.balances.Add(to, received)

	tx := models.Transaction{
		TransactionID: uuid.NewString(),
		Type:          models.TransactionExchange,
		From:          from,
		To:            to,
		Amount:        amount,
		Received:      received,
		Timestamp:     l.now().Unix(),
	}
	l.log.Append(tx)

	logger.Log.Infow("exchange committed",
		"from", from, "to", to,
		"amount", amount, "received", received,
		"from_balance", fromBalance, "to_balance", toBalance,
	)
	return &tx, nil
}

// Rollback reverses the balance effect of a previously committed
// transaction. It is unconditional: it bypasses every validation, may drive
// a balance negative, and never appends to the visible log. A rollback is a
// correction, not a new event.
func (l *Ledger) Rollback(tx *models.Transaction) {
	if tx == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	switch tx.Type {
	case models.TransactionDeposit:
		l.balances.Add(tx.Currency, -tx.Amount)
	case models.TransactionWithdraw:
		l.balances.Add(tx.Currency, tx.Amount)
	case models.TransactionExchange:
		l.balances.Add(tx.From, tx.Amount)
		l.balances.Add(tx.To, -tx.Received)
	}

	logger.Log.Infow("transaction rolled back", "transaction_id", tx.TransactionID, "type", tx.Type)
}

// resolveRate looks up a currency in the frozen reference table. The home
// currency always resolves at 1.
func (l *Ledger) resolveRate(currency string) (float64, bool) {
	if currency == l.home {
		return 1, true
	}
	rate, ok := l.reference[currency]
	if !ok || rate <= 0 {
		return 0, false
	}
	return rate, true
}
