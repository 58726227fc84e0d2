package models

import "time"

// TransactionType enumerates the wallet operations that can be recorded.
type TransactionType string

const (
	TransactionDeposit  TransactionType = "deposit"
	TransactionWithdraw TransactionType = "withdraw"
	TransactionExchange TransactionType = "exchange"
)

// Transaction is an immutable record of one committed wallet operation.
// Currency is set for deposits and withdrawals; From/To/Received are set
// for exchanges. Records are never mutated after commit: reversing an
// operation produces a new inverse effect on balances, not an edit here.
type Transaction struct {
	TransactionID string          `json:"transaction_id"`     // Unique identifier of the transaction
	Type          TransactionType `json:"type"`               // Operation kind: deposit, withdraw or exchange
	Currency      string          `json:"currency,omitempty"` // Currency code for deposit/withdraw
	From          string          `json:"from,omitempty"`     // Source currency for exchange
	To            string          `json:"to,omitempty"`       // Target currency for exchange
	Amount        float64         `json:"amount"`             // Amount deposited, withdrawn, or debited by an exchange
	Received      float64         `json:"received,omitempty"` // Amount credited by an exchange, derived from the rate pair
	Timestamp     int64           `json:"timestamp"`          // Unix timestamp (seconds) of the commit
}

// Time returns the commit time of the transaction.
func (t Transaction) Time() time.Time {
	return time.Unix(t.Timestamp, 0)
}
