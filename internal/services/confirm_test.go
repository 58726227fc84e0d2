package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkowalczyk/kantor/internal/models"
)

func TestConfirmationService_ConfirmCommits(t *testing.T) {
	ledger, balances, _ := newTestLedger(t,
		map[string]float64{models.PLN: 1000},
		models.RateTable{models.PLN: 1},
	)
	confirmations := NewConfirmationService(time.Minute)

	id, expiresAt := confirmations.Begin(func(context.Context) (*models.Transaction, error) {
		return ledger.Withdraw(models.PLN, 200)
	})
	assert.True(t, expiresAt.After(time.Now()))

	// nothing committed until the user confirms
	assert.Equal(t, 1000.0, balances.Get(models.PLN))

	tx, err := confirmations.Confirm(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionWithdraw, tx.Type)
	assert.Equal(t, 800.0, balances.Get(models.PLN))
}

func TestConfirmationService_CancelDiscards(t *testing.T) {
	ledger, balances, txLog := newTestLedger(t,
		map[string]float64{models.PLN: 1000},
		models.RateTable{models.PLN: 1},
	)
	confirmations := NewConfirmationService(time.Minute)

	id, _ := confirmations.Begin(func(context.Context) (*models.Transaction, error) {
		return ledger.Withdraw(models.PLN, 200)
	})

	require.NoError(t, confirmations.Cancel(id))

	assert.Equal(t, 1000.0, balances.Get(models.PLN), "cancelled operation must not touch balances")
	assert.Equal(t, 0, txLog.Len(), "cancelled operation must not be logged")
}

func TestConfirmationService_TimeoutDiscards(t *testing.T) {
	ledger, balances, _ := newTestLedger(t,
		map[string]float64{models.PLN: 1000},
		models.RateTable{models.PLN: 1},
	)
	confirmations := NewConfirmationService(20 * time.Millisecond)

	id, _ := confirmations.Begin(func(context.Context) (*models.Transaction, error) {
		return ledger.Withdraw(models.PLN, 200)
	})

	assert.Eventually(t, func() bool {
		return confirmations.PendingCount() == 0
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, 1000.0, balances.Get(models.PLN))

	_, err := confirmations.Confirm(context.Background(), id)
	assert.ErrorIs(t, err, ErrConfirmationNotFound)
}

func TestConfirmationService_ExactlyOneTerminalAction(t *testing.T) {
	confirmations := NewConfirmationService(time.Minute)

	var commits int
	var mu sync.Mutex
	id, _ := confirmations.Begin(func(context.Context) (*models.Transaction, error) {
		mu.Lock()
		commits++
		mu.Unlock()
		return &models.Transaction{TransactionID: "t", Type: models.TransactionDeposit}, nil
	})

	_, err := confirmations.Confirm(context.Background(), id)
	require.NoError(t, err)

	// late cancel and repeated confirm are no-ops
	assert.ErrorIs(t, confirmations.Cancel(id), ErrConfirmationNotFound)
	_, err = confirmations.Confirm(context.Background(), id)
	assert.ErrorIs(t, err, ErrConfirmationNotFound)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, commits)
}

func TestConfirmationService_ConfirmCanStillFailValidation(t *testing.T) {
	ledger, balances, _ := newTestLedger(t,
		map[string]float64{models.PLN: 100},
		models.RateTable{models.PLN: 1},
	)
	confirmations := NewConfirmationService(time.Minute)

	id, _ := confirmations.Begin(func(context.Context) (*models.Transaction, error) {
		return ledger.Withdraw(models.PLN, 100)
	})

	// balance is drained before the user confirms
	_, err := ledger.Withdraw(models.PLN, 60)
	require.NoError(t, err)

	_, err = confirmations.Confirm(context.Background(), id)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 40.0, balances.Get(models.PLN))
}

func TestConfirmationService_UnknownID(t *testing.T) {
	confirmations := NewConfirmationService(time.Minute)

	_, err := confirmations.Confirm(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrConfirmationNotFound)
	assert.ErrorIs(t, confirmations.Cancel("nope"), ErrConfirmationNotFound)
}

func TestConfirmationService_IndependentPendingOps(t *testing.T) {
	ledger, balances, _ := newTestLedger(t,
		map[string]float64{models.PLN: 1000},
		models.RateTable{models.PLN: 1},
	)
	confirmations := NewConfirmationService(time.Minute)

	first, _ := confirmations.Begin(func(context.Context) (*models.Transaction, error) {
		return ledger.Withdraw(models.PLN, 100)
	})
	second, _ := confirmations.Begin(func(context.Context) (*models.Transaction, error) {
		return ledger.Withdraw(models.PLN, 300)
	})
	assert.Equal(t, 2, confirmations.PendingCount())

	require.NoError(t, confirmations.Cancel(first))

	_, err := confirmations.Confirm(context.Background(), second)
	require.NoError(t, err)
	assert.Equal(t, 700.0, balances.Get(models.PLN))
}