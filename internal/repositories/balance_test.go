package repositories

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkowalczyk/kantor/internal/models"
)

func TestBalanceRepository_GetUnseenCurrency(t *testing.T) {
	repo := NewBalanceRepository(nil)
	assert.Equal(t, 0.0, repo.Get("CHF"))
}

func TestBalanceRepository_SeededBalances(t *testing.T) {
	repo := NewBalanceRepository(map[string]float64{models.PLN: 4000, models.EUR: 1000.009})

	assert.Equal(t, 4000.0, repo.Get(models.PLN))
	assert.Equal(t, 1000.01, repo.Get(models.EUR), "seed balances are rounded to 2 decimals")
}

func TestBalanceRepository_AddRoundsAndInitializes(t *testing.T) {
	repo := NewBalanceRepository(nil)

	got := repo.Add(models.USD, 10.005)
	assert.Equal(t, 10.01, got)
	assert.Equal(t, 10.01, repo.Get(models.USD))
}

func TestBalanceRepository_AddAllowsNegative(t *testing.T) {
	repo := NewBalanceRepository(map[string]float64{models.PLN: 10})

	got := repo.Add(models.PLN, -25)
	assert.Equal(t, -15.0, got, "Add must not clamp; rollbacks rely on it")
}

func TestBalanceRepository_AllReturnsCopy(t *testing.T) {
	repo := NewBalanceRepository(map[string]float64{models.PLN: 100})

	all := repo.All()
	all[models.PLN] = 0

	assert.Equal(t, 100.0, repo.Get(models.PLN))
}

func TestBalanceRepository_ConcurrentAdds(t *testing.T) {
	repo := NewBalanceRepository(nil)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo.Add(models.PLN, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, 100.0, repo.Get(models.PLN))
}
