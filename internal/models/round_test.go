package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 1.24, Round2(1.236))
	assert.Equal(t, -1.23, Round2(-1.234))
	assert.Equal(t, 0.0, Round2(0.0001))
}

func TestRound4(t *testing.T) {
	assert.Equal(t, 3.6625, Round4(3.66252))
	assert.Equal(t, 0.2731, Round4(0.27312))
	assert.Equal(t, 1.0, Round4(1.00004))
}

func TestSeedRates_HomePinned(t *testing.T) {
	rates := SeedRates()
	assert.Equal(t, 1.0, rates[HomeCurrency])
	assert.Greater(t, len(rates), 2)
	for code, rate := range rates {
		assert.Positive(t, rate, "seed rate for %s", code)
	}
}

func TestRateTable_Clone(t *testing.T) {
	orig := RateTable{"PLN": 1.0, "USD": 3.66}
	cp := orig.Clone()
	cp["USD"] = 9.99

	assert.Equal(t, 3.66, orig["USD"])
}
