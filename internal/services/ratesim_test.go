package services

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkowalczyk/kantor/internal/models"
)

func TestRateSimulator_Tick_DriftBounds(t *testing.T) {
	sim := NewRateSimulator(models.PLN, rand.New(rand.NewSource(42)))
	prev := models.SeedRates()

	next := sim.Tick(prev)

	assert.Equal(t, len(prev), len(next))
	for code, rate := range next {
		if code == models.PLN {
			continue
		}
		relative := math.Abs(rate-prev[code]) / prev[code]
		// one tick moves a rate by at most 0.1%, plus the 4-decimal rounding
		maxRelative := 0.001 + 0.00005/prev[code]
		assert.LessOrEqual(t, relative, maxRelative, "drift out of bounds for %s", code)
	}
}

func TestRateSimulator_Tick_HomeAlwaysOne(t *testing.T) {
	sim := NewRateSimulator(models.PLN, rand.New(rand.NewSource(1)))

	table := models.SeedRates()
	for i := 0; i < 200; i++ {
		table = sim.Tick(table)
		require.Equal(t, 1.0, table[models.PLN])
	}
}

func TestRateSimulator_Tick_DoesNotMutateInput(t *testing.T) {
	sim := NewRateSimulator(models.PLN, rand.New(rand.NewSource(7)))
	prev := models.RateTable{models.PLN: 1, models.USD: 4.0, models.EUR: 4.5}
	snapshot := prev.Clone()

	_ = sim.Tick(prev)

	assert.Equal(t, snapshot, prev)
}

func TestRateSimulator_Tick_RoundsToFourDecimals(t *testing.T) {
	sim := NewRateSimulator(models.PLN, rand.New(rand.NewSource(3)))
	next := sim.Tick(models.RateTable{models.PLN: 1, models.USD: 3.6625})

	rate := next[models.USD]
	assert.Equal(t, models.Round4(rate), rate)
}

func TestRateSimulator_Tick_CarriesBrokenEntries(t *testing.T) {
	sim := NewRateSimulator(models.PLN, rand.New(rand.NewSource(9)))
	prev := models.RateTable{models.PLN: 1, models.USD: 4.0, "BAD": 0, "NEG": -2}

	next := sim.Tick(prev)

	// entries the drift cannot price stay unchanged instead of failing the tick
	assert.Equal(t, 0.0, next["BAD"])
	assert.Equal(t, -2.0, next["NEG"])
	assert.NotEqual(t, 0.0, next[models.USD])
}

func TestRateSimulator_Tick_Deterministic(t *testing.T) {
	prev := models.SeedRates()

	first := NewRateSimulator(models.PLN, rand.New(rand.NewSource(123))).Tick(prev)
	second := NewRateSimulator(models.PLN, rand.New(rand.NewSource(123))).Tick(prev)

	assert.Equal(t, first, second)
}

func TestRateSimulator_InitialRates_NoFeed(t *testing.T) {
	sim := NewRateSimulator(models.PLN, rand.New(rand.NewSource(1)))

	rates := sim.InitialRates(context.Background(), nil, nil)

	assert.Equal(t, models.SeedRates(), rates)
	assert.Equal(t, 1.0, rates[models.PLN])
}

func TestRateSimulator_InitialRates_FeedSuccess(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feedRates := models.RateTable{models.PLN: 1, models.USD: 3.9, models.EUR: 4.4}

	feed := NewMockRatesFeed(ctrl)
	cache := NewMockRateSnapshotCache(ctrl)
	feed.EXPECT().GetRates(ctx).Return(feedRates.Clone(), nil)
	cache.EXPECT().SetRates(ctx, gomock.Any()).Return(nil)

	sim := NewRateSimulator(models.PLN, rand.New(rand.NewSource(1)))
	rates := sim.InitialRates(ctx, feed, cache)

	assert.Equal(t, feedRates, rates)
}

func TestRateSimulator_InitialRates_FeedFailsCacheHit(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cached := models.RateTable{models.PLN: 1, models.USD: 4.1}

	feed := NewMockRatesFeed(ctrl)
	cache := NewMockRateSnapshotCache(ctrl)
	feed.EXPECT().GetRates(ctx).Return(nil, errors.New("connection refused"))
	cache.EXPECT().GetRates(ctx).Return(cached.Clone(), nil)

	sim := NewRateSimulator(models.PLN, rand.New(rand.NewSource(1)))
	rates := sim.InitialRates(ctx, feed, cache)

	assert.Equal(t, cached, rates)
}

func TestRateSimulator_InitialRates_FeedAndCacheFail(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed := NewMockRatesFeed(ctrl)
	cache := NewMockRateSnapshotCache(ctrl)
	feed.EXPECT().GetRates(ctx).Return(nil, errors.New("connection refused"))
	cache.EXPECT().GetRates(ctx).Return(nil, errors.New("cache miss"))

	sim := NewRateSimulator(models.PLN, rand.New(rand.NewSource(1)))
	rates := sim.InitialRates(ctx, feed, cache)

	// every failure falls back to the seed table, never to an error
	assert.Equal(t, models.SeedRates(), rates)
}

func TestRateSimulator_InitialRates_CacheWriteFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feedRates := models.RateTable{models.PLN: 1, models.USD: 3.9}

	feed := NewMockRatesFeed(ctrl)
	cache := NewMockRateSnapshotCache(ctrl)
	feed.EXPECT().GetRates(ctx).Return(feedRates.Clone(), nil)
	cache.EXPECT().SetRates(ctx, gomock.Any()).Return(errors.New("write failed"))

	sim := NewRateSimulator(models.PLN, rand.New(rand.NewSource(1)))
	rates := sim.InitialRates(ctx, feed, cache)

	assert.Equal(t, feedRates, rates)
}
