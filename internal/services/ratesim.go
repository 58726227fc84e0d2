package services

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/mkowalczyk/kantor/internal/logger"
	"github.com/mkowalczyk/kantor/internal/models"
)

// RatesFeed fetches a rate snapshot from an external source.
type RatesFeed interface {
	GetRates(ctx context.Context) (models.RateTable, error)
}

// RateSnapshotCache reads and writes the last good feed snapshot.
type RateSnapshotCache interface {
	GetRates(ctx context.Context) (models.RateTable, error)
	SetRates(ctx context.Context, rates models.RateTable) error
}

// RateSimulator produces and evolves the live rate table. Each tick applies
// an independent multiplicative drift of 0.01%-0.1% per currency with random
// sign and pins the home currency back to exactly 1.
type RateSimulator struct {
	home string
	rnd  *rand.Rand
}

// NewRateSimulator creates a simulator. The random source is injectable so
// tests can pin the drift sequence; a nil rnd is seeded from the clock.
func NewRateSimulator(home string, rnd *rand.Rand) *RateSimulator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RateSimulator{home: home, rnd: rnd}
}

// InitialRates builds the starting table: the external feed if one is
// configured and reachable, otherwise the cached snapshot, otherwise the
// built-in seed table. Feed failure never propagates; the worst case is
// running entirely on seed data.
func (s *RateSimulator) InitialRates(ctx context.Context, feed RatesFeed, cache RateSnapshotCache) models.RateTable {
	if feed == nil {
		return s.pinned(models.SeedRates())
	}

	rates, err := feed.GetRates(ctx)
	if err == nil {
		if cache != nil {
			if cacheErr := cache.SetRates(ctx, rates); cacheErr != nil {
				logger.Log.Warnw("failed to cache rate snapshot", "error", cacheErr)
			}
		}
		return s.pinned(rates)
	}
	logger.Log.Warnw("rate feed unavailable, trying cached snapshot", "error", err)

	if cache != nil {
		if rates, err := cache.GetRates(ctx); err == nil {
			return s.pinned(rates)
		}
	}

	logger.Log.Warnw("no cached snapshot, using built-in seed rates")
	return s.pinned(models.SeedRates())
}

// Tick derives the next table from the previous one. The input is never
// mutated; consumers may keep the previous table for delta views. Entries
// with a missing or non-positive rate are carried over unchanged. Currencies
// drift in sorted-key order so a seeded random source produces a fixed
// sequence.
func (s *RateSimulator) Tick(prev models.RateTable) models.RateTable {
	codes := make([]string, 0, len(prev))
	for code := range prev {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	next := make(models.RateTable, len(prev))
	for _, code := range codes {
		rate := prev[code]
		if code == s.home || rate <= 0 {
			next[code] = rate
			continue
		}
		delta := s.rnd.Float64()*0.0009 + 0.0001
		if s.rnd.Float64() < 0.5 {
			delta = -delta
		}
		next[code] = models.Round4(rate * (1 + delta))
	}
	next[s.home] = 1
	return next
}

// pinned copies the table with the home currency forced to exactly 1.
func (s *RateSimulator) pinned(rates models.RateTable) models.RateTable {
	next := rates.Clone()
	next[s.home] = 1
	return next
}
