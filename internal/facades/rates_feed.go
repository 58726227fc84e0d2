package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mkowalczyk/kantor/internal/logger"
	"github.com/mkowalczyk/kantor/internal/models"
)

// ErrFeedUnavailable is returned when the external rate feed cannot be
// reached or produces an unusable payload. Callers are expected to fall
// back to a cached or static table; this error never becomes fatal.
var ErrFeedUnavailable = errors.New("rate feed unavailable")

// RatesFeedFacade fetches a rate snapshot from an external HTTP feed.
// The feed returns rates denominated as foreign units per 1 home unit
// (exchangerate.host style); the facade inverts them to home-per-foreign
// before handing them to the simulator.
type RatesFeedFacade struct {
	client *http.Client
	url    string
	home   string
}

// NewRatesFeedFacade creates a feed facade. A nil client falls back to
// http.DefaultClient.
func NewRatesFeedFacade(client *http.Client, url, home string) *RatesFeedFacade {
	if client == nil {
		client = http.DefaultClient
	}
	return &RatesFeedFacade{client: client, url: url, home: home}
}

// feedResponse mirrors the feed payload: {"base":"PLN","rates":{"USD":0.27,...}}.
type feedResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// GetRates fetches and inverts the current snapshot. Every failure mode
// (network, non-200 status, malformed body, empty table) is wrapped in
// ErrFeedUnavailable.
func (f *RatesFeedFacade) GetRates(ctx context.Context) (models.RateTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Warnw("rate feed request failed", "url", f.url, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Warnw("rate feed returned unexpected status", "url", f.url, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrFeedUnavailable, resp.StatusCode)
	}

	var payload feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Log.Warnw("rate feed returned malformed payload", "url", f.url, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}

	rates := make(models.RateTable, len(payload.Rates)+1)
	for code, perHome := range payload.Rates {
		if perHome <= 0 {
			continue
		}
		rates[code] = models.Round4(1 / perHome)
	}
	rates[f.home] = 1

	if len(rates) < 2 {
		return nil, fmt.Errorf("%w: empty rate table", ErrFeedUnavailable)
	}

	logger.Log.Infow("rate snapshot fetched from feed", "url", f.url, "currencies", len(rates))
	return rates, nil
}
