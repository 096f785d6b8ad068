package content

import (
	"context"
	"encoding/json"
	"time"

	"github.com/paperpress/daybook/pkg/cache"
)

const (
	zenQuotesURL = "https://zenquotes.io/api/quotes"

	// snapshotKey is the cache key of the quote snapshot: a JSON array of
	// ["text", "author"] tuples, written as a full replacement on every
	// update.
	snapshotKey = "quotes:zenquotes"

	// maxBatches bounds the fetch loop. The API returns batches of 50
	// random quotes, so duplicates make progress non-monotonic; without a
	// bound a quiet API could spin forever.
	maxBatches = 12
)

// ZenQuotes fetches daily quotes from the ZenQuotes API, persisting every
// deduplicated batch to the snapshot in the cache. A full year needs about
// 366 quotes, fetched in batches of 50.
type ZenQuotes struct {
	// BaseURL is the quotes endpoint. Overridable for tests.
	BaseURL string

	// Pause is the delay between consecutive batch fetches. The free API
	// tier allows roughly 5 requests per 30 seconds.
	Pause time.Duration

	// Offline skips the network entirely and serves the snapshot plus
	// fallback filler.
	Offline bool

	client *Client
	cache  cache.Cache
}

// NewZenQuotes creates a quote source backed by the given cache.
func NewZenQuotes(c cache.Cache) *ZenQuotes {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &ZenQuotes{
		BaseURL: zenQuotesURL,
		Pause:   6 * time.Second,
		client:  NewClient(c, 0, nil),
		cache:   c,
	}
}

// Quotes returns count quotes: the cached snapshot first, topped up from
// the API, then padded with FallbackQuote if the source cannot supply
// enough. The snapshot only ever contains deduplicated fetched quotes,
// never the filler.
func (z *ZenQuotes) Quotes(ctx context.Context, count int) ([]Quote, error) {
	quotes := z.Snapshot(ctx)

	if !z.Offline && len(quotes) < count {
		var err error
		if quotes, err = z.fetchInto(ctx, quotes, count); err != nil {
			return nil, err
		}
	}

	for len(quotes) < count {
		quotes = append(quotes, FallbackQuote)
	}
	return quotes[:count], nil
}

// Snapshot returns the cached quote list, or nil when none exists.
func (z *ZenQuotes) Snapshot(ctx context.Context) []Quote {
	data, ok, _ := z.cache.Get(ctx, snapshotKey)
	if !ok {
		return nil
	}
	var quotes []Quote
	if err := json.Unmarshal(data, &quotes); err != nil {
		return nil
	}
	return quotes
}

// Clear drops the cached snapshot.
func (z *ZenQuotes) Clear(ctx context.Context) error {
	return z.cache.Delete(ctx, snapshotKey)
}

// fetchInto pulls API batches until count quotes are collected, the batch
// budget is exhausted, or the network gives up. Whatever was collected is
// returned; a network failure is not an error here since the caller pads.
func (z *ZenQuotes) fetchInto(ctx context.Context, quotes []Quote, count int) ([]Quote, error) {
	for batch := 0; batch < maxBatches && len(quotes) < count; batch++ {
		var page []apiQuote
		if err := z.client.GetJSON(ctx, z.BaseURL, &page); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			break
		}
		for _, item := range page {
			quotes = append(quotes, Quote{Text: item.Q, Author: item.A})
		}
		quotes = Dedup(quotes)
		z.save(ctx, quotes)

		if len(quotes) < count && z.Pause > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(z.Pause):
			}
		}
	}
	return quotes, nil
}

// save writes the snapshot as a full replacement, without expiry.
func (z *ZenQuotes) save(ctx context.Context, quotes []Quote) {
	if data, err := json.Marshal(quotes); err == nil {
		_ = z.cache.Set(ctx, snapshotKey, data, 0)
	}
}

// apiQuote is the ZenQuotes response item format.
type apiQuote struct {
	Q string `json:"q"`
	A string `json:"a"`
}

var _ QuoteSource = (*ZenQuotes)(nil)
