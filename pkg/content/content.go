// Package content provides the external data sources that fill diary pages:
// daily quotes, per-month inspirational texts, and seasonal images.
//
// Every source is an interface so page composition can be tested against
// stubs, and every source failure has a deterministic fallback. A missing
// quote becomes [FallbackQuote], missing inspiration becomes the
// [FallbackInspiration] sentence, and a missing image is simply skipped by
// the composer. Content failures never abort document generation.
package content

import (
	"context"
	"encoding/json"
	"fmt"
)

// Quote is one quotation with its author. It serializes as a two-element
// JSON array ["text", "author"], the snapshot format of the quote cache.
type Quote struct {
	Text   string
	Author string
}

// MarshalJSON encodes the quote as a ["text", "author"] tuple.
func (q Quote) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{q.Text, q.Author})
}

// UnmarshalJSON decodes a ["text", "author"] tuple. Extra elements are
// ignored for forward compatibility.
func (q *Quote) UnmarshalJSON(data []byte) error {
	var tuple []string
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) < 2 {
		return fmt.Errorf("quote tuple needs 2 elements, got %d", len(tuple))
	}
	q.Text, q.Author = tuple[0], tuple[1]
	return nil
}

// FallbackQuote pads the quote list when the source cannot supply enough.
var FallbackQuote = Quote{
	Text:   "The secret of getting ahead is getting started.",
	Author: "Mark Twain",
}

// FallbackInspiration is the fixed sentence used when the inspiration
// source is unavailable.
func FallbackInspiration(month string) string {
	return fmt.Sprintf("Welcome to %s. A new month, a new beginning.", month)
}

// Image is a fetched image with its encoded bytes and natural dimensions.
type Image struct {
	Data   []byte
	Format string // "png" or "jpeg"
	Width  int
	Height int
}

// Aspect returns height/width of the natural dimensions, the ratio used to
// scale the image to a fixed display width.
func (i *Image) Aspect() float64 {
	if i.Width == 0 {
		return 1
	}
	return float64(i.Height) / float64(i.Width)
}

// QuoteSource supplies an ordered, deduplicated list of quotes.
type QuoteSource interface {
	// Quotes returns at least count quotes, padding with FallbackQuote
	// when the backing source cannot supply enough.
	Quotes(ctx context.Context, count int) ([]Quote, error)
}

// InspirationSource supplies a short inspirational paragraph for a month.
type InspirationSource interface {
	MonthInspiration(ctx context.Context, month string, year int) (string, error)
}

// ImageSource supplies a seasonal image for a month.
type ImageSource interface {
	MonthImage(ctx context.Context, month string) (*Image, error)
}

// Dedup removes duplicate quotes by value equality, preserving the order of
// first occurrence.
func Dedup(quotes []Quote) []Quote {
	seen := make(map[Quote]bool, len(quotes))
	out := quotes[:0:0]
	for _, q := range quotes {
		if !seen[q] {
			seen[q] = true
			out = append(out, q)
		}
	}
	return out
}
