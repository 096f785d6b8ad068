package content

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"time"

	// Decoders for dimension probing of fetched images.
	_ "image/jpeg"
	_ "image/png"

	"github.com/paperpress/daybook/pkg/cache"
	"github.com/paperpress/daybook/pkg/errors"
)

const (
	loremFlickrURL = "https://loremflickr.com/g/800/600/%s/all"
	imageTTL       = 7 * 24 * time.Hour
)

// seasonKeywords maps month names to loremflickr search keywords so each
// month intro gets a seasonally fitting picture.
var seasonKeywords = map[string]string{
	"January":   "winter,snow,cozy",
	"February":  "winter,love,mist",
	"March":     "spring,sprout,green",
	"April":     "rain,flowers,bloom",
	"May":       "nature,sun,garden",
	"June":      "summer,beach,sunshine",
	"July":      "summer,adventure,sky",
	"August":    "summer,heat,sunset",
	"September": "autumn,leaves,school",
	"October":   "autumn,pumpkin,forest",
	"November":  "autumn,frost,coffee",
	"December":  "winter,lights,celebration",
}

// LoremFlickr fetches a random grayscale seasonal image per month. The /g/
// path segment selects grayscale images, matching the diary's look.
type LoremFlickr struct {
	// BaseURL is a format string taking the keyword set. Overridable for
	// tests.
	BaseURL string

	client *Client
	cache  cache.Cache
}

// NewLoremFlickr creates an image source backed by the given cache.
func NewLoremFlickr(c cache.Cache) *LoremFlickr {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &LoremFlickr{
		BaseURL: loremFlickrURL,
		client:  NewClient(c, imageTTL, nil),
		cache:   c,
	}
}

// MonthImage downloads (or recalls from cache) an image for the month and
// probes its natural dimensions for aspect-ratio scaling.
func (l *LoremFlickr) MonthImage(ctx context.Context, month string) (*Image, error) {
	keyword, ok := seasonKeywords[month]
	if !ok {
		keyword = "nature"
	}

	data, err := l.fetch(ctx, month, keyword)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeContentUnavailable, err, "fetch image for %s", month)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeContentUnavailable, err, "decode image for %s", month)
	}

	return &Image{
		Data:   data,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}

func (l *LoremFlickr) fetch(ctx context.Context, month, keyword string) ([]byte, error) {
	key := "image:" + month

	if data, ok, _ := l.cache.Get(ctx, key); ok {
		return data, nil
	}

	data, err := l.client.GetBytes(ctx, fmt.Sprintf(l.BaseURL, keyword))
	if err != nil {
		return nil, err
	}
	_ = l.cache.Set(ctx, key, data, imageTTL)
	return data, nil
}

var _ ImageSource = (*LoremFlickr)(nil)
