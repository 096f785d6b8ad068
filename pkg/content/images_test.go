package content

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/paperpress/daybook/pkg/cache"
)

// pngBytes encodes a solid-color PNG of the given size.
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 120, G: 120, B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func TestMonthImageDecodesDimensions(t *testing.T) {
	data := pngBytes(t, 40, 30)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(data)
	}))
	defer srv.Close()

	l := NewLoremFlickr(cache.NewNullCache())
	l.BaseURL = srv.URL + "/%s"

	img, err := l.MonthImage(context.Background(), "May")
	if err != nil {
		t.Fatalf("MonthImage() error = %v", err)
	}
	if img.Width != 40 || img.Height != 30 {
		t.Errorf("dimensions = %dx%d, want 40x30", img.Width, img.Height)
	}
	if img.Format != "png" {
		t.Errorf("Format = %q, want png", img.Format)
	}
	if !bytes.Equal(img.Data, data) {
		t.Error("Data does not match served bytes")
	}
}

func TestMonthImageUsesKeyword(t *testing.T) {
	var gotPath atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath.Store(r.URL.Path)
		w.Write(pngBytes(t, 8, 8))
	}))
	defer srv.Close()

	l := NewLoremFlickr(cache.NewNullCache())
	l.BaseURL = srv.URL + "/%s"

	if _, err := l.MonthImage(context.Background(), "October"); err != nil {
		t.Fatalf("MonthImage() error = %v", err)
	}
	if got := gotPath.Load(); got != "/"+seasonKeywords["October"] {
		t.Errorf("requested path = %v, want keyword for October", got)
	}

	// Unknown months fall back to a generic keyword.
	if _, err := l.MonthImage(context.Background(), "Smarch"); err != nil {
		t.Fatalf("MonthImage() error = %v", err)
	}
	if got := gotPath.Load(); got != "/nature" {
		t.Errorf("requested path = %v, want /nature", got)
	}
}

func TestMonthImageCachesPerMonth(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write(pngBytes(t, 8, 8))
	}))
	defer srv.Close()

	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	l := NewLoremFlickr(fc)
	l.BaseURL = srv.URL + "/%s"

	for i := 0; i < 3; i++ {
		if _, err := l.MonthImage(context.Background(), "June"); err != nil {
			t.Fatalf("MonthImage() error = %v", err)
		}
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("server calls = %d, want 1", got)
	}
}

func TestMonthImageServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	defer srv.Close()

	l := NewLoremFlickr(cache.NewNullCache())
	l.BaseURL = srv.URL + "/%s"

	if _, err := l.MonthImage(context.Background(), "May"); err == nil {
		t.Error("MonthImage() expected error on 400 response")
	}
}

func TestSeasonKeywordsCoverAllMonths(t *testing.T) {
	months := []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	for _, m := range months {
		if seasonKeywords[m] == "" {
			t.Errorf("no keyword for %s", m)
		}
	}
}
