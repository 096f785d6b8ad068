package content

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/paperpress/daybook/pkg/cache"
	"github.com/paperpress/daybook/pkg/errors"
)

func newChatServer(t *testing.T, text string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		resp := chatResponse{}
		resp.Choices = append(resp.Choices, struct {
			Message chatMessage `json:"message"`
		}{Message: chatMessage{Role: "assistant", Content: text}})
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestMonthInspiration(t *testing.T) {
	srv, _ := newChatServer(t, "April whispers of renewal.")

	o := NewOpenRouter(cache.NewNullCache(), "test-key")
	o.BaseURL = srv.URL

	got, err := o.MonthInspiration(context.Background(), "April", 2025)
	if err != nil {
		t.Fatalf("MonthInspiration() error = %v", err)
	}
	if got != "April whispers of renewal." {
		t.Errorf("MonthInspiration() = %q", got)
	}
}

func TestMonthInspirationStripsSentinels(t *testing.T) {
	srv, _ := newChatServer(t, "<s> Fresh starts bloom in May. </s>")

	o := NewOpenRouter(cache.NewNullCache(), "test-key")
	o.BaseURL = srv.URL

	got, err := o.MonthInspiration(context.Background(), "May", 2025)
	if err != nil {
		t.Fatalf("MonthInspiration() error = %v", err)
	}
	if got != "Fresh starts bloom in May." {
		t.Errorf("MonthInspiration() = %q, sentinels not stripped", got)
	}
}

func TestMonthInspirationNoKey(t *testing.T) {
	o := NewOpenRouter(cache.NewNullCache(), "")

	_, err := o.MonthInspiration(context.Background(), "May", 2025)
	if err == nil {
		t.Fatal("MonthInspiration() without key expected error")
	}
	if errors.GetCode(err) != errors.ErrCodeContentUnavailable {
		t.Errorf("error code = %v, want CONTENT_UNAVAILABLE", errors.GetCode(err))
	}
}

func TestMonthInspirationCached(t *testing.T) {
	srv, calls := newChatServer(t, "Cached words.")

	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	o := NewOpenRouter(fc, "test-key")
	o.BaseURL = srv.URL

	for i := 0; i < 3; i++ {
		if _, err := o.MonthInspiration(context.Background(), "June", 2025); err != nil {
			t.Fatalf("MonthInspiration() error = %v", err)
		}
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("server calls = %d, want 1", got)
	}

	// A different month misses the cache.
	if _, err := o.MonthInspiration(context.Background(), "July", 2025); err != nil {
		t.Fatalf("MonthInspiration() error = %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("server calls = %d, want 2", got)
	}
}

func TestMonthInspirationEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	o := NewOpenRouter(cache.NewNullCache(), "test-key")
	o.BaseURL = srv.URL

	if _, err := o.MonthInspiration(context.Background(), "May", 2025); err == nil {
		t.Error("MonthInspiration() with empty choices expected error")
	}
}
