package cli

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/paperpress/daybook/pkg/cache"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	c := New(io.Discard, LogInfo)
	srv := httptest.NewServer(c.newRouter(cache.NewNullCache()))
	t.Cleanup(srv.Close)
	return srv
}

func TestServeHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz error = %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestServeDiaryInvalidYear(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/diary/abc", "/diary/0", "/diary/-3"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s error = %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("GET %s status = %d, want 400", path, resp.StatusCode)
		}
	}
}

func TestServeDiaryTestMode(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/diary/2025?test=1&offline=1")
	if err != nil {
		t.Fatalf("GET /diary error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "2025_Diary.pdf") {
		t.Errorf("Content-Disposition = %q, want filename", cd)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.HasPrefix(string(body), "%PDF") {
		t.Error("body is not a PDF document")
	}
}
