package content

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"
)

func newTestServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /page", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "test-agent" {
			http.Error(w, "unexpected user agent", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, `<html><head><script>var x = 1;</script></head><body><h1>Gophers</h1><p>Gophers write Go.</p></body></html>`)
	})
	mux.HandleFunc("GET /plain", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		io.WriteString(w, "Plain text content.")
	})
	mux.HandleFunc("GET /empty", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		io.WriteString(w, `<html><body><script>only script</script></body></html>`)
	})
	mux.HandleFunc("GET /long", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		io.WriteString(w, "<p>"+strings.Repeat("lorem ipsum ", 100)+"</p>")
	})
	mux.HandleFunc("GET /missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	s := httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

func TestHTTPSource(t *testing.T) {
	s := newTestServer(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	src := NewHTTPSource(log, s.Client(), HTTPSourceOptions{
		UserAgent: "test-agent",
		MaxChars:  50,
	})
	ctx := context.Background()

	t.Run("HTML pages are converted to text", func(t *testing.T) {
		text, err := src.Get(ctx, s.URL+"/page")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if expected := "Gophers Gophers write Go."; text != expected {
			t.Errorf("expected %q, got %q", expected, text)
		}
	})
	t.Run("plain text is returned as is", func(t *testing.T) {
		text, err := src.Get(ctx, s.URL+"/plain")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if expected := "Plain text content."; text != expected {
			t.Errorf("expected %q, got %q", expected, text)
		}
	})
	t.Run("long pages are truncated", func(t *testing.T) {
		text, err := src.Get(ctx, s.URL+"/long")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n := utf8.RuneCountInString(text); n > 50 {
			t.Errorf("expected at most 50 characters, got %d", n)
		}
	})
	t.Run("pages without text are unavailable", func(t *testing.T) {
		_, err := src.Get(ctx, s.URL+"/empty")
		if !errors.Is(err, ErrUnavailable) {
			t.Errorf("expected ErrUnavailable, got %v", err)
		}
	})
	t.Run("non-2xx responses are unavailable", func(t *testing.T) {
		_, err := src.Get(ctx, s.URL+"/missing")
		if !errors.Is(err, ErrUnavailable) {
			t.Errorf("expected ErrUnavailable, got %v", err)
		}
		var se StatusError
		if !errors.As(err, &se) {
			t.Fatalf("expected StatusError, got %T", err)
		}
		if se.StatusCode != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", se.StatusCode)
		}
	})
	t.Run("invalid URLs are unavailable", func(t *testing.T) {
		for _, u := range []string{"", "not a url", "ftp://example.com/file", "/relative/path", "http://"} {
			_, err := src.Get(ctx, u)
			if !errors.Is(err, ErrUnavailable) {
				t.Errorf("%q: expected ErrUnavailable, got %v", u, err)
			}
		}
	})
}
