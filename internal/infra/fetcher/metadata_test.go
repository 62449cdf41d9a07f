package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testConfig() MetadataFetchConfig {
	cfg := DefaultConfig()
	// httptest servers listen on loopback.
	cfg.DenyPrivateIPs = false
	cfg.Timeout = 2 * time.Second
	return cfg
}

func TestFetch_OpenGraphPreferred(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><head>
<title>Fallback Title</title>
<meta property="og:title" content="Alpha CLI">
<meta property="og:description" content="A fast command line tool.">
<meta name="description" content="fallback description">
</head><body></body></html>`))
	}))
	defer srv.Close()

	f := NewMetadataFetcher(testConfig())
	meta, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch err=%v", err)
	}
	if meta.Title != "Alpha CLI" {
		t.Errorf("title = %q, want og:title", meta.Title)
	}
	if meta.Description != "A fast command line tool." {
		t.Errorf("description = %q, want og:description", meta.Description)
	}
}

func TestFetch_FallsBackToTitleTag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><head>
<title>  Beta Dashboard  </title>
<meta name="description" content="Monitors everything.">
</head><body></body></html>`))
	}))
	defer srv.Close()

	f := NewMetadataFetcher(testConfig())
	meta, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch err=%v", err)
	}
	if meta.Title != "Beta Dashboard" {
		t.Errorf("title = %q, want trimmed <title>", meta.Title)
	}
	if meta.Description != "Monitors everything." {
		t.Errorf("description = %q", meta.Description)
	}
}

func TestFetch_NoMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><head></head><body>nothing here</body></html>`))
	}))
	defer srv.Close()

	f := NewMetadataFetcher(testConfig())
	if _, err := f.Fetch(context.Background(), srv.URL); !errors.Is(err, ErrNoMetadata) {
		t.Fatalf("err = %v, want ErrNoMetadata", err)
	}
}

func TestFetch_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := NewMetadataFetcher(testConfig())
	if _, err := f.Fetch(context.Background(), srv.URL); err == nil {
		t.Fatal("want error for HTTP 503, got nil")
	}
}

func TestFetch_BodyTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><head><title>big</title></head><body>"))
		_, _ = w.Write([]byte(strings.Repeat("x", 4096)))
		_, _ = w.Write([]byte("</body></html>"))
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.MaxBodySize = 1024
	f := NewMetadataFetcher(cfg)
	if _, err := f.Fetch(context.Background(), srv.URL); !errors.Is(err, ErrBodyTooLarge) {
		t.Fatalf("err = %v, want ErrBodyTooLarge", err)
	}
}

func TestFetch_InvalidScheme(t *testing.T) {
	f := NewMetadataFetcher(testConfig())
	if _, err := f.Fetch(context.Background(), "ftp://example.com/tool"); !errors.Is(err, ErrInvalidURL) {
		t.Fatalf("err = %v, want ErrInvalidURL", err)
	}
}

func TestFetch_PrivateIPDenied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>internal</title></head></html>`))
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.DenyPrivateIPs = true
	f := NewMetadataFetcher(cfg)
	if _, err := f.Fetch(context.Background(), srv.URL); !errors.Is(err, ErrPrivateIP) {
		t.Fatalf("err = %v, want ErrPrivateIP for loopback target", err)
	}
}

func TestParseMetadata_MalformedHTMLStillParses(t *testing.T) {
	// goquery parses tag soup; missing closing tags must not error.
	meta, err := parseMetadata(strings.NewReader(`<html><head><title>Soup</head>`))
	if err != nil {
		t.Fatalf("parseMetadata err=%v", err)
	}
	if meta.Title != "Soup" {
		t.Errorf("title = %q, want Soup", meta.Title)
	}
}
