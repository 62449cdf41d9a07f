package fetcher

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"tooldex/internal/resilience/circuitbreaker"
	"tooldex/internal/usecase/tool"
)

// MetadataFetcher retrieves page metadata (title, description) from a
// tool's website. It prefers Open Graph tags and falls back to the
// standard meta description and <title> element.
//
// Thread safety: MetadataFetcher is safe for concurrent use.
type MetadataFetcher struct {
	client         *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	config         MetadataFetchConfig
	limiter        *rate.Limiter
	group          singleflight.Group
}

// NewMetadataFetcher creates a MetadataFetcher with the given
// configuration. Every redirect target is re-validated against the
// private-IP policy, and all upstream calls run through a circuit breaker
// so a misbehaving site cannot stall tool submissions.
func NewMetadataFetcher(config MetadataFetchConfig) *MetadataFetcher {
	f := &MetadataFetcher{
		circuitBreaker: circuitbreaker.New(circuitbreaker.MetadataFetchConfig()),
		config:         config,
		limiter:        rate.NewLimiter(rate.Limit(config.RequestsPerSecond), 1),
	}

	f.client = &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= f.config.MaxRedirects {
				return fmt.Errorf("%w: %d redirects", ErrTooManyRedirects, len(via))
			}
			if err := validateURL(req.URL.String(), f.config.DenyPrivateIPs); err != nil {
				return fmt.Errorf("redirect target validation failed: %w", err)
			}
			return nil
		},
	}
	return f
}

// Breaker exposes the fetcher's circuit breaker for health reporting.
func (f *MetadataFetcher) Breaker() *circuitbreaker.CircuitBreaker {
	return f.circuitBreaker
}

// Fetch retrieves page metadata for the given URL. It validates the URL,
// runs the request through the circuit breaker, and parses the page for
// og:title / og:description with <title> and meta description fallbacks.
//
// Concurrent calls for the same URL are coalesced into a single upstream
// request, and all upstream requests share an outbound rate limit.
func (f *MetadataFetcher) Fetch(ctx context.Context, urlStr string) (tool.Metadata, error) {
	start := time.Now()
	if err := validateURL(urlStr, f.config.DenyPrivateIPs); err != nil {
		recordFetch(start, err)
		return tool.Metadata{}, err
	}

	result, err, _ := f.group.Do(urlStr, func() (interface{}, error) {
		if err := f.limiter.Wait(ctx); err != nil {
			return tool.Metadata{}, fmt.Errorf("rate limit wait: %w", err)
		}
		return f.circuitBreaker.Execute(func() (interface{}, error) {
			return f.doFetch(ctx, urlStr)
		})
	})
	recordFetch(start, err)
	if err != nil {
		return tool.Metadata{}, err
	}
	return result.(tool.Metadata), nil
}

func (f *MetadataFetcher) doFetch(ctx context.Context, urlStr string) (interface{}, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, urlStr, nil)
	if err != nil {
		return tool.Metadata{}, fmt.Errorf("%w: failed to create request: %v", ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", "ToolDexBot/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		if reqCtx.Err() == context.DeadlineExceeded {
			return tool.Metadata{}, fmt.Errorf("%w: request exceeded %v", ErrTimeout, f.config.Timeout)
		}
		if urlErr, ok := err.(*url.Error); ok && urlErr.Err != nil {
			return tool.Metadata{}, urlErr.Err
		}
		return tool.Metadata{}, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return tool.Metadata{}, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	limitedReader := io.LimitReader(resp.Body, f.config.MaxBodySize+1)
	htmlBytes, err := io.ReadAll(limitedReader)
	if err != nil {
		return tool.Metadata{}, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(htmlBytes)) > f.config.MaxBodySize {
		return tool.Metadata{}, fmt.Errorf("%w: response size %d bytes exceeds limit %d bytes",
			ErrBodyTooLarge, len(htmlBytes), f.config.MaxBodySize)
	}

	meta, err := parseMetadata(bytes.NewReader(htmlBytes))
	if err != nil {
		return tool.Metadata{}, err
	}
	return meta, nil
}

// parseMetadata extracts the page title and description from HTML.
func parseMetadata(r io.Reader) (tool.Metadata, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return tool.Metadata{}, fmt.Errorf("parse HTML: %w", err)
	}

	var meta tool.Metadata
	if v, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		meta.Title = strings.TrimSpace(v)
	}
	if meta.Title == "" {
		meta.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if v, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok {
		meta.Description = strings.TrimSpace(v)
	}
	if meta.Description == "" {
		if v, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
			meta.Description = strings.TrimSpace(v)
		}
	}

	if meta.Title == "" && meta.Description == "" {
		return tool.Metadata{}, ErrNoMetadata
	}
	return meta, nil
}
