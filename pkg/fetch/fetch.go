// Package fetch retrieves pages over HTTP with a rotating browser User-Agent
// pool, a per-request timeout, and a bounded fixed-delay retry.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/evscout/evscout/pkg/fn"
)

// userAgents is a pool of realistic desktop browser strings. One is drawn at
// random per request so repeated fetches do not present an identical client.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:124.0) Gecko/20100101 Firefox/124.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4.1 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36 Edg/123.0.2420.97",
}

// Opts configures a Client. Zero values fall back to the defaults used by
// the scraper: 10s timeout, one extra attempt, 5s between attempts.
type Opts struct {
	Timeout   time.Duration
	Retries   int // extra attempts after the first
	RetryWait time.Duration
}

// Client issues single synchronous GETs. Safe for reuse across URLs.
type Client struct {
	opts Opts
	http *http.Client
}

// New creates a Client with the given options.
func New(opts Opts) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Retries < 0 {
		opts.Retries = 0
	}
	if opts.RetryWait <= 0 {
		opts.RetryWait = 5 * time.Second
	}
	return &Client{
		opts: opts,
		http: &http.Client{
			Timeout:   opts.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Get fetches url and returns the response body. Transport errors and non-2xx
// statuses are retried up to Retries additional times after a fixed wait; each
// failed attempt is logged with its cause. The error wraps the final failure.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	attempts := c.opts.Retries + 1
	result := fn.Retry(ctx, fn.RetryOpts{
		MaxAttempts: attempts,
		Wait:        c.opts.RetryWait,
		OnFailure: func(attempt int, err error) {
			log.Printf("warning: attempt %d failed for %s: %v", attempt, url, err)
		},
	}, func(ctx context.Context) fn.Result[[]byte] {
		return fn.FromPair(c.doGet(ctx, url))
	})

	body, err := result.Unwrap()
	if err != nil {
		return nil, fmt.Errorf("fetch %s after %d attempts: %w", url, attempts, err)
	}
	return body, nil
}

func (c *Client) doGet(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgents[rand.Intn(len(userAgents))])

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
