package fetcher

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"immo-scanner/utils"
)

// HTTPFetcher performs a direct GET with a rotated browser identity and
// the minimal header set the target accepts.
type HTTPFetcher struct {
	client  *http.Client
	timeout time.Duration
	referer string
	logger  *utils.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewHTTPFetcher creates an HTTPFetcher with the given per-call timeout.
func NewHTTPFetcher(timeout time.Duration, logger *utils.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		client:  &http.Client{},
		timeout: timeout,
		logger:  logger,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithReferer sets a Referer header on every request. Detail fetches
// carry the vendor index page as referer.
func (f *HTTPFetcher) WithReferer(referer string) *HTTPFetcher {
	f.referer = referer
	return f
}

// Fetch performs the GET and returns the raw HTML body. Non-success
// statuses become StatusError; transport failures and timeouts become
// UnreachableError.
func (f *HTTPFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", pageURL, err)
	}
	for k, v := range BaseHeaders {
		req.Header.Set(k, v)
	}
	req.Header.Set("User-Agent", f.identity())
	if f.referer != "" {
		req.Header.Set("Referer", f.referer)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &UnreachableError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{Code: resp.StatusCode, URL: pageURL}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UnreachableError{URL: pageURL, Err: err}
	}

	f.logger.Debug("[fetch] GET %s — %d bytes", pageURL, len(body))
	return string(body), nil
}

// identity picks a User-Agent under lock; detail requests may fetch
// concurrently and rand.Rand is not goroutine-safe.
func (f *HTTPFetcher) identity() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return PickIdentity(UserAgents, f.rng)
}
