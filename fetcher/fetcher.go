package fetcher

import (
	"context"
	"time"
)

// Per-call network timeouts. Exceeding one is a failure, never retried.
const (
	// ListingTimeout bounds a fetch of the agency index page.
	ListingTimeout = 20 * time.Second
	// DetailTimeout bounds a fetch of a property detail page, which is
	// heavier than the index.
	DetailTimeout = 25 * time.Second
)

// Fetcher acquires the HTML of a single page. Implementations differ in
// transport (plain GET vs a headless browser that waits for content to
// render) but are interchangeable from the caller's point of view.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
}
