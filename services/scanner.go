package services

import (
	"context"
	"fmt"
	"sync"

	"immo-scanner/fetcher"
	"immo-scanner/models"
	"immo-scanner/scraper/immobiliare"
	"immo-scanner/storage"
	"immo-scanner/utils"
)

// Scanner runs the scrape-extract-diff-persist pipeline against the
// agency listing page.
type Scanner struct {
	fetch       fetcher.Fetcher
	store       storage.ListingStore
	concurrency int
	logger      *utils.Logger

	// mu serializes entire scans: one scan's read-diff-write must not
	// interleave with another's.
	mu sync.Mutex
}

// NewScanner creates a Scanner. concurrency bounds the parallel per-URL
// writes during reconciliation.
func NewScanner(fetch fetcher.Fetcher, store storage.ListingStore, concurrency int, logger *utils.Logger) *Scanner {
	return &Scanner{
		fetch:       fetch,
		store:       store,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Scan fetches the vendor index page, extracts its listings, filters
// them by the optional minimum price, diffs them against the store and
// replaces the stored set with the filtered result. It returns the
// listings no previous scan had seen. A fetch or extraction failure
// aborts before any store mutation; a storage failure mid-reconciliation
// leaves the store indeterminate until the next successful scan.
func (s *Scanner) Scan(ctx context.Context, minPriceRaw string) ([]models.ListingSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	html, err := s.fetch.Fetch(ctx, immobiliare.VendorURL)
	if err != nil {
		return nil, fmt.Errorf("fetch vendor page: %w", err)
	}

	scraped, err := immobiliare.ExtractListings(html, immobiliare.VendorURL)
	if err != nil {
		return nil, err
	}
	s.logger.Info("[scan] scraped %d listings from vendor page", len(scraped))

	scraped = dedupeByURL(scraped)

	minPrice := NormalizePrice(minPriceRaw)
	filtered := scraped
	if minPrice > 0 {
		filtered = make([]models.ListingSummary, 0, len(scraped))
		for _, l := range scraped {
			if NormalizePrice(l.Price) >= minPrice {
				filtered = append(filtered, l)
			}
		}
	}
	s.logger.Info("[scan] %d listings after price filter (min %d)", len(filtered), minPrice)

	stored, err := s.store.FetchAll(ctx)
	if err != nil {
		return nil, &StorageError{Op: "read previous listings", Err: err}
	}
	known := utils.NewURLSet()
	for _, rec := range stored {
		known.Add(rec.URL)
	}

	newListings := make([]models.ListingSummary, 0)
	for _, l := range filtered {
		if !known.Contains(l.URL) {
			newListings = append(newListings, l)
		}
	}
	s.logger.Info("[scan] %d new listings against %d previously stored", len(newListings), known.Size())

	if err := s.reconcile(ctx, filtered); err != nil {
		return nil, err
	}

	return newListings, nil
}

// reconcile replaces the entire stored set with the current scan's
// filtered listings. Upserts target distinct URLs, so their completion
// order does not matter and they run concurrently. Not atomic: a
// failure after the clear is surfaced, not rolled back.
func (s *Scanner) reconcile(ctx context.Context, listings []models.ListingSummary) error {
	removed, err := s.store.Clear(ctx)
	if err != nil {
		return &StorageError{Op: "clear previous listings", Err: err}
	}
	s.logger.Debug("[scan] removed %d stored listings", removed)

	pool := utils.NewWorkerPool(s.concurrency, 0)
	var mu sync.Mutex
	var firstErr error

	for _, l := range listings {
		l := l
		pool.Submit(func() {
			if err := s.store.Upsert(ctx, l.URL, l.Price); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		})
	}
	pool.Wait()

	if firstErr != nil {
		return &StorageError{Op: "save listings", Err: firstErr}
	}
	s.logger.Info("[scan] stored %d listings", len(listings))
	return nil
}

// dedupeByURL keeps the first occurrence of each URL. The vendor page
// occasionally links the same property twice; collapsing here keeps the
// diff and the store consistent with each other.
func dedupeByURL(listings []models.ListingSummary) []models.ListingSummary {
	seen := utils.NewURLSet()
	out := make([]models.ListingSummary, 0, len(listings))
	for _, l := range listings {
		if seen.Add(l.URL) {
			out = append(out, l)
		}
	}
	return out
}
