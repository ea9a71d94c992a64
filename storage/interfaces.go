package storage

import (
	"context"

	"immo-scanner/models"
)

// ListingStore is the persistence contract for scanned listings, keyed
// by listing URL.
type ListingStore interface {
	// FetchAll returns every stored listing, most recently scraped first.
	FetchAll(ctx context.Context) ([]models.StoredListing, error)
	// Upsert inserts the listing or, on URL conflict, updates its price
	// and refreshes the scraped-at timestamp.
	Upsert(ctx context.Context, url, price string) error
	// Clear removes every stored listing and reports how many there were.
	Clear(ctx context.Context) (int64, error)
	Close() error
}
