package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"immo-scanner/models"
)

// MemoryStore keeps listings in process memory. It backs the service
// when no database is configured and doubles as the test store. Safe
// for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]models.StoredListing

	// now is swappable so tests control timestamps.
	now func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]models.StoredListing),
		now:     time.Now,
	}
}

// FetchAll returns every stored listing, most recently scraped first.
func (m *MemoryStore) FetchAll(ctx context.Context) ([]models.StoredListing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	listings := make([]models.StoredListing, 0, len(m.records))
	for _, l := range m.records {
		listings = append(listings, l)
	}
	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].ScrapedAt.After(listings[j].ScrapedAt)
	})
	return listings, nil
}

// Upsert inserts or replaces the record for url, refreshing its
// scraped-at timestamp.
func (m *MemoryStore) Upsert(ctx context.Context, url, price string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[url] = models.StoredListing{URL: url, Price: price, ScrapedAt: m.now()}
	return nil
}

// Clear removes every record and returns how many there were.
func (m *MemoryStore) Clear(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := int64(len(m.records))
	m.records = make(map[string]models.StoredListing)
	return n, nil
}

func (m *MemoryStore) Close() error { return nil }
