package storage

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreOrdersByScrapeTimeDesc(t *testing.T) {
	store := NewMemoryStore()
	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time {
		current = current.Add(time.Second)
		return current
	}

	ctx := context.Background()
	store.Upsert(ctx, "https://www.immobiliare.it/annunci/old/", "€ 100")
	store.Upsert(ctx, "https://www.immobiliare.it/annunci/new/", "€ 200")

	records, err := store.FetchAll(ctx)
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].URL != "https://www.immobiliare.it/annunci/new/" {
		t.Errorf("most recent record first, got %q", records[0].URL)
	}
}

func TestMemoryStoreUpsertRefreshesExisting(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Upsert(ctx, "https://www.immobiliare.it/annunci/1/", "€ 100")
	store.Upsert(ctx, "https://www.immobiliare.it/annunci/1/", "€ 150")

	records, _ := store.FetchAll(ctx)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1 (keys unique by URL)", len(records))
	}
	if records[0].Price != "€ 150" {
		t.Errorf("price = %q; upsert must update it", records[0].Price)
	}
}

func TestMemoryStoreClearReportsCount(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Upsert(ctx, "https://www.immobiliare.it/annunci/1/", "€ 100")
	store.Upsert(ctx, "https://www.immobiliare.it/annunci/2/", "€ 200")

	n, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 2 {
		t.Errorf("cleared %d, want 2", n)
	}

	records, _ := store.FetchAll(ctx)
	if len(records) != 0 {
		t.Errorf("store not empty after Clear: %v", records)
	}
}
