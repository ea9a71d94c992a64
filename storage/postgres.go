package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"immo-scanner/models"
	"immo-scanner/utils"
)

// PostgresStore persists listings to PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection to PostgreSQL, runs the schema
// migration, and returns a ready-to-use store. Connecting retries with
// back-off so a database that is still starting up does not kill the
// service.
func NewPostgresStore(dsn string, logger *utils.Logger) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	retry := &utils.RetryConfig{
		MaxAttempts: 5,
		BaseDelay:   2 * time.Second,
		Logger:      logger,
	}
	if err := retry.Do("postgres-ping", db.Ping); err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}

	ps := &PostgresStore{db: db}
	if err := ps.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return ps, nil
}

func (ps *PostgresStore) migrate() error {
	_, err := ps.db.Exec(`
		CREATE TABLE IF NOT EXISTS listings (
			url        TEXT        PRIMARY KEY,
			price      TEXT        NOT NULL DEFAULT '',
			scraped_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_listings_scraped_at ON listings(scraped_at DESC);
	`)
	return err
}

// FetchAll retrieves all stored listings, most recently scraped first.
func (ps *PostgresStore) FetchAll(ctx context.Context) ([]models.StoredListing, error) {
	rows, err := ps.db.QueryContext(ctx, `
		SELECT url, price, scraped_at
		FROM listings
		ORDER BY scraped_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch all: %w", err)
	}
	defer rows.Close()

	var listings []models.StoredListing
	for rows.Next() {
		var l models.StoredListing
		if err := rows.Scan(&l.URL, &l.Price, &l.ScrapedAt); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// Upsert inserts the listing or, on URL conflict, updates its price and
// refreshes the scraped-at timestamp.
func (ps *PostgresStore) Upsert(ctx context.Context, url, price string) error {
	_, err := ps.db.ExecContext(ctx, `
		INSERT INTO listings (url, price)
		VALUES ($1, $2)
		ON CONFLICT (url) DO UPDATE
		SET price = EXCLUDED.price, scraped_at = NOW()
	`, url, price)
	if err != nil {
		return fmt.Errorf("postgres: upsert %s: %w", url, err)
	}
	return nil
}

// Clear deletes all stored listings and returns how many were removed.
func (ps *PostgresStore) Clear(ctx context.Context) (int64, error) {
	res, err := ps.db.ExecContext(ctx, "DELETE FROM listings")
	if err != nil {
		return 0, fmt.Errorf("postgres: clear: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("postgres: clear count: %w", err)
	}
	return n, nil
}

func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
