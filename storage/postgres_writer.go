package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/crstnhllg/realtor-scraper/models"
)

// PostgresWriter is an optional second sink, enabled when a database URL is
// configured. The CSV file stays the primary output either way.
type PostgresWriter struct {
	pool *pgxpool.Pool
}

func NewPostgresWriter(databaseURL string) (*PostgresWriter, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect postgres: %w", err)
	}

	return &PostgresWriter{pool: pool}, nil
}

func (w *PostgresWriter) Close() {
	if w.pool != nil {
		w.pool.Close()
	}
}

func (w *PostgresWriter) EnsureSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	sql := `
	CREATE TABLE IF NOT EXISTS listings (
		id BIGSERIAL PRIMARY KEY,
		status TEXT NOT NULL,
		price TEXT NOT NULL,
		beds TEXT,
		baths TEXT,
		sqft TEXT,
		lot_size TEXT,
		address TEXT NOT NULL,
		url TEXT NOT NULL,
		scraped_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`

	if _, err := w.pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	return nil
}

// WriteBatch inserts all listings in one round trip. Rows are plain
// appends; each run records what it saw.
func (w *PostgresWriter) WriteBatch(listings []models.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	batch := &pgx.Batch{}
	insertSQL := `
	INSERT INTO listings (status, price, beds, baths, sqft, lot_size, address, url)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	for _, l := range listings {
		batch.Queue(insertSQL, l.Status, l.Price, l.Beds, l.Baths, l.Sqft, l.LotSize, l.Address, l.URL)
	}

	results := w.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(listings); i++ {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("batch insert failed at row %d: %w", i, err)
		}
	}

	return nil
}
