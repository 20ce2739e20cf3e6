package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Dan9191/wealthwise/internal/models"
)

// ErrQuoteNotFound is returned when no price has ever been stored for a ticker
var ErrQuoteNotFound = errors.New("quote not found")

// QuoteStore keeps the last known price of every ticker
type QuoteStore interface {
	SaveQuote(ctx context.Context, q models.Quote) error
	LastQuote(ctx context.Context, ticker string) (models.Quote, error)
}

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the quote table when it does not exist yet
func (r *Repository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE SCHEMA IF NOT EXISTS wealthwise;
		CREATE TABLE IF NOT EXISTS wealthwise.quotes (
			ticker         TEXT PRIMARY KEY,
			price          NUMERIC(18, 4) NOT NULL,
			change         NUMERIC(18, 4) NOT NULL DEFAULT 0,
			change_percent TEXT NOT NULL DEFAULT '',
			volume         TEXT NOT NULL DEFAULT '',
			updated_at     TIMESTAMPTZ NOT NULL
		)`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create quote schema: %w", err)
	}
	return nil
}

// SaveQuote upserts the latest price of a ticker
func (r *Repository) SaveQuote(ctx context.Context, q models.Quote) error {
	query := `
		INSERT INTO wealthwise.quotes (ticker, price, change, change_percent, volume, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (ticker) DO UPDATE
		SET price = EXCLUDED.price,
			change = EXCLUDED.change,
			change_percent = EXCLUDED.change_percent,
			volume = EXCLUDED.volume,
			updated_at = EXCLUDED.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		strings.ToUpper(q.Ticker), q.Price, q.Change, q.ChangePercent, q.Volume, q.LastUpdated)
	if err != nil {
		return fmt.Errorf("failed to save quote: %w", err)
	}
	return nil
}

// LastQuote retrieves the last stored price of a ticker
func (r *Repository) LastQuote(ctx context.Context, ticker string) (models.Quote, error) {
	q := models.Quote{Source: models.SourceLastKnown}
	query := `
		SELECT ticker, price, change, change_percent, volume, updated_at
		FROM wealthwise.quotes
		WHERE ticker = $1`
	err := r.db.QueryRowContext(ctx, query, strings.ToUpper(ticker)).
		Scan(&q.Ticker, &q.Price, &q.Change, &q.ChangePercent, &q.Volume, &q.LastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Quote{}, ErrQuoteNotFound
	}
	if err != nil {
		return models.Quote{}, fmt.Errorf("failed to find quote: %w", err)
	}
	return q, nil
}
