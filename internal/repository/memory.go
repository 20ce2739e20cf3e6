package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/Dan9191/wealthwise/internal/models"
)

// MemoryQuoteStore is a QuoteStore used when no database is configured.
// Prices are lost on restart.
type MemoryQuoteStore struct {
	mu     sync.RWMutex
	quotes map[string]models.Quote
}

// NewMemoryQuoteStore creates an empty in-memory store
func NewMemoryQuoteStore() *MemoryQuoteStore {
	return &MemoryQuoteStore{quotes: make(map[string]models.Quote)}
}

// SaveQuote stores the latest price of a ticker
func (s *MemoryQuoteStore) SaveQuote(_ context.Context, q models.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes[strings.ToUpper(q.Ticker)] = q
	return nil
}

// LastQuote returns the last stored price of a ticker
func (s *MemoryQuoteStore) LastQuote(_ context.Context, ticker string) (models.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quotes[strings.ToUpper(ticker)]
	if !ok {
		return models.Quote{}, ErrQuoteNotFound
	}
	q.Source = models.SourceLastKnown
	return q, nil
}
