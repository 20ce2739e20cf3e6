package quotes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dan9191/wealthwise/internal/integrations/alphavantage"
	"github.com/Dan9191/wealthwise/internal/models"
	"github.com/Dan9191/wealthwise/internal/repository"
	"github.com/sirupsen/logrus"
)

// Source fetches live quotes
type Source interface {
	GetQuote(ctx context.Context, ticker string) (models.Quote, error)
}

// Provider resolves prices through the cache, the live source and the last
// known price, in that order
type Provider struct {
	source Source
	cache  repository.QuoteCache
	store  repository.QuoteStore
	log    *logrus.Logger
}

// NewProvider creates a quote provider
func NewProvider(source Source, cache repository.QuoteCache, store repository.QuoteStore, log *logrus.Logger) *Provider {
	return &Provider{
		source: source,
		cache:  cache,
		store:  store,
		log:    log,
	}
}

// Quote returns the freshest available quote for ticker. When the live
// source fails the last stored price is returned instead; the live error is
// returned only when nothing was ever stored.
func (p *Provider) Quote(ctx context.Context, ticker string) (models.Quote, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))

	if q, ok := p.cached(ctx, ticker); ok {
		return q, nil
	}

	q, liveErr := p.fetch(ctx, ticker)
	if liveErr == nil {
		return q, nil
	}

	last, err := p.store.LastQuote(ctx, ticker)
	if err == nil {
		p.log.Warnf("Using last known price for %s: %v", ticker, liveErr)
		return last, nil
	}
	if !errors.Is(err, repository.ErrQuoteNotFound) {
		p.log.Errorf("Failed to read last known price for %s: %v", ticker, err)
	}
	return models.Quote{}, fmt.Errorf("failed to get quote for %s: %w", ticker, liveErr)
}

// PriceFor returns the price of ticker and where it came from. When no quote
// can be found the fallback price is returned with the fallback source.
func (p *Provider) PriceFor(ctx context.Context, ticker string, fallback float64) (float64, string) {
	q, err := p.Quote(ctx, ticker)
	if err != nil || q.Price <= 0 {
		return fallback, models.SourceFallback
	}
	return q.Price, q.Source
}

// Refresh fetches live quotes for every ticker, bypassing the cache. It stops
// early when the source is rate limited and returns how many were refreshed.
func (p *Provider) Refresh(ctx context.Context, tickers []string) (int, error) {
	refreshed := 0
	for _, ticker := range tickers {
		if err := ctx.Err(); err != nil {
			return refreshed, err
		}
		_, err := p.fetch(ctx, strings.ToUpper(ticker))
		switch {
		case err == nil:
			refreshed++
		case errors.Is(err, alphavantage.ErrRateLimited), errors.Is(err, alphavantage.ErrNotConfigured):
			return refreshed, err
		default:
			p.log.Warnf("Failed to refresh %s: %v", ticker, err)
		}
	}
	return refreshed, nil
}

func (p *Provider) cached(ctx context.Context, ticker string) (models.Quote, bool) {
	q, ok, err := p.cache.Get(ctx, ticker)
	if err != nil {
		p.log.Warnf("Quote cache read failed for %s: %v", ticker, err)
		return models.Quote{}, false
	}
	if !ok {
		return models.Quote{}, false
	}
	q.Source = models.SourceCache
	return q, true
}

// fetch gets a live quote and records it in the cache and the store
func (p *Provider) fetch(ctx context.Context, ticker string) (models.Quote, error) {
	q, err := p.source.GetQuote(ctx, ticker)
	if err != nil {
		return models.Quote{}, err
	}
	if err := p.cache.Set(ctx, q); err != nil {
		p.log.Warnf("Quote cache write failed for %s: %v", ticker, err)
	}
	if err := p.store.SaveQuote(ctx, q); err != nil {
		p.log.Errorf("Failed to store quote for %s: %v", ticker, err)
	}
	return q, nil
}
