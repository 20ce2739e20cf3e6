package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Refresher refreshes quotes for a list of tickers
type Refresher interface {
	Refresh(ctx context.Context, tickers []string) (int, error)
}

// QuoteRefreshJob keeps the quote cache and last known prices of the stock
// universe warm between requests
type QuoteRefreshJob struct {
	refresher Refresher
	tickers   []string
	timeout   time.Duration
	log       *logrus.Logger
}

// NewQuoteRefreshJob creates the refresh job for tickers
func NewQuoteRefreshJob(refresher Refresher, tickers []string, log *logrus.Logger) *QuoteRefreshJob {
	return &QuoteRefreshJob{
		refresher: refresher,
		tickers:   tickers,
		timeout:   time.Minute,
		log:       log,
	}
}

// Name returns the job name
func (j *QuoteRefreshJob) Name() string {
	return "quote_refresh"
}

// Run refreshes every ticker once
func (j *QuoteRefreshJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	n, err := j.refresher.Refresh(ctx, j.tickers)
	if err != nil {
		return fmt.Errorf("refreshed %d of %d quotes: %w", n, len(j.tickers), err)
	}
	j.log.Infof("Refreshed %d of %d quotes", n, len(j.tickers))
	return nil
}
