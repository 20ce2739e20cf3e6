package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Dan9191/wealthwise/internal/config"
	"github.com/Dan9191/wealthwise/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNotConfigured is returned when no API key is set
	ErrNotConfigured = errors.New("alpha vantage API key not configured")
	// ErrRateLimited is returned when the daily budget is spent or the API asks us to back off
	ErrRateLimited = errors.New("alpha vantage rate limit reached")
	// ErrSymbolNotFound is returned when the API has no quote for a symbol
	ErrSymbolNotFound = errors.New("symbol not found")
)

// Client handles integration with the Alpha Vantage quote API
type Client struct {
	url    string
	apiKey string
	client *http.Client
	log    *logrus.Logger

	mu         sync.Mutex
	dailyLimit int
	used       int
	day        string
	now        func() time.Time
}

// NewClient initializes a new Alpha Vantage client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url:    cfg.AlphaVantageURL,
		apiKey: cfg.AlphaVantageKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log:        log,
		dailyLimit: cfg.AlphaVantageDailyLimit,
		now:        time.Now,
	}
}

type globalQuoteResponse struct {
	Note         string            `json:"Note"`
	Information  string            `json:"Information"`
	ErrorMessage string            `json:"Error Message"`
	GlobalQuote  map[string]string `json:"Global Quote"`
}

// Symbol maps a ticker to an exchange-qualified symbol. Tickers without an
// exchange suffix are looked up on the NSE.
func Symbol(ticker string) string {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if strings.Contains(ticker, ".") {
		return ticker
	}
	return ticker + ".NSE"
}

// Remaining returns how many requests are left in today's budget.
// A non-positive limit means the budget is not enforced.
func (c *Client) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rollDay()
	if c.dailyLimit <= 0 {
		return -1
	}
	return c.dailyLimit - c.used
}

// rollDay resets the counter at the first call of a new UTC day. Callers hold mu.
func (c *Client) rollDay() {
	today := c.now().UTC().Format("2006-01-02")
	if today != c.day {
		c.day = today
		c.used = 0
	}
}

func (c *Client) checkRateLimit() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rollDay()
	if c.dailyLimit > 0 && c.used >= c.dailyLimit {
		return fmt.Errorf("%w: daily limit of %d requests used", ErrRateLimited, c.dailyLimit)
	}
	c.used++
	return nil
}

// sendRequest sends a GLOBAL_QUOTE request for symbol
func (c *Client) sendRequest(ctx context.Context, symbol string) ([]byte, error) {
	params := url.Values{}
	params.Set("function", "GLOBAL_QUOTE")
	params.Set("symbol", symbol)
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debugf("Alpha Vantage response for %s: %s", symbol, string(body))

	return body, nil
}

// parseGlobalQuote extracts a quote from a GLOBAL_QUOTE response body
func parseGlobalQuote(body []byte, ticker string) (models.Quote, error) {
	var resp globalQuoteResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return models.Quote{}, fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.Note != "" || resp.Information != "" {
		return models.Quote{}, fmt.Errorf("%w: %s%s", ErrRateLimited, resp.Note, resp.Information)
	}
	if resp.ErrorMessage != "" || len(resp.GlobalQuote) == 0 {
		return models.Quote{}, fmt.Errorf("%w: %s", ErrSymbolNotFound, ticker)
	}

	raw, ok := resp.GlobalQuote["05. price"]
	if !ok {
		return models.Quote{}, fmt.Errorf("%w: %s", ErrSymbolNotFound, ticker)
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.Quote{}, fmt.Errorf("failed to parse price %q: %w", raw, err)
	}
	change, _ := strconv.ParseFloat(resp.GlobalQuote["09. change"], 64)

	return models.Quote{
		Ticker:        ticker,
		Price:         price,
		Change:        change,
		ChangePercent: resp.GlobalQuote["10. change percent"],
		Volume:        resp.GlobalQuote["06. volume"],
		Source:        models.SourceLive,
	}, nil
}

// GetQuote retrieves the latest quote for ticker
func (c *Client) GetQuote(ctx context.Context, ticker string) (models.Quote, error) {
	if c.apiKey == "" {
		return models.Quote{}, ErrNotConfigured
	}
	if err := c.checkRateLimit(); err != nil {
		return models.Quote{}, err
	}

	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	body, err := c.sendRequest(ctx, Symbol(ticker))
	if err != nil {
		return models.Quote{}, err
	}

	quote, err := parseGlobalQuote(body, ticker)
	if err != nil {
		return models.Quote{}, err
	}
	quote.LastUpdated = c.now().UTC()

	c.log.WithField("remaining_today", c.Remaining()).Infof("Retrieved quote for %s: %.2f", ticker, quote.Price)
	return quote, nil
}
