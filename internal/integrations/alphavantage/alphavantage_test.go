package alphavantage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dan9191/wealthwise/internal/config"
	"github.com/Dan9191/wealthwise/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quoteBody = `{
	"Global Quote": {
		"01. symbol": "TCS.NSE",
		"02. open": "3400.00",
		"05. price": "3452.75",
		"06. volume": "1234567",
		"09. change": "-12.50",
		"10. change percent": "-0.3607%"
	}
}`

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestClient(t *testing.T, handler http.HandlerFunc, limit int) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(&config.Config{
		AlphaVantageURL:        srv.URL,
		AlphaVantageKey:        "test-key",
		AlphaVantageDailyLimit: limit,
	}, testLogger())
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "TCS.NSE", Symbol("tcs"))
	assert.Equal(t, "RELIANCE.BSE", Symbol("RELIANCE.BSE"))
	assert.Equal(t, "IBM.NSE", Symbol(" IBM "))
}

func TestGetQuote(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GLOBAL_QUOTE", r.URL.Query().Get("function"))
		assert.Equal(t, "TCS.NSE", r.URL.Query().Get("symbol"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		_, _ = w.Write([]byte(quoteBody))
	}, 25)

	quote, err := client.GetQuote(context.Background(), "tcs")
	require.NoError(t, err)

	assert.Equal(t, "TCS", quote.Ticker)
	assert.Equal(t, 3452.75, quote.Price)
	assert.Equal(t, -12.5, quote.Change)
	assert.Equal(t, "-0.3607%", quote.ChangePercent)
	assert.Equal(t, "1234567", quote.Volume)
	assert.Equal(t, models.SourceLive, quote.Source)
	assert.False(t, quote.LastUpdated.IsZero())
	assert.Equal(t, 24, client.Remaining())
}

func TestGetQuote_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		target error
	}{
		{"rate limit note", http.StatusOK, `{"Note": "API call frequency is limited"}`, ErrRateLimited},
		{"rate limit information", http.StatusOK, `{"Information": "daily rate limit is 25 requests"}`, ErrRateLimited},
		{"too many requests", http.StatusTooManyRequests, ``, ErrRateLimited},
		{"empty quote", http.StatusOK, `{"Global Quote": {}}`, ErrSymbolNotFound},
		{"error message", http.StatusOK, `{"Error Message": "Invalid API call"}`, ErrSymbolNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, 25)

			_, err := client.GetQuote(context.Background(), "XYZ")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}

func TestGetQuote_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, 25)

	_, err := client.GetQuote(context.Background(), "TCS")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrRateLimited))
	assert.False(t, errors.Is(err, ErrSymbolNotFound))
}

func TestGetQuote_NotConfigured(t *testing.T) {
	client := NewClient(&config.Config{AlphaVantageURL: "http://127.0.0.1:0"}, testLogger())

	_, err := client.GetQuote(context.Background(), "TCS")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestDailyLimit(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(quoteBody))
	}, 2)

	day := time.Date(2025, time.May, 1, 10, 0, 0, 0, time.UTC)
	client.now = func() time.Time { return day }

	for i := 0; i < 2; i++ {
		_, err := client.GetQuote(context.Background(), "TCS")
		require.NoError(t, err)
	}
	assert.Equal(t, 0, client.Remaining())

	_, err := client.GetQuote(context.Background(), "TCS")
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, 2, calls)

	day = day.Add(24 * time.Hour)
	assert.Equal(t, 2, client.Remaining())
	_, err = client.GetQuote(context.Background(), "TCS")
	assert.NoError(t, err)
}

func TestParseGlobalQuote_BadPrice(t *testing.T) {
	_, err := parseGlobalQuote([]byte(`{"Global Quote": {"05. price": "n/a"}}`), "TCS")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrSymbolNotFound))
}

func TestGetQuote_LogsRemainingBudget(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(quoteBody))
	}))
	t.Cleanup(srv.Close)
	client := NewClient(&config.Config{
		AlphaVantageURL:        srv.URL,
		AlphaVantageKey:        "test-key",
		AlphaVantageDailyLimit: 5,
	}, log)

	_, err := client.GetQuote(context.Background(), "TCS")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"remaining_today":4`)
}
