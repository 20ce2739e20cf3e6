package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Dan9191/wealthwise/internal/engine"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port     string
	LogLevel string

	// DBConn enables the PostgreSQL quote store when set
	DBConn string
	// RedisAddr selects the redis quote cache when set
	RedisAddr     string
	QuoteCacheTTL time.Duration

	AlphaVantageKey        string
	AlphaVantageURL        string
	AlphaVantageDailyLimit int
	QuoteRefreshSpec       string

	// JWTSecret enables bearer authentication on /api routes when set
	JWTSecret   string
	CORSOrigins []string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string

	Currency        string
	BudgetPolicy    engine.BudgetPolicy
	InsurancePolicy engine.InsurancePolicy
}

// NewConfig loads configuration from environment variables. A .env file in
// the working directory is read first when present.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()
	return fromEnv()
}

func fromEnv() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DBConn:           getEnv("DB_CONN", ""),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		AlphaVantageKey:  getEnv("ALPHA_VANTAGE_KEY", ""),
		AlphaVantageURL:  getEnv("ALPHA_VANTAGE_URL", "https://www.alphavantage.co/query"),
		QuoteRefreshSpec: getEnv("QUOTE_REFRESH_SPEC", "@every 5m"),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		CORSOrigins:      splitList(getEnv("CORS_ORIGINS", "*")),
		SMTPHost:         getEnv("SMTP_HOST", "localhost"),
		SMTPPort:         getEnv("SMTP_PORT", "25"),
		SMTPUsername:     getEnv("SMTP_USERNAME", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		SenderEmail:      getEnv("SENDER_EMAIL", "reports@wealthwise.local"),
		Currency:         strings.ToUpper(getEnv("CURRENCY", "INR")),
	}

	ttl, err := time.ParseDuration(getEnv("QUOTE_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid QUOTE_CACHE_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("QUOTE_CACHE_TTL must be positive")
	}
	cfg.QuoteCacheTTL = ttl

	limit, err := strconv.Atoi(getEnv("ALPHA_VANTAGE_DAILY_LIMIT", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid ALPHA_VANTAGE_DAILY_LIMIT: %w", err)
	}
	cfg.AlphaVantageDailyLimit = limit

	if cfg.BudgetPolicy, err = engine.ParseBudgetPolicy(getEnv("BUDGET_POLICY", "auto")); err != nil {
		return nil, fmt.Errorf("invalid BUDGET_POLICY: %w", err)
	}
	if cfg.InsurancePolicy, err = engine.ParseInsurancePolicy(getEnv("INSURANCE_POLICY", "auto")); err != nil {
		return nil, fmt.Errorf("invalid INSURANCE_POLICY: %w", err)
	}

	if cfg.Port == "" {
		return nil, fmt.Errorf("PORT is required")
	}
	if cfg.QuoteRefreshSpec == "" {
		return nil, fmt.Errorf("QUOTE_REFRESH_SPEC is required")
	}

	return cfg, nil
}

// Policy returns the engine policy selected by configuration
func (c *Config) Policy() engine.Policy {
	return engine.Policy{
		Budget:    c.BudgetPolicy,
		Insurance: c.InsurancePolicy,
		Currency:  c.Currency,
	}
}

// AuthEnabled reports whether /api routes require a bearer token
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
