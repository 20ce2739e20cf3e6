package models

import "time"

// Position is a held stock position
type Position struct {
	Ticker       string  `json:"ticker"`
	Sector       string  `json:"sector"`
	Price        float64 `json:"price"`
	Quantity     float64 `json:"quantity"`
	CurrentPrice float64 `json:"currentPrice,omitempty"`
	PriceSource  string  `json:"priceSource,omitempty"`
}

// MarketPrice returns the current price, falling back to the buy price
func (p Position) MarketPrice() float64 {
	if p.CurrentPrice > 0 {
		return p.CurrentPrice
	}
	return p.Price
}

// Value returns the market value of the position
func (p Position) Value() float64 {
	return p.MarketPrice() * p.Quantity
}

// Price sources
const (
	SourceLive      = "live"
	SourceCache     = "cache"
	SourceLastKnown = "last_known"
	SourceFallback  = "fallback"
)

// Quote represents a price quote for a ticker
type Quote struct {
	Ticker        string    `json:"ticker"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent string    `json:"changePercent"`
	Volume        string    `json:"volume"`
	LastUpdated   time.Time `json:"lastUpdated"`
	Source        string    `json:"source,omitempty"`
}
