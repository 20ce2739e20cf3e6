package models

// Instrument is a stock in the recommendation universe
type Instrument struct {
	Ticker     string  `json:"ticker"`
	Name       string  `json:"name"`
	Sector     string  `json:"sector"`
	Price      float64 `json:"price"`
	Signal     string  `json:"signal"`
	Reason     string  `json:"reason"`
	Growth     float64 `json:"growth"`
	Volatility float64 `json:"volatility"`
}

// PricePoint is a yearly price observation or projection
type PricePoint struct {
	Year  int     `json:"year"`
	Price float64 `json:"price"`
}

// Forecast is the synthetic price series of one instrument
type Forecast struct {
	History          []PricePoint `json:"history"`
	Current          PricePoint   `json:"current"`
	Future           []PricePoint `json:"future"`
	ProjectedPrice5Y float64      `json:"projectedPrice5Y"`
	PotentialReturn  float64      `json:"potentialReturn"`
}

// Series returns history, current and future points in year order
func (f Forecast) Series() []PricePoint {
	points := make([]PricePoint, 0, len(f.History)+1+len(f.Future))
	points = append(points, f.History...)
	points = append(points, f.Current)
	points = append(points, f.Future...)
	return points
}

// StockRecommendation is an instrument with its forecast
type StockRecommendation struct {
	Instrument
	PriceSource string   `json:"priceSource"`
	Forecast    Forecast `json:"forecast"`
}
