package engine

import (
	"math"
	"math/rand/v2"

	"github.com/Dan9191/wealthwise/internal/models"
)

const forecastYears = 5

// RandomSource yields uniform values in [0, 1)
type RandomSource interface {
	Float64() float64
}

type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() }

// NewRandom returns a source backed by the runtime's global generator. It is
// safe for concurrent use and is seeded fresh per process.
func NewRandom() RandomSource {
	return globalRandom{}
}

// NewSeededRandom returns a deterministic source. It is not safe for concurrent use.
func NewSeededRandom(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// DefaultUniverse is the fixed instrument list the forecast runs on
func DefaultUniverse() []models.Instrument {
	return []models.Instrument{
		{Ticker: "RELIANCE", Name: "Reliance Industries", Sector: "Energy", Price: 2450, Signal: "BUY", Reason: "5G & Green Energy pivot", Growth: 0.12, Volatility: 0.05},
		{Ticker: "HDFCBANK", Name: "HDFC Bank", Sector: "Banking", Price: 1600, Signal: "HOLD", Reason: "Merger synergies pending", Growth: 0.10, Volatility: 0.04},
		{Ticker: "TCS", Name: "Tata Consultancy", Sector: "IT", Price: 3400, Signal: "BUY", Reason: "Strong AI deal pipeline", Growth: 0.15, Volatility: 0.08},
		{Ticker: "INFY", Name: "Infosys", Sector: "IT", Price: 1400, Signal: "BUY", Reason: "Undervalued vs Peers", Growth: 0.14, Volatility: 0.09},
		{Ticker: "ITC", Name: "ITC Ltd", Sector: "FMCG", Price: 450, Signal: "HOLD", Reason: "Defensive dividend stock", Growth: 0.08, Volatility: 0.03},
	}
}

// noise draws a multiplicative factor uniformly from [1-v/2, 1+v/2)
func noise(rng RandomSource, volatility float64) float64 {
	return 1 + (rng.Float64()*volatility - volatility/2)
}

// GenerateForecast synthesizes five past and five future yearly prices
// around the current price using compound growth and bounded noise.
// Output is non-deterministic unless rng is seeded.
func GenerateForecast(inst models.Instrument, currentYear int, rng RandomSource) models.Forecast {
	f := models.Forecast{
		History: make([]models.PricePoint, 0, forecastYears),
		Current: models.PricePoint{Year: currentYear, Price: inst.Price},
		Future:  make([]models.PricePoint, 0, forecastYears),
	}

	for i := forecastYears; i > 0; i-- {
		price := inst.Price / math.Pow(1+inst.Growth, float64(i)) * noise(rng, inst.Volatility)
		f.History = append(f.History, models.PricePoint{Year: currentYear - i, Price: math.Round(price)})
	}

	for i := 1; i <= forecastYears; i++ {
		price := inst.Price * math.Pow(1+inst.Growth, float64(i)) * noise(rng, inst.Volatility)
		f.Future = append(f.Future, models.PricePoint{Year: currentYear + i, Price: math.Round(price)})
	}

	f.ProjectedPrice5Y = f.Future[len(f.Future)-1].Price
	f.PotentialReturn = math.Round(safeRatio(f.ProjectedPrice5Y-inst.Price, inst.Price) * 100)
	return f
}

// RecommendStocks forecasts every instrument of the universe
func RecommendStocks(universe []models.Instrument, currentYear int, rng RandomSource) []models.StockRecommendation {
	recs := make([]models.StockRecommendation, 0, len(universe))
	for _, inst := range universe {
		recs = append(recs, models.StockRecommendation{
			Instrument: inst,
			Forecast:   GenerateForecast(inst, currentYear, rng),
		})
	}
	return recs
}
