package engine

import (
	"math"

	"github.com/Dan9191/wealthwise/internal/models"
)

const (
	equityCapBelow  = 60
	maxCappedEquity = 25
)

var allocationTable = map[models.RiskProfile]models.Allocation{
	models.RiskAggressive:   {Equity: 50, MutualFunds: 25, IndexFunds: 10, Gold: 5, FixedIncome: 5, Crypto: 5},
	models.RiskModerate:     {Equity: 30, MutualFunds: 30, IndexFunds: 20, Gold: 10, FixedIncome: 10, Crypto: 0},
	models.RiskConservative: {Equity: 10, MutualFunds: 20, IndexFunds: 30, Gold: 15, FixedIncome: 25, Crypto: 0},
}

// AllocationFor returns the base allocation of a risk tier. Unknown tiers get
// the moderate allocation.
func AllocationFor(risk models.RiskProfile) models.Allocation {
	if a, ok := allocationTable[risk]; ok {
		return a
	}
	return allocationTable[models.RiskModerate]
}

// CapEquity limits equity to 25% when the discipline score is below 60,
// moving the excess into fixed income. It returns a new allocation, keeps
// the total at 100 and is idempotent.
func CapEquity(a models.Allocation, disciplineScore int) models.Allocation {
	if disciplineScore >= equityCapBelow {
		return a
	}
	excess := math.Max(0, a.Equity-maxCappedEquity)
	capped := a
	capped.Equity -= excess
	capped.FixedIncome += excess
	return capped
}

// BuildPortfolio allocates the adjusted risk tier and applies the equity cap
func BuildPortfolio(p models.AdjustedProfile, disciplineScore int, monthlyInvestment float64) models.InvestmentPortfolio {
	base := AllocationFor(p.AdjustedRisk)
	capped := CapEquity(base, disciplineScore)
	return models.InvestmentPortfolio{
		RiskProfile:            p.AdjustedRisk,
		OriginalRisk:           p.OriginalRisk,
		AdjustedRisk:           p.AdjustedRisk,
		RiskAdjusted:           p.OriginalRisk != p.AdjustedRisk,
		EquityCapped:           capped != base,
		Allocation:             capped,
		TotalMonthlyInvestment: monthlyInvestment,
	}
}
