package models

import "gonum.org/v1/gonum/floats"

// Allocation is a percentage split across the six asset classes
type Allocation struct {
	Equity      float64 `json:"equity"`
	MutualFunds float64 `json:"mutualFunds"`
	IndexFunds  float64 `json:"indexFunds"`
	Gold        float64 `json:"gold"`
	FixedIncome float64 `json:"fixedIncome"`
	Crypto      float64 `json:"crypto"`
}

// AssetClasses lists the asset-class tags in display order
var AssetClasses = []string{"equity", "mutualFunds", "indexFunds", "gold", "fixedIncome", "crypto"}

// Values returns the percentages in AssetClasses order
func (a Allocation) Values() []float64 {
	return []float64{a.Equity, a.MutualFunds, a.IndexFunds, a.Gold, a.FixedIncome, a.Crypto}
}

// Total returns the sum of all percentages
func (a Allocation) Total() float64 {
	return floats.Sum(a.Values())
}

// InvestmentPortfolio is the output of the portfolio allocator
type InvestmentPortfolio struct {
	RiskProfile            RiskProfile `json:"riskProfile"`
	OriginalRisk           RiskProfile `json:"originalRisk"`
	AdjustedRisk           RiskProfile `json:"adjustedRisk"`
	RiskAdjusted           bool        `json:"riskAdjusted"`
	EquityCapped           bool        `json:"equityCapped"`
	Allocation             Allocation  `json:"allocation"`
	TotalMonthlyInvestment float64     `json:"totalMonthlyInvestment"`
}
