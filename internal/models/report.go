package models

import "time"

// NamedValue is a single chart datum
type NamedValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// GrowthPoint represents the projected invested amount for a year
type GrowthPoint struct {
	Year   int     `json:"year"`
	Amount float64 `json:"amount"`
}

// ForecastLine is the chart series of one instrument
type ForecastLine struct {
	Ticker string       `json:"ticker"`
	Points []PricePoint `json:"points"`
}

// Charts are chart-ready projections of the report
type Charts struct {
	PortfolioPie         []NamedValue   `json:"portfolioPie"`
	InvestmentGrowth     []GrowthPoint  `json:"investmentGrowth"`
	ScoreBreakdown       []NamedValue   `json:"scoreBreakdown"`
	DisciplineComponents []NamedValue   `json:"disciplineComponents"`
	StockComparison      []NamedValue   `json:"stockComparison"`
	ForecastLines        []ForecastLine `json:"forecastLines"`
}

// SellAnalysis is general hold/sell advice
type SellAnalysis struct {
	Advice    string   `json:"advice"`
	Reasoning string   `json:"reasoning"`
	Risks     []string `json:"risks"`
}

// Report is the full analysis output
type Report struct {
	ReportID                string                  `json:"reportId"`
	GeneratedAt             time.Time               `json:"generatedAt"`
	Profile                 FinancialProfile        `json:"profile"`
	FinancialDiscipline     DisciplineScore         `json:"financialDiscipline"`
	Adjustment              Adjustment              `json:"adjustment"`
	BudgetPlan              BudgetPlan              `json:"budgetPlan"`
	InsuranceRecommendation InsuranceRecommendation `json:"insuranceRecommendation"`
	InvestmentPortfolio     InvestmentPortfolio     `json:"investmentPortfolio"`
	StockRecommendations    []StockRecommendation   `json:"stockRecommendations"`
	SellAnalysis            SellAnalysis            `json:"sellAnalysis"`
	GoalPlanning            GoalPlanning            `json:"goalPlanning"`
	ScoreCard               ScoreCard               `json:"scoreCard"`
	Analysis                Analysis                `json:"analysis"`
	Positions               []Position              `json:"positions,omitempty"`
	MonthlyReport           MonthlyReport           `json:"monthlyReport"`
	NextActions             []string                `json:"nextActions"`
	Charts                  Charts                  `json:"charts"`
}
