package engine

import (
	"testing"
	"time"

	"github.com/Dan9191/wealthwise/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ProfileOnly(t *testing.T) {
	e := New(Policy{}, NewSeededRandom(1))
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	profile := Normalize(models.AnalyzeRequest{
		Salary: f64(80000),
		Age:    intp(28),
		Risk:   "aggressive",
		City:   "metro",
		Goals:  []string{"emergency", "house"},
	})

	r := e.Run(Input{ReportID: "r-1", Now: now, Profile: profile})

	assert.Equal(t, "r-1", r.ReportID)
	assert.Equal(t, now, r.GeneratedAt)
	assert.Equal(t, models.ModeProfileOnly, r.ScoreCard.Mode)
	assert.Equal(t, "fixed", r.BudgetPlan.Policy)
	assert.Equal(t, "income", r.InsuranceRecommendation.Policy)
	assert.Equal(t, r.FinancialDiscipline.Components.Sum(), r.FinancialDiscipline.Score)
	assert.Equal(t, models.RiskAggressive, r.Profile.Risk)
	assert.Equal(t, r.Adjustment.InsurancePriority, r.InsuranceRecommendation.Priority)
	assert.Equal(t, 100.0, r.InvestmentPortfolio.Allocation.Total())
	assert.Equal(t, 16000.0, r.InvestmentPortfolio.TotalMonthlyInvestment)
	assert.Len(t, r.GoalPlanning.Goals, 2)
	assert.Nil(t, r.Analysis.PortfolioInsights)
	assert.Equal(t, "June 2025", r.MonthlyReport.Month)
	assert.Equal(t, "HOLD", r.SellAnalysis.Advice)
	assert.NotEmpty(t, r.NextActions)

	require.Len(t, r.StockRecommendations, len(DefaultUniverse()))
	for _, s := range r.StockRecommendations {
		assert.Equal(t, models.SourceFallback, s.PriceSource)
		assert.Equal(t, 2025, s.Forecast.Current.Year)
	}
}

func TestRun_PortfolioAware(t *testing.T) {
	e := New(Policy{}, NewSeededRandom(2))
	profile := healthyProfile()
	profile.Risk = models.RiskModerate
	universe := DefaultUniverse()
	universe[2].Price = 3500

	r := e.Run(Input{
		Profile:      profile,
		Positions:    threeSectorPortfolio(),
		Universe:     universe,
		PriceSources: map[string]string{"TCS": models.SourceLive},
	})

	assert.Equal(t, models.ModePortfolioAware, r.ScoreCard.Mode)
	assert.Equal(t, "expense", r.BudgetPlan.Policy)
	assert.Equal(t, "dependents", r.InsuranceRecommendation.Policy)
	assert.Equal(t, 50000.0, r.BudgetPlan.EligibleInvestmentAmount)
	require.NotNil(t, r.Analysis.PortfolioInsights)
	assert.Len(t, r.Positions, 3)

	tcs := r.StockRecommendations[2]
	assert.Equal(t, "TCS", tcs.Ticker)
	assert.Equal(t, models.SourceLive, tcs.PriceSource)
	assert.Equal(t, 3500.0, tcs.Forecast.Current.Price)
	assert.Equal(t, models.SourceFallback, r.StockRecommendations[0].PriceSource)
}

func TestRun_PinnedPolicyOverridesMode(t *testing.T) {
	e := New(Policy{Budget: BudgetFixed, Insurance: InsuranceIncome}, NewSeededRandom(3))

	r := e.Run(Input{Profile: healthyProfile(), Positions: threeSectorPortfolio()})

	assert.Equal(t, models.ModePortfolioAware, r.ScoreCard.Mode)
	assert.Equal(t, "fixed", r.BudgetPlan.Policy)
	assert.Equal(t, "income", r.InsuranceRecommendation.Policy)
}

func TestRun_LowDisciplineShortfall(t *testing.T) {
	e := New(Policy{Budget: BudgetExpense}, NewSeededRandom(4))
	profile := Normalize(models.AnalyzeRequest{
		Salary:           f64(40000),
		Risk:             "aggressive",
		FixedExpenses:    f64(30000),
		VariableExpenses: f64(15000),
	})

	r := e.Run(Input{Profile: profile})

	assert.Less(t, r.FinancialDiscipline.Score, 50)
	assert.Equal(t, models.RiskModerate, r.Adjustment.AdjustedRisk)
	assert.True(t, r.InvestmentPortfolio.RiskAdjusted)
	assert.LessOrEqual(t, r.InvestmentPortfolio.Allocation.Equity, 25.0)
	assert.Equal(t, 0.0, r.InvestmentPortfolio.TotalMonthlyInvestment)
	assert.Equal(t, "Expense Optimization Required", r.BudgetPlan.Strategy)
	assert.Contains(t, r.NextActions, "Cut discretionary spending before starting new SIPs.")
	assert.Equal(t, models.PriorityHigh, r.InsuranceRecommendation.Priority)
}

func TestBuildCharts(t *testing.T) {
	e := New(Policy{}, NewSeededRandom(5))
	r := e.Run(Input{Profile: healthyProfile(), Now: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)})

	charts := r.Charts

	pie := 0.0
	for _, slice := range charts.PortfolioPie {
		pie += slice.Value
	}
	assert.Equal(t, 100.0, pie)
	assert.Len(t, charts.PortfolioPie, len(models.AssetClasses))
	assert.Len(t, charts.ScoreBreakdown, 5)
	assert.Len(t, charts.DisciplineComponents, 5)
	assert.Len(t, charts.StockComparison, len(r.StockRecommendations))
	require.Len(t, charts.ForecastLines, len(r.StockRecommendations))
	assert.Len(t, charts.ForecastLines[0].Points, 11)

	require.Len(t, charts.InvestmentGrowth, 11)
	assert.Equal(t, 2025, charts.InvestmentGrowth[0].Year)
	assert.Equal(t, 0.0, charts.InvestmentGrowth[0].Amount)
	assert.Equal(t, r.InvestmentPortfolio.TotalMonthlyInvestment*12, charts.InvestmentGrowth[1].Amount)
}

func TestDiscipline(t *testing.T) {
	e := New(Policy{}, nil)
	p := models.FinancialProfile{Salary: 20000, Expenses: 19000, Risk: models.RiskAggressive}

	d := e.Discipline(p, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 36, d.FinancialDiscipline.Score)
	assert.Equal(t, "Undisciplined", d.FinancialDiscipline.Level)
	assert.Equal(t, models.RiskModerate, d.Adjustment.AdjustedRisk)
	assert.Equal(t, "July 2025", d.MonthlyReport.Month)
	assert.Equal(t, "D", d.MonthlyReport.Grade)
}
