package engine

import (
	"testing"

	"github.com/Dan9191/wealthwise/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthyProfile() models.FinancialProfile {
	return models.FinancialProfile{
		Salary:              100000,
		FixedExpenses:       30000,
		VariableExpenses:    15000,
		Expenses:            45000,
		MonthlyEMI:          5000,
		SavingsBalance:      300000,
		ExistingSIP:         20000,
		Dependents:          2,
		ExistingLifeCover:   18000000,
		ExistingHealthCover: 500000,
	}
}

func threeSectorPortfolio() []models.Position {
	return []models.Position{
		{Ticker: "TCS", Sector: "IT", Price: 3000, Quantity: 10},
		{Ticker: "HDFCBANK", Sector: "Banking", Price: 1500, Quantity: 10},
		{Ticker: "ITC", Sector: "FMCG", Price: 450, Quantity: 10},
	}
}

func TestBuildScoreCard_PortfolioAware(t *testing.T) {
	p := healthyProfile()
	gap := RecommendInsurance(p, InsuranceDependents, models.PriorityMedium).ProtectionGap

	card := BuildScoreCard(p, threeSectorPortfolio(), gap, 1.1)

	assert.Equal(t, models.ModePortfolioAware, card.Mode)
	assert.Equal(t, models.ScoreBreakdown{Budget: 20, Savings: 20, Debt: 15, Investment: 20, Insurance: 15}, card.Breakdown)
	assert.Equal(t, 90, card.TotalScore)
	assert.Equal(t, 99, card.FinalScore)
}

func TestBuildScoreCard_ProfileOnly(t *testing.T) {
	p := healthyProfile()
	p.ExistingSIP = 12000
	gap := RecommendInsurance(p, InsuranceDependents, models.PriorityMedium).ProtectionGap

	card := BuildScoreCard(p, nil, gap, 1.0)

	assert.Equal(t, models.ModeProfileOnly, card.Mode)
	assert.Equal(t, 10, card.Breakdown.Investment)
	assert.Equal(t, card.Breakdown.Sum(), card.TotalScore)
}

func TestBuildScoreCard_FinalScoreIsCapped(t *testing.T) {
	p := healthyProfile()
	p.MonthlyEMI = 0
	gap := models.ProtectionGap{
		Life:   CoverGap(100, 100),
		Health: CoverGap(100, 200),
	}

	card := BuildScoreCard(p, nil, gap, 1.1)
	assert.Equal(t, 100, card.TotalScore)
	assert.Equal(t, 100, card.FinalScore)

	card = BuildScoreCard(p, nil, gap, 0.9)
	assert.Equal(t, 90, card.FinalScore)
}

func TestDebtScore(t *testing.T) {
	tests := []struct {
		name  string
		emi   float64
		debt  float64
		score int
	}{
		{"no EMI", 0, 0, 20},
		{"light EMI", 10000, 0, 15},
		{"heavy EMI", 25000, 0, 5},
		{"no EMI but debt above two years of salary", 0, 1300000, 15},
		{"heavy EMI and heavy debt", 25000, 1300000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.FinancialProfile{Salary: 50000, MonthlyEMI: tt.emi, OutstandingDebt: tt.debt}
			assert.Equal(t, tt.score, debtScore(p))
		})
	}
}

func TestBuildScoreCard_ZeroSalary(t *testing.T) {
	card := BuildScoreCard(models.FinancialProfile{}, nil, models.ProtectionGap{}, 1.0)

	assert.GreaterOrEqual(t, card.TotalScore, 0)
	assert.LessOrEqual(t, card.TotalScore, 100)
	assert.Equal(t, card.Breakdown.Sum(), card.TotalScore)
}

func TestBufferMonths(t *testing.T) {
	assert.Equal(t, 6.0, bufferMonths(models.FinancialProfile{SavingsBalance: 300000, Expenses: 50000}))
	assert.Equal(t, 6.0, bufferMonths(models.FinancialProfile{SavingsBalance: 1}))
	assert.Equal(t, 0.0, bufferMonths(models.FinancialProfile{}))
}

func TestBuildAnalysis_MatchesBreakdown(t *testing.T) {
	profiles := []models.FinancialProfile{
		healthyProfile(),
		{Salary: 30000, Expenses: 29000, MonthlyEMI: 15000, OutstandingDebt: 2000000},
		{Salary: 60000, Expenses: 20000, SavingsBalance: 10000},
	}

	for _, p := range profiles {
		gap := RecommendInsurance(p, InsuranceIncome, models.PriorityHigh).ProtectionGap
		card := BuildScoreCard(p, nil, gap, 1.0)
		a := BuildAnalysis(p, nil, card)
		b := card.Breakdown

		assert.Equal(t, b.Budget >= 15, contains(a.Strengths, "Disciplined spending habits."))
		assert.Equal(t, b.Savings < 15, contains(a.PriorityActions, "Build a 6-month emergency corpus immediately."))
		assert.Equal(t, b.Debt < 10, contains(a.Weaknesses, "Debt burden is too high."))
		assert.Equal(t, b.Insurance < 15, contains(a.PriorityActions, "Increase Life and Health insurance coverage."))
		assert.Nil(t, a.PortfolioInsights)
	}
}

func TestBuildAnalysis_PortfolioInsights(t *testing.T) {
	p := healthyProfile()
	positions := threeSectorPortfolio()
	card := BuildScoreCard(p, positions, models.ProtectionGap{}, 1.0)

	a := BuildAnalysis(p, positions, card)

	require.NotNil(t, a.PortfolioInsights)
	assert.Contains(t, a.PortfolioInsights.Weaknesses, "Concentration risk: Portfolio is limited to few sectors.")
	assert.Contains(t, a.PortfolioInsights.Weaknesses, "High exposure to TCS (61%).")
	assert.Contains(t, a.PortfolioInsights.Adjustments, "Reduce holdings in TCS to below 20% for better risk management.")
	assert.Contains(t, a.PortfolioInsights.Strengths, "Consistent monthly investment habit.")
}

func TestPortfolioInsights_UsesMarketPrice(t *testing.T) {
	positions := []models.Position{
		{Ticker: "A", Sector: "IT", Price: 100, CurrentPrice: 10, Quantity: 10},
		{Ticker: "B", Sector: "Energy", Price: 10, CurrentPrice: 100, Quantity: 10},
		{Ticker: "C", Sector: "FMCG", Price: 10, Quantity: 10},
		{Ticker: "D", Sector: "Banking", Price: 10, Quantity: 10},
	}

	in := portfolioInsights(models.FinancialProfile{Salary: 10000}, positions)

	assert.Contains(t, in.Strengths, "Excellent sectoral diversification.")
	assert.Equal(t, []string{"High exposure to B (77%)."}, in.Weaknesses)
	assert.Contains(t, in.Adjustments, "Consider increasing your monthly SIPs to reach your goals faster.")
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
