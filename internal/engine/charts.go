package engine

import (
	"math"

	"github.com/Dan9191/wealthwise/internal/models"
)

const (
	growthChartYears = 10
	growthChartRate  = 0.10
)

// BuildCharts re-projects report sections into chart series. Nothing here is
// computed independently of the report.
func BuildCharts(r models.Report) models.Charts {
	charts := models.Charts{
		InvestmentGrowth: InvestmentGrowth(r.InvestmentPortfolio.TotalMonthlyInvestment, r.GeneratedAt.Year()),
		ScoreBreakdown: []models.NamedValue{
			{Name: "Budget", Value: float64(r.ScoreCard.Breakdown.Budget)},
			{Name: "Savings", Value: float64(r.ScoreCard.Breakdown.Savings)},
			{Name: "Debt", Value: float64(r.ScoreCard.Breakdown.Debt)},
			{Name: "Invest", Value: float64(r.ScoreCard.Breakdown.Investment)},
			{Name: "Protect", Value: float64(r.ScoreCard.Breakdown.Insurance)},
		},
		DisciplineComponents: []models.NamedValue{
			{Name: "Income Stability", Value: float64(r.FinancialDiscipline.Components.IncomeStability)},
			{Name: "Expense Control", Value: float64(r.FinancialDiscipline.Components.ExpenseControl)},
			{Name: "Savings Consistency", Value: float64(r.FinancialDiscipline.Components.SavingsConsistency)},
			{Name: "Debt Behaviour", Value: float64(r.FinancialDiscipline.Components.DebtBehaviour)},
			{Name: "Investment Behaviour", Value: float64(r.FinancialDiscipline.Components.InvestmentBehaviour)},
		},
	}

	values := r.InvestmentPortfolio.Allocation.Values()
	for i, class := range models.AssetClasses {
		charts.PortfolioPie = append(charts.PortfolioPie, models.NamedValue{Name: class, Value: values[i]})
	}

	for _, s := range r.StockRecommendations {
		charts.StockComparison = append(charts.StockComparison, models.NamedValue{Name: s.Ticker, Value: s.Price})
		charts.ForecastLines = append(charts.ForecastLines, models.ForecastLine{Ticker: s.Ticker, Points: s.Forecast.Series()})
	}
	return charts
}

// InvestmentGrowth projects yearly contributions of twelve monthly
// investments compounding at 10% for the next ten years
func InvestmentGrowth(monthlyInvestment float64, startYear int) []models.GrowthPoint {
	annual := monthlyInvestment * 12
	points := make([]models.GrowthPoint, 0, growthChartYears+1)
	for i := 0; i <= growthChartYears; i++ {
		amount := annual * ((math.Pow(1+growthChartRate, float64(i)) - 1) / growthChartRate)
		points = append(points, models.GrowthPoint{Year: startYear + i, Amount: math.Round(amount)})
	}
	return points
}
