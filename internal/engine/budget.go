package engine

import (
	"math"

	"github.com/Dan9191/wealthwise/internal/models"
)

const (
	lowIncomeBelow        = 30000
	highIncomeAbove       = 150000
	expenseHighIncome     = 100000
	aggressiveEligibleMin = 20000
)

// AllocateBudget splits income according to the budget policy. Auto is
// treated as the fixed split.
func AllocateBudget(p models.FinancialProfile, policy BudgetPolicy) models.BudgetPlan {
	if policy == BudgetExpense {
		return expenseBudget(p)
	}
	return fixedBudget(p)
}

func fixedBudget(p models.FinancialProfile) models.BudgetPlan {
	bracket := "Middle Income"
	if p.Salary < lowIncomeBelow {
		bracket = "Low Income"
	}
	if p.Salary > highIncomeAbove {
		bracket = "High Income"
	}

	savings := p.Salary * 0.2
	return models.BudgetPlan{
		Policy:        string(BudgetFixed),
		IncomeBracket: bracket,
		MonthlyAllocation: models.MonthlyAllocation{
			Needs:   models.BudgetSlice{Amount: p.Salary * 0.5, Percentage: 50, Label: "Needs (Rent, Food, Bills)"},
			Wants:   models.BudgetSlice{Amount: p.Salary * 0.3, Percentage: 30, Label: "Wants (Entertainment, Shopping)"},
			Savings: models.BudgetSlice{Amount: savings, Percentage: 20, Label: "Savings & Investments"},
		},
		EligibleInvestmentAmount: savings,
	}
}

// expenseBudget derives the split from declared expenses. Without itemised
// fixed and variable expenses the total expenses become the needs slice.
func expenseBudget(p models.FinancialProfile) models.BudgetPlan {
	needs, needsLabel := p.FixedExpenses, "Fixed Expenses"
	wants := p.VariableExpenses
	if needs+wants <= 0 {
		needs, needsLabel = p.Expenses, "Total Expenses"
		wants = 0
	}
	eligible := p.Salary - needs - wants - p.MonthlyEMI

	bracket := "Middle Income"
	if p.Salary > expenseHighIncome {
		bracket = "High Income"
	}

	plan := models.BudgetPlan{
		Policy:        string(BudgetExpense),
		IncomeBracket: bracket,
		MonthlyAllocation: models.MonthlyAllocation{
			Needs:   models.BudgetSlice{Amount: needs, Percentage: percentOf(needs, p.Salary), Label: needsLabel},
			Wants:   models.BudgetSlice{Amount: wants, Percentage: percentOf(wants, p.Salary), Label: "Variable Expenses"},
			Savings: models.BudgetSlice{Amount: eligible, Percentage: percentOf(eligible, p.Salary), Label: "Eligible Investment Amount"},
		},
		EligibleInvestmentAmount: eligible,
	}

	if eligible <= 0 {
		plan.Strategy = "Expense Optimization Required"
		plan.RecommendedAllocations = []models.InvestmentLine{{
			Type:   "Expense Reduction",
			Amount: math.Max(0, math.Round(-eligible)),
			Reason: "Prioritize stability over risk: close the monthly shortfall before investing.",
		}}
		return plan
	}

	plan.Strategy = "Moderate-Balanced"
	if eligible > aggressiveEligibleMin {
		plan.Strategy = "Aggressive-Growth"
	}
	plan.RecommendedAllocations = []models.InvestmentLine{
		{Type: "Equity Mutual Funds", Amount: math.Round(eligible * 0.6), Reason: "Long term growth engine."},
		{Type: "Debt / Fixed Income", Amount: math.Round(eligible * 0.3), Reason: "Consistency & capital protection."},
		{Type: "Gold", Amount: math.Round(eligible * 0.1), Reason: "Safe haven for family future."},
	}
	return plan
}

// MonthlyInvestable is the non-negative amount available for investing each month
func MonthlyInvestable(plan models.BudgetPlan) float64 {
	return math.Max(0, plan.EligibleInvestmentAmount)
}

func percentOf(part, whole float64) int {
	return int(math.Round(safeRatio(part, whole) * 100))
}
