package engine

import "github.com/Dan9191/wealthwise/internal/models"

// ScoreDiscipline computes the 0-100 discipline score from five behavioural
// components. Each ladder is already within its bound, so no clamping is needed.
func ScoreDiscipline(p models.FinancialProfile) models.DisciplineScore {
	expenseRatio := safeRatio(p.Expenses, p.Salary)
	savingsRate := safeRatio(p.Salary-p.Expenses, p.Salary)

	var c models.DisciplineComponents

	// Income stability (20)
	switch {
	case p.Salary > 50000:
		c.IncomeStability = 20
	case p.Salary > 25000:
		c.IncomeStability = 15
	default:
		c.IncomeStability = 10
	}

	// Expense control (20)
	switch {
	case expenseRatio < 0.6:
		c.ExpenseControl = 20
	case expenseRatio < 0.8:
		c.ExpenseControl = 15
	default:
		c.ExpenseControl = 8
	}

	// Savings consistency (25)
	switch {
	case savingsRate > 0.25:
		c.SavingsConsistency = 25
	case savingsRate > 0.15:
		c.SavingsConsistency = 20
	case savingsRate > 0.05:
		c.SavingsConsistency = 12
	default:
		c.SavingsConsistency = 5
	}

	// Debt behaviour (15) reuses the expense ratio
	switch {
	case expenseRatio < 0.7:
		c.DebtBehaviour = 15
	case expenseRatio < 0.85:
		c.DebtBehaviour = 10
	default:
		c.DebtBehaviour = 5
	}

	// Investment behaviour (20)
	switch {
	case p.ExistingSIP > 0:
		c.InvestmentBehaviour = 20
	case p.ExistingInvestments > 0:
		c.InvestmentBehaviour = 15
	default:
		c.InvestmentBehaviour = 8
	}

	score := c.Sum()
	return models.DisciplineScore{
		Score:      score,
		Components: c,
		Level:      DisciplineLevel(score),
		Grade:      DisciplineGrade(score),
	}
}

// DisciplineLevel names the discipline band of a score
func DisciplineLevel(score int) string {
	switch {
	case score >= 80:
		return "Highly Disciplined"
	case score >= 60:
		return "Moderately Disciplined"
	case score >= 40:
		return "Weak Discipline"
	default:
		return "Undisciplined"
	}
}

// DisciplineGrade is the letter grade used in the monthly report
func DisciplineGrade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	default:
		return "D"
	}
}
