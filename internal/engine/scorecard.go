package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/Dan9191/wealthwise/internal/models"
	"gonum.org/v1/gonum/floats"
)

const (
	highDebtSalaryMonths  = 24
	diversifiedSectors    = 3
	wellDiversifiedSector = 4
	concentrationWeight   = 0.4
	fullBufferMonths      = 6
)

// monthlyOutgoings is what leaves the account every month: declared fixed and
// variable expenses (or the total expenses when they are not itemised) plus EMI
func monthlyOutgoings(p models.FinancialProfile) float64 {
	expenses := p.FixedExpenses + p.VariableExpenses
	if expenses <= 0 {
		expenses = p.Expenses
	}
	return expenses + p.MonthlyEMI
}

// bufferMonths is how many months of outgoings the savings balance covers
func bufferMonths(p models.FinancialProfile) float64 {
	outgoings := monthlyOutgoings(p)
	if outgoings <= 0 {
		if p.SavingsBalance > 0 {
			return fullBufferMonths
		}
		return 0
	}
	return p.SavingsBalance / outgoings
}

// BuildScoreCard combines five 0-20 sub-scores into a total. The investment
// sub-score depends on whether held positions were supplied. The final score
// applies the discipline multiplier and is capped at 100.
func BuildScoreCard(p models.FinancialProfile, positions []models.Position, gap models.ProtectionGap, multiplier float64) models.ScoreCard {
	mode := DetectMode(positions)
	b := models.ScoreBreakdown{
		Budget:     budgetScore(p),
		Savings:    savingsScore(p),
		Debt:       debtScore(p),
		Investment: investmentScore(p, positions),
		Insurance:  insuranceScore(gap),
	}
	total := b.Sum()
	return models.ScoreCard{
		TotalScore: total,
		FinalScore: int(math.Min(100, math.Round(float64(total)*multiplier))),
		Mode:       mode,
		Breakdown:  b,
	}
}

func budgetScore(p models.FinancialProfile) int {
	ratio := safeRatio(monthlyOutgoings(p), p.Salary)
	switch {
	case ratio <= 0.5:
		return 20
	case ratio <= 0.7:
		return 15
	case ratio <= 0.9:
		return 10
	default:
		return 5
	}
}

func savingsScore(p models.FinancialProfile) int {
	score := 0
	switch months := bufferMonths(p); {
	case months >= 6:
		score += 10
	case months >= 3:
		score += 7
	case months >= 1:
		score += 3
	}

	switch rate := safeRatio(p.Salary-monthlyOutgoings(p), p.Salary); {
	case rate >= 0.3:
		score += 10
	case rate >= 0.2:
		score += 7
	case rate >= 0.1:
		score += 4
	}
	return score
}

func debtScore(p models.FinancialProfile) int {
	var score int
	switch emiRatio := safeRatio(p.MonthlyEMI, p.Salary); {
	case emiRatio == 0:
		score = 20
	case emiRatio <= 0.2:
		score = 15
	case emiRatio <= 0.4:
		score = 10
	default:
		score = 5
	}
	if p.OutstandingDebt > p.Salary*highDebtSalaryMonths {
		score -= 5
	}
	return score
}

func investmentScore(p models.FinancialProfile, positions []models.Position) int {
	invRatio := safeRatio(p.ExistingSIP, p.Salary)

	if DetectMode(positions) == models.ModeProfileOnly {
		switch {
		case invRatio >= 0.2:
			return 20
		case invRatio >= 0.15:
			return 15
		case invRatio >= 0.1:
			return 10
		default:
			return 5
		}
	}

	score := 5
	if len(sectors(positions)) >= diversifiedSectors {
		score = 10
	}
	switch {
	case invRatio >= 0.2:
		score += 10
	case invRatio >= 0.1:
		score += 5
	}
	return score
}

func insuranceScore(gap models.ProtectionGap) int {
	return coverScore(gap.Life) + coverScore(gap.Health)
}

func coverScore(c models.CoverGap) int {
	switch {
	case c.Actual >= c.Required:
		return 10
	case c.Actual >= c.Required*0.5:
		return 5
	default:
		return 0
	}
}

func sectors(positions []models.Position) map[string]bool {
	set := make(map[string]bool, len(positions))
	for _, pos := range positions {
		set[pos.Sector] = true
	}
	return set
}

// BuildAnalysis derives strengths, weaknesses and priority actions from the same
// thresholds that produced the scorecard.
func BuildAnalysis(p models.FinancialProfile, positions []models.Position, card models.ScoreCard) models.Analysis {
	a := models.Analysis{
		Strengths:       []string{},
		Weaknesses:      []string{},
		PriorityActions: []string{},
	}
	b := card.Breakdown

	if b.Budget >= 15 {
		a.Strengths = append(a.Strengths, "Disciplined spending habits.")
	} else {
		a.Weaknesses = append(a.Weaknesses, "High expense-to-income ratio.")
	}

	if b.Savings >= 15 {
		a.Strengths = append(a.Strengths, "Healthy emergency buffer.")
	} else {
		a.Weaknesses = append(a.Weaknesses, "Insufficient emergency funds.")
		a.PriorityActions = append(a.PriorityActions, "Build a 6-month emergency corpus immediately.")
	}

	if b.Debt < 10 {
		a.Weaknesses = append(a.Weaknesses, "Debt burden is too high.")
		a.PriorityActions = append(a.PriorityActions, "Focus on closing high-interest debts first.")
	}

	if b.Insurance < 15 {
		a.Weaknesses = append(a.Weaknesses, "Significant protection gap identified.")
		a.PriorityActions = append(a.PriorityActions, "Increase Life and Health insurance coverage.")
	}

	if card.Mode == models.ModePortfolioAware {
		insights := portfolioInsights(p, positions)
		a.PortfolioInsights = &insights
	}
	return a
}

func portfolioInsights(p models.FinancialProfile, positions []models.Position) models.PortfolioInsights {
	in := models.PortfolioInsights{
		Strengths:   []string{},
		Weaknesses:  []string{},
		Adjustments: []string{},
	}

	if len(sectors(positions)) >= wellDiversifiedSector {
		in.Strengths = append(in.Strengths, "Excellent sectoral diversification.")
	} else {
		in.Weaknesses = append(in.Weaknesses, "Concentration risk: Portfolio is limited to few sectors.")
	}

	values := make([]float64, len(positions))
	for i, pos := range positions {
		values[i] = pos.Value()
	}
	total := floats.Sum(values)

	// Report the heaviest positions first
	order := make([]int, len(positions))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return values[order[i]] > values[order[j]] })

	for _, i := range order {
		weight := safeRatio(values[i], total)
		if weight > concentrationWeight {
			ticker := positions[i].Ticker
			in.Weaknesses = append(in.Weaknesses, fmt.Sprintf("High exposure to %s (%d%%).", ticker, int(math.Round(weight*100))))
			in.Adjustments = append(in.Adjustments, fmt.Sprintf("Reduce holdings in %s to below 20%% for better risk management.", ticker))
		}
	}

	if safeRatio(p.ExistingSIP, p.Salary) >= 0.15 {
		in.Strengths = append(in.Strengths, "Consistent monthly investment habit.")
	} else {
		in.Adjustments = append(in.Adjustments, "Consider increasing your monthly SIPs to reach your goals faster.")
	}
	return in
}
