package engine

import (
	"fmt"
	"time"

	"github.com/Dan9191/wealthwise/internal/models"
	"github.com/Dan9191/wealthwise/internal/utils"
)

var standingActions = []string{
	"Open a Demat account if you haven't already.",
	"Set up an Emergency Fund in a Liquid Fund.",
	"Automate your investments.",
	"Review your term plan riders.",
}

// NextActions orders the user's to-do list: risk and protection items driven
// by discipline first, then scorecard priorities, then standing advice.
func NextActions(
	adj models.Adjustment,
	insurance models.InsuranceRecommendation,
	analysis models.Analysis,
	monthlyInvestment float64,
	currency string,
) []string {
	var actions []string

	if adj.AdjustedRisk != adj.OriginalRisk {
		actions = append(actions, fmt.Sprintf(
			"Invest with a %s risk profile until your discipline score reaches %d.",
			adj.AdjustedRisk, riskDowngradeBelow,
		))
	}

	lifeGap := insurance.ProtectionGap.Life.Gap
	if adj.InsurancePriority == models.PriorityHigh && lifeGap > 0 {
		actions = append(actions, fmt.Sprintf("Close your life cover gap of %s this month.", utils.FormatWhole(lifeGap, currency)))
	}

	actions = append(actions, analysis.PriorityActions...)

	if monthlyInvestment > 0 {
		actions = append(actions, fmt.Sprintf("Start an SIP of %s immediately.", utils.FormatWhole(monthlyInvestment, currency)))
	} else {
		actions = append(actions, "Cut discretionary spending before starting new SIPs.")
	}

	if adj.InsurancePriority == models.PriorityMedium && lifeGap > 0 {
		actions = append(actions, "Purchase Term Insurance within this month.")
	}

	actions = append(actions, standingActions...)
	return dedupe(actions)
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

// MonthlyDisciplineReport summarises the month's strongest habit, weakest
// area and the single action to focus on
func MonthlyDisciplineReport(p models.FinancialProfile, d models.DisciplineScore, now time.Time, currency string) models.MonthlyReport {
	var strong []string
	if p.ExistingSIP > p.Salary*0.15 {
		strong = append(strong, "High monthly SIP commitment")
	}
	if d.Components.SavingsConsistency >= 20 {
		strong = append(strong, "Excellent savings rate")
	}
	if d.Components.ExpenseControl >= 20 {
		strong = append(strong, "Tight control over expenses")
	}

	report := models.MonthlyReport{
		Month:         now.Format("January 2006"),
		Grade:         d.Grade,
		Score:         d.Score,
		StrongHabit:   "Building financial awareness",
		WeakArea:      "Minor optimization needed",
		FocusedAction: "Continue current financial habits",
	}
	if len(strong) > 0 {
		report.StrongHabit = strong[0]
	}

	switch {
	case p.ExistingLifeCover < p.Salary*10:
		report.WeakArea = "Insufficient term insurance"
		report.FocusedAction = fmt.Sprintf("Increase term insurance to %s within 30 days", utils.FormatLakh(p.Salary*15, currency))
	case p.ExistingHealthCover < 1000000:
		report.WeakArea = "Low health insurance coverage"
		report.FocusedAction = fmt.Sprintf("Upgrade health insurance to %s within 45 days", utils.FormatLakh(1000000, currency))
	case p.ExistingSIP < p.Salary*0.1:
		report.WeakArea = "Low investment allocation"
		report.FocusedAction = fmt.Sprintf("Increase SIP by %s next month", utils.FormatWhole(p.Salary*0.05, currency))
	case p.Expenses > p.Salary*0.8:
		report.WeakArea = "High expense ratio"
		report.FocusedAction = fmt.Sprintf("Reduce monthly expenses by %s over 60 days", utils.FormatWhole(p.Expenses-p.Salary*0.75, currency))
	}
	return report
}

// DefaultSellAnalysis is the general hold/sell guidance
func DefaultSellAnalysis() models.SellAnalysis {
	return models.SellAnalysis{
		Advice:    "HOLD",
		Reasoning: "Market is currently volatile but long-term trend is bullish. Avoid panic selling quality stocks.",
		Risks:     []string{"Global inflation", "Geopolitical tensions"},
	}
}
