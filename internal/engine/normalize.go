package engine

import (
	"strings"

	"github.com/Dan9191/wealthwise/internal/models"
)

const defaultExpenseRatio = 0.8

// Normalize coerces a raw request into a FinancialProfile. It never fails:
// omitted money fields become 0, negative ones are clamped to 0, unknown
// enum values fall back to safe defaults. Omitted expenses default to the
// declared fixed plus variable expenses, or to 80% of salary when neither
// is given.
func Normalize(req models.AnalyzeRequest) models.FinancialProfile {
	p := models.FinancialProfile{
		Salary:              money(req.Salary),
		Age:                 count(req.Age),
		City:                ParseCity(req.City),
		Risk:                ParseRisk(req.Risk),
		Goals:               parseGoals(req.Goals),
		FixedExpenses:       money(req.FixedExpenses),
		VariableExpenses:    money(req.VariableExpenses),
		Dependents:          count(req.Dependents),
		MonthlyEMI:          money(req.MonthlyEMI),
		OutstandingDebt:     money(req.CurrentDebts),
		ExistingLifeCover:   money(req.ExistingLifeCover),
		ExistingHealthCover: money(req.ExistingHealthCover),
		ExistingInvestments: money(req.ExistingInvestments),
		SavingsBalance:      money(req.EmergencyFundAmount),
	}

	p.ExistingSIP = money(req.ExistingSIP)
	if req.ExistingSIP == nil {
		p.ExistingSIP = money(req.CurrentMonthlyInvestment)
	}

	switch {
	case req.Expenses != nil:
		p.Expenses = money(req.Expenses)
	case p.FixedExpenses+p.VariableExpenses > 0:
		p.Expenses = p.FixedExpenses + p.VariableExpenses
	default:
		p.Expenses = p.Salary * defaultExpenseRatio
	}

	return p
}

// ParseRisk maps a risk label to a RiskProfile, defaulting to moderate
func ParseRisk(s string) models.RiskProfile {
	switch r := models.RiskProfile(strings.ToLower(strings.TrimSpace(s))); r {
	case models.RiskConservative, models.RiskModerate, models.RiskAggressive:
		return r
	default:
		return models.RiskModerate
	}
}

// ParseCity maps a city label to a CityTier. Unknown labels are treated as tier2.
func ParseCity(s string) models.CityTier {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, "-", "")
	normalized = strings.ReplaceAll(normalized, " ", "")
	switch c := models.CityTier(normalized); c {
	case models.CityMetro, models.CityTier2, models.CityTier3, models.CityRural:
		return c
	default:
		return models.CityTier2
	}
}

func parseGoals(raw []string) []models.GoalTag {
	goals := make([]models.GoalTag, 0, len(raw))
	seen := make(map[models.GoalTag]bool, len(raw))
	for _, g := range raw {
		tag := models.GoalTag(strings.ToLower(strings.TrimSpace(g)))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		goals = append(goals, tag)
	}
	return goals
}

func money(v *float64) float64 {
	if v == nil || *v < 0 {
		return 0
	}
	return *v
}

func count(v *int) int {
	if v == nil || *v < 0 {
		return 0
	}
	return *v
}

// safeRatio divides num by den, returning 0 when den is not positive
func safeRatio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}
