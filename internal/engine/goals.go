package engine

import (
	"math"

	"github.com/Dan9191/wealthwise/internal/models"
)

const (
	// 12% nominal per year, compounded monthly
	goalMonthlyRate     = 0.12 / 12
	defaultGoalYears    = 5
	equityRouteAboveYrs = 5
)

// goalTarget resolves the target corpus and horizon of a goal tag.
// Unknown tags get a zero target over five years.
func goalTarget(tag models.GoalTag, salary float64) (float64, int) {
	switch tag {
	case models.GoalHouse:
		return 5000000, 10
	case models.GoalCar:
		return 1500000, 5
	case models.GoalEmergency:
		return salary * 6, 1
	case models.GoalRetirement:
		return salary * 12 * 25, 30
	default:
		return 0, defaultGoalYears
	}
}

// annuityDueFactor is the future value of 1 paid at the start of each of n months
func annuityDueFactor(months int) float64 {
	r := goalMonthlyRate
	return (math.Pow(1+r, float64(months)) - 1) / r * (1 + r)
}

// RequiredMonthlySIP inverts the annuity-due future value formula
func RequiredMonthlySIP(target float64, years int) float64 {
	factor := annuityDueFactor(years * 12)
	if factor <= 0 {
		return 0
	}
	return target / factor
}

// PlanGoal derives target, horizon, contribution and route for one goal
func PlanGoal(tag models.GoalTag, salary float64) models.Goal {
	target, years := goalTarget(tag, salary)
	route := "Debt Funds / RD"
	if years > equityRouteAboveYrs {
		route = "Equity Mutual Funds"
	}
	return models.Goal{
		GoalName:           string(tag),
		TargetAmount:       target,
		TimeHorizonYears:   years,
		MonthlySIPRequired: math.Round(RequiredMonthlySIP(target, years)),
		SuggestedRoute:     route,
	}
}

// PlanGoals plans every selected goal independently. The aggregate is only
// reported, never used to scale individual contributions.
func PlanGoals(p models.FinancialProfile, monthlyInvestable float64) models.GoalPlanning {
	planning := models.GoalPlanning{Goals: make([]models.Goal, 0, len(p.Goals))}
	for _, tag := range p.Goals {
		g := PlanGoal(tag, p.Salary)
		planning.Goals = append(planning.Goals, g)
		planning.TotalMonthlySIP += g.MonthlySIPRequired
	}
	planning.ExceedsInvestable = planning.TotalMonthlySIP > monthlyInvestable
	return planning
}
