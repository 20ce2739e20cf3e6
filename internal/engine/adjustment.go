package engine

import "github.com/Dan9191/wealthwise/internal/models"

const (
	riskDowngradeBelow     = 50
	insurancePriorityBelow = 60
	rewardMultiplierFrom   = 80
	penaltyMultiplierBelow = 50
)

// Adjust applies the one-shot discipline rule table. Risk is only ever
// downgraded (aggressive to moderate), never upgraded.
func Adjust(score int, originalRisk models.RiskProfile) models.Adjustment {
	adj := models.Adjustment{
		OriginalRisk:         originalRisk,
		AdjustedRisk:         originalRisk,
		DisciplineMultiplier: 1.0,
		InsurancePriority:    models.PriorityMedium,
	}

	if score < riskDowngradeBelow && originalRisk == models.RiskAggressive {
		adj.AdjustedRisk = models.RiskModerate
	}

	if score < insurancePriorityBelow {
		adj.InsurancePriority = models.PriorityHigh
	}

	switch {
	case score >= rewardMultiplierFrom:
		adj.DisciplineMultiplier = 1.1
	case score < penaltyMultiplierBelow:
		adj.DisciplineMultiplier = 0.9
	}

	return adj
}

// ApplyAdjustment returns a derived copy of the profile carrying the
// adjusted risk tier. The input profile is left untouched.
func ApplyAdjustment(p models.FinancialProfile, adj models.Adjustment) models.AdjustedProfile {
	derived := p
	derived.Goals = append([]models.GoalTag(nil), p.Goals...)
	derived.Risk = adj.AdjustedRisk
	return models.AdjustedProfile{
		FinancialProfile:     derived,
		OriginalRisk:         adj.OriginalRisk,
		AdjustedRisk:         adj.AdjustedRisk,
		DisciplineMultiplier: adj.DisciplineMultiplier,
		InsurancePriority:    adj.InsurancePriority,
	}
}
