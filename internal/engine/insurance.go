package engine

import (
	"fmt"
	"math"

	"github.com/Dan9191/wealthwise/internal/models"
)

const (
	baseHealthCover      = 500000
	metroHealthSurcharge = 500000
	perDependentHealth   = 200000
)

// RecommendInsurance sizes life and health cover under the given policy and
// computes the protection gap against existing cover. Auto is treated as the
// income-multiple policy.
func RecommendInsurance(p models.FinancialProfile, policy InsurancePolicy, priority models.InsurancePriority) models.InsuranceRecommendation {
	annual := p.Salary * 12

	var rec models.InsuranceRecommendation
	if policy == InsuranceDependents {
		rec = models.InsuranceRecommendation{
			Policy: string(InsuranceDependents),
			TermLife: models.CoverRecommendation{
				RecommendedCover: annual * 15,
				Reason:           fmt.Sprintf("Based on your age and income, 15x annual cover is necessary to protect your %d dependents.", p.Dependents),
			},
			HealthInsurance: models.CoverRecommendation{
				RecommendedCover: baseHealthCover + float64(p.Dependents)*perDependentHealth,
				Reason:           "Standard family-floater cover adjusted for dependents and city tier.",
			},
			Riders: []string{"Critical Illness Rider", "Accidental Death Benefit", "Waiver of Premium"},
		}
	} else {
		health := float64(baseHealthCover)
		if p.City == models.CityMetro {
			health += metroHealthSurcharge
		}
		rec = models.InsuranceRecommendation{
			Policy: string(InsuranceIncome),
			TermLife: models.CoverRecommendation{
				RecommendedCover: annual * 20,
				Reason:           "20x annual income to secure dependents financial future.",
			},
			HealthInsurance: models.CoverRecommendation{
				RecommendedCover: health,
				Reason:           "Coverage adjusted for medical inflation and city tier.",
			},
			PersonalAccident: &models.CoverRecommendation{
				RecommendedCover: annual * 10,
				Reason:           "To cover disability or loss of income due to accidents.",
			},
			Riders: []string{"Critical Illness Rider", "Waiver of Premium"},
		}
	}

	rec.ActionSteps = []string{"Evaluate a pure Term Plan.", "Buy a Super Top-up for Health cover."}
	rec.Priority = priority
	rec.ProtectionGap = models.ProtectionGap{
		Life:   CoverGap(rec.TermLife.RecommendedCover, p.ExistingLifeCover),
		Health: CoverGap(rec.HealthInsurance.RecommendedCover, p.ExistingHealthCover),
	}
	return rec
}

// CoverGap returns the shortfall of actual against required cover, never negative
func CoverGap(required, actual float64) models.CoverGap {
	return models.CoverGap{
		Required: required,
		Actual:   actual,
		Gap:      math.Max(0, required-actual),
	}
}
