package engine

import (
	"testing"

	"github.com/Dan9191/wealthwise/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendInsurance_IncomePolicy(t *testing.T) {
	p := models.FinancialProfile{Salary: 50000, City: models.CityMetro, ExistingLifeCover: 2000000}

	rec := RecommendInsurance(p, InsuranceIncome, models.PriorityHigh)

	assert.Equal(t, "income", rec.Policy)
	assert.Equal(t, 12000000.0, rec.TermLife.RecommendedCover)
	assert.Equal(t, 1000000.0, rec.HealthInsurance.RecommendedCover)
	require.NotNil(t, rec.PersonalAccident)
	assert.Equal(t, 6000000.0, rec.PersonalAccident.RecommendedCover)
	assert.Equal(t, []string{"Critical Illness Rider", "Waiver of Premium"}, rec.Riders)
	assert.Equal(t, 10000000.0, rec.ProtectionGap.Life.Gap)
	assert.Equal(t, 1000000.0, rec.ProtectionGap.Health.Gap)
	assert.Equal(t, models.PriorityHigh, rec.Priority)

	p.City = models.CityTier3
	rec = RecommendInsurance(p, InsuranceIncome, models.PriorityHigh)
	assert.Equal(t, 500000.0, rec.HealthInsurance.RecommendedCover)
}

func TestRecommendInsurance_DependentsPolicy(t *testing.T) {
	p := models.FinancialProfile{Salary: 50000, City: models.CityMetro, Dependents: 2, ExistingHealthCover: 2000000}

	rec := RecommendInsurance(p, InsuranceDependents, models.PriorityMedium)

	assert.Equal(t, "dependents", rec.Policy)
	assert.Equal(t, 9000000.0, rec.TermLife.RecommendedCover)
	assert.Contains(t, rec.TermLife.Reason, "2 dependents")
	assert.Equal(t, 900000.0, rec.HealthInsurance.RecommendedCover)
	assert.Nil(t, rec.PersonalAccident)
	assert.Len(t, rec.Riders, 3)
	assert.Equal(t, 0.0, rec.ProtectionGap.Health.Gap)
	assert.Equal(t, models.PriorityMedium, rec.Priority)
}

func TestRidersIndependentOfValues(t *testing.T) {
	low := RecommendInsurance(models.FinancialProfile{Salary: 10000}, InsuranceIncome, models.PriorityHigh)
	high := RecommendInsurance(models.FinancialProfile{Salary: 900000, ExistingLifeCover: 1e9}, InsuranceIncome, models.PriorityMedium)
	assert.Equal(t, low.Riders, high.Riders)
}

func TestCoverGap(t *testing.T) {
	tests := []struct {
		required float64
		actual   float64
		gap      float64
	}{
		{1000000, 0, 1000000},
		{1000000, 400000, 600000},
		{1000000, 1000000, 0},
		{1000000, 5000000, 0},
		{0, 100, 0},
	}

	for _, tt := range tests {
		g := CoverGap(tt.required, tt.actual)
		assert.Equal(t, tt.gap, g.Gap)
		assert.GreaterOrEqual(t, g.Gap, 0.0)
		assert.Equal(t, tt.required, g.Required)
		assert.Equal(t, tt.actual, g.Actual)
	}
}
