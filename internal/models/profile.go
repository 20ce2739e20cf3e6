package models

// CityTier classifies the user's city for health cover sizing
type CityTier string

const (
	CityMetro CityTier = "metro"
	CityTier2 CityTier = "tier2"
	CityTier3 CityTier = "tier3"
	CityRural CityTier = "rural"
)

// RiskProfile is the user's risk appetite
type RiskProfile string

const (
	RiskConservative RiskProfile = "conservative"
	RiskModerate     RiskProfile = "moderate"
	RiskAggressive   RiskProfile = "aggressive"
)

// GoalTag identifies a savings goal the user selected
type GoalTag string

const (
	GoalHouse      GoalTag = "house"
	GoalCar        GoalTag = "car"
	GoalEmergency  GoalTag = "emergency"
	GoalRetirement GoalTag = "retirement"
)

// AnalyzeRequest is the raw analysis request body. Optional numeric fields are
// pointers so an omitted field can be told apart from an explicit zero.
type AnalyzeRequest struct {
	Salary                   *float64   `json:"salary"`
	Age                      *int       `json:"age,omitempty"`
	City                     string     `json:"city,omitempty"`
	Risk                     string     `json:"risk,omitempty"`
	Goals                    []string   `json:"goals,omitempty"`
	Expenses                 *float64   `json:"expenses,omitempty"`
	FixedExpenses            *float64   `json:"fixedExpenses,omitempty"`
	VariableExpenses         *float64   `json:"variableExpenses,omitempty"`
	HasEmergencyFund         string     `json:"hasEmergencyFund,omitempty"`
	EmergencyFundAmount      *float64   `json:"emergencyFundAmount,omitempty"`
	Dependents               *int       `json:"dependents,omitempty"`
	MonthlyEMI               *float64   `json:"monthlyEMI,omitempty"`
	CurrentDebts             *float64   `json:"currentDebts,omitempty"`
	ExistingLifeCover        *float64   `json:"existingLifeCover,omitempty"`
	ExistingHealthCover      *float64   `json:"existingHealthCover,omitempty"`
	ExistingSIP              *float64   `json:"existingSIP,omitempty"`
	CurrentMonthlyInvestment *float64   `json:"currentMonthlyInvestment,omitempty"`
	ExistingInvestments      *float64   `json:"existingInvestments,omitempty"`
	PortfolioData            []Position `json:"portfolioData,omitempty"`
}

// FinancialProfile is the canonical, normalized engine input
type FinancialProfile struct {
	Salary              float64     `json:"salary"`
	Age                 int         `json:"age"`
	City                CityTier    `json:"city"`
	Risk                RiskProfile `json:"risk"`
	Goals               []GoalTag   `json:"goals"`
	Expenses            float64     `json:"expenses"`
	FixedExpenses       float64     `json:"fixedExpenses"`
	VariableExpenses    float64     `json:"variableExpenses"`
	Dependents          int         `json:"dependents"`
	MonthlyEMI          float64     `json:"monthlyEMI"`
	OutstandingDebt     float64     `json:"outstandingDebt"`
	ExistingLifeCover   float64     `json:"existingLifeCover"`
	ExistingHealthCover float64     `json:"existingHealthCover"`
	ExistingSIP         float64     `json:"existingSIP"`
	ExistingInvestments float64     `json:"existingInvestments"`
	SavingsBalance      float64     `json:"savingsBalance"`
}

// AdjustedProfile is the copy of a profile produced by the adjustment step.
// The original profile is never mutated.
type AdjustedProfile struct {
	FinancialProfile
	OriginalRisk         RiskProfile       `json:"originalRisk"`
	AdjustedRisk         RiskProfile       `json:"adjustedRisk"`
	DisciplineMultiplier float64           `json:"disciplineMultiplier"`
	InsurancePriority    InsurancePriority `json:"insurancePriority"`
}
