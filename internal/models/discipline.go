package models

// DisciplineComponents holds the five behavioural sub-scores
type DisciplineComponents struct {
	IncomeStability     int `json:"incomeStability"`
	ExpenseControl      int `json:"expenseControl"`
	SavingsConsistency  int `json:"savingsConsistency"`
	DebtBehaviour       int `json:"debtBehaviour"`
	InvestmentBehaviour int `json:"investmentBehaviour"`
}

// Sum returns the total of all components
func (c DisciplineComponents) Sum() int {
	return c.IncomeStability + c.ExpenseControl + c.SavingsConsistency + c.DebtBehaviour + c.InvestmentBehaviour
}

// DisciplineScore is the 0-100 composite discipline score
type DisciplineScore struct {
	Score      int                  `json:"score"`
	Components DisciplineComponents `json:"components"`
	Level      string               `json:"level"`
	Grade      string               `json:"grade"`
}

// InsurancePriority flags how urgently protection should be addressed
type InsurancePriority string

const (
	PriorityHigh   InsurancePriority = "HIGH"
	PriorityMedium InsurancePriority = "MEDIUM"
)

// Adjustment is the output of the discipline adjustment rules
type Adjustment struct {
	OriginalRisk         RiskProfile       `json:"originalRisk"`
	AdjustedRisk         RiskProfile       `json:"adjustedRisk"`
	DisciplineMultiplier float64           `json:"disciplineMultiplier"`
	InsurancePriority    InsurancePriority `json:"insurancePriority"`
}

// MonthlyReport is the monthly discipline summary sent to the user
type MonthlyReport struct {
	Month         string `json:"month"`
	Grade         string `json:"grade"`
	Score         int    `json:"score"`
	StrongHabit   string `json:"strongHabit"`
	WeakArea      string `json:"weakArea"`
	FocusedAction string `json:"focusedAction"`
}

// DisciplineReport is the discipline-only view of a profile
type DisciplineReport struct {
	FinancialDiscipline DisciplineScore `json:"financialDiscipline"`
	Adjustment          Adjustment      `json:"adjustment"`
	MonthlyReport       MonthlyReport   `json:"monthlyReport"`
}
