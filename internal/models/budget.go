package models

// BudgetSlice is one bucket of the monthly budget
type BudgetSlice struct {
	Amount     float64 `json:"amount"`
	Percentage int     `json:"percentage"`
	Label      string  `json:"label"`
}

// MonthlyAllocation splits income into needs, wants and savings
type MonthlyAllocation struct {
	Needs   BudgetSlice `json:"needs"`
	Wants   BudgetSlice `json:"wants"`
	Savings BudgetSlice `json:"savings"`
}

// InvestmentLine is a recommended use of the eligible investment amount
type InvestmentLine struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
}

// BudgetPlan is the output of the budget allocator
type BudgetPlan struct {
	Policy                   string            `json:"policy"`
	IncomeBracket            string            `json:"incomeBracket"`
	MonthlyAllocation        MonthlyAllocation `json:"monthlyAllocation"`
	EligibleInvestmentAmount float64           `json:"eligibleInvestmentAmount"`
	Strategy                 string            `json:"strategy,omitempty"`
	RecommendedAllocations   []InvestmentLine  `json:"recommendedAllocations,omitempty"`
}
