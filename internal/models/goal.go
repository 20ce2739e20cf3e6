package models

// Goal is a planned savings goal
type Goal struct {
	GoalName           string  `json:"goalName"`
	TargetAmount       float64 `json:"targetAmount"`
	TimeHorizonYears   int     `json:"timeHorizonYears"`
	MonthlySIPRequired float64 `json:"monthlySIPRequired"`
	SuggestedRoute     string  `json:"suggestedRoute"`
}

// GoalPlanning groups all planned goals. Each contribution is computed on its
// own and never capped; ExceedsInvestable only flags when their sum is above
// the monthly investable amount.
type GoalPlanning struct {
	Goals             []Goal  `json:"goals"`
	TotalMonthlySIP   float64 `json:"totalMonthlySIP"`
	ExceedsInvestable bool    `json:"exceedsInvestable"`
}
