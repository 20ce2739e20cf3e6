package models

// Mode tells whether the analysis had access to held positions
type Mode string

const (
	ModePortfolioAware Mode = "portfolio-aware"
	ModeProfileOnly    Mode = "profile-only"
)

// ScoreBreakdown holds the five 0-20 scorecard sub-scores
type ScoreBreakdown struct {
	Budget     int `json:"budget"`
	Savings    int `json:"savings"`
	Debt       int `json:"debt"`
	Investment int `json:"investment"`
	Insurance  int `json:"insurance"`
}

// Sum returns the total of all sub-scores
func (b ScoreBreakdown) Sum() int {
	return b.Budget + b.Savings + b.Debt + b.Investment + b.Insurance
}

// ScoreCard is the aggregated financial health score
type ScoreCard struct {
	TotalScore int            `json:"totalScore"`
	FinalScore int            `json:"finalScore"`
	Mode       Mode           `json:"mode"`
	Breakdown  ScoreBreakdown `json:"breakdown"`
}

// PortfolioInsights are observations on held positions
type PortfolioInsights struct {
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Adjustments []string `json:"adjustments"`
}

// Analysis is the natural-language reading of the scorecard
type Analysis struct {
	Strengths         []string           `json:"strengths"`
	Weaknesses        []string           `json:"weaknesses"`
	PriorityActions   []string           `json:"priorityActions"`
	PortfolioInsights *PortfolioInsights `json:"portfolioInsights,omitempty"`
}
