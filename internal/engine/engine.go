package engine

import (
	"time"

	"github.com/Dan9191/wealthwise/internal/models"
)

// Engine runs the recommendation pipeline with a fixed policy set and
// random source. An Engine holds no per-request state.
type Engine struct {
	policy Policy
	rng    RandomSource
}

// New creates an engine. A nil rng uses the global random source.
func New(policy Policy, rng RandomSource) *Engine {
	if rng == nil {
		rng = NewRandom()
	}
	return &Engine{policy: policy, rng: rng}
}

// Input is everything one analysis needs. Positions and Universe carry
// already-resolved prices; PriceSources records where each universe
// price came from.
type Input struct {
	ReportID     string
	Now          time.Time
	Profile      models.FinancialProfile
	Positions    []models.Position
	Universe     []models.Instrument
	PriceSources map[string]string
}

// Run passes a normalized profile through the scorer, the adjustment rules,
// the independent allocators and finally the aggregator
func (e *Engine) Run(in Input) models.Report {
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	mode := DetectMode(in.Positions)
	policy := e.policy.Resolve(mode)

	discipline := ScoreDiscipline(in.Profile)
	adj := Adjust(discipline.Score, in.Profile.Risk)
	adjusted := ApplyAdjustment(in.Profile, adj)

	budget := AllocateBudget(adjusted.FinancialProfile, policy.Budget)
	investable := MonthlyInvestable(budget)
	insurance := RecommendInsurance(adjusted.FinancialProfile, policy.Insurance, adj.InsurancePriority)
	portfolio := BuildPortfolio(adjusted, discipline.Score, investable)
	goals := PlanGoals(adjusted.FinancialProfile, investable)

	stocks := e.Stocks(in.Universe, in.PriceSources, now)

	card := BuildScoreCard(in.Profile, in.Positions, insurance.ProtectionGap, adj.DisciplineMultiplier)
	analysis := BuildAnalysis(in.Profile, in.Positions, card)

	report := models.Report{
		ReportID:                in.ReportID,
		GeneratedAt:             now,
		Profile:                 in.Profile,
		FinancialDiscipline:     discipline,
		Adjustment:              adj,
		BudgetPlan:              budget,
		InsuranceRecommendation: insurance,
		InvestmentPortfolio:     portfolio,
		StockRecommendations:    stocks,
		SellAnalysis:            DefaultSellAnalysis(),
		GoalPlanning:            goals,
		ScoreCard:               card,
		Analysis:                analysis,
		Positions:               in.Positions,
		MonthlyReport:           MonthlyDisciplineReport(in.Profile, discipline, now, policy.Currency),
		NextActions:             NextActions(adj, insurance, analysis, investable, policy.Currency),
	}
	report.Charts = BuildCharts(report)
	return report
}

// Stocks forecasts the universe and tags every recommendation with the
// source of its current price. A nil universe means DefaultUniverse.
func (e *Engine) Stocks(universe []models.Instrument, priceSources map[string]string, now time.Time) []models.StockRecommendation {
	if universe == nil {
		universe = DefaultUniverse()
	}
	stocks := RecommendStocks(universe, now.Year(), e.rng)
	for i := range stocks {
		stocks[i].PriceSource = models.SourceFallback
		if src, ok := priceSources[stocks[i].Ticker]; ok {
			stocks[i].PriceSource = src
		}
	}
	return stocks
}

// Discipline scores a profile without running the allocators
func (e *Engine) Discipline(p models.FinancialProfile, now time.Time) models.DisciplineReport {
	d := ScoreDiscipline(p)
	currency := e.policy.Resolve(models.ModeProfileOnly).Currency
	return models.DisciplineReport{
		FinancialDiscipline: d,
		Adjustment:          Adjust(d.Score, p.Risk),
		MonthlyReport:       MonthlyDisciplineReport(p, d, now, currency),
	}
}
