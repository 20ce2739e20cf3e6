package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Dan9191/wealthwise/internal/models"
	"github.com/Dan9191/wealthwise/internal/utils"
	"github.com/beevik/etree"
)

// ExportXML renders the analysis report as an indented XML document. Money
// amounts carry both the raw value and a display string in currency.
func ExportXML(r models.Report, currency string) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("report")
	root.CreateAttr("id", r.ReportID)
	root.CreateAttr("generatedAt", r.GeneratedAt.UTC().Format(time.RFC3339))
	root.CreateAttr("currency", currency)

	profile := root.CreateElement("profile")
	profile.CreateAttr("age", strconv.Itoa(r.Profile.Age))
	profile.CreateAttr("city", string(r.Profile.City))
	profile.CreateAttr("risk", string(r.Profile.Risk))
	addMoney(profile, "salary", r.Profile.Salary, currency)

	d := r.FinancialDiscipline
	discipline := root.CreateElement("discipline")
	discipline.CreateAttr("score", strconv.Itoa(d.Score))
	discipline.CreateAttr("level", d.Level)
	discipline.CreateAttr("grade", d.Grade)
	addScore(discipline, "component", "incomeStability", d.Components.IncomeStability)
	addScore(discipline, "component", "expenseControl", d.Components.ExpenseControl)
	addScore(discipline, "component", "savingsConsistency", d.Components.SavingsConsistency)
	addScore(discipline, "component", "debtBehaviour", d.Components.DebtBehaviour)
	addScore(discipline, "component", "investmentBehaviour", d.Components.InvestmentBehaviour)

	adj := root.CreateElement("adjustment")
	adj.CreateAttr("originalRisk", string(r.Adjustment.OriginalRisk))
	adj.CreateAttr("adjustedRisk", string(r.Adjustment.AdjustedRisk))
	adj.CreateAttr("disciplineMultiplier", formatFloat(r.Adjustment.DisciplineMultiplier))
	adj.CreateAttr("insurancePriority", string(r.Adjustment.InsurancePriority))

	writeBudget(root, r.BudgetPlan, currency)
	writeInsurance(root, r.InsuranceRecommendation, currency)
	writePortfolio(root, r.InvestmentPortfolio, currency)
	writeGoals(root, r.GoalPlanning, currency)

	card := root.CreateElement("scoreCard")
	card.CreateAttr("mode", string(r.ScoreCard.Mode))
	card.CreateAttr("totalScore", strconv.Itoa(r.ScoreCard.TotalScore))
	card.CreateAttr("finalScore", strconv.Itoa(r.ScoreCard.FinalScore))
	b := r.ScoreCard.Breakdown
	addScore(card, "score", "budget", b.Budget)
	addScore(card, "score", "savings", b.Savings)
	addScore(card, "score", "debt", b.Debt)
	addScore(card, "score", "investment", b.Investment)
	addScore(card, "score", "insurance", b.Insurance)

	stocks := root.CreateElement("stocks")
	for _, s := range r.StockRecommendations {
		el := stocks.CreateElement("stock")
		el.CreateAttr("ticker", s.Ticker)
		el.CreateAttr("signal", s.Signal)
		el.CreateAttr("priceSource", s.PriceSource)
		el.CreateAttr("price", formatFloat(s.Price))
		el.CreateAttr("projectedPrice5Y", formatFloat(s.Forecast.ProjectedPrice5Y))
		el.CreateAttr("potentialReturn", formatFloat(s.Forecast.PotentialReturn))
	}

	monthly := root.CreateElement("monthlyReport")
	monthly.CreateAttr("month", r.MonthlyReport.Month)
	monthly.CreateAttr("grade", r.MonthlyReport.Grade)
	monthly.CreateElement("strongHabit").SetText(r.MonthlyReport.StrongHabit)
	monthly.CreateElement("weakArea").SetText(r.MonthlyReport.WeakArea)
	monthly.CreateElement("focusedAction").SetText(r.MonthlyReport.FocusedAction)

	actions := root.CreateElement("nextActions")
	for _, a := range r.NextActions {
		actions.CreateElement("action").SetText(a)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to write report XML: %w", err)
	}
	return out, nil
}

func writeBudget(root *etree.Element, plan models.BudgetPlan, currency string) {
	budget := root.CreateElement("budget")
	budget.CreateAttr("policy", plan.Policy)
	budget.CreateAttr("incomeBracket", plan.IncomeBracket)
	if plan.Strategy != "" {
		budget.CreateAttr("strategy", plan.Strategy)
	}
	addMoney(budget, "eligibleInvestment", plan.EligibleInvestmentAmount, currency)

	for _, s := range []struct {
		name  string
		slice models.BudgetSlice
	}{
		{"needs", plan.MonthlyAllocation.Needs},
		{"wants", plan.MonthlyAllocation.Wants},
		{"savings", plan.MonthlyAllocation.Savings},
	} {
		el := addMoney(budget, "slice", s.slice.Amount, currency)
		el.CreateAttr("name", s.name)
		el.CreateAttr("percentage", strconv.Itoa(s.slice.Percentage))
		el.CreateAttr("label", s.slice.Label)
	}

	for _, line := range plan.RecommendedAllocations {
		el := addMoney(budget, "recommendation", line.Amount, currency)
		el.CreateAttr("type", line.Type)
	}
}

func writeInsurance(root *etree.Element, rec models.InsuranceRecommendation, currency string) {
	ins := root.CreateElement("insurance")
	ins.CreateAttr("policy", rec.Policy)
	ins.CreateAttr("priority", string(rec.Priority))

	addCover := func(kind string, gap models.CoverGap) {
		el := addMoney(ins, "cover", gap.Required, currency)
		el.CreateAttr("type", kind)
		el.CreateAttr("existing", formatFloat(gap.Actual))
		el.CreateAttr("gap", formatFloat(gap.Gap))
	}
	addCover("termLife", rec.ProtectionGap.Life)
	addCover("health", rec.ProtectionGap.Health)
	if rec.PersonalAccident != nil {
		el := addMoney(ins, "cover", rec.PersonalAccident.RecommendedCover, currency)
		el.CreateAttr("type", "personalAccident")
	}

	for _, rider := range rec.Riders {
		ins.CreateElement("rider").SetText(rider)
	}
}

func writePortfolio(root *etree.Element, p models.InvestmentPortfolio, currency string) {
	portfolio := root.CreateElement("portfolio")
	portfolio.CreateAttr("riskProfile", string(p.RiskProfile))
	portfolio.CreateAttr("riskAdjusted", strconv.FormatBool(p.RiskAdjusted))
	portfolio.CreateAttr("equityCapped", strconv.FormatBool(p.EquityCapped))
	addMoney(portfolio, "monthlyInvestment", p.TotalMonthlyInvestment, currency)

	values := p.Allocation.Values()
	for i, class := range models.AssetClasses {
		el := portfolio.CreateElement("asset")
		el.CreateAttr("class", class)
		el.CreateAttr("percent", formatFloat(values[i]))
	}
}

func writeGoals(root *etree.Element, g models.GoalPlanning, currency string) {
	goals := root.CreateElement("goals")
	goals.CreateAttr("exceedsInvestable", strconv.FormatBool(g.ExceedsInvestable))
	addMoney(goals, "totalMonthlySIP", g.TotalMonthlySIP, currency)

	for _, goal := range g.Goals {
		el := goals.CreateElement("goal")
		el.CreateAttr("name", goal.GoalName)
		el.CreateAttr("years", strconv.Itoa(goal.TimeHorizonYears))
		el.CreateAttr("route", goal.SuggestedRoute)
		el.CreateAttr("target", formatFloat(goal.TargetAmount))
		el.CreateAttr("monthlySIP", formatFloat(goal.MonthlySIPRequired))
	}
}

func addMoney(parent *etree.Element, tag string, amount float64, currency string) *etree.Element {
	el := parent.CreateElement(tag)
	el.CreateAttr("amount", formatFloat(amount))
	el.CreateAttr("display", utils.FormatMoney(amount, currency))
	return el
}

func addScore(parent *etree.Element, tag, name string, value int) {
	el := parent.CreateElement(tag)
	el.CreateAttr("name", name)
	el.CreateAttr("value", strconv.Itoa(value))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
