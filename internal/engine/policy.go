// Package engine implements the stateless financial recommendation and
// discipline scoring pipeline. Every function in this package is pure: it
// reads its arguments, returns new values and never logs or performs I/O.
// The only non-determinism is the forecast noise, drawn from an injected
// RandomSource.
package engine

import (
	"fmt"
	"strings"

	"github.com/Dan9191/wealthwise/internal/models"
)

// BudgetPolicy selects how income is split into needs, wants and savings
type BudgetPolicy string

const (
	BudgetAuto BudgetPolicy = "auto"
	// BudgetFixed splits salary 50/30/20
	BudgetFixed BudgetPolicy = "fixed"
	// BudgetExpense derives the split from declared expenses
	BudgetExpense BudgetPolicy = "expense"
)

// InsurancePolicy selects how target covers are sized
type InsurancePolicy string

const (
	InsuranceAuto InsurancePolicy = "auto"
	// InsuranceIncome is 20x annual income life cover with a metro health surcharge
	InsuranceIncome InsurancePolicy = "income"
	// InsuranceDependents is 15x annual income life cover with per-dependent health cover
	InsuranceDependents InsurancePolicy = "dependents"
)

// Policy is the strategy set used for one analysis
type Policy struct {
	Budget    BudgetPolicy
	Insurance InsurancePolicy
	Currency  string
}

// ParseBudgetPolicy validates a budget policy name
func ParseBudgetPolicy(s string) (BudgetPolicy, error) {
	switch p := BudgetPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "", BudgetAuto:
		return BudgetAuto, nil
	case BudgetFixed, BudgetExpense:
		return p, nil
	default:
		return "", fmt.Errorf("unknown budget policy %q", s)
	}
}

// ParseInsurancePolicy validates an insurance policy name
func ParseInsurancePolicy(s string) (InsurancePolicy, error) {
	switch p := InsurancePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "", InsuranceAuto:
		return InsuranceAuto, nil
	case InsuranceIncome, InsuranceDependents:
		return p, nil
	default:
		return "", fmt.Errorf("unknown insurance policy %q", s)
	}
}

// Resolve replaces auto policies with the default for the given mode.
// Profile-only reports use the fixed split and income-multiple covers,
// portfolio-aware reports use the expense-derived split and dependents covers.
func (p Policy) Resolve(mode models.Mode) Policy {
	resolved := p
	if resolved.Budget == "" || resolved.Budget == BudgetAuto {
		resolved.Budget = BudgetFixed
		if mode == models.ModePortfolioAware {
			resolved.Budget = BudgetExpense
		}
	}
	if resolved.Insurance == "" || resolved.Insurance == InsuranceAuto {
		resolved.Insurance = InsuranceIncome
		if mode == models.ModePortfolioAware {
			resolved.Insurance = InsuranceDependents
		}
	}
	if resolved.Currency == "" {
		resolved.Currency = "INR"
	}
	return resolved
}

// DetectMode returns portfolio-aware when any held position is supplied
func DetectMode(positions []models.Position) models.Mode {
	if len(positions) > 0 {
		return models.ModePortfolioAware
	}
	return models.ModeProfileOnly
}
