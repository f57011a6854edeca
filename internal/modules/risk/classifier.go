// Package risk classifies a profile's totals into a risk tier and emits tier-specific advice.
package risk

import (
	"slices"

	"github.com/aristath/finwell/internal/domain"
)

// Goal labels that move the tier. Matched case-sensitively.
const (
	GoalAggressiveGrowth    = "aggressive growth"
	GoalCapitalPreservation = "capital preservation"
)

// Options carries the optional demographic inputs of Classify
type Options struct {
	Age   *int
	Goals []string
}

// Classify maps totals to a risk tier.
//
// The base tier comes from an ordered rule chain where the first matching
// rule wins. Age then moves the tier (under 35 up, 60 and over down) and the
// "aggressive growth" / "capital preservation" goals move it up and down in
// that order. All moves clamp at the ends.
func Classify(t domain.Totals, opts Options) domain.RiskLevel {
	level := baseTier(t.Income, t.Expenses, t.Debts)

	if opts.Age != nil {
		switch age := *opts.Age; {
		case age < 35:
			level = level.Raise()
		case age >= 60:
			level = level.Lower()
		}
	}

	if len(opts.Goals) > 0 {
		if slices.Contains(opts.Goals, GoalAggressiveGrowth) {
			level = level.Raise()
		}
		if slices.Contains(opts.Goals, GoalCapitalPreservation) {
			level = level.Lower()
		}
	}

	return level
}

func baseTier(income, expenses, debts float64) domain.RiskLevel {
	overspent := expenses > income
	overIndebted := debts > income

	switch {
	case overspent && overIndebted:
		return domain.RiskVeryHigh
	case overspent != overIndebted:
		return domain.RiskHigh
	case expenses >= 0.8*income && expenses <= income && debts <= 0.5*income:
		return domain.RiskMedium
	case expenses <= 0.5*income && debts >= 0.5*income && debts <= income:
		return domain.RiskMedium
	case expenses <= 0.5*income && debts <= 0.5*income:
		return domain.RiskLow
	case expenses < income && debts < income:
		return domain.RiskLow
	default:
		return domain.RiskMedium
	}
}
