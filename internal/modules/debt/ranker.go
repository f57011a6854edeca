// Package debt orders a profile's debts into a repayment sequence.
package debt

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/aristath/finwell/internal/domain"
)

// Strategy is a named repayment ordering
type Strategy string

const (
	// Avalanche pays the highest interest rate first
	Avalanche Strategy = "avalanche"
	// Snowball pays the smallest monthly payment first.
	// This orders by payment size, not by outstanding balance.
	Snowball Strategy = "snowball"
)

// DefaultStrategy is used when no strategy is given
const DefaultStrategy = Avalanche

// NoDebtsMessage is reported for a profile without debts
const NoDebtsMessage = "No debts found in this profile."

// ErrUnknownStrategy is returned by ParseStrategy for anything but avalanche or snowball
var ErrUnknownStrategy = errors.New("unknown repayment strategy")

// ParseStrategy maps user input to a Strategy. Empty input selects the default.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultStrategy, nil
	case Avalanche:
		return Avalanche, nil
	case Snowball:
		return Snowball, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Plan is the ranked repayment order for one debt list
type Plan struct {
	Strategy             Strategy      `json:"strategy"`
	Debts                []domain.Debt `json:"debts"`
	Order                []string      `json:"order"`
	TotalMonthlyPayments float64       `json:"totalMonthlyPayments"`
	HasDebts             bool          `json:"hasDebts"`
	Message              string        `json:"message,omitempty"`
}

// Rank orders debts by strategy. Ties keep their input order.
// The input slice is not modified.
func Rank(debts []domain.Debt, strategy Strategy) Plan {
	if strategy == "" {
		strategy = DefaultStrategy
	}

	plan := Plan{
		Strategy: strategy,
		Debts:    []domain.Debt{},
		Order:    []string{},
	}
	if len(debts) == 0 {
		plan.Message = NoDebtsMessage
		return plan
	}

	sorted := make([]domain.Debt, len(debts))
	copy(sorted, debts)

	switch strategy {
	case Snowball:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].MonthlyPayment < sorted[j].MonthlyPayment
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].InterestRate > sorted[j].InterestRate
		})
	}

	for _, d := range sorted {
		plan.Order = append(plan.Order, d.Name)
	}
	plan.Debts = sorted
	plan.TotalMonthlyPayments = domain.SumDebtPayments(debts)
	plan.HasDebts = true
	return plan
}
