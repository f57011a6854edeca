// Package cash_flows projects monthly net cash flow forward for stored profiles.
//
// The projection is linear: every month repeats the same net flow and the
// balance at month i is netMonthly * i. There is no starting balance and no
// compounding.
package cash_flows

import (
	"fmt"

	"github.com/aristath/finwell/internal/domain"
)

// DefaultMonths is the projection length used when none is requested
const DefaultMonths = 6

// Summary is the monthly cash flow a projection repeats
type Summary struct {
	Income     float64 `json:"income"`
	Expenses   float64 `json:"expenses"`
	NetMonthly float64 `json:"netMonthly"`
}

// MonthProjection is one projected month
type MonthProjection struct {
	Month             string  `json:"month"`
	ProjectedBalance  float64 `json:"projectedBalance"`
	CumulativeNetFlow float64 `json:"cumulativeNetFlow"`
	Summary           Summary `json:"summary"`
}

// Projection is the forecast for one profile
type Projection struct {
	UserID     int64             `json:"userId"`
	Name       string            `json:"name"`
	Age        int               `json:"age"`
	Goals      []string          `json:"goals"`
	Projection []MonthProjection `json:"projection"`
}

// MonthlySummary derives the repeating monthly flow for a profile.
// Income counts only salary, freelance and consulting. Expenses are the
// transaction aggregates, debt payments and recurring merchants normalised
// to a monthly amount.
func MonthlySummary(p domain.FinancialProfile) Summary {
	recurring := 0.0
	for _, m := range p.RecurringMerchants {
		recurring += m.MonthlyAmount()
	}

	income := p.Income.Earned()
	expenses := p.TotalExpenses() + p.TotalDebtPayments() + recurring

	return Summary{
		Income:     income,
		Expenses:   expenses,
		NetMonthly: income - expenses,
	}
}

// Project builds a months-long projection for one profile, months 1..n.
// A non-positive months yields an empty projection.
func Project(p domain.FinancialProfile, months int) Projection {
	summary := MonthlySummary(p)

	entries := make([]MonthProjection, 0, max(months, 0))
	for i := 1; i <= months; i++ {
		balance := summary.NetMonthly * float64(i)
		entries = append(entries, MonthProjection{
			Month:             fmt.Sprintf("Month %d", i),
			ProjectedBalance:  balance,
			CumulativeNetFlow: balance,
			Summary:           summary,
		})
	}

	return Projection{
		UserID:     p.ID,
		Name:       p.Name,
		Age:        p.Age,
		Goals:      p.GoalNames(),
		Projection: entries,
	}
}

// ProjectAll projects every profile, preserving input order
func ProjectAll(profiles []domain.FinancialProfile, months int) []Projection {
	out := make([]Projection, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, Project(p, months))
	}
	return out
}
