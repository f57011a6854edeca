// Package expenses summarises spending per stored profile and suggests
// where to cut back.
package expenses

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aristath/finwell/internal/domain"
	"github.com/aristath/finwell/pkg/formulas"
)

const (
	// TopCategoryCount is how many categories the analysis lists
	TopCategoryCount = 3
	// UtilitiesThreshold is the monthly utilities spend that triggers a suggestion
	UtilitiesThreshold = 2500
	// DiningOutThreshold is the monthly dining-out spend that triggers a suggestion
	DiningOutThreshold = 1000
)

// Analysis is the spending summary of one profile
type Analysis struct {
	User               string                        `json:"user"`
	TotalMonthlyIncome float64                       `json:"totalMonthlyIncome"`
	TotalExpenses      float64                       `json:"totalExpenses"`
	SavingsPotential   float64                       `json:"savingsPotential"`
	TopCategories      []domain.TransactionAggregate `json:"topCategories"`
	Suggestions        []string                      `json:"suggestions"`
}

// Analyze summarises one profile. Income counts salary, freelance and
// consulting only; expenses are the transaction aggregates.
func Analyze(p domain.FinancialProfile) Analysis {
	income := p.Income.Earned()
	spent := p.TotalExpenses()

	top := make([]domain.TransactionAggregate, len(p.TransactionAggregates))
	copy(top, p.TransactionAggregates)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].TotalAmount > top[j].TotalAmount
	})
	if len(top) > TopCategoryCount {
		top = top[:TopCategoryCount]
	}

	a := Analysis{
		User:               p.Name,
		TotalMonthlyIncome: income,
		TotalExpenses:      spent,
		SavingsPotential:   income - spent,
		TopCategories:      top,
	}
	a.Suggestions = suggest(p, a)
	return a
}

func suggest(p domain.FinancialProfile, a Analysis) []string {
	var out []string

	if a.SavingsPotential > 0 {
		target := "your savings goals"
		if len(p.Goals) > 0 {
			target = fmt.Sprintf("goals like %q", p.Goals[0].Name)
		}
		out = append(out, fmt.Sprintf(
			"You're saving about %s per month — consider allocating it toward %s.",
			formulas.FormatRand(a.SavingsPotential), target))
	} else {
		target := "your discretionary categories"
		if len(a.TopCategories) > 0 {
			target = fmt.Sprintf("discretionary categories like %q", a.TopCategories[0].Category)
		}
		out = append(out, fmt.Sprintf(
			"You're overspending by %s — review %s.",
			formulas.FormatRand(-a.SavingsPotential), target))
	}

	if spend, ok := categorySpend(p.TransactionAggregates, "utilities"); ok && spend > UtilitiesThreshold {
		out = append(out, "Your utility costs are quite high — consider optimizing energy or data plans.")
	}
	if spend, ok := categorySpend(p.TransactionAggregates, "dining out"); ok && spend > DiningOutThreshold {
		out = append(out, "Dining out expenses are significant — try meal prepping to save.")
	}

	return out
}

// categorySpend returns the first aggregate whose category matches name,
// ignoring case
func categorySpend(aggregates []domain.TransactionAggregate, name string) (float64, bool) {
	for _, t := range aggregates {
		if strings.EqualFold(t.Category, name) {
			return t.TotalAmount, true
		}
	}
	return 0, false
}
