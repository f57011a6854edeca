package analysis

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aristath/finwell/internal/domain"
	"github.com/aristath/finwell/internal/validation"
	"github.com/goccy/go-json"
)

// GenerationFailedMessage is the single message shown when a generated
// profile cannot be used
const GenerationFailedMessage = "Failed to parse generated financial profile."

// ErrGenerationFailed is returned when a generated profile payload cannot be
// parsed or is not a usable profile
var ErrGenerationFailed = errors.New("generated profile could not be parsed")

// ExpenseItem is one named fixed or variable expense
type ExpenseItem struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Expenses splits a generated profile's spending into fixed and variable items
type Expenses struct {
	Fixed    []ExpenseItem `json:"fixed"`
	Variable []ExpenseItem `json:"variable"`
}

// Total sums both lists
func (e Expenses) Total() float64 {
	total := 0.0
	for _, it := range e.Fixed {
		total += it.Amount
	}
	for _, it := range e.Variable {
		total += it.Amount
	}
	return total
}

// GeneratedProfile is a generated financial profile. It carries explicit
// expense lists next to the usual profile fields, and its age may be absent.
type GeneratedProfile struct {
	domain.FinancialProfile
	Age      *int     `json:"age,omitempty"`
	Expenses Expenses `json:"expenses"`
}

// Profile returns the storable profile with the age folded in
func (g GeneratedProfile) Profile() domain.FinancialProfile {
	p := g.FinancialProfile
	if g.Age != nil {
		p.Age = *g.Age
	}
	p.Normalize()
	return p
}

// Totals uses the explicit expense lists, not the transaction aggregates
func (g GeneratedProfile) Totals() domain.Totals {
	return domain.Totals{
		Income:   g.Income.Total(),
		Expenses: g.Expenses.Total(),
		Debts:    domain.SumDebtPayments(g.Debts),
	}
}

// ParseGenerated decodes generated profile text. A surrounding ```json fence
// is tolerated.
func ParseGenerated(text string) (*GeneratedProfile, error) {
	body := strings.TrimSpace(text)
	body = strings.TrimPrefix(body, "```json")
	body = strings.TrimPrefix(body, "```")
	body = strings.TrimSuffix(body, "```")
	body = strings.TrimSpace(body)

	var g GeneratedProfile
	if err := json.Unmarshal([]byte(body), &g); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if err := validation.Struct(g.Profile()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	return &g, nil
}

// AnalyzeGenerated analyses a generated profile with its own expense totals
func AnalyzeGenerated(g GeneratedProfile) Report {
	r := Analyze(Input{
		Name:   g.Name,
		Totals: g.Totals(),
		Age:    g.Age,
		Goals:  g.GoalNames(),
		Debts:  g.Debts,
	})
	r.Generated = true
	return r
}
