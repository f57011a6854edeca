// Package analysis combines the risk classifier and both recommenders into a
// single report for a submitted, generated or stored profile.
package analysis

import (
	"github.com/aristath/finwell/internal/domain"
	"github.com/aristath/finwell/internal/modules/goals"
	"github.com/aristath/finwell/internal/modules/risk"
)

// ReserveRate is the share of income set aside before judging surplus
const ReserveRate = 0.10

// Report is the analysis of one profile
type Report struct {
	ProfileID           int64                   `json:"profileId,omitempty"`
	Name                string                  `json:"name"`
	Generated           bool                    `json:"generated"`
	Totals              domain.Totals           `json:"totals"`
	ReservedAmount      float64                 `json:"reservedAmount"`
	UsableIncome        float64                 `json:"usableIncome"`
	Leftover            float64                 `json:"leftover"`
	HasSurplus          bool                    `json:"hasSurplus"`
	RiskLevel           domain.RiskLevel        `json:"riskLevel"`
	RiskRecommendations []domain.Recommendation `json:"riskRecommendations"`
	GoalRecommendations []domain.Recommendation `json:"goalRecommendations"`
	FocusDebt           *domain.Debt            `json:"focusDebt,omitempty"`
}

// Input is everything the orchestrator reads. Totals are computed by the
// caller because submitted and generated profiles derive expenses differently.
type Input struct {
	Name   string
	Totals domain.Totals
	Age    *int
	Goals  []string
	Debts  []domain.Debt
}

// Analyze classifies the input and gathers all recommendations
func Analyze(in Input) Report {
	t := in.Totals

	r := Report{
		Name:           in.Name,
		Totals:         t,
		ReservedAmount: ReserveRate * t.Income,
	}
	r.UsableIncome = t.Income - r.ReservedAmount
	r.Leftover = r.UsableIncome - (t.Expenses + t.Debts)
	r.HasSurplus = r.Leftover > 0

	r.RiskLevel = risk.Classify(t, risk.Options{Age: in.Age, Goals: in.Goals})
	r.RiskRecommendations = risk.Recommend(r.RiskLevel, t)
	r.GoalRecommendations = goals.Recommend(in.Goals, t, nil)
	r.FocusDebt = FocusDebt(in.Debts)
	return r
}

// AnalyzeProfile analyses a stored or submitted profile, taking expenses
// from its transaction aggregates
func AnalyzeProfile(p domain.FinancialProfile) Report {
	age := p.Age
	r := Analyze(Input{
		Name:   p.Name,
		Totals: p.Totals(),
		Age:    &age,
		Goals:  p.GoalNames(),
		Debts:  p.Debts,
	})
	r.ProfileID = p.ID
	return r
}

// FocusDebt returns the debt with the highest interest rate, the first one
// on ties. Nil when there are no debts.
func FocusDebt(debts []domain.Debt) *domain.Debt {
	if len(debts) == 0 {
		return nil
	}
	focus := debts[0]
	for _, d := range debts[1:] {
		if d.InterestRate > focus.InterestRate {
			focus = d
		}
	}
	return &focus
}
