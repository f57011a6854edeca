// Package budgeting distributes a profile's monthly surplus across a safety
// buffer, an emergency fund and the profile's goals, and produces a short
// flat forecast.
package budgeting

import (
	"math"
	"time"

	"github.com/aristath/finwell/internal/domain"
	"github.com/aristath/finwell/pkg/formulas"
)

const (
	// SafetyBufferRate is the share of income held back before any allocation
	SafetyBufferRate = 0.15
	// EmergencyFundMonths is how many months of essentials the fund should cover
	EmergencyFundMonths = 3
	// ForecastMonths is the length of the forecast, starting with the current month
	ForecastMonths = 3
)

// GoalSaving is the contribution planned for one goal this month
type GoalSaving struct {
	Name            string  `json:"name"`
	Target          float64 `json:"target"`
	SaveThisMonth   float64 `json:"saveThisMonth"`
	EstimatedMonths int     `json:"estimatedMonths"`
}

// ForecastEntry is one month of the flat forecast
type ForecastEntry struct {
	Month  string  `json:"month"`
	Income float64 `json:"income"`
	Burn   float64 `json:"burn"`
	Net    float64 `json:"net"`
}

// AllocationPlan is the waterfall result for one profile
type AllocationPlan struct {
	TotalIncome            float64         `json:"totalIncome"`
	EssentialSpending      float64         `json:"essentialSpending"`
	Remaining              float64         `json:"remainingAfterEssentials"`
	SafetyBuffer           float64         `json:"safetyBuffer"`
	AllocatableSurplus     float64         `json:"allocatableSurplus"`
	EmergencyFundTarget    float64         `json:"emergencyFundTarget"`
	CombinedNeed           float64         `json:"combinedNeed"`
	HasSurplus             bool            `json:"hasSurplus"`
	EmergencyFundThisMonth float64         `json:"emergencyFundThisMonth"`
	GoalSavingsPlan        []GoalSaving    `json:"goalSavingsPlan"`
	Forecast               []ForecastEntry `json:"forecast"`
}

// TotalGoalSavings sums this month's goal contributions
func (p AllocationPlan) TotalGoalSavings() float64 {
	amounts := make([]float64, 0, len(p.GoalSavingsPlan))
	for _, g := range p.GoalSavingsPlan {
		amounts = append(amounts, g.SaveThisMonth)
	}
	return formulas.Sum(amounts)
}

// TotalAllocation is essentials plus every allocation made this month
func (p AllocationPlan) TotalAllocation() float64 {
	return p.EssentialSpending + p.EmergencyFundThisMonth + p.TotalGoalSavings() + p.SafetyBuffer
}

// FinalRemaining is what is left of income after TotalAllocation
func (p AllocationPlan) FinalRemaining() float64 {
	return p.TotalIncome - p.TotalAllocation()
}

// Allocate runs the waterfall for one profile. now anchors the forecast labels.
//
// The surplus ratio is capped at 1 so the emergency fund and goals never
// receive more than their full outstanding need in a single month.
func Allocate(p domain.FinancialProfile, now time.Time) AllocationPlan {
	plan := AllocationPlan{
		TotalIncome:       p.Income.Total(),
		EssentialSpending: p.TotalExpenses() + p.TotalDebtPayments(),
		GoalSavingsPlan:   []GoalSaving{},
	}

	plan.Remaining = plan.TotalIncome - plan.EssentialSpending
	plan.SafetyBuffer = SafetyBufferRate * plan.TotalIncome
	plan.AllocatableSurplus = plan.Remaining - plan.SafetyBuffer
	plan.EmergencyFundTarget = EmergencyFundMonths * plan.EssentialSpending

	goalNeed := 0.0
	for _, g := range p.Goals {
		goalNeed += g.Amount
	}
	plan.CombinedNeed = plan.EmergencyFundTarget + goalNeed

	if plan.AllocatableSurplus > 0 && plan.CombinedNeed > 0 {
		plan.HasSurplus = true
		ratio := math.Min(plan.AllocatableSurplus/plan.CombinedNeed, 1)

		plan.EmergencyFundThisMonth = formulas.Round2(math.Min(plan.EmergencyFundTarget, plan.EmergencyFundTarget*ratio))

		for _, g := range p.Goals {
			thisMonth := g.Amount * ratio
			plan.GoalSavingsPlan = append(plan.GoalSavingsPlan, GoalSaving{
				Name:            g.Name,
				Target:          g.Amount,
				SaveThisMonth:   formulas.Round2(thisMonth),
				EstimatedMonths: formulas.CeilDiv(g.Amount, thisMonth),
			})
		}
	}

	plan.Forecast = Forecast(plan.TotalIncome, plan.EssentialSpending, now)
	return plan
}

// Forecast reports the same income, burn and net for each of the next
// ForecastMonths month labels, starting with the month of now.
func Forecast(income, burn float64, now time.Time) []ForecastEntry {
	entries := make([]ForecastEntry, 0, ForecastMonths)
	for i := 0; i < ForecastMonths; i++ {
		entries = append(entries, ForecastEntry{
			Month:  MonthLabel(now, i),
			Income: income,
			Burn:   burn,
			Net:    income - burn,
		})
	}
	return entries
}
