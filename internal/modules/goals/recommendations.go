// Package goals turns a profile's stated goals into goal-specific advice.
package goals

import (
	"strings"

	"github.com/aristath/finwell/internal/domain"
	"github.com/aristath/finwell/pkg/formulas"
)

// Recognized goal keys, compared after lowercasing
const (
	BuyAHouse           = "buy a house"
	Retirement          = "retirement"
	EmergencyFund       = "emergency fund"
	Education           = "education"
	ChildrensEducation  = "save for children's education"
	AggressiveGrowth    = "aggressive growth"
	CapitalPreservation = "capital preservation"
	StartABusiness      = "start a business"
	Travel              = "travel"
	EarlyRetirement     = "early retirement"
)

type inputs struct {
	totals  domain.Totals
	surplus float64
	debt    float64
	age     *int
}

func (in inputs) ageAtLeast(n int) bool { return in.age != nil && *in.age >= n }
func (in inputs) ageBelow(n int) bool { return in.age != nil && *in.age < n }

func pick(cond bool, hi, lo float64) float64 {
	if cond {
		return hi
	}
	return lo
}

type rule func(in inputs) []domain.Recommendation

var catalogue = map[string]rule{
	BuyAHouse: func(in inputs) []domain.Recommendation {
		recs := []domain.Recommendation{{
			Title:       "Start Saving for a Down Payment",
			Explanation: "Open a dedicated savings account for your home fund. Aim to save at least 10–20% of your target home price.",
			Confidence:  pick(in.surplus > 5000, 0.9, 0.75),
		}}
		if in.debt > 0.3 {
			recs = append(recs, domain.Recommendation{
				Title:       "Reduce Debt-to-Income Ratio",
				Explanation: "Lenders prefer lower debt ratios. Pay off existing debts to improve mortgage eligibility.",
				Confidence:  0.85,
			})
		}
		return recs
	},
	Retirement: func(in inputs) []domain.Recommendation {
		recs := []domain.Recommendation{{
			Title:       "Contribute to a Retirement Account",
			Explanation: "Use IRAs or 401(k)s to build tax-advantaged retirement savings.",
			Confidence:  pick(in.ageAtLeast(50), 0.95, 0.9),
		}}
		if in.surplus > 10000 {
			recs = append(recs, domain.Recommendation{
				Title:       "Automate Monthly Retirement Contributions",
				Explanation: "Set automatic transfers to steadily grow your retirement savings.",
				Confidence:  0.85,
			})
		}
		return recs
	},
	EmergencyFund: func(in inputs) []domain.Recommendation {
		recs := []domain.Recommendation{{
			Title:       "Build a 3–6 Month Emergency Fund",
			Explanation: "Ensure you can cover essential expenses in case of job loss or emergencies.",
			Confidence:  0.95,
		}}
		if in.totals.Expenses > 0.6*in.totals.Income {
			recs = append(recs, domain.Recommendation{
				Title:       "Adjust Expenses to Increase Savings",
				Explanation: "Consider cutting unnecessary costs to build your emergency fund faster.",
				Confidence:  0.8,
			})
		}
		return recs
	},
	Education:          education,
	ChildrensEducation: education,
	AggressiveGrowth: func(in inputs) []domain.Recommendation {
		return []domain.Recommendation{{
			Title:       "Explore Higher-Risk Investments",
			Explanation: "Consider diversified stock portfolios, growth ETFs, or even startup investing (based on your risk profile).",
			Confidence:  pick(in.debt < 0.3, 0.85, 0.7),
		}}
	},
	CapitalPreservation: func(in inputs) []domain.Recommendation {
		return []domain.Recommendation{{
			Title:       "Prioritize Low-Risk, Stable Investments",
			Explanation: "Look at treasury bonds, CDs, or money market accounts to preserve capital.",
			Confidence:  0.9,
		}}
	},
	StartABusiness: func(in inputs) []domain.Recommendation {
		return []domain.Recommendation{
			{
				Title:       "Create a Business Savings Fund",
				Explanation: "Set aside capital for startup costs before quitting your job or seeking outside funding.",
				Confidence:  pick(in.surplus > 8000, 0.85, 0.7),
			},
			{
				Title:       "Draft a Lean Business Plan",
				Explanation: "Outlining clear milestones and cash flow needs helps reduce risk.",
				Confidence:  0.8,
			},
		}
	},
	Travel: func(in inputs) []domain.Recommendation {
		recs := []domain.Recommendation{{
			Title:       "Set Up a Travel Budget",
			Explanation: "Plan out how much you want to spend and save monthly toward that goal.",
			Confidence:  0.85,
		}}
		if in.surplus < 1000 {
			recs = append(recs, domain.Recommendation{
				Title:       "Consider a Delayed Timeline",
				Explanation: "With limited savings, pushing your travel goal back can help you avoid debt.",
				Confidence:  0.75,
			})
		}
		return recs
	},
	EarlyRetirement: func(in inputs) []domain.Recommendation {
		return []domain.Recommendation{
			{
				Title:       "Maximize Retirement Contributions Now",
				Explanation: "Early retirement requires front-loading your investments aggressively.",
				Confidence:  pick(in.ageBelow(40) && in.surplus > 15000, 0.9, 0.75),
			},
			{
				Title:       "Track FIRE (Financial Independence, Retire Early) Metrics",
				Explanation: "Calculate your savings rate, withdrawal rate, and target 'FI number' to stay on track.",
				Confidence:  0.85,
			},
		}
	},
}

func education(in inputs) []domain.Recommendation {
	recs := []domain.Recommendation{{
		Title:       "Start a Dedicated Education Fund",
		Explanation: "Look into 529 plans or education savings accounts to prepare for school fees.",
		Confidence:  0.9,
	}}
	if in.surplus < 5000 {
		recs = append(recs, domain.Recommendation{
			Title:       "Set Small, Recurring Contributions",
			Explanation: "Even small monthly contributions to an education fund can add up over time.",
			Confidence:  0.75,
		})
	}
	return recs
}

// Known reports whether the label maps to a catalogue entry
func Known(label string) bool {
	_, ok := catalogue[strings.ToLower(label)]
	return ok
}

// Recommend emits advice for each goal label in input order.
// Labels are lowercased before lookup; unknown labels are skipped and a
// repeated label repeats its advice.
func Recommend(labels []string, t domain.Totals, age *int) []domain.Recommendation {
	in := inputs{
		totals:  t,
		surplus: t.Income - t.Expenses,
		debt:    formulas.SafeRatio(t.Debts, t.Income),
		age:     age,
	}

	recs := []domain.Recommendation{}
	for _, label := range labels {
		r, ok := catalogue[strings.ToLower(label)]
		if !ok {
			continue
		}
		recs = append(recs, r(in)...)
	}
	return recs
}
