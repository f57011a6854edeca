package risk

import (
	"github.com/aristath/finwell/internal/domain"
	"github.com/aristath/finwell/pkg/formulas"
)

// Ratios are the derived figures the advice confidences are computed from
type Ratios struct {
	ExpenseRatio   float64 `json:"expenseRatio"`
	DebtRatio      float64 `json:"debtRatio"`
	SavingsSurplus float64 `json:"savingsSurplus"`
}

// ComputeRatios derives expense and debt ratios (1 when income <= 0) and the surplus
func ComputeRatios(t domain.Totals) Ratios {
	return Ratios{
		ExpenseRatio:   formulas.SafeRatio(t.Expenses, t.Income),
		DebtRatio:      formulas.SafeRatio(t.Debts, t.Income),
		SavingsSurplus: t.Income - t.Expenses,
	}
}

func byCondition(cond bool) float64 {
	if cond {
		return 0.9
	}
	return 0.75
}

func byTier(factor, low, high float64) float64 {
	if factor < low {
		return 0.6
	}
	if factor < high {
		return 0.75
	}
	return 0.9
}

// Recommend returns the fixed advice set for the tier, in emission order.
// An unknown tier yields no advice.
func Recommend(level domain.RiskLevel, t domain.Totals) []domain.Recommendation {
	r := ComputeRatios(t)

	switch level {
	case domain.RiskVeryLow:
		return []domain.Recommendation{
			{
				Title:       "Prioritize Capital Preservation",
				Explanation: "Focus on stable, low-risk investments such as government bonds or insured savings.",
				Confidence:  byCondition(r.ExpenseRatio < 0.5 && r.DebtRatio < 0.2),
			},
			{
				Title:       "Maintain a Robust Emergency Fund",
				Explanation: "Keep a 6+ month emergency fund to safeguard against financial shocks.",
				Confidence:  byCondition(r.SavingsSurplus > 5000),
			},
		}
	case domain.RiskLow:
		return []domain.Recommendation{
			{
				Title:       "Consider High-Yield Savings or CDs",
				Explanation: "Low risk means you can safely grow savings with minimal exposure to market volatility.",
				Confidence:  byCondition(r.SavingsSurplus > 3000),
			},
			{
				Title:       "Explore Conservative Mutual Funds",
				Explanation: "Balanced funds or bond-heavy mutual funds can offer modest growth with limited risk.",
				Confidence:  byTier(r.DebtRatio, 0.1, 0.25),
			},
		}
	case domain.RiskMedium:
		return []domain.Recommendation{
			{
				Title:       "Build a Balanced Portfolio",
				Explanation: "Mix stocks, bonds, and cash to balance growth potential with risk mitigation.",
				Confidence:  byCondition(r.ExpenseRatio <= 0.7 && r.DebtRatio <= 0.4),
			},
			{
				Title:       "Establish an Emergency Fund",
				Explanation: "Aim for 3–6 months of expenses saved to cushion against unexpected costs.",
				Confidence:  byCondition(r.SavingsSurplus > 3000),
			},
			{
				Title:       "Review Budget and Debt Strategy",
				Explanation: "Optimizing spending and paying off high-interest debt can improve your financial health.",
				Confidence:  byCondition(r.DebtRatio > 0.25 || r.ExpenseRatio > 0.6),
			},
		}
	case domain.RiskHigh:
		return []domain.Recommendation{
			{
				Title:       "Focus on Debt Reduction",
				Explanation: "High risk indicates liabilities are a major concern—prioritize paying these down aggressively.",
				Confidence:  byTier(r.DebtRatio, 0.3, 0.5),
			},
			{
				Title:       "Limit Exposure to Volatile Investments",
				Explanation: "Avoid high-risk investments until your financial position stabilizes.",
				Confidence:  byCondition(r.DebtRatio > 0.4 || r.SavingsSurplus < 2000),
			},
			{
				Title:       "Create and Follow a Strict Budget",
				Explanation: "Tracking expenses closely can help free up resources to reduce debt and expenses.",
				Confidence:  byCondition(r.ExpenseRatio > 0.6),
			},
		}
	case domain.RiskVeryHigh:
		return []domain.Recommendation{
			{
				Title:       "Seek Professional Financial Counseling",
				Explanation: "With very high financial risk, expert advice is critical to develop a sustainable plan.",
				Confidence:  0.95,
			},
			{
				Title:       "Immediately Reduce Expenses and Debt",
				Explanation: "Urgent action is needed to stabilize your financial situation and avoid worsening debt.",
				Confidence:  byCondition(r.ExpenseRatio > 0.8 || r.DebtRatio > 0.6),
			},
			{
				Title:       "Avoid New Debt or Risky Investments",
				Explanation: "Focus on stopping the accumulation of debt and preserving what you have.",
				Confidence:  byCondition(r.DebtRatio > 0.5),
			},
		}
	}
	return nil
}
