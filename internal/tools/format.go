package tools

import (
	"fmt"
	"strings"

	"github.com/aristath/finwell/internal/domain"
	"github.com/aristath/finwell/internal/modules/analysis"
	"github.com/aristath/finwell/internal/modules/budgeting"
	"github.com/aristath/finwell/internal/modules/debt"
	"github.com/aristath/finwell/internal/modules/networth"
	"github.com/aristath/finwell/pkg/formulas"
	"github.com/dustin/go-humanize"
)

// rands renders an amount with two fixed decimals, e.g. "R12,500.00"
func rands(amount float64) string {
	if amount < 0 {
		return "-R" + humanize.FormatFloat("#,###.##", -amount)
	}
	return "R" + humanize.FormatFloat("#,###.##", amount)
}

func recommendationSegment(rec domain.Recommendation) string {
	return fmt.Sprintf("💡 %s\n📝 %s\n📈 Confidence: %.1f%%", rec.Title, rec.Explanation, rec.Confidence*100)
}

func recommendationSegments(r analysis.Report) []string {
	segments := []string{"\n📊 Based on Financial Risk:\n"}
	for _, rec := range r.RiskRecommendations {
		segments = append(segments, recommendationSegment(rec))
	}
	segments = append(segments, "\n🎯 Based on Your Goals:\n")
	for _, rec := range r.GoalRecommendations {
		segments = append(segments, recommendationSegment(rec))
	}
	return segments
}

func riskSegment(level domain.RiskLevel) string {
	return fmt.Sprintf("🧠 Risk Tolerance: **%s**\n", level.Label())
}

// profileSegments renders a submitted profile's analysis
func profileSegments(r analysis.Report) []string {
	t := r.Totals

	health := fmt.Sprintf("✅ You have a monthly surplus of %s after reserving 10%% of your income.",
		formulas.FormatAmount(r.Leftover))
	if !r.HasSurplus {
		health = fmt.Sprintf("⚠️ You are overspending by %s even after keeping 10%% reserved. Consider reducing discretionary expenses.",
			formulas.FormatAmount(-r.Leftover))
	}

	advice := "💡 No debts found to prioritize."
	if r.FocusDebt != nil {
		advice = fmt.Sprintf("💡 Focus extra payments on **%s**, which has the highest interest rate (%s%%).",
			r.FocusDebt.Name, humanize.Ftoa(r.FocusDebt.InterestRate))
	}

	segments := []string{
		fmt.Sprintf("✅ Financial profile saved for: **%s**\n", r.Name),
		fmt.Sprintf("🧮 Total Income: %s\n💰 Reserved 10%% Safety Buffer: %s\n",
			formulas.FormatAmount(t.Income), formulas.FormatAmount(r.ReservedAmount)),
		fmt.Sprintf("📊 Usable Income (after reserve): %s\n💸 Total Expenses: %s\n🏦 Total Debts: %s\n",
			formulas.FormatAmount(r.UsableIncome), formulas.FormatAmount(t.Expenses), formulas.FormatAmount(t.Debts)),
		fmt.Sprintf("%s\n\n%s\n", health, advice),
		riskSegment(r.RiskLevel),
	}
	return append(segments, recommendationSegments(r)...)
}

// generatedSegments renders a generated profile's analysis
func generatedSegments(r analysis.Report) []string {
	segments := []string{
		fmt.Sprintf("✅ Random profile generated and saved: **%s**", r.Name),
		strings.TrimSuffix(riskSegment(r.RiskLevel), "\n"),
	}
	return append(segments, recommendationSegments(r)...)
}

func payDateLines(predictions []budgeting.PayDatePrediction) string {
	lines := make([]string, 0, len(predictions))
	for _, p := range predictions {
		if p.Salary {
			lines = append(lines, fmt.Sprintf("💼 Salary Payment:\n- This Month: %s\n- Next Month (predicted): %s", p.Date, p.PredictedNext))
			continue
		}
		lines = append(lines, fmt.Sprintf("📌 %s: %s", p.Category, p.Date))
	}
	return strings.Join(lines, "\n")
}

// budgetSegments renders the budgeting report
func budgetSegments(r budgeting.Report) []string {
	plan := r.Plan

	goals := "🚫 No surplus available for goals."
	if len(plan.GoalSavingsPlan) > 0 {
		lines := make([]string, 0, len(plan.GoalSavingsPlan))
		for _, g := range plan.GoalSavingsPlan {
			lines = append(lines, fmt.Sprintf("- %s: Save %s → ~%d months", g.Name, rands(g.SaveThisMonth), g.EstimatedMonths))
		}
		goals = strings.Join(lines, "\n")
	}

	forecast := make([]string, 0, len(plan.Forecast))
	for _, f := range plan.Forecast {
		forecast = append(forecast, fmt.Sprintf("- %s: Income: %s, Burn: %s, Net: %s", f.Month, rands(f.Income), rands(f.Burn), rands(f.Net)))
	}

	categories := make([]string, 0, len(r.TopCategories))
	for _, c := range r.TopCategories {
		categories = append(categories, fmt.Sprintf("- %s: %s", c.Category, rands(c.TotalAmount)))
	}

	merchants := make([]string, 0, len(r.RecurringMerchants))
	for _, m := range r.RecurringMerchants {
		merchants = append(merchants, fmt.Sprintf("- %s (%s): %s", m.Name, m.Frequency, rands(m.Amount)))
	}

	return []string{
		fmt.Sprintf("📊 Monthly Essentials (Burn Rate): %s", rands(plan.EssentialSpending)),
		fmt.Sprintf("💵 Total Monthly Income: %s", rands(plan.TotalIncome)),
		fmt.Sprintf("💾 Reserved Safety Buffer (15%%): %s", rands(plan.SafetyBuffer)),
		fmt.Sprintf("📅 Upcoming Pay Dates:\n%s", payDateLines(r.PayDates)),
		fmt.Sprintf("💰 Emergency Fund Plan:\n- Target (3 months): %s\n- Saving This Month: %s",
			rands(plan.EmergencyFundTarget), rands(plan.EmergencyFundThisMonth)),
		"🎯 Goal Contributions This Month:\n" + goals,
		"📉 Cashflow Forecast (next 3 months):\n" + strings.Join(forecast, "\n"),
		"📌 Top Spending Categories:\n" + strings.Join(categories, "\n"),
		"🔁 Recurring Merchants:\n" + strings.Join(merchants, "\n"),
		fmt.Sprintf("✅ Final Summary:\n- Total Income: %s\n- Essentials: %s\n- Emergency Fund (this month): %s\n- Goals (this month): %s\n- Reserved Buffer: %s\n- 🧮 Remaining Surplus: %s",
			rands(plan.TotalIncome), rands(plan.EssentialSpending), rands(plan.EmergencyFundThisMonth),
			rands(r.GoalSavingsTotal), rands(plan.SafetyBuffer), rands(r.FinalRemaining)),
	}
}

// debtText renders every profile's repayment plan as one block
func debtText(plans []debt.ProfilePlan) string {
	blocks := make([]string, 0, len(plans))
	for _, pp := range plans {
		if !pp.Plan.HasDebts {
			blocks = append(blocks, fmt.Sprintf("%s: %s", pp.User, pp.Plan.Message))
			continue
		}

		var b strings.Builder
		fmt.Fprintf(&b, "💰 **%s** — Recommended Debt Repayment Strategy (%s):\n", pp.User, strings.ToUpper(string(pp.Plan.Strategy)))
		b.WriteString("\nOrder of repayment:\n")
		for i, name := range pp.Plan.Order {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, name)
		}
		fmt.Fprintf(&b, "\nTotal monthly debt payments: %s.\n", formulas.FormatRand(pp.Plan.TotalMonthlyPayments))
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

// netWorthText renders the net worth summary
func netWorthText(s networth.Summary) string {
	icon := map[networth.Status]string{
		networth.StatusPositive: "✅",
		networth.StatusNegative: "⚠️",
		networth.StatusBalanced: "⚖️",
	}[s.Status]

	return strings.Join([]string{
		"📊 Net Worth Summary",
		"-------------------------",
		"💰 Total Assets: " + formulas.FormatAmount(s.TotalAssets),
		"🏦 Total Liabilities: " + formulas.FormatAmount(s.TotalLiabilities),
		"🧾 Net Worth: " + formulas.FormatAmount(s.NetWorth),
		"",
		icon + " " + s.Status.Describe(),
	}, "\n")
}
