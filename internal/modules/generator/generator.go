// Package generator produces random but plausible financial profiles, used as
// the default source for the generate-random-financial-profile operation.
package generator

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/aristath/finwell/internal/domain"
	"github.com/aristath/finwell/internal/modules/analysis"
	"github.com/goccy/go-json"
)

var (
	names = []string{"Alice", "Bob", "Charlie", "Diana", "Eve", "Frank", "Grace", "Henry", "Ivy", "Jack"}

	debtNames = []string{"Student Loan", "Credit Card", "Personal Loan", "Car Loan"}

	categories = []string{"Groceries", "Utilities", "Transport", "Dining Out", "Entertainment", "Healthcare"}

	merchants = []domain.RecurringMerchant{
		{Name: "Netflix", Amount: 159.99, Frequency: domain.FrequencyMonthly},
		{Name: "Spotify", Amount: 59.99, Frequency: domain.FrequencyMonthly},
		{Name: "Gym Membership", Amount: 500, Frequency: domain.FrequencyMonthly},
		{Name: "Amazon Prime", Amount: 299, Frequency: domain.FrequencyMonthly},
		{Name: "MTN Data Plan", Amount: 200, Frequency: domain.FrequencyWeekly},
		{Name: "WiFi Data Plan", Amount: 250, Frequency: domain.FrequencyMonthly},
	}
)

// goalSpec is a goal name with the range its target is drawn from
type goalSpec struct {
	name   string
	lo, hi int
}

var goalSpecs = []goalSpec{
	{"Emergency Fund", 10000, 60000},
	{"Vacation", 2000, 12000},
	{"Buy a House", 100000, 600000},
	{"Retirement", 50000, 250000},
	{"Car Purchase", 50000, 350000},
}

// Generator is a ProfileSource backed by a seeded PRNG. It is safe for
// concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a generator. The same seed yields the same sequence of profiles.
func New(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// between returns an integer in [lo, hi)
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo)
}

// Profile draws one generated profile
func (g *Generator) Profile() analysis.GeneratedProfile {
	g.mu.Lock()
	defer g.mu.Unlock()

	age := g.between(20, 60)

	salary := g.between(30000, 230000)
	income := domain.NewIncome(domain.IncomeSource{Label: domain.IncomeSalary, Amount: float64(salary)})
	freelance, consulting := 0, 0
	if g.rng.Float64() > 0.7 {
		freelance = g.between(5000, 55000)
		income = income.With(domain.IncomeFreelance, float64(freelance))
	}
	if g.rng.Float64() > 0.8 {
		consulting = g.between(2000, 32000)
		income = income.With(domain.IncomeConsulting, float64(consulting))
	}

	var goals []domain.Goal
	for _, i := range g.rng.Perm(len(goalSpecs))[:g.between(2, 4)] {
		gs := goalSpecs[i]
		goals = append(goals, domain.Goal{Name: gs.name, Amount: float64(g.between(gs.lo, gs.hi))})
	}

	var debts []domain.Debt
	for _, i := range g.rng.Perm(len(debtNames))[:g.between(1, 4)] {
		debts = append(debts, domain.Debt{
			Name:           debtNames[i],
			InterestRate:   float64(g.between(5, 25)),
			MonthlyPayment: float64(g.between(500, 3500)),
		})
	}

	var (
		aggregates []domain.TransactionAggregate
		variable   []analysis.ExpenseItem
	)
	for _, category := range categories[:4] {
		amount := float64(g.between(1000, 5000))
		aggregates = append(aggregates, domain.TransactionAggregate{Category: category, TotalAmount: amount, Month: "October"})
		variable = append(variable, analysis.ExpenseItem{Name: category, Amount: amount})
	}

	fixed := []analysis.ExpenseItem{
		{Name: "Rent", Amount: float64(g.between(4000, 15000))},
		{Name: "Insurance", Amount: float64(g.between(300, 1500))},
	}

	var recurring []domain.RecurringMerchant
	for _, i := range g.rng.Perm(len(merchants))[:g.between(3, 5)] {
		recurring = append(recurring, merchants[i])
	}

	payDates := []domain.PayDate{
		{Date: "2025-10-25", Category: "Salary"},
		{Date: "2025-11-10", Category: pick(freelance > 0, "Freelance", "Salary")},
		{Date: "2025-11-25", Category: pick(consulting > 0, "Consulting", "Salary")},
	}[:g.between(2, 4)]

	return analysis.GeneratedProfile{
		FinancialProfile: domain.FinancialProfile{
			Name:                  names[g.rng.IntN(len(names))],
			Goals:                 goals,
			Income:                income,
			Debts:                 debts,
			SessionContext:        map[string]interface{}{},
			TransactionAggregates: aggregates,
			RecurringMerchants:    recurring,
			PayDates:              payDates,
		},
		Age:      &age,
		Expenses: analysis.Expenses{Fixed: fixed, Variable: variable},
	}
}

// Generate implements analysis.ProfileSource by encoding a fresh profile
func (g *Generator) Generate(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := json.Marshal(g.Profile())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
