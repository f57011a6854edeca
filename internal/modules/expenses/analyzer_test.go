package expenses

import (
	"testing"

	"github.com/aristath/finwell/internal/domain"
	testhelpers "github.com/aristath/finwell/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_Saver(t *testing.T) {
	a := Analyze(testhelpers.NewProfileFixture())

	assert.Equal(t, "Thandi Mokoena", a.User)
	assert.Equal(t, 20000.0, a.TotalMonthlyIncome)
	assert.Equal(t, 5000.0, a.TotalExpenses)
	assert.Equal(t, 15000.0, a.SavingsPotential)
	require.Len(t, a.Suggestions, 1)
	assert.Equal(t,
		`You're saving about R15,000 per month — consider allocating it toward goals like "Emergency Fund".`,
		a.Suggestions[0])
}

func TestAnalyze_HighUtilitiesAndDining(t *testing.T) {
	a := Analyze(testhelpers.NewProfileFixtures()[1])

	// rental income is not counted
	assert.Equal(t, 38000.0, a.TotalMonthlyIncome)
	require.Len(t, a.TopCategories, TopCategoryCount)
	assert.Equal(t, "Groceries", a.TopCategories[0].Category)
	assert.Equal(t, "Utilities", a.TopCategories[1].Category)
	assert.Equal(t, "Dining Out", a.TopCategories[2].Category)

	require.Len(t, a.Suggestions, 3)
	assert.Equal(t, "Your utility costs are quite high — consider optimizing energy or data plans.", a.Suggestions[1])
	assert.Equal(t, "Dining out expenses are significant — try meal prepping to save.", a.Suggestions[2])
}

func TestAnalyze_Overspending(t *testing.T) {
	p := domain.FinancialProfile{
		Name:   "Over",
		Income: domain.NewIncome(domain.IncomeSource{Label: domain.IncomeSalary, Amount: 1000}),
		TransactionAggregates: []domain.TransactionAggregate{
			{Category: "UTILITIES", TotalAmount: 2600},
			{Category: "dining out", TotalAmount: 900},
		},
	}

	a := Analyze(p)

	assert.Equal(t, -2500.0, a.SavingsPotential)
	require.Len(t, a.Suggestions, 2, "category match ignores case; dining out is under the threshold")
	assert.Equal(t, `You're overspending by R2,500 — review discretionary categories like "UTILITIES".`, a.Suggestions[0])
	assert.Contains(t, a.Suggestions[1], "utility costs")
}

func TestAnalyze_EmptyProfile(t *testing.T) {
	a := Analyze(domain.FinancialProfile{Name: "Empty"})

	assert.Equal(t, 0.0, a.SavingsPotential)
	assert.Empty(t, a.TopCategories)
	require.Len(t, a.Suggestions, 1)
	assert.Equal(t, "You're overspending by R0 — review your discretionary categories.", a.Suggestions[0])
}
