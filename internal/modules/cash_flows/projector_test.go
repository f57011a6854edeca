package cash_flows

import (
	"testing"

	"github.com/aristath/finwell/internal/domain"
	testhelpers "github.com/aristath/finwell/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlySummary(t *testing.T) {
	p := testhelpers.NewProfileFixtures()[1]

	summary := MonthlySummary(p)

	// rental income is not counted
	assert.Equal(t, 38000.0, summary.Income)
	// 10000 spend + 7500 debts + 500 gym + 4*200 data
	assert.Equal(t, 18800.0, summary.Expenses)
	assert.Equal(t, 19200.0, summary.NetMonthly)
}

func TestProject_IsLinear(t *testing.T) {
	p := testhelpers.NewProfileFixture()
	p.ID = 7

	projection := Project(p, 12)

	assert.Equal(t, int64(7), projection.UserID)
	assert.Equal(t, "Thandi Mokoena", projection.Name)
	assert.Equal(t, 28, projection.Age)
	assert.Equal(t, []string{"Emergency Fund"}, projection.Goals)
	require.Len(t, projection.Projection, 12)

	net := MonthlySummary(p).NetMonthly
	for i, month := range projection.Projection {
		assert.Equal(t, net*float64(i+1), month.ProjectedBalance)
		assert.Equal(t, month.ProjectedBalance, month.CumulativeNetFlow)
	}
	assert.Equal(t, "Month 1", projection.Projection[0].Month)
	assert.Equal(t, "Month 12", projection.Projection[11].Month)
}

func TestProject_NegativeNetFlow(t *testing.T) {
	p := domain.FinancialProfile{
		Name:   "Overspender",
		Income: domain.NewIncome(domain.IncomeSource{Label: domain.IncomeSalary, Amount: 1000}),
		RecurringMerchants: []domain.RecurringMerchant{
			{Name: "Coffee", Amount: 150, Frequency: domain.FrequencyBiweekly},
			{Name: "Lotto", Amount: 200, Frequency: domain.FrequencyWeekly},
		},
	}

	projection := Project(p, 3)

	require.Len(t, projection.Projection, 3)
	assert.Equal(t, -100.0, projection.Projection[0].Summary.NetMonthly)
	assert.Equal(t, -300.0, projection.Projection[2].ProjectedBalance)
	assert.Empty(t, projection.Goals)
	assert.NotNil(t, projection.Goals)
}

func TestProject_NoMonths(t *testing.T) {
	assert.Empty(t, Project(testhelpers.NewProfileFixture(), 0).Projection)
}

func TestProjectAll_PreservesOrder(t *testing.T) {
	out := ProjectAll(testhelpers.NewProfileFixtures(), 2)

	require.Len(t, out, 3)
	assert.Equal(t, "Thandi Mokoena", out[0].Name)
	assert.Equal(t, "Sipho Dlamini", out[1].Name)
	assert.Equal(t, "Lerato Nkosi", out[2].Name)
}
