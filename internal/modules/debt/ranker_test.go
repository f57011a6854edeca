package debt

import (
	"testing"

	"github.com/aristath/finwell/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDebts() []domain.Debt {
	return []domain.Debt{
		{Name: "Student Loan", InterestRate: 8, MonthlyPayment: 1200},
		{Name: "Credit Card", InterestRate: 20, MonthlyPayment: 900},
		{Name: "Personal Loan", InterestRate: 20, MonthlyPayment: 1500},
		{Name: "Car Loan", MonthlyPayment: 900},
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input    string
		expected Strategy
		wantErr  bool
	}{
		{input: "", expected: Avalanche},
		{input: "avalanche", expected: Avalanche},
		{input: "Snowball", expected: Snowball},
		{input: " snowball ", expected: Snowball},
		{input: "hurricane", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s, err := ParseStrategy(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownStrategy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}
}

func TestRank_Avalanche(t *testing.T) {
	plan := Rank(sampleDebts(), Avalanche)

	assert.True(t, plan.HasDebts)
	assert.Equal(t, []string{"Credit Card", "Personal Loan", "Student Loan", "Car Loan"}, plan.Order)
	assert.Equal(t, 4500.0, plan.TotalMonthlyPayments)

	for i := 1; i < len(plan.Debts); i++ {
		assert.GreaterOrEqual(t, plan.Debts[i-1].InterestRate, plan.Debts[i].InterestRate)
	}
}

func TestRank_Snowball(t *testing.T) {
	plan := Rank(sampleDebts(), Snowball)

	assert.Equal(t, Snowball, plan.Strategy)
	assert.Equal(t, []string{"Credit Card", "Car Loan", "Student Loan", "Personal Loan"}, plan.Order)

	for i := 1; i < len(plan.Debts); i++ {
		assert.LessOrEqual(t, plan.Debts[i-1].MonthlyPayment, plan.Debts[i].MonthlyPayment)
	}
}

func TestRank_DefaultsToAvalanche(t *testing.T) {
	plan := Rank(sampleDebts(), "")
	assert.Equal(t, Avalanche, plan.Strategy)
	assert.Equal(t, "Credit Card", plan.Order[0])
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	debts := sampleDebts()
	_ = Rank(debts, Snowball)
	assert.Equal(t, sampleDebts(), debts)
}

func TestRank_Empty(t *testing.T) {
	plan := Rank(nil, Snowball)

	assert.False(t, plan.HasDebts)
	assert.Equal(t, NoDebtsMessage, plan.Message)
	assert.Empty(t, plan.Order)
	assert.Equal(t, 0.0, plan.TotalMonthlyPayments)
}
