package validation

import (
	"testing"

	"github.com/aristath/finwell/internal/domain"
	testhelpers "github.com/aristath/finwell/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct_ValidProfile(t *testing.T) {
	assert.NoError(t, Struct(testhelpers.NewProfileFixture()))
}

func TestStruct_InvalidProfile(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(p *domain.FinancialProfile)
		expected string
	}{
		{
			name:     "missing name",
			mutate:   func(p *domain.FinancialProfile) { p.Name = "" },
			expected: "name is required",
		},
		{
			name:     "negative age",
			mutate:   func(p *domain.FinancialProfile) { p.Age = -1 },
			expected: "age must be at least 0",
		},
		{
			name:     "unnamed goal",
			mutate:   func(p *domain.FinancialProfile) { p.Goals[0].Name = "" },
			expected: "goals[0].name is required",
		},
		{
			name:     "negative debt payment",
			mutate:   func(p *domain.FinancialProfile) { p.Debts[0].MonthlyPayment = -5 },
			expected: "debts[0].monthly_payment must be at least 0",
		},
		{
			name:     "unknown frequency",
			mutate:   func(p *domain.FinancialProfile) { p.RecurringMerchants[0].Frequency = "yearly" },
			expected: "recurringMerchants[0].frequency must be one of [monthly weekly biweekly]",
		},
		{
			name:     "bad pay date",
			mutate:   func(p *domain.FinancialProfile) { p.PayDates[0].Date = "25/10/2025" },
			expected: "payDates[0].date must be a date formatted as 2006-01-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testhelpers.NewProfileFixture()
			tt.mutate(&p)

			err := Struct(p)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

func TestStruct_ReportsEveryField(t *testing.T) {
	p := testhelpers.NewProfileFixture()
	p.Name = ""
	p.Age = 200

	err := Struct(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "age must be at most 130")
}

func TestStruct_NonStruct(t *testing.T) {
	err := Struct(42)
	assert.ErrorIs(t, err, ErrInvalid)
}
