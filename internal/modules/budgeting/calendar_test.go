package budgeting

import (
	"testing"
	"time"

	"github.com/aristath/finwell/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthLabel(t *testing.T) {
	december := time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)

	assert.Equal(t, "December 2025", MonthLabel(december, 0))
	assert.Equal(t, "January 2026", MonthLabel(december, 1))
	assert.Equal(t, "February 2026", MonthLabel(december, 2))
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		months   int
		expected string
	}{
		{name: "regular", input: "2025-10-25", months: 1, expected: "2025-11-25"},
		{name: "clamps to february", input: "2025-01-31", months: 1, expected: "2025-02-28"},
		{name: "leap year", input: "2024-01-31", months: 1, expected: "2024-02-29"},
		{name: "year rollover", input: "2025-12-31", months: 1, expected: "2026-01-31"},
		{name: "clamps to thirty day month", input: "2025-03-31", months: 1, expected: "2025-04-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := time.Parse(dateLayout, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, AddMonths(in, tt.months).Format(dateLayout))
		})
	}
}

func TestPredictPayDates(t *testing.T) {
	payDates := []domain.PayDate{
		{Date: "2025-10-25", Category: "Monthly Salary"},
		{Date: "2025-11-10", Category: "salary"},
		{Date: "2025-10-30", Category: "freelance"},
		{Date: "soon", Category: "salary"},
	}

	got := PredictPayDates(payDates, october)
	require.Len(t, got, 4)

	assert.True(t, got[0].Salary)
	assert.Equal(t, "2025-11-25", got[0].PredictedNext)

	assert.False(t, got[1].Salary, "salary outside the current month is listed as-is")
	assert.Empty(t, got[1].PredictedNext)

	assert.False(t, got[2].Salary)
	assert.Equal(t, "freelance", got[2].Category)

	assert.Equal(t, "soon", got[3].Date)
	assert.False(t, got[3].Salary)
}
