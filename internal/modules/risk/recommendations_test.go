package risk

import (
	"testing"

	"github.com/aristath/finwell/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(recs []domain.Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Title)
	}
	return out
}

func TestComputeRatios(t *testing.T) {
	r := ComputeRatios(totals(20000, 5000, 6000))
	assert.InDelta(t, 0.25, r.ExpenseRatio, 1e-9)
	assert.InDelta(t, 0.3, r.DebtRatio, 1e-9)
	assert.Equal(t, 15000.0, r.SavingsSurplus)

	zero := ComputeRatios(totals(0, 500, 500))
	assert.Equal(t, 1.0, zero.ExpenseRatio)
	assert.Equal(t, 1.0, zero.DebtRatio)
	assert.Equal(t, -500.0, zero.SavingsSurplus)
}

func TestRecommend_NeverEmptyForValidTier(t *testing.T) {
	for _, level := range domain.RiskLevels() {
		recs := Recommend(level, totals(1000, 500, 200))
		assert.GreaterOrEqual(t, len(recs), 2, string(level))
		assert.LessOrEqual(t, len(recs), 3, string(level))
		for _, r := range recs {
			assert.NotEmpty(t, r.Title)
			assert.NotEmpty(t, r.Explanation)
			assert.True(t, r.Confidence >= 0 && r.Confidence <= 1)
		}
	}
	assert.Empty(t, Recommend(domain.RiskLevel("unknown"), totals(1, 1, 1)))
}

func TestRecommend_VeryLow(t *testing.T) {
	recs := Recommend(domain.RiskVeryLow, totals(20000, 4000, 2000))
	require.Len(t, recs, 2)
	assert.Equal(t, []string{"Prioritize Capital Preservation", "Maintain a Robust Emergency Fund"}, titles(recs))
	assert.Equal(t, 0.9, recs[0].Confidence)
	assert.Equal(t, 0.9, recs[1].Confidence)

	recs = Recommend(domain.RiskVeryLow, totals(10000, 6000, 1000))
	assert.Equal(t, 0.75, recs[0].Confidence)
	assert.Equal(t, 0.75, recs[1].Confidence)
}

func TestRecommend_LowUsesDebtTiers(t *testing.T) {
	tests := []struct {
		name     string
		debts    float64
		expected float64
	}{
		{name: "below first threshold", debts: 500, expected: 0.6},
		{name: "between thresholds", debts: 2000, expected: 0.75},
		{name: "at second threshold", debts: 2500, expected: 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := Recommend(domain.RiskLow, totals(10000, 1000, tt.debts))
			require.Len(t, recs, 2)
			assert.Equal(t, "Explore Conservative Mutual Funds", recs[1].Title)
			assert.Equal(t, tt.expected, recs[1].Confidence)
		})
	}
}

func TestRecommend_Medium(t *testing.T) {
	recs := Recommend(domain.RiskMedium, totals(20000, 5000, 6000))
	require.Len(t, recs, 3)
	assert.Equal(t, []string{
		"Build a Balanced Portfolio",
		"Establish an Emergency Fund",
		"Review Budget and Debt Strategy",
	}, titles(recs))
	for _, r := range recs {
		assert.Equal(t, 0.9, r.Confidence)
	}
}

func TestRecommend_High(t *testing.T) {
	recs := Recommend(domain.RiskHigh, totals(10000, 9000, 6000))
	require.Len(t, recs, 3)
	assert.Equal(t, "Focus on Debt Reduction", recs[0].Title)
	assert.Equal(t, "High risk indicates liabilities are a major concern—prioritize paying these down aggressively.", recs[0].Explanation)
	assert.Equal(t, 0.9, recs[0].Confidence) // debt ratio 0.6
	assert.Equal(t, 0.9, recs[1].Confidence) // debt ratio above 0.4
	assert.Equal(t, 0.9, recs[2].Confidence) // expense ratio 0.9
}

func TestRecommend_VeryHighFixedFirstConfidence(t *testing.T) {
	recs := Recommend(domain.RiskVeryHigh, totals(0, 0, 0))
	require.Len(t, recs, 3)
	assert.Equal(t, "Seek Professional Financial Counseling", recs[0].Title)
	assert.Equal(t, 0.95, recs[0].Confidence)
	// zero income means both ratios resolve to 1
	assert.Equal(t, 0.9, recs[1].Confidence)
	assert.Equal(t, 0.9, recs[2].Confidence)
}
