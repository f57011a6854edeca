package goals

import (
	"testing"

	"github.com/aristath/finwell/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func totals(income, expenses, debts float64) domain.Totals {
	return domain.Totals{Income: income, Expenses: expenses, Debts: debts}
}

func titles(recs []domain.Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Title)
	}
	return out
}

func TestRecommend_Catalogue(t *testing.T) {
	tests := []struct {
		name        string
		goal        string
		totals      domain.Totals
		age         *int
		titles      []string
		confidences []float64
	}{
		{
			name:        "buy a house with big surplus and high debt",
			goal:        "Buy a House",
			totals:      totals(20000, 5000, 8000),
			titles:      []string{"Start Saving for a Down Payment", "Reduce Debt-to-Income Ratio"},
			confidences: []float64{0.9, 0.85},
		},
		{
			name:        "buy a house with small surplus and low debt",
			goal:        "buy a house",
			totals:      totals(10000, 6000, 1000),
			titles:      []string{"Start Saving for a Down Payment"},
			confidences: []float64{0.75},
		},
		{
			name:        "retirement over 50 with large surplus",
			goal:        "Retirement",
			totals:      totals(30000, 10000, 0),
			age:         intPtr(55),
			titles:      []string{"Contribute to a Retirement Account", "Automate Monthly Retirement Contributions"},
			confidences: []float64{0.95, 0.85},
		},
		{
			name:        "retirement without age",
			goal:        "retirement",
			totals:      totals(10000, 5000, 0),
			titles:      []string{"Contribute to a Retirement Account"},
			confidences: []float64{0.9},
		},
		{
			name:        "emergency fund with heavy expenses",
			goal:        "Emergency Fund",
			totals:      totals(10000, 7000, 0),
			titles:      []string{"Build a 3–6 Month Emergency Fund", "Adjust Expenses to Increase Savings"},
			confidences: []float64{0.95, 0.8},
		},
		{
			name:        "education alias with small surplus",
			goal:        "Save for children's education",
			totals:      totals(6000, 2000, 0),
			titles:      []string{"Start a Dedicated Education Fund", "Set Small, Recurring Contributions"},
			confidences: []float64{0.9, 0.75},
		},
		{
			name:        "education with large surplus",
			goal:        "education",
			totals:      totals(16000, 2000, 0),
			titles:      []string{"Start a Dedicated Education Fund"},
			confidences: []float64{0.9},
		},
		{
			name:        "aggressive growth with high debt",
			goal:        "Aggressive Growth",
			totals:      totals(10000, 2000, 4000),
			titles:      []string{"Explore Higher-Risk Investments"},
			confidences: []float64{0.7},
		},
		{
			name:        "capital preservation",
			goal:        "capital preservation",
			totals:      totals(10000, 2000, 0),
			titles:      []string{"Prioritize Low-Risk, Stable Investments"},
			confidences: []float64{0.9},
		},
		{
			name:        "start a business with small surplus",
			goal:        "Start a Business",
			totals:      totals(10000, 5000, 0),
			titles:      []string{"Create a Business Savings Fund", "Draft a Lean Business Plan"},
			confidences: []float64{0.7, 0.8},
		},
		{
			name:        "travel with tiny surplus",
			goal:        "Travel",
			totals:      totals(5000, 4500, 0),
			titles:      []string{"Set Up a Travel Budget", "Consider a Delayed Timeline"},
			confidences: []float64{0.85, 0.75},
		},
		{
			name:        "early retirement young and saving",
			goal:        "Early Retirement",
			totals:      totals(40000, 10000, 0),
			age:         intPtr(32),
			titles:      []string{"Maximize Retirement Contributions Now", "Track FIRE (Financial Independence, Retire Early) Metrics"},
			confidences: []float64{0.9, 0.85},
		},
		{
			name:        "early retirement without age",
			goal:        "early retirement",
			totals:      totals(40000, 10000, 0),
			titles:      []string{"Maximize Retirement Contributions Now", "Track FIRE (Financial Independence, Retire Early) Metrics"},
			confidences: []float64{0.75, 0.85},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := Recommend([]string{tt.goal}, tt.totals, tt.age)
			require.Len(t, recs, len(tt.titles))
			assert.Equal(t, tt.titles, titles(recs))
			for i, c := range tt.confidences {
				assert.Equal(t, c, recs[i].Confidence)
			}
		})
	}
}

func TestRecommend_SkipsUnknownLabels(t *testing.T) {
	recs := Recommend([]string{"buy a yacht", "learn piano"}, totals(10000, 1000, 0), nil)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestRecommend_PreservesOrderAndDuplicates(t *testing.T) {
	recs := Recommend([]string{"Travel", "capital preservation", "travel"}, totals(20000, 1000, 0), nil)
	assert.Equal(t, []string{
		"Set Up a Travel Budget",
		"Prioritize Low-Risk, Stable Investments",
		"Set Up a Travel Budget",
	}, titles(recs))
}

func TestRecommend_ZeroIncomeTreatsDebtRatioAsOne(t *testing.T) {
	recs := Recommend([]string{"buy a house"}, totals(0, 0, 0), nil)
	require.Len(t, recs, 2)
	assert.Equal(t, "Reduce Debt-to-Income Ratio", recs[1].Title)
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("Emergency Fund"))
	assert.True(t, Known("EDUCATION"))
	assert.False(t, Known("world domination"))
}
