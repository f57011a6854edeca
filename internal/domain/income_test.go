package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncome_UnmarshalPreservesOrder(t *testing.T) {
	var in Income
	err := json.Unmarshal([]byte(`{"salary": 20000, "rental": 1500, "freelance": 3000}`), &in)
	require.NoError(t, err)

	require.Len(t, in, 3)
	assert.Equal(t, "salary", in[0].Label)
	assert.Equal(t, "rental", in[1].Label)
	assert.Equal(t, "freelance", in[2].Label)
	assert.Equal(t, 24500.0, in.Total())
}

func TestIncome_UnmarshalSkipsNonNumeric(t *testing.T) {
	var in Income
	err := json.Unmarshal([]byte(`{"salary": 20000, "bonus": "soon", "gift": {"amount": 5}}`), &in)
	require.NoError(t, err)

	assert.Equal(t, Income{{Label: "salary", Amount: 20000}}, in)
}

func TestIncome_UnmarshalNull(t *testing.T) {
	var in Income
	require.NoError(t, json.Unmarshal([]byte(`null`), &in))
	assert.Empty(t, in)
}

func TestIncome_UnmarshalRejectsArray(t *testing.T) {
	var in Income
	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &in))
}

func TestIncome_MarshalRoundTripKeepsOrder(t *testing.T) {
	in := NewIncome(
		IncomeSource{Label: "consulting", Amount: 2500.5},
		IncomeSource{Label: "salary", Amount: 18000},
	)

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `{"consulting":2500.5,"salary":18000}`, string(data))
}

func TestIncome_EarnedIgnoresOtherLabels(t *testing.T) {
	in := NewIncome(
		IncomeSource{Label: "salary", Amount: 10000},
		IncomeSource{Label: "freelance", Amount: 2000},
		IncomeSource{Label: "consulting", Amount: 1000},
		IncomeSource{Label: "dividends", Amount: 700},
	)

	assert.Equal(t, 13000.0, in.Earned())
	assert.Equal(t, 13700.0, in.Total())
	assert.Equal(t, 0.0, in.Amount("pension"))
}

func TestIncome_WithReplacesExisting(t *testing.T) {
	in := NewIncome(IncomeSource{Label: "salary", Amount: 1}).With("salary", 2)
	assert.Equal(t, Income{{Label: "salary", Amount: 2}}, in)
}
