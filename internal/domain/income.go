package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aristath/finwell/pkg/formulas"
)

// Well-known income labels. Profiles may carry any other label as well.
const (
	IncomeSalary     = "salary"
	IncomeFreelance  = "freelance"
	IncomeConsulting = "consulting"
)

// IncomeSource is one labelled monthly income amount
type IncomeSource struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Income is the ordered list of a profile's income sources.
// On the wire it is an object keyed by label, e.g. {"salary": 20000}.
type Income []IncomeSource

// NewIncome builds an Income from label/amount pairs, keeping argument order
func NewIncome(sources ...IncomeSource) Income {
	in := Income{}
	for _, s := range sources {
		in = in.With(s.Label, s.Amount)
	}
	return in
}

// With returns a copy with label set to amount, replacing any earlier value
func (in Income) With(label string, amount float64) Income {
	out := make(Income, 0, len(in)+1)
	replaced := false
	for _, s := range in {
		if s.Label == label {
			out = append(out, IncomeSource{Label: label, Amount: amount})
			replaced = true
			continue
		}
		out = append(out, s)
	}
	if !replaced {
		out = append(out, IncomeSource{Label: label, Amount: amount})
	}
	return out
}

// Amount returns the amount for label, 0 when absent
func (in Income) Amount(label string) float64 {
	for _, s := range in {
		if s.Label == label {
			return s.Amount
		}
	}
	return 0
}

// Total sums every source
func (in Income) Total() float64 {
	amounts := make([]float64, 0, len(in))
	for _, s := range in {
		amounts = append(amounts, s.Amount)
	}
	return formulas.Sum(amounts)
}

// Named sums only the given labels
func (in Income) Named(labels ...string) float64 {
	total := 0.0
	for _, l := range labels {
		total += in.Amount(l)
	}
	return total
}

// Earned is salary + freelance + consulting
func (in Income) Earned() float64 {
	return in.Named(IncomeSalary, IncomeFreelance, IncomeConsulting)
}

// MarshalJSON writes the sources as an object in list order
func (in Income) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range in {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.Label)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.Amount)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a label->amount object preserving key order.
// Values that are not numbers are skipped.
func (in *Income) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read income: %w", err)
	}
	if tok == nil {
		*in = Income{}
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("income must be an object of label to amount")
	}

	out := Income{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read income label: %w", err)
		}
		label, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("income label must be a string")
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("failed to read income %q: %w", label, err)
		}

		var amount float64
		if err := json.Unmarshal(raw, &amount); err != nil {
			continue
		}
		out = out.With(label, amount)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to close income object: %w", err)
	}

	*in = out
	return nil
}
