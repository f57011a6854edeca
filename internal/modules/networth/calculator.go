// Package networth totals assets against liabilities.
package networth

import "github.com/aristath/finwell/pkg/formulas"

// Status classifies the sign of a net worth
type Status string

const (
	StatusPositive Status = "positive"
	StatusNegative Status = "negative"
	StatusBalanced Status = "balanced"
)

// Item is one named asset or liability
type Item struct {
	Name  string  `json:"name" validate:"required"`
	Value float64 `json:"value"`
}

// Request is the calculate-net-worth input
type Request struct {
	Assets      []Item `json:"assets" validate:"dive"`
	Liabilities []Item `json:"liabilities" validate:"dive"`
}

// Summary is the calculated net worth
type Summary struct {
	TotalAssets      float64 `json:"totalAssets"`
	TotalLiabilities float64 `json:"totalLiabilities"`
	NetWorth         float64 `json:"netWorth"`
	Status           Status  `json:"status"`
}

// Calculate returns Σassets - Σliabilities and its status.
// Missing lists count as zero.
func Calculate(assets, liabilities []Item) Summary {
	s := Summary{
		TotalAssets:      total(assets),
		TotalLiabilities: total(liabilities),
	}
	s.NetWorth = s.TotalAssets - s.TotalLiabilities

	switch {
	case s.NetWorth > 0:
		s.Status = StatusPositive
	case s.NetWorth < 0:
		s.Status = StatusNegative
	default:
		s.Status = StatusBalanced
	}
	return s
}

func total(items []Item) float64 {
	values := make([]float64, 0, len(items))
	for _, it := range items {
		values = append(values, it.Value)
	}
	return formulas.Sum(values)
}

// Describe is the one-line reading of a status
func (s Status) Describe() string {
	switch s {
	case StatusPositive:
		return "Positive net worth — you own more than you owe."
	case StatusNegative:
		return "Negative net worth — your liabilities exceed your assets."
	}
	return "Net worth is balanced — assets equal liabilities."
}
