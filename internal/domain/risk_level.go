package domain

import "strings"

// RiskLevel is the five-tier risk classification, ordered very_low to very_high
type RiskLevel string

const (
	RiskVeryLow  RiskLevel = "very_low"
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskVeryHigh RiskLevel = "very_high"
)

var riskOrder = []RiskLevel{RiskVeryLow, RiskLow, RiskMedium, RiskHigh, RiskVeryHigh}

// RiskLevels returns all tiers in ascending order
func RiskLevels() []RiskLevel {
	out := make([]RiskLevel, len(riskOrder))
	copy(out, riskOrder)
	return out
}

// Rank is the position of the tier in ascending order, -1 when unknown
func (l RiskLevel) Rank() int {
	for i, r := range riskOrder {
		if r == l {
			return i
		}
	}
	return -1
}

// Valid reports whether l is one of the five tiers
func (l RiskLevel) Valid() bool {
	return l.Rank() >= 0
}

// Raise moves one tier up, clamped at very_high
func (l RiskLevel) Raise() RiskLevel {
	i := l.Rank()
	if i < 0 || i == len(riskOrder)-1 {
		return l
	}
	return riskOrder[i+1]
}

// Lower moves one tier down, clamped at very_low
func (l RiskLevel) Lower() RiskLevel {
	i := l.Rank()
	if i <= 0 {
		return l
	}
	return riskOrder[i-1]
}

// Label renders the tier for display, e.g. "VERY LOW"
func (l RiskLevel) Label() string {
	return strings.ToUpper(strings.ReplaceAll(string(l), "_", " "))
}
