// Package domain provides the core financial profile models shared by every planning module.
package domain

import "github.com/aristath/finwell/pkg/formulas"

// Frequency is how often a recurring merchant charges
type Frequency string

const (
	FrequencyMonthly  Frequency = "monthly"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
)

// MonthlyMultiplier converts one charge into its monthly equivalent.
// Unknown frequencies are counted once per month.
func (f Frequency) MonthlyMultiplier() float64 {
	switch f {
	case FrequencyWeekly:
		return 4
	case FrequencyBiweekly:
		return 2
	default:
		return 1
	}
}

// Goal is a named savings target
type Goal struct {
	Name   string  `json:"name" validate:"required"`
	Amount float64 `json:"amount" validate:"gte=0"`
}

// Debt is one liability with its monthly obligation.
// A missing interest rate is treated as 0.
type Debt struct {
	Name           string  `json:"name" validate:"required"`
	InterestRate   float64 `json:"interestRate" validate:"gte=0"`
	MonthlyPayment float64 `json:"monthly_payment" validate:"gte=0"`
}

// TransactionAggregate is the spend for one category in one month
type TransactionAggregate struct {
	Category    string  `json:"category" validate:"required"`
	TotalAmount float64 `json:"totalAmount"`
	Month       string  `json:"month"`
}

// RecurringMerchant is a subscription-like charge
type RecurringMerchant struct {
	Name      string    `json:"name" validate:"required"`
	Amount    float64   `json:"amount" validate:"gte=0"`
	Frequency Frequency `json:"frequency" validate:"omitempty,oneof=monthly weekly biweekly"`
}

// MonthlyAmount is the merchant charge normalized to a month
func (m RecurringMerchant) MonthlyAmount() float64 {
	return m.Amount * m.Frequency.MonthlyMultiplier()
}

// PayDate is an expected income date (YYYY-MM-DD)
type PayDate struct {
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Category string `json:"category"`
}

// FinancialProfile is one person's financial snapshot.
// ID and CreatedAt are assigned by the profile store.
type FinancialProfile struct {
	ID                    int64                  `json:"id,omitempty"`
	CreatedAt             string                 `json:"createdAt,omitempty"`
	Name                  string                 `json:"name" validate:"required"`
	Age                   int                    `json:"age" validate:"gte=0,lte=130"`
	Goals                 []Goal                 `json:"goals" validate:"dive"`
	Income                Income                 `json:"income"`
	Debts                 []Debt                 `json:"debts" validate:"dive"`
	SessionContext        map[string]interface{} `json:"sessionContext,omitempty"`
	TransactionAggregates []TransactionAggregate `json:"transactionAggregates" validate:"dive"`
	RecurringMerchants    []RecurringMerchant    `json:"recurringMerchants" validate:"dive"`
	PayDates              []PayDate              `json:"payDates" validate:"dive"`
}

// Normalize replaces absent collections with empty ones so downstream code never branches on nil
func (p *FinancialProfile) Normalize() {
	if p.Goals == nil {
		p.Goals = []Goal{}
	}
	if p.Income == nil {
		p.Income = Income{}
	}
	if p.Debts == nil {
		p.Debts = []Debt{}
	}
	if p.TransactionAggregates == nil {
		p.TransactionAggregates = []TransactionAggregate{}
	}
	if p.RecurringMerchants == nil {
		p.RecurringMerchants = []RecurringMerchant{}
	}
	if p.PayDates == nil {
		p.PayDates = []PayDate{}
	}
}

// GoalNames returns the goal labels in profile order
func (p FinancialProfile) GoalNames() []string {
	names := make([]string, 0, len(p.Goals))
	for _, g := range p.Goals {
		names = append(names, g.Name)
	}
	return names
}

// Totals are the three sums every analysis starts from
type Totals struct {
	Income   float64 `json:"totalIncome"`
	Expenses float64 `json:"totalExpenses"`
	Debts    float64 `json:"totalDebts"`
}

// Totals computes income over all sources, expenses over the transaction
// aggregates and debts over the monthly payments.
func (p FinancialProfile) Totals() Totals {
	return Totals{
		Income:   p.Income.Total(),
		Expenses: p.TotalExpenses(),
		Debts:    p.TotalDebtPayments(),
	}
}

// TotalExpenses sums the transaction aggregates
func (p FinancialProfile) TotalExpenses() float64 {
	amounts := make([]float64, 0, len(p.TransactionAggregates))
	for _, t := range p.TransactionAggregates {
		amounts = append(amounts, t.TotalAmount)
	}
	return formulas.Sum(amounts)
}

// TotalDebtPayments sums the monthly debt payments
func (p FinancialProfile) TotalDebtPayments() float64 {
	return SumDebtPayments(p.Debts)
}

// SumDebtPayments sums monthly payments over a debt list
func SumDebtPayments(debts []Debt) float64 {
	amounts := make([]float64, 0, len(debts))
	for _, d := range debts {
		amounts = append(amounts, d.MonthlyPayment)
	}
	return formulas.Sum(amounts)
}

// Recommendation is one piece of advice with a confidence in [0, 1]
type Recommendation struct {
	Title       string  `json:"title"`
	Explanation string  `json:"explanation"`
	Confidence  float64 `json:"confidence"`
}
