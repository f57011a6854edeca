package testing

import "github.com/aristath/finwell/internal/domain"

// NewProfileFixture returns the reference profile used across module tests:
// salary 20000, one 6000/month card debt at 20%, 5000 of spend, age 28.
func NewProfileFixture() domain.FinancialProfile {
	return domain.FinancialProfile{
		Name:   "Thandi Mokoena",
		Age:    28,
		Goals:  []domain.Goal{{Name: "Emergency Fund", Amount: 30000}},
		Income: domain.NewIncome(domain.IncomeSource{Label: domain.IncomeSalary, Amount: 20000}),
		Debts: []domain.Debt{
			{Name: "Card", InterestRate: 20, MonthlyPayment: 6000},
		},
		TransactionAggregates: []domain.TransactionAggregate{
			{Category: "Groceries", TotalAmount: 3000, Month: "October"},
			{Category: "Transport", TotalAmount: 2000, Month: "October"},
		},
		RecurringMerchants: []domain.RecurringMerchant{
			{Name: "Netflix", Amount: 159.99, Frequency: domain.FrequencyMonthly},
		},
		PayDates: []domain.PayDate{
			{Date: "2025-10-25", Category: "salary"},
		},
	}
}

// NewProfileFixtures returns a small, varied set of profiles
func NewProfileFixtures() []domain.FinancialProfile {
	saver := NewProfileFixture()

	freelancer := domain.FinancialProfile{
		Name: "Sipho Dlamini",
		Age:  41,
		Goals: []domain.Goal{
			{Name: "Buy a House", Amount: 250000},
			{Name: "Travel", Amount: 20000},
		},
		Income: domain.NewIncome(
			domain.IncomeSource{Label: domain.IncomeSalary, Amount: 30000},
			domain.IncomeSource{Label: domain.IncomeFreelance, Amount: 8000},
			domain.IncomeSource{Label: "rental", Amount: 4000},
		),
		Debts: []domain.Debt{
			{Name: "Student Loan", InterestRate: 9, MonthlyPayment: 1500},
			{Name: "Credit Card", InterestRate: 21, MonthlyPayment: 2500},
			{Name: "Car Loan", InterestRate: 12, MonthlyPayment: 3500},
		},
		TransactionAggregates: []domain.TransactionAggregate{
			{Category: "Utilities", TotalAmount: 2800, Month: "October"},
			{Category: "Dining Out", TotalAmount: 1800, Month: "October"},
			{Category: "Groceries", TotalAmount: 4500, Month: "October"},
			{Category: "Entertainment", TotalAmount: 900, Month: "October"},
		},
		RecurringMerchants: []domain.RecurringMerchant{
			{Name: "Gym", Amount: 500, Frequency: domain.FrequencyMonthly},
			{Name: "MTN Data Plan", Amount: 200, Frequency: domain.FrequencyWeekly},
		},
	}

	debtFree := domain.FinancialProfile{
		Name:   "Lerato Nkosi",
		Age:    63,
		Goals:  []domain.Goal{{Name: "Retirement", Amount: 500000}},
		Income: domain.NewIncome(domain.IncomeSource{Label: domain.IncomeConsulting, Amount: 15000}),
		TransactionAggregates: []domain.TransactionAggregate{
			{Category: "Healthcare", TotalAmount: 3000, Month: "October"},
		},
	}

	return []domain.FinancialProfile{saver, freelancer, debtFree}
}
