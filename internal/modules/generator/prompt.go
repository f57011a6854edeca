package generator

// PromptName is the name of the prompt that asks a model for a dummy profile
const PromptName = "generate-dummy-financial-profile"

// PromptDescription describes the prompt to clients
const PromptDescription = "Generate a realistic dummy financial profile"

// PromptText asks for a profile in the shape the analysis accepts
const PromptText = `Generate a realistic dummy financial profile.

The profile should include:
- name and age
- 2-3 financial goals (e.g. Emergency Fund, Buy a House)
- income: salary, freelance, and/or consulting
- fixed and variable expenses
- list of debts with monthly payments
- transaction aggregates by category for a recent month
- 3-4 recurring merchants (Netflix, Spotify, Gym, etc.)
- 2-3 upcoming pay dates
- sessionContext: an empty object

Respond ONLY with a valid JSON object matching this shape:

{
  "name": "Jane Doe",
  "age": 32,
  "goals": [{ "name": "...", "amount": 0 }],
  "income": { "salary": 0, "freelance": 0, "consulting": 0 },
  "expenses": { "fixed": [{ "name": "...", "amount": 0 }], "variable": [{ "name": "...", "amount": 0 }] },
  "debts": [{ "name": "...", "interestRate": 0, "monthly_payment": 0 }],
  "transactionAggregates": [{ "category": "...", "totalAmount": 0, "month": "October" }],
  "recurringMerchants": [{ "name": "...", "amount": 0, "frequency": "monthly" | "weekly" | "biweekly" }],
  "payDates": [{ "date": "YYYY-MM-DD", "category": "Salary" }],
  "sessionContext": {}
}
`
