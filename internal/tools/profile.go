package tools

import (
	"context"
	"errors"

	"github.com/aristath/finwell/internal/domain"
	"github.com/aristath/finwell/internal/modules/analysis"
	"github.com/aristath/finwell/internal/utils"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
)

// AnalyzeProfileTool saves a submitted profile and analyses it
type AnalyzeProfileTool struct {
	service *analysis.Service
	log     zerolog.Logger
}

// NewAnalyzeProfileTool creates the analyze-financial-profile tool
func NewAnalyzeProfileTool(service *analysis.Service, log zerolog.Logger) *AnalyzeProfileTool {
	return &AnalyzeProfileTool{service: service, log: log}
}

// Definition describes the tool's input schema
func (t *AnalyzeProfileTool) Definition() mcp.Tool {
	return mcp.NewTool("analyze-financial-profile",
		mcp.WithDescription("Submit financial profile, save it, and generate recommendations"),
		mcp.WithTitleAnnotation("Analyze Financial Profile"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
		mcp.WithString("name", mcp.Required(), mcp.Description("Full name")),
		mcp.WithNumber("age", mcp.Required(), mcp.Description("Age in years")),
		mcp.WithArray("goals", mcp.Required(),
			mcp.Description("Savings goals in priority order"),
			mcp.Items(objectSchema(map[string]interface{}{
				"name":   prop("string", "Goal label, e.g. Buy a House"),
				"amount": prop("number", "Target amount"),
			}, "name", "amount")),
		),
		mcp.WithObject("income", mcp.Required(),
			mcp.Description("Monthly income by source label, e.g. {\"salary\": 20000}"),
		),
		mcp.WithArray("debts", mcp.Required(),
			mcp.Items(objectSchema(map[string]interface{}{
				"name":            prop("string", "Debt name"),
				"interestRate":    prop("number", "Annual interest rate in percent, default 0"),
				"monthly_payment": prop("number", "Monthly payment"),
			}, "name", "monthly_payment")),
		),
		mcp.WithObject("sessionContext", mcp.Description("Opaque client context")),
		mcp.WithArray("transactionAggregates", mcp.Required(),
			mcp.Items(objectSchema(map[string]interface{}{
				"category":    prop("string", "Spending category"),
				"totalAmount": prop("number", "Total spent"),
				"month":       prop("string", "Month name"),
			}, "category", "totalAmount", "month")),
		),
		mcp.WithArray("recurringMerchants", mcp.Required(),
			mcp.Items(objectSchema(map[string]interface{}{
				"name":   prop("string", "Merchant"),
				"amount": prop("number", "Charge per period"),
				"frequency": map[string]interface{}{
					"type": "string",
					"enum": []string{string(domain.FrequencyMonthly), string(domain.FrequencyWeekly), string(domain.FrequencyBiweekly)},
				},
			}, "name", "amount", "frequency")),
		),
		mcp.WithArray("payDates", mcp.Required(),
			mcp.Items(objectSchema(map[string]interface{}{
				"date":     prop("string", "YYYY-MM-DD"),
				"category": prop("string", "Income category, e.g. Salary"),
			}, "date", "category")),
		),
	)
}

// Handle runs the tool
func (t *AnalyzeProfileTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := scoped(t.log, "analyze-financial-profile")
	defer utils.OperationTimer("analyze-financial-profile", log)()

	var p domain.FinancialProfile
	if err := bindArguments(req, &p); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	report, err := t.service.Submit(p)
	if err != nil {
		log.Error().Err(err).Msg("Profile analysis failed")
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textResult(profileSegments(*report)...), nil
}

// RandomProfileTool generates, saves and analyses a profile
type RandomProfileTool struct {
	service *analysis.Service
	log     zerolog.Logger
}

// NewRandomProfileTool creates the generate-random-financial-profile tool
func NewRandomProfileTool(service *analysis.Service, log zerolog.Logger) *RandomProfileTool {
	return &RandomProfileTool{service: service, log: log}
}

// Definition describes the tool
func (t *RandomProfileTool) Definition() mcp.Tool {
	return mcp.NewTool("generate-random-financial-profile",
		mcp.WithDescription("Generate and analyze a random financial profile"),
		mcp.WithTitleAnnotation("Generate Random Financial Profile"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

// Handle runs the tool
func (t *RandomProfileTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := scoped(t.log, "generate-random-financial-profile")
	defer utils.OperationTimer("generate-random-financial-profile", log)()

	report, err := t.service.GenerateAndAnalyze(ctx)
	if errors.Is(err, analysis.ErrGenerationFailed) {
		log.Warn().Err(err).Msg("Generated profile unusable")
		return mcp.NewToolResultError("❌ " + analysis.GenerationFailedMessage), nil
	}
	if err != nil {
		log.Error().Err(err).Msg("Random profile analysis failed")
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textResult(generatedSegments(*report)...), nil
}
