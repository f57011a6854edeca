package tools

import (
	"context"
	"errors"

	"github.com/aristath/finwell/internal/modules/budgeting"
	"github.com/aristath/finwell/internal/utils"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
)

// NoProfileMessage is shown when no profile has been saved yet
const NoProfileMessage = "No saved financial profile found."

// BudgetTool budgets for the most recently saved profile
type BudgetTool struct {
	service *budgeting.Service
	log     zerolog.Logger
}

// NewBudgetTool creates the budgeting-cashflow-analyzer tool
func NewBudgetTool(service *budgeting.Service, log zerolog.Logger) *BudgetTool {
	return &BudgetTool{service: service, log: log}
}

// Definition describes the tool
func (t *BudgetTool) Definition() mcp.Tool {
	return mcp.NewTool("budgeting-cashflow-analyzer",
		mcp.WithDescription("Analyze the latest saved financial profile to produce forecasts and budgets"),
		mcp.WithTitleAnnotation("Advanced Budgeting & Cashflow Analyzer"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

// Handle runs the tool
func (t *BudgetTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := scoped(t.log, "budgeting-cashflow-analyzer")
	defer utils.OperationTimer("budgeting-cashflow-analyzer", log)()

	report, err := t.service.AnalyzeLatest()
	if errors.Is(err, budgeting.ErrNoProfile) {
		return mcp.NewToolResultText(NoProfileMessage), nil
	}
	if err != nil {
		log.Error().Err(err).Msg("Budget analysis failed")
		return mcp.NewToolResultError(err.Error()), nil
	}
	return textResult(budgetSegments(*report)...), nil
}
