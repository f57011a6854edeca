package tools

import (
	"context"

	"github.com/aristath/finwell/internal/modules/expenses"
	"github.com/aristath/finwell/internal/utils"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
)

// ExpensesTool analyses the spending of every saved profile
type ExpensesTool struct {
	service *expenses.Service
	log     zerolog.Logger
}

// NewExpensesTool creates the analyze-expenses tool
func NewExpensesTool(service *expenses.Service, log zerolog.Logger) *ExpensesTool {
	return &ExpensesTool{service: service, log: log}
}

// Definition describes the tool
func (t *ExpensesTool) Definition() mcp.Tool {
	return mcp.NewTool("analyze-expenses",
		mcp.WithDescription("Analyze expenses from saved financial profiles and provide suggestions"),
		mcp.WithTitleAnnotation("Expense Categorization Analysis"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

// Handle runs the tool
func (t *ExpensesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := scoped(t.log, "analyze-expenses")
	defer utils.OperationTimer("analyze-expenses", log)()

	results, err := t.service.AnalyzeAll()
	if err != nil {
		log.Error().Err(err).Msg("Expense analysis failed")
		return mcp.NewToolResultError("Error: Unable to analyze expenses from saved profiles."), nil
	}
	return jsonResult(results)
}
