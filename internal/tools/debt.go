package tools

import (
	"context"

	"github.com/aristath/finwell/internal/modules/debt"
	"github.com/aristath/finwell/internal/utils"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
)

// DebtTool ranks the debts of every saved profile
type DebtTool struct {
	service *debt.Service
	log     zerolog.Logger
}

// NewDebtTool creates the debt-repayment-strategy tool
func NewDebtTool(service *debt.Service, log zerolog.Logger) *DebtTool {
	return &DebtTool{service: service, log: log}
}

// Definition describes the tool
func (t *DebtTool) Definition() mcp.Tool {
	return mcp.NewTool("debt-repayment-strategy",
		mcp.WithDescription("Suggest optimal debt repayment order from saved financial profiles"),
		mcp.WithTitleAnnotation("Debt Repayment Strategy Analysis"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
		mcp.WithString("strategy",
			mcp.Description("avalanche pays the highest interest first, snowball the smallest payment first"),
			mcp.Enum(string(debt.Avalanche), string(debt.Snowball)),
			mcp.DefaultString(string(debt.DefaultStrategy)),
		),
	)
}

type debtArgs struct {
	Strategy *string `json:"strategy"`
}

// Handle runs the tool
func (t *DebtTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := scoped(t.log, "debt-repayment-strategy")
	defer utils.OperationTimer("debt-repayment-strategy", log)()

	var args debtArgs
	if err := bindArguments(req, &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	raw := ""
	if args.Strategy != nil {
		raw = *args.Strategy
	}
	strategy, err := debt.ParseStrategy(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	plans, err := t.service.PlanAll(strategy)
	if err != nil {
		log.Error().Err(err).Msg("Debt strategy failed")
		return mcp.NewToolResultError("Error: Unable to analyze debt repayment strategy from saved profiles."), nil
	}
	return mcp.NewToolResultText(debtText(plans)), nil
}
