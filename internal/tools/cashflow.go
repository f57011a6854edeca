package tools

import (
	"context"

	"github.com/aristath/finwell/internal/modules/cash_flows"
	"github.com/aristath/finwell/internal/utils"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
)

// CashFlowTool forecasts cash flow for all or selected profiles
type CashFlowTool struct {
	service *cash_flows.Service
	log     zerolog.Logger
}

// NewCashFlowTool creates the cash-flow-forecast tool
func NewCashFlowTool(service *cash_flows.Service, log zerolog.Logger) *CashFlowTool {
	return &CashFlowTool{service: service, log: log}
}

// Definition describes the tool
func (t *CashFlowTool) Definition() mcp.Tool {
	return mcp.NewTool("cash-flow-forecast",
		mcp.WithDescription("Predict user cash flow over time (supports all users or specific IDs)"),
		mcp.WithTitleAnnotation("Cash Flow Forecast"),
		mcp.WithOpenWorldHintAnnotation(true),
		mcp.WithArray("userIds",
			mcp.Description("Profile ids to forecast; all profiles when omitted"),
			mcp.Items(map[string]interface{}{"type": "number"}),
		),
		mcp.WithNumber("months",
			mcp.Description("Number of months to project"),
			mcp.DefaultNumber(cash_flows.DefaultMonths),
		),
	)
}

type cashFlowArgs struct {
	UserIDs []int64 `json:"userIds"`
	Months  int     `json:"months"`
}

// Handle runs the tool
func (t *CashFlowTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := scoped(t.log, "cash-flow-forecast")
	defer utils.OperationTimer("cash-flow-forecast", log)()

	var args cashFlowArgs
	if err := bindArguments(req, &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if args.Months < 0 {
		return mcp.NewToolResultError("months must not be negative"), nil
	}

	projections, err := t.service.Forecast(args.UserIDs, args.Months)
	if err != nil {
		log.Error().Err(err).Msg("Cash flow forecast failed")
		return mcp.NewToolResultError("Error generating cash flow forecast."), nil
	}
	return jsonResult(projections)
}
