package tools

import (
	"context"

	"github.com/aristath/finwell/internal/modules/networth"
	"github.com/aristath/finwell/internal/validation"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
)

// NetWorthTool totals assets against liabilities
type NetWorthTool struct {
	log zerolog.Logger
}

// NewNetWorthTool creates the calculate-net-worth tool
func NewNetWorthTool(log zerolog.Logger) *NetWorthTool {
	return &NetWorthTool{log: log}
}

// Definition describes the tool
func (t *NetWorthTool) Definition() mcp.Tool {
	item := objectSchema(map[string]interface{}{
		"name":  prop("string", "Item name"),
		"value": prop("number", "Current value"),
	}, "name", "value")

	return mcp.NewTool("calculate-net-worth",
		mcp.WithDescription("Calculate user's total net worth"),
		mcp.WithArray("assets", mcp.Required(), mcp.Items(item)),
		mcp.WithArray("liabilities", mcp.Required(), mcp.Items(item)),
	)
}

// Handle runs the tool
func (t *NetWorthTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args networth.Request
	if err := bindArguments(req, &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := validation.Struct(args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	summary := networth.Calculate(args.Assets, args.Liabilities)
	log := scoped(t.log, "calculate-net-worth")
	log.Debug().
		Str("status", string(summary.Status)).
		Msg("Net worth calculated")
	return mcp.NewToolResultText(netWorthText(summary)), nil
}
