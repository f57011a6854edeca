// Package tools exposes the planning operations as MCP tools.
//
// Every tool wraps one service call and renders the result as an ordered
// list of text segments. Argument decoding and validation happen here, at the
// transport boundary.
package tools

import (
	"context"
	"fmt"

	"github.com/aristath/finwell/internal/modules/analysis"
	"github.com/aristath/finwell/internal/modules/budgeting"
	"github.com/aristath/finwell/internal/modules/cash_flows"
	"github.com/aristath/finwell/internal/modules/debt"
	"github.com/aristath/finwell/internal/modules/expenses"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

// Tool is one MCP tool: its schema and its handler
type Tool interface {
	Definition() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// Services are the collaborators the tools call into
type Services struct {
	Analysis  *analysis.Service
	Budgeting *budgeting.Service
	Expenses  *expenses.Service
	Debt      *debt.Service
	CashFlows *cash_flows.Service
}

// All builds every tool in registration order
func All(svc Services, log zerolog.Logger) []Tool {
	return []Tool{
		NewAnalyzeProfileTool(svc.Analysis, log),
		NewBudgetTool(svc.Budgeting, log),
		NewRandomProfileTool(svc.Analysis, log),
		NewExpensesTool(svc.Expenses, log),
		NewDebtTool(svc.Debt, log),
		NewNetWorthTool(log),
		NewCashFlowTool(svc.CashFlows, log),
	}
}

// Register adds every tool and the profile prompt to s
func Register(s *server.MCPServer, svc Services, log zerolog.Logger) {
	for _, tool := range All(svc, log) {
		s.AddTool(tool.Definition(), tool.Handle)
	}

	prompt := NewProfilePrompt()
	s.AddPrompt(prompt.Definition(), prompt.Handle)
}

// scoped returns a per-invocation logger
func scoped(log zerolog.Logger, tool string) zerolog.Logger {
	return log.With().
		Str("tool", tool).
		Str("invocation_id", uuid.NewString()).
		Logger()
}

// bindArguments decodes the call arguments into target
func bindArguments(req mcp.CallToolRequest, target interface{}) error {
	raw, err := json.Marshal(req.GetArguments())
	if err != nil {
		return fmt.Errorf("failed to read arguments: %w", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// textResult wraps each segment as its own text content, in order
func textResult(segments ...string) *mcp.CallToolResult {
	content := make([]mcp.Content, 0, len(segments))
	for _, s := range segments {
		content = append(content, mcp.NewTextContent(s))
	}
	return &mcp.CallToolResult{Content: content}
}

// jsonResult renders v as indented JSON in a single segment
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// objectSchema describes a JSON object for array items
func objectSchema(properties map[string]interface{}, required ...string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func prop(kind, description string) map[string]interface{} {
	return map[string]interface{}{"type": kind, "description": description}
}
