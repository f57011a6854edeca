package tools

import (
	"context"

	"github.com/aristath/finwell/internal/modules/generator"
	"github.com/mark3labs/mcp-go/mcp"
)

// ProfilePrompt asks the client's model for a dummy profile
type ProfilePrompt struct{}

// NewProfilePrompt creates the generate-dummy-financial-profile prompt
func NewProfilePrompt() *ProfilePrompt {
	return &ProfilePrompt{}
}

// Definition describes the prompt
func (p *ProfilePrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt(generator.PromptName,
		mcp.WithPromptDescription(generator.PromptDescription),
	)
}

// Handle returns the single user message
func (p *ProfilePrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return mcp.NewGetPromptResult(generator.PromptDescription, []mcp.PromptMessage{
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(generator.PromptText)),
	}), nil
}
