package users

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

func Current(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "users-current",
		Description: "Get the user the current token authenticates as. Useful to verify credentials.",
		Annotations: i.ToolAnnotations("Get current user", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]any{},
		},
	}, Handler: current(client)}
}

func current(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, error) {
		var user types.User
		if err := client.Get(ctx, "/user", &user); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("User: %s (@%s)\nEmail: %s\nID: %d",
			user.Name, user.Username, user.Email, user.ID)), nil
	})
}
