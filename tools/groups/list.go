package groups

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

func List(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "groups-list",
		Description: "Get GitLab groups the authenticated user belongs to. Shows up to 10 groups.",
		Annotations: i.ToolAnnotations("List groups", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]any{},
		},
	}, Handler: list(client)}
}

func list(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, error) {
		var groups []types.Group
		if err := client.Get(ctx, "/groups?membership=true", &groups); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
		}

		if len(groups) == 0 {
			return mcp.NewToolResultText("No groups found."), nil
		}

		lines := make([]string, 0, 10)
		for _, group := range i.Truncate(groups, 10) {
			lines = append(lines, fmt.Sprintf("• %s (%s) - ID: %d", group.Name, group.Path, group.ID))
		}

		return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
	})
}
