package projects

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type hooksArgs struct {
	ProjectID int `json:"project_id"`
}

func Hooks(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "projects-hooks-list",
		Description: "List the webhooks configured on a project.",
		Annotations: i.ToolAnnotations("List project webhooks", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID",
				},
			},
			Required: []string{"project_id"},
		},
	}, Handler: hooks(client)}
}

func hooks(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args hooksArgs) (*mcp.CallToolResult, error) {
		var list []types.Hook
		if err := client.Get(ctx, fmt.Sprintf("/projects/%d/hooks", args.ProjectID), &list); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
		}

		if len(list) == 0 {
			return mcp.NewToolResultText("No webhooks found."), nil
		}

		lines := make([]string, 0, len(list))
		for _, hook := range list {
			lines = append(lines, fmt.Sprintf("• %s - ID: %d", hook.URL, hook.ID))
		}

		return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
	})
}
