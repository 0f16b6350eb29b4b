package branches

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type listArgs struct {
	ProjectID int `json:"project_id"`
}

func List(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "branches-list",
		Description: "Get branches for a GitLab project. Shows up to 15 branches; protected branches are marked.",
		Annotations: i.ToolAnnotations("List project branches", i.Readonly|i.Idempotent),
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
	}, Handler: list(client)}
}

func list(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args listArgs) (*mcp.CallToolResult, error) {
		var branches []types.Branch
		if err := client.Get(ctx, fmt.Sprintf("/projects/%d/repository/branches", args.ProjectID), &branches); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
		}

		if len(branches) == 0 {
			return mcp.NewToolResultText("No branches found."), nil
		}

		lines := make([]string, 0, 15)
		for _, branch := range i.Truncate(branches, 15) {
			protected := ""
			if branch.Protected {
				protected = " (protected)"
			}
			lines = append(lines, fmt.Sprintf("• %s%s", branch.Name, protected))
		}

		return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
	})
}
