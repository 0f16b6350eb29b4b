package labels

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
		Name:        "labels-list",
		Description: "Get the labels defined on a project.",
		Annotations: i.ToolAnnotations("List project labels", i.Readonly|i.Idempotent),
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
		var labels []types.Label
		if err := client.Get(ctx, fmt.Sprintf("/projects/%d/labels", args.ProjectID), &labels); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
		}

		if len(labels) == 0 {
			return mcp.NewToolResultText("No labels found."), nil
		}

		lines := make([]string, 0, len(labels))
		for _, label := range labels {
			lines = append(lines, fmt.Sprintf("• %s (%s)", label.Name, label.Color))
		}

		return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
	})
}
