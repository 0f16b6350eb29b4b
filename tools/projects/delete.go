package projects

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type deleteArgs struct {
	ProjectID int `json:"project_id"`
}

func Delete(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "projects-delete",
		Description: "Delete a GitLab project. Irreversible; confirm the project ID with a read tool first.",
		Annotations: i.ToolAnnotations("Delete a project", i.Destructive),
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
	}, Handler: deleteHandler(client)}
}

func deleteHandler(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args deleteArgs) (*mcp.CallToolResult, error) {
		if err := client.Delete(ctx, fmt.Sprintf("/projects/%d", args.ProjectID), nil); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error deleting project: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Project %d deleted successfully", args.ProjectID)), nil
	})
}
