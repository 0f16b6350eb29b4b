package projects

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type unarchiveArgs struct {
	ProjectID int `json:"project_id"`
}

func Unarchive(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "projects-unarchive",
		Description: "Unarchive a previously archived project.",
		Annotations: i.ToolAnnotations("Unarchive a project", i.OpenWorld|i.Idempotent),
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
	}, Handler: unarchive(client)}
}

func unarchive(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args unarchiveArgs) (*mcp.CallToolResult, error) {
		if err := client.Post(ctx, fmt.Sprintf("/projects/%d/unarchive", args.ProjectID), nil, nil); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error unarchiving project: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Project %d unarchived successfully", args.ProjectID)), nil
	})
}
