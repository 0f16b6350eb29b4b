package projects

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type archiveArgs struct {
	ProjectID int `json:"project_id"`
}

func Archive(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "projects-archive",
		Description: "Archive a project, making it read-only. Reversible with projects-unarchive.",
		Annotations: i.ToolAnnotations("Archive a project", i.OpenWorld|i.Idempotent),
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
	}, Handler: archive(client)}
}

func archive(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args archiveArgs) (*mcp.CallToolResult, error) {
		if err := client.Post(ctx, fmt.Sprintf("/projects/%d/archive", args.ProjectID), nil, nil); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error archiving project: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Project %d archived successfully", args.ProjectID)), nil
	})
}
