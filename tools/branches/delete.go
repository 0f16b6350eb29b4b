package branches

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type deleteArgs struct {
	ProjectID  int    `json:"project_id"`
	BranchName string `json:"branch_name"`
}

func Delete(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "branches-delete",
		Description: "Delete a branch. Irreversible unless the commits are referenced elsewhere.",
		Annotations: i.ToolAnnotations("Delete a branch", i.Destructive),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID",
				},
				"branch_name": map[string]any{
					"type":        "string",
					"description": "Branch name to delete",
				},
			},
			Required: []string{"project_id", "branch_name"},
		},
	}, Handler: deleteHandler(client)}
}

func deleteHandler(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args deleteArgs) (*mcp.CallToolResult, error) {
		endpoint := fmt.Sprintf("/projects/%d/repository/branches/%s",
			args.ProjectID, url.PathEscape(args.BranchName))

		if err := client.Delete(ctx, endpoint, nil); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error deleting branch: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Branch '%s' deleted successfully", args.BranchName)), nil
	})
}
