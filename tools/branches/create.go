package branches

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type createArgs struct {
	ProjectID  int    `json:"project_id"`
	BranchName string `json:"branch_name"`
	Ref        string `json:"ref,omitempty"`
}

func Create(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "branches-create",
		Description: "Create a new branch from a source branch or commit.",
		Annotations: i.ToolAnnotations("Create a branch", i.OpenWorld),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID",
				},
				"branch_name": map[string]any{
					"type":        "string",
					"description": "New branch name",
				},
				"ref": map[string]any{
					"type":        "string",
					"description": "Source branch/commit (default: main)",
				},
			},
			Required: []string{"project_id", "branch_name"},
		},
	}, Handler: create(client)}
}

func create(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args createArgs) (*mcp.CallToolResult, error) {
		if args.Ref == "" {
			args.Ref = "main"
		}

		body := map[string]any{
			"branch": args.BranchName,
			"ref":    args.Ref,
		}

		var branch types.Branch
		if err := client.Post(ctx, fmt.Sprintf("/projects/%d/repository/branches", args.ProjectID), body, &branch); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error creating branch: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Branch created: %s from %s", branch.Name, args.Ref)), nil
	})
}
