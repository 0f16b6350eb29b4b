package repository

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type revertArgs struct {
	ProjectID int    `json:"project_id"`
	CommitSHA string `json:"commit_sha"`
	Branch    string `json:"branch"`
}

func CommitsRevert(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "repository-commits-revert",
		Description: "Revert a commit on a target branch by creating a new revert commit.",
		Annotations: i.ToolAnnotations("Revert a commit", i.OpenWorld),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID",
				},
				"commit_sha": map[string]any{
					"type":        "string",
					"description": "Commit SHA to revert",
				},
				"branch": map[string]any{
					"type":        "string",
					"description": "Target branch for revert",
				},
			},
			Required: []string{"project_id", "commit_sha", "branch"},
		},
	}, Handler: revert(client)}
}

func revert(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args revertArgs) (*mcp.CallToolResult, error) {
		body := map[string]any{"branch": args.Branch}
		endpoint := fmt.Sprintf("/projects/%d/repository/commits/%s/revert", args.ProjectID, args.CommitSHA)

		var commit types.Commit
		if err := client.Post(ctx, endpoint, body, &commit); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error reverting commit: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Commit %s reverted successfully: %s", args.CommitSHA, commit.ShortID)), nil
	})
}
