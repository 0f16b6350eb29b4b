package repository

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type cherryPickArgs struct {
	ProjectID int    `json:"project_id"`
	CommitSHA string `json:"commit_sha"`
	Branch    string `json:"branch"`
}

func CommitsCherryPick(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "repository-commits-cherry-pick",
		Description: "Cherry-pick a commit onto a target branch.",
		Annotations: i.ToolAnnotations("Cherry-pick a commit", i.OpenWorld),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID",
				},
				"commit_sha": map[string]any{
					"type":        "string",
					"description": "Commit SHA to cherry-pick",
				},
				"branch": map[string]any{
					"type":        "string",
					"description": "Target branch for cherry-pick",
				},
			},
			Required: []string{"project_id", "commit_sha", "branch"},
		},
	}, Handler: cherryPick(client)}
}

func cherryPick(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args cherryPickArgs) (*mcp.CallToolResult, error) {
		body := map[string]any{"branch": args.Branch}
		endpoint := fmt.Sprintf("/projects/%d/repository/commits/%s/cherry_pick", args.ProjectID, args.CommitSHA)

		var commit types.Commit
		if err := client.Post(ctx, endpoint, body, &commit); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error cherry-picking commit: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Commit %s cherry-picked successfully: %s", args.CommitSHA, commit.ShortID)), nil
	})
}
