package repository

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type commitsListArgs struct {
	ProjectID int    `json:"project_id"`
	RefName   string `json:"ref_name,omitempty"`
}

func CommitsList(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "repository-commits-list",
		Description: "Get recent commits on a branch. Shows up to 10 commits with short SHA, title and author.",
		Annotations: i.ToolAnnotations("List recent commits", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID",
				},
				"ref_name": map[string]any{
					"type":        "string",
					"description": "Branch name (default: main)",
				},
			},
			Required: []string{"project_id"},
		},
	}, Handler: commitsList(client)}
}

func commitsList(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args commitsListArgs) (*mcp.CallToolResult, error) {
		if args.RefName == "" {
			args.RefName = "main"
		}

		endpoint := fmt.Sprintf("/projects/%d/repository/commits?ref_name=%s",
			args.ProjectID, url.QueryEscape(args.RefName))

		var commits []types.Commit
		if err := client.Get(ctx, endpoint, &commits); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
		}

		if len(commits) == 0 {
			return mcp.NewToolResultText("No commits found."), nil
		}

		lines := make([]string, 0, 10)
		for _, commit := range i.Truncate(commits, 10) {
			title := commit.Title
			if len(title) > 60 {
				title = title[:60] + "..."
			}
			lines = append(lines, fmt.Sprintf("• %s: %s (%s)", commit.ShortID, title, commit.AuthorName))
		}

		return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
	})
}
