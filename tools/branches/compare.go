package branches

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type compareArgs struct {
	ProjectID  int    `json:"project_id"`
	FromBranch string `json:"from_branch"`
	ToBranch   string `json:"to_branch"`
}

func Compare(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "branches-compare",
		Description: "Compare two branches, summarizing commit and file counts plus the most recent commits.",
		Annotations: i.ToolAnnotations("Compare branches", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID",
				},
				"from_branch": map[string]any{
					"type":        "string",
					"description": "Source branch",
				},
				"to_branch": map[string]any{
					"type":        "string",
					"description": "Target branch",
				},
			},
			Required: []string{"project_id", "from_branch", "to_branch"},
		},
	}, Handler: compare(client)}
}

func compare(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args compareArgs) (*mcp.CallToolResult, error) {
		endpoint := fmt.Sprintf("/projects/%d/repository/compare?from=%s&to=%s",
			args.ProjectID, url.QueryEscape(args.FromBranch), url.QueryEscape(args.ToBranch))

		var result types.CompareResult
		if err := client.Get(ctx, endpoint, &result); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Comparing %s to %s:\n", args.FromBranch, args.ToBranch)
		fmt.Fprintf(&sb, "Commits: %d\n", len(result.Commits))
		fmt.Fprintf(&sb, "Files changed: %d\n\n", len(result.Diffs))

		if len(result.Commits) > 0 {
			sb.WriteString("Recent commits:\n")
			for _, commit := range i.Truncate(result.Commits, 5) {
				fmt.Fprintf(&sb, "• %s: %s\n", commit.ShortID, commit.Title)
			}
		}

		return mcp.NewToolResultText(sb.String()), nil
	})
}
