package issues

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type closeArgs struct {
	ProjectID int `json:"project_id"`
	IssueIID  int `json:"issue_iid"`
}

func Close(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "issues-close",
		Description: "Close an issue.",
		Annotations: i.ToolAnnotations("Close an issue", i.OpenWorld|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID",
				},
				"issue_iid": map[string]any{
					"type":        "integer",
					"description": "Issue IID (project-scoped)",
				},
			},
			Required: []string{"project_id", "issue_iid"},
		},
	}, Handler: closeHandler(client)}
}

func closeHandler(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args closeArgs) (*mcp.CallToolResult, error) {
		body := map[string]any{"state_event": "close"}
		endpoint := fmt.Sprintf("/projects/%d/issues/%d", args.ProjectID, args.IssueIID)

		var issue types.Issue
		if err := client.Put(ctx, endpoint, body, &issue); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error closing issue: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Issue closed: #%d - %s", issue.IID, issue.Title)), nil
	})
}
