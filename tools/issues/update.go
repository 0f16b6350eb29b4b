package issues

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type updateArgs struct {
	ProjectID   int    `json:"project_id"`
	IssueIID    int    `json:"issue_iid"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	StateEvent  string `json:"state_event,omitempty"`
}

func Update(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "issues-update",
		Description: "Update an issue's title, description, or state. Only the provided fields are changed.",
		Annotations: i.ToolAnnotations("Update an issue", i.OpenWorld|i.Idempotent),
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
				"title": map[string]any{
					"type":        "string",
					"description": "New title (optional)",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "New description (optional)",
				},
				"state_event": map[string]any{
					"type":        "string",
					"description": "State change (optional)",
					"enum":        []string{"close", "reopen"},
				},
			},
			Required: []string{"project_id", "issue_iid"},
		},
	}, Handler: update(client)}
}

func update(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args updateArgs) (*mcp.CallToolResult, error) {
		body := map[string]any{}
		if args.Title != "" {
			body["title"] = args.Title
		}
		if args.Description != "" {
			body["description"] = args.Description
		}
		if args.StateEvent != "" {
			body["state_event"] = args.StateEvent
		}

		endpoint := fmt.Sprintf("/projects/%d/issues/%d", args.ProjectID, args.IssueIID)

		var issue types.Issue
		if err := client.Put(ctx, endpoint, body, &issue); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error updating issue: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Issue updated: #%d - %s (%s)",
			issue.IID, issue.Title, issue.State)), nil
	})
}
