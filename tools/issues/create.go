package issues

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type createArgs struct {
	ProjectID   int    `json:"project_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

func Create(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "issues-create",
		Description: "Create a new issue in a GitLab project.",
		Annotations: i.ToolAnnotations("Create an issue", i.OpenWorld),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID",
				},
				"title": map[string]any{
					"type":        "string",
					"description": "Issue title",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "Issue description (optional)",
				},
			},
			Required: []string{"project_id", "title"},
		},
	}, Handler: create(client)}
}

func create(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args createArgs) (*mcp.CallToolResult, error) {
		body := map[string]any{
			"title":       args.Title,
			"description": args.Description,
		}

		var issue types.Issue
		if err := client.Post(ctx, fmt.Sprintf("/projects/%d/issues", args.ProjectID), body, &issue); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error creating issue: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Issue created successfully: #%d - %s", issue.IID, issue.Title)), nil
	})
}
