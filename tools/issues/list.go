package issues

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type listArgs struct {
	ProjectID int    `json:"project_id"`
	State     string `json:"state,omitempty"`
}

func List(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "issues-list",
		Description: "Get issues for a GitLab project, filtered by state. Shows up to 10 issues with IID, title, state and author.",
		Annotations: i.ToolAnnotations("List project issues", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID",
				},
				"state": map[string]any{
					"type":        "string",
					"description": "Issue state (default: opened)",
					"enum":        []string{"opened", "closed", "all"},
				},
			},
			Required: []string{"project_id"},
		},
	}, Handler: list(client)}
}

func list(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args listArgs) (*mcp.CallToolResult, error) {
		if args.State == "" {
			args.State = "opened"
		}

		endpoint := fmt.Sprintf("/projects/%d/issues?state=%s", args.ProjectID, args.State)

		var issues []types.Issue
		if err := client.Get(ctx, endpoint, &issues); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
		}

		if len(issues) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No %s issues found.", args.State)), nil
		}

		lines := make([]string, 0, 10)
		for _, issue := range i.Truncate(issues, 10) {
			lines = append(lines, fmt.Sprintf("#%d: %s - %s (%s)",
				issue.IID, issue.Title, issue.State, issue.Author.Name))
		}

		return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
	})
}
