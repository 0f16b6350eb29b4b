package milestones

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
		Name:        "milestones-list",
		Description: "Get project milestones filtered by state.",
		Annotations: i.ToolAnnotations("List milestones", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID",
				},
				"state": map[string]any{
					"type":        "string",
					"description": "Milestone state (default: active)",
					"enum":        []string{"active", "closed", "all"},
				},
			},
			Required: []string{"project_id"},
		},
	}, Handler: list(client)}
}

func list(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args listArgs) (*mcp.CallToolResult, error) {
		if args.State == "" {
			args.State = "active"
		}

		endpoint := fmt.Sprintf("/projects/%d/milestones?state=%s", args.ProjectID, args.State)

		var milestones []types.Milestone
		if err := client.Get(ctx, endpoint, &milestones); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
		}

		if len(milestones) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No %s milestones found.", args.State)), nil
		}

		lines := make([]string, 0, len(milestones))
		for _, milestone := range milestones {
			due := milestone.DueDate
			if due == "" {
				due = "No due date"
			}
			lines = append(lines, fmt.Sprintf("• %s - %s (Due: %s)", milestone.Title, milestone.State, due))
		}

		return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
	})
}
