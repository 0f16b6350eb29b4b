package mergerequests

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
		Name:        "merge-requests-list",
		Description: "Get merge requests for a GitLab project, filtered by state. Shows up to 10 MRs with IID, title, state and author.",
		Annotations: i.ToolAnnotations("List merge requests", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID",
				},
				"state": map[string]any{
					"type":        "string",
					"description": "MR state (default: opened)",
					"enum":        []string{"opened", "closed", "merged", "all"},
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

		endpoint := fmt.Sprintf("/projects/%d/merge_requests?state=%s", args.ProjectID, args.State)

		var mrs []types.MergeRequest
		if err := client.Get(ctx, endpoint, &mrs); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
		}

		if len(mrs) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No %s merge requests found.", args.State)), nil
		}

		lines := make([]string, 0, 10)
		for _, mr := range i.Truncate(mrs, 10) {
			lines = append(lines, fmt.Sprintf("!%d: %s - %s (%s)",
				mr.IID, mr.Title, mr.State, mr.Author.Name))
		}

		return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
	})
}
