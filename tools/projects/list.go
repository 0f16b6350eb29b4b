package projects

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type listArgs struct {
	Owned bool `json:"owned,omitempty"`
}

func List(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "projects-list",
		Description: "List GitLab projects the authenticated user is a member of. Shows up to 10 projects with their IDs; use projects-search to narrow by name.",
		Annotations: i.ToolAnnotations("List accessible projects", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"owned": map[string]any{
					"type":        "boolean",
					"description": "If true, only show owned projects",
				},
			},
		},
	}, Handler: list(client)}
}

func list(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args listArgs) (*mcp.CallToolResult, error) {
		endpoint := "/projects?membership=true&per_page=100"
		if args.Owned {
			endpoint += "&owned=true"
		}

		var projects []types.Project
		if err := client.Get(ctx, endpoint, &projects); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
		}

		if len(projects) == 0 {
			return mcp.NewToolResultText("No projects found."), nil
		}

		lines := make([]string, 0, 10)
		for _, project := range i.Truncate(projects, 10) {
			lines = append(lines, fmt.Sprintf("• %s (%s) - ID: %d",
				project.Name, project.PathWithNamespace, project.ID))
		}

		return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
	})
}
