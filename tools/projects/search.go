package projects

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type searchArgs struct {
	Query string `json:"query"`
}

func Search(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "projects-search",
		Description: "Search accessible GitLab projects by name. Shows up to 10 matches with their IDs.",
		Annotations: i.ToolAnnotations("Search projects", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "Search query",
				},
			},
			Required: []string{"query"},
		},
	}, Handler: search(client)}
}

func search(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args searchArgs) (*mcp.CallToolResult, error) {
		endpoint := "/projects?search=" + url.QueryEscape(args.Query)

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
