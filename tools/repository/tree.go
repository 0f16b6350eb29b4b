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

type treeArgs struct {
	ProjectID int    `json:"project_id"`
	Path      string `json:"path,omitempty"`
	Ref       string `json:"ref,omitempty"`
}

func Tree(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "repository-tree",
		Description: "List repository files and directories at a path. Shows up to 20 entries.",
		Annotations: i.ToolAnnotations("List repository tree", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID",
				},
				"path": map[string]any{
					"type":        "string",
					"description": "Directory path (optional)",
				},
				"ref": map[string]any{
					"type":        "string",
					"description": "Branch/tag reference (default: main)",
				},
			},
			Required: []string{"project_id"},
		},
	}, Handler: tree(client)}
}

func tree(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args treeArgs) (*mcp.CallToolResult, error) {
		if args.Ref == "" {
			args.Ref = "main"
		}

		endpoint := fmt.Sprintf("/projects/%d/repository/tree?path=%s&ref=%s",
			args.ProjectID, url.QueryEscape(args.Path), url.QueryEscape(args.Ref))

		var items []types.TreeItem
		if err := client.Get(ctx, endpoint, &items); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
		}

		if len(items) == 0 {
			return mcp.NewToolResultText("No files found."), nil
		}

		lines := make([]string, 0, 20)
		for _, item := range i.Truncate(items, 20) {
			icon := "📄"
			if item.Type == "tree" {
				icon = "📁"
			}
			lines = append(lines, fmt.Sprintf("%s %s", icon, item.Name))
		}

		return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
	})
}
