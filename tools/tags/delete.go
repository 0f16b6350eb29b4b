package tags

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type deleteArgs struct {
	ProjectID int    `json:"project_id"`
	TagName   string `json:"tag_name"`
}

func Delete(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "tags-delete",
		Description: "Delete a tag. The commit it points to is untouched.",
		Annotations: i.ToolAnnotations("Delete a tag", i.Destructive),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID",
				},
				"tag_name": map[string]any{
					"type":        "string",
					"description": "Tag name to delete",
				},
			},
			Required: []string{"project_id", "tag_name"},
		},
	}, Handler: deleteHandler(client)}
}

func deleteHandler(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args deleteArgs) (*mcp.CallToolResult, error) {
		endpoint := fmt.Sprintf("/projects/%d/repository/tags/%s",
			args.ProjectID, url.PathEscape(args.TagName))

		if err := client.Delete(ctx, endpoint, nil); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error deleting tag: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Tag '%s' deleted successfully", args.TagName)), nil
	})
}
