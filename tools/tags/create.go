package tags

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type createArgs struct {
	ProjectID int    `json:"project_id"`
	TagName   string `json:"tag_name"`
	Ref       string `json:"ref"`
	Message   string `json:"message,omitempty"`
}

func Create(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "tags-create",
		Description: "Create a new tag pointing at a branch or commit.",
		Annotations: i.ToolAnnotations("Create a tag", i.OpenWorld),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID",
				},
				"tag_name": map[string]any{
					"type":        "string",
					"description": "Tag name",
				},
				"ref": map[string]any{
					"type":        "string",
					"description": "Source branch/commit",
				},
				"message": map[string]any{
					"type":        "string",
					"description": "Tag message (optional)",
				},
			},
			Required: []string{"project_id", "tag_name", "ref"},
		},
	}, Handler: create(client)}
}

func create(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args createArgs) (*mcp.CallToolResult, error) {
		body := map[string]any{
			"tag_name": args.TagName,
			"ref":      args.Ref,
			"message":  args.Message,
		}

		var tag types.Tag
		if err := client.Post(ctx, fmt.Sprintf("/projects/%d/repository/tags", args.ProjectID), body, &tag); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error creating tag: %v", err)), nil
		}

		shortID := ""
		if tag.Commit != nil {
			shortID = tag.Commit.ShortID
		}

		return mcp.NewToolResultText(fmt.Sprintf("Tag created: %s at %s", tag.Name, shortID)), nil
	})
}
