package tags

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type listArgs struct {
	ProjectID int `json:"project_id"`
}

func List(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "tags-list",
		Description: "Get repository tags. Shows up to 10 tags with their commit and message.",
		Annotations: i.ToolAnnotations("List repository tags", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID",
				},
			},
			Required: []string{"project_id"},
		},
	}, Handler: list(client)}
}

func list(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args listArgs) (*mcp.CallToolResult, error) {
		var tags []types.Tag
		if err := client.Get(ctx, fmt.Sprintf("/projects/%d/repository/tags", args.ProjectID), &tags); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
		}

		if len(tags) == 0 {
			return mcp.NewToolResultText("No tags found."), nil
		}

		lines := make([]string, 0, 10)
		for _, tag := range i.Truncate(tags, 10) {
			shortID := ""
			if tag.Commit != nil {
				shortID = tag.Commit.ShortID
			}
			message := tag.Message
			if message == "" {
				message = "No message"
			}
			lines = append(lines, fmt.Sprintf("• %s - %s (%s)", tag.Name, shortID, message))
		}

		return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
	})
}
