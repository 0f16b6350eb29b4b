package groups

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type membersArgs struct {
	GroupID int `json:"group_id"`
}

func Members(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "groups-members-list",
		Description: "Get members of a group with their access levels. Shows up to 15 members.",
		Annotations: i.ToolAnnotations("List group members", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"group_id": map[string]any{
					"type":        "integer",
					"description": "GitLab group ID",
				},
			},
			Required: []string{"group_id"},
		},
	}, Handler: members(client)}
}

func members(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args membersArgs) (*mcp.CallToolResult, error) {
		var members []types.GroupMember
		if err := client.Get(ctx, fmt.Sprintf("/groups/%d/members", args.GroupID), &members); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
		}

		if len(members) == 0 {
			return mcp.NewToolResultText("No members found."), nil
		}

		lines := make([]string, 0, 15)
		for _, member := range i.Truncate(members, 15) {
			lines = append(lines, fmt.Sprintf("• %s (%s) - %d",
				member.Name, member.Username, member.AccessLevel))
		}

		return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
	})
}
