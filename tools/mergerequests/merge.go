package mergerequests

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type mergeArgs struct {
	ProjectID          int    `json:"project_id"`
	MergeRequestIID    int    `json:"merge_request_iid"`
	MergeCommitMessage string `json:"merge_commit_message,omitempty"`
}

func Merge(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "merge-requests-merge",
		Description: "Merge a merge request. The merge commit lands on the target branch immediately.",
		Annotations: i.ToolAnnotations("Merge a merge request", i.OpenWorld|i.Destructive),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID",
				},
				"merge_request_iid": map[string]any{
					"type":        "integer",
					"description": "Merge request IID (project-scoped)",
				},
				"merge_commit_message": map[string]any{
					"type":        "string",
					"description": "Custom merge commit message (optional)",
				},
			},
			Required: []string{"project_id", "merge_request_iid"},
		},
	}, Handler: merge(client)}
}

func merge(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args mergeArgs) (*mcp.CallToolResult, error) {
		body := map[string]any{}
		if args.MergeCommitMessage != "" {
			body["merge_commit_message"] = args.MergeCommitMessage
		}

		endpoint := fmt.Sprintf("/projects/%d/merge_requests/%d/merge", args.ProjectID, args.MergeRequestIID)

		if err := client.Put(ctx, endpoint, body, nil); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error merging MR: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Merge request !%d merged successfully", args.MergeRequestIID)), nil
	})
}
