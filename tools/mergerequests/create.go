package mergerequests

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type createArgs struct {
	ProjectID    int    `json:"project_id"`
	SourceBranch string `json:"source_branch"`
	TargetBranch string `json:"target_branch"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
}

func Create(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "merge-requests-create",
		Description: "Create a merge request from a source branch into a target branch.",
		Annotations: i.ToolAnnotations("Create a merge request", i.OpenWorld),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID",
				},
				"source_branch": map[string]any{
					"type":        "string",
					"description": "Source branch",
				},
				"target_branch": map[string]any{
					"type":        "string",
					"description": "Target branch",
				},
				"title": map[string]any{
					"type":        "string",
					"description": "MR title",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "MR description (optional)",
				},
			},
			Required: []string{"project_id", "source_branch", "target_branch", "title"},
		},
	}, Handler: create(client)}
}

func create(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args createArgs) (*mcp.CallToolResult, error) {
		body := map[string]any{
			"source_branch": args.SourceBranch,
			"target_branch": args.TargetBranch,
			"title":         args.Title,
			"description":   args.Description,
		}

		var mr types.MergeRequest
		if err := client.Post(ctx, fmt.Sprintf("/projects/%d/merge_requests", args.ProjectID), body, &mr); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error creating merge request: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Merge request created: !%d - %s\nURL: %s",
			mr.IID, mr.Title, mr.WebURL)), nil
	})
}
