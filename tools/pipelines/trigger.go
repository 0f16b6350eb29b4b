package pipelines

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type triggerArgs struct {
	ProjectID int    `json:"project_id"`
	Ref       string `json:"ref,omitempty"`
}

func Trigger(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "pipelines-trigger",
		Description: "Trigger a new pipeline on a branch or tag.",
		Annotations: i.ToolAnnotations("Trigger a pipeline", i.OpenWorld),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID",
				},
				"ref": map[string]any{
					"type":        "string",
					"description": "Branch/tag to run pipeline on (default: main)",
				},
			},
			Required: []string{"project_id"},
		},
	}, Handler: trigger(client)}
}

func trigger(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args triggerArgs) (*mcp.CallToolResult, error) {
		if args.Ref == "" {
			args.Ref = "main"
		}

		body := map[string]any{"ref": args.Ref}

		var pipeline types.Pipeline
		if err := client.Post(ctx, fmt.Sprintf("/projects/%d/pipeline", args.ProjectID), body, &pipeline); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error triggering pipeline: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Pipeline triggered successfully: #%d on %s", pipeline.ID, args.Ref)), nil
	})
}
