package pipelines

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type jobsArgs struct {
	ProjectID  int `json:"project_id"`
	PipelineID int `json:"pipeline_id"`
}

func Jobs(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "pipelines-jobs-list",
		Description: "Get the jobs of a specific pipeline with their status and stage.",
		Annotations: i.ToolAnnotations("List pipeline jobs", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID",
				},
				"pipeline_id": map[string]any{
					"type":        "integer",
					"description": "Pipeline ID",
				},
			},
			Required: []string{"project_id", "pipeline_id"},
		},
	}, Handler: jobs(client)}
}

func jobs(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args jobsArgs) (*mcp.CallToolResult, error) {
		endpoint := fmt.Sprintf("/projects/%d/pipelines/%d/jobs", args.ProjectID, args.PipelineID)

		var jobs []types.PipelineJob
		if err := client.Get(ctx, endpoint, &jobs); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
		}

		if len(jobs) == 0 {
			return mcp.NewToolResultText("No jobs found."), nil
		}

		lines := make([]string, 0, len(jobs))
		for _, job := range jobs {
			lines = append(lines, fmt.Sprintf("• %s: %s (Stage: %s)", job.Name, job.Status, job.Stage))
		}

		return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
	})
}
