package pipelines

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type listArgs struct {
	ProjectID int    `json:"project_id"`
	Status    string `json:"status,omitempty"`
}

func List(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "pipelines-list",
		Description: "Get CI/CD pipelines for a project, filtered by status. Shows up to 10 pipelines.",
		Annotations: i.ToolAnnotations("List pipelines", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID",
				},
				"status": map[string]any{
					"type":        "string",
					"description": "Pipeline status (default: running)",
					"enum":        []string{"running", "pending", "success", "failed", "canceled", "skipped"},
				},
			},
			Required: []string{"project_id"},
		},
	}, Handler: list(client)}
}

func list(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args listArgs) (*mcp.CallToolResult, error) {
		if args.Status == "" {
			args.Status = "running"
		}

		endpoint := fmt.Sprintf("/projects/%d/pipelines?status=%s", args.ProjectID, args.Status)

		var pipelines []types.Pipeline
		if err := client.Get(ctx, endpoint, &pipelines); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
		}

		if len(pipelines) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No %s pipelines found.", args.Status)), nil
		}

		lines := make([]string, 0, 10)
		for _, pipeline := range i.Truncate(pipelines, 10) {
			user := "Unknown"
			if pipeline.User != nil && pipeline.User.Name != "" {
				user = pipeline.User.Name
			}
			lines = append(lines, fmt.Sprintf("Pipeline #%d: %s - %s (%s)",
				pipeline.ID, pipeline.Status, pipeline.Ref, user))
		}

		return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
	})
}
