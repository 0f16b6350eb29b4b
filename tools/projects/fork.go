package projects

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type forkArgs struct {
	ProjectID int    `json:"project_id"`
	Namespace string `json:"namespace,omitempty"`
}

func Fork(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "projects-fork",
		Description: "Fork a project into the authenticated user's namespace or a given one.",
		Annotations: i.ToolAnnotations("Fork a project", i.OpenWorld),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID to fork",
				},
				"namespace": map[string]any{
					"type":        "string",
					"description": "Target namespace (optional)",
				},
			},
			Required: []string{"project_id"},
		},
	}, Handler: fork(client)}
}

func fork(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args forkArgs) (*mcp.CallToolResult, error) {
		body := map[string]any{}
		if args.Namespace != "" {
			body["namespace"] = args.Namespace
		}

		var project types.Project
		if err := client.Post(ctx, fmt.Sprintf("/projects/%d/fork", args.ProjectID), body, &project); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error forking project: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Project forked: %s (ID: %d)\nURL: %s",
			project.Name, project.ID, project.WebURL)), nil
	})
}
