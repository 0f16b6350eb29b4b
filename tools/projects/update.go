package projects

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type updateArgs struct {
	ProjectID   int    `json:"project_id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Visibility  string `json:"visibility,omitempty"`
}

func Update(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "projects-update",
		Description: "Update project settings. Only the provided fields are changed.",
		Annotations: i.ToolAnnotations("Update project settings", i.OpenWorld|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID",
				},
				"name": map[string]any{
					"type":        "string",
					"description": "New project name (optional)",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "New description (optional)",
				},
				"visibility": map[string]any{
					"type":        "string",
					"description": "New visibility (optional)",
					"enum":        []string{"private", "internal", "public"},
				},
			},
			Required: []string{"project_id"},
		},
	}, Handler: update(client)}
}

func update(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args updateArgs) (*mcp.CallToolResult, error) {
		body := map[string]any{}
		if args.Name != "" {
			body["name"] = args.Name
		}
		if args.Description != "" {
			body["description"] = args.Description
		}
		if args.Visibility != "" {
			body["visibility"] = args.Visibility
		}

		var project types.Project
		if err := client.Put(ctx, fmt.Sprintf("/projects/%d", args.ProjectID), body, &project); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error updating project: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Project updated: %s (ID: %d)", project.Name, project.ID)), nil
	})
}
