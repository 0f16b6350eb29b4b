package projects

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type createArgs struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Visibility  string `json:"visibility,omitempty"`
}

func Create(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "projects-create",
		Description: "Create a new GitLab project owned by the authenticated user, initialized with a README.",
		Annotations: i.ToolAnnotations("Create a new project", i.OpenWorld),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"name": map[string]any{
					"type":        "string",
					"description": "Project name",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "Project description (optional)",
				},
				"visibility": map[string]any{
					"type":        "string",
					"description": "Project visibility (default: private)",
					"enum":        []string{"private", "internal", "public"},
				},
			},
			Required: []string{"name"},
		},
	}, Handler: create(client)}
}

func create(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args createArgs) (*mcp.CallToolResult, error) {
		if args.Visibility == "" {
			args.Visibility = "private"
		}

		body := map[string]any{
			"name":                   args.Name,
			"description":            args.Description,
			"visibility":             args.Visibility,
			"initialize_with_readme": true,
		}

		var project types.Project
		if err := client.Post(ctx, "/projects", body, &project); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error creating project: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Project created: %s (ID: %d)\nURL: %s",
			project.Name, project.ID, project.WebURL)), nil
	})
}
