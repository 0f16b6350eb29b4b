package clone

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"gitlab-mcp/internal/gitclone"
	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type repositoryArgs struct {
	ProjectID   int    `json:"project_id"`
	Destination string `json:"destination,omitempty"`
	UseSSH      bool   `json:"use_ssh,omitempty"`
}

func Repository(client types.RestClient, runner types.CloneRunner) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "clone-repository",
		Description: "Clone a GitLab repository to the local filesystem using the git binary. HTTPS clones embed the current token for authentication.",
		Annotations: i.ToolAnnotations("Clone a repository", i.OpenWorld),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID",
				},
				"destination": map[string]any{
					"type":        "string",
					"description": "Local directory to clone into (default: ./<project name>)",
				},
				"use_ssh": map[string]any{
					"type":        "boolean",
					"description": "Clone over SSH instead of HTTPS",
				},
			},
			Required: []string{"project_id"},
		},
	}, Handler: repository(client, runner)}
}

func repository(client types.RestClient, runner types.CloneRunner) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args repositoryArgs) (*mcp.CallToolResult, error) {
		var project types.Project
		if err := client.Get(ctx, fmt.Sprintf("/projects/%d", args.ProjectID), &project); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error fetching project: %v", err)), nil
		}

		cloneURL := project.HTTPURLToRepo
		if args.UseSSH {
			cloneURL = project.SSHURLToRepo
		} else if token, err := client.ResolveToken(ctx); err == nil {
			cloneURL = gitclone.AuthenticatedCloneURL(cloneURL, token)
		}

		destination := args.Destination
		if destination == "" {
			destination = "./" + project.Name
		}

		if err := runner.Clone(ctx, cloneURL, destination); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error cloning repository: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Repository '%s' cloned successfully to %s",
			project.PathWithNamespace, destination)), nil
	})
}
