package clone

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"gitlab-mcp/internal/filesystem"
	"gitlab-mcp/internal/gitclone"
	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type groupArgs struct {
	GroupID  int    `json:"group_id"`
	BasePath string `json:"base_path,omitempty"`
	UseSSH   bool   `json:"use_ssh,omitempty"`
}

func Group(client types.RestClient, runner types.CloneRunner) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "clone-group-repositories",
		Description: "Clone every repository in a group into a local directory. Reports which clones succeeded and which failed.",
		Annotations: i.ToolAnnotations("Clone all group repositories", i.OpenWorld),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"group_id": map[string]any{
					"type":        "integer",
					"description": "GitLab group ID",
				},
				"base_path": map[string]any{
					"type":        "string",
					"description": "Directory to clone repositories into (default: ./repos)",
				},
				"use_ssh": map[string]any{
					"type":        "boolean",
					"description": "Clone over SSH instead of HTTPS",
				},
			},
			Required: []string{"group_id"},
		},
	}, Handler: group(client, runner)}
}

func group(client types.RestClient, runner types.CloneRunner) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args groupArgs) (*mcp.CallToolResult, error) {
		var projects []types.Project
		endpoint := fmt.Sprintf("/groups/%d/projects?per_page=100", args.GroupID)
		if err := client.Get(ctx, endpoint, &projects); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error fetching group projects: %v", err)), nil
		}

		if len(projects) == 0 {
			return mcp.NewToolResultText("No projects found in group."), nil
		}

		basePath := args.BasePath
		if basePath == "" {
			basePath = "./repos"
		}
		if err := filesystem.EnsureDir(basePath); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error creating base path: %v", err)), nil
		}

		token, _ := client.ResolveToken(ctx)

		var cloned, failed []string
		for _, project := range projects {
			cloneURL := project.HTTPURLToRepo
			if args.UseSSH {
				cloneURL = project.SSHURLToRepo
			} else {
				cloneURL = gitclone.AuthenticatedCloneURL(cloneURL, token)
			}

			destination := filepath.Join(basePath, project.Name)
			if err := runner.Clone(ctx, cloneURL, destination); err != nil {
				failed = append(failed, fmt.Sprintf("%s (%v)", project.Name, err))
				continue
			}
			cloned = append(cloned, project.Name)
		}

		var out strings.Builder
		fmt.Fprintf(&out, "Cloned %d of %d repositories to %s\n", len(cloned), len(projects), basePath)
		if len(cloned) > 0 {
			fmt.Fprintf(&out, "\nCloned:\n• %s", strings.Join(cloned, "\n• "))
		}
		if len(failed) > 0 {
			fmt.Fprintf(&out, "\n\nFailed:\n• %s", strings.Join(failed, "\n• "))
		}

		return mcp.NewToolResultText(out.String()), nil
	})
}
