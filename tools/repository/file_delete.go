package repository

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type fileDeleteArgs struct {
	ProjectID     int    `json:"project_id"`
	FilePath      string `json:"file_path"`
	Branch        string `json:"branch"`
	CommitMessage string `json:"commit_message"`
}

func FileDelete(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "repository-file-delete",
		Description: "Delete a file from the repository, committed to the given branch.",
		Annotations: i.ToolAnnotations("Delete a repository file", i.Destructive),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID",
				},
				"file_path": map[string]any{
					"type":        "string",
					"description": "Path to the file",
				},
				"branch": map[string]any{
					"type":        "string",
					"description": "Target branch",
				},
				"commit_message": map[string]any{
					"type":        "string",
					"description": "Commit message",
				},
			},
			Required: []string{"project_id", "file_path", "branch", "commit_message"},
		},
	}, Handler: fileDelete(client)}
}

func fileDelete(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args fileDeleteArgs) (*mcp.CallToolResult, error) {
		body := map[string]any{
			"branch":         args.Branch,
			"commit_message": args.CommitMessage,
		}

		endpoint := fmt.Sprintf("/projects/%d/repository/files/%s",
			args.ProjectID, url.PathEscape(args.FilePath))

		if err := client.Delete(ctx, endpoint, body); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error deleting file: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("File deleted: %s from branch %s", args.FilePath, args.Branch)), nil
	})
}
