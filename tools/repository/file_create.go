package repository

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type fileCreateArgs struct {
	ProjectID     int    `json:"project_id"`
	FilePath      string `json:"file_path"`
	Content       string `json:"content"`
	Branch        string `json:"branch"`
	CommitMessage string `json:"commit_message"`
}

func FileCreate(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "repository-file-create",
		Description: "Create a new file in the repository, committed to the given branch.",
		Annotations: i.ToolAnnotations("Create a repository file", i.OpenWorld),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID",
				},
				"file_path": map[string]any{
					"type":        "string",
					"description": "Path for the new file",
				},
				"content": map[string]any{
					"type":        "string",
					"description": "File content",
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
			Required: []string{"project_id", "file_path", "content", "branch", "commit_message"},
		},
	}, Handler: fileCreate(client)}
}

func fileCreate(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args fileCreateArgs) (*mcp.CallToolResult, error) {
		body := map[string]any{
			"branch":         args.Branch,
			"content":        args.Content,
			"commit_message": args.CommitMessage,
		}

		endpoint := fmt.Sprintf("/projects/%d/repository/files/%s",
			args.ProjectID, url.PathEscape(args.FilePath))

		if err := client.Post(ctx, endpoint, body, nil); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error creating file: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("File created: %s in branch %s", args.FilePath, args.Branch)), nil
	})
}
