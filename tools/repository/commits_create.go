package repository

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type commitsCreateArgs struct {
	ProjectID     int    `json:"project_id"`
	Branch        string `json:"branch"`
	CommitMessage string `json:"commit_message"`
	FilePath      string `json:"file_path"`
	FileContent   string `json:"file_content,omitempty"`
	Action        string `json:"action,omitempty"`
}

func CommitsCreate(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "repository-commits-create",
		Description: "Create a commit with a single file change (create, update, or delete).",
		Annotations: i.ToolAnnotations("Create a commit", i.OpenWorld),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_id": map[string]any{
					"type":        "integer",
					"description": "GitLab project ID",
				},
				"branch": map[string]any{
					"type":        "string",
					"description": "Target branch",
				},
				"commit_message": map[string]any{
					"type":        "string",
					"description": "Commit message",
				},
				"file_path": map[string]any{
					"type":        "string",
					"description": "Path to the file",
				},
				"file_content": map[string]any{
					"type":        "string",
					"description": "File content (ignored for delete actions)",
				},
				"action": map[string]any{
					"type":        "string",
					"description": "Action (default: create)",
					"enum":        []string{"create", "update", "delete"},
				},
			},
			Required: []string{"project_id", "branch", "commit_message", "file_path"},
		},
	}, Handler: commitsCreate(client)}
}

func commitsCreate(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args commitsCreateArgs) (*mcp.CallToolResult, error) {
		if args.Action == "" {
			args.Action = "create"
		}

		action := map[string]any{
			"action":    args.Action,
			"file_path": args.FilePath,
		}
		// Delete actions must not carry content.
		if args.Action != "delete" {
			action["content"] = args.FileContent
		}

		body := map[string]any{
			"branch":         args.Branch,
			"commit_message": args.CommitMessage,
			"actions":        []any{action},
		}

		var commit types.Commit
		if err := client.Post(ctx, fmt.Sprintf("/projects/%d/repository/commits", args.ProjectID), body, &commit); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error creating commit: %v", err)), nil
		}

		return mcp.NewToolResultText(fmt.Sprintf("Commit created: %s - %s", commit.ShortID, commit.Title)), nil
	})
}
