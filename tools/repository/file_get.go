package repository

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

// Display cap for file contents, in characters of decoded text.
const fileContentLimit = 2000

type fileGetArgs struct {
	ProjectID int    `json:"project_id"`
	FilePath  string `json:"file_path"`
	Ref       string `json:"ref,omitempty"`
}

func FileGet(client types.RestClient) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "repository-file-get",
		Description: "Get the content of a repository file at a ref. Long files are truncated to the first 2000 characters.",
		Annotations: i.ToolAnnotations("Get file content", i.Readonly|i.Idempotent),
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
				"ref": map[string]any{
					"type":        "string",
					"description": "Branch/tag reference (default: main)",
				},
			},
			Required: []string{"project_id", "file_path"},
		},
	}, Handler: fileGet(client)}
}

func fileGet(client types.RestClient) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args fileGetArgs) (*mcp.CallToolResult, error) {
		if args.Ref == "" {
			args.Ref = "main"
		}

		endpoint := fmt.Sprintf("/projects/%d/repository/files/%s?ref=%s",
			args.ProjectID, url.PathEscape(args.FilePath), url.QueryEscape(args.Ref))

		var file types.FileContent
		if err := client.Get(ctx, endpoint, &file); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
		}

		decoded, err := base64.StdEncoding.DecodeString(file.Content)
		if err != nil {
			return mcp.NewToolResultError("Unable to decode file content"), nil
		}

		content := string(decoded)
		suffix := ""
		if runes := []rune(content); len(runes) > fileContentLimit {
			content = string(runes[:fileContentLimit])
			suffix = "..."
		}

		return mcp.NewToolResultText(fmt.Sprintf("File: %s\n\n%s%s", args.FilePath, content, suffix)), nil
	})
}
