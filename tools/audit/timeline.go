package audit

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/types"
)

type timelineArgs struct {
	Tool   string `json:"tool,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

func Timeline(storage types.Storage) i.Tool {
	return i.Tool{Tool: mcp.Tool{
		Name:        "audit-timeline",
		Description: "Get the history of tool invocations recorded by this server, newest first. Filter by tool name and paginate with limit/offset.",
		Annotations: i.ToolAnnotations("Get invocation timeline", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"tool": map[string]any{
					"type":        "string",
					"description": "Only show invocations of this tool",
				},
				"limit": map[string]any{
					"type":        "integer",
					"description": "Maximum number of events to return (default: 20)",
				},
				"offset": map[string]any{
					"type":        "integer",
					"description": "Number of events to skip",
				},
			},
		},
	}, Handler: timeline(storage)}
}

func timeline(storage types.Storage) i.ToolHandler {
	return mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args timelineArgs) (*mcp.CallToolResult, error) {
		response, err := storage.GetTimeline(ctx, types.TimelineQuery{
			Tool:   args.Tool,
			Limit:  args.Limit,
			Offset: args.Offset,
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error reading timeline: %v", err)), nil
		}

		if len(response.Events) == 0 {
			return mcp.NewToolResultText("No invocations recorded."), nil
		}

		var out strings.Builder
		fmt.Fprintf(&out, "Showing %d of %d invocations", len(response.Events), response.TotalCount)
		if response.HasMore {
			out.WriteString(" (more available)")
		}
		out.WriteString("\n")
		for _, event := range response.Events {
			fmt.Fprintf(&out, "• [%s] %s - %s (%dms)", event.CreatedAt, event.Tool, event.Status, event.Duration)
			if event.Error != "" {
				fmt.Fprintf(&out, ": %s", event.Error)
			}
			out.WriteString("\n")
		}

		return mcp.NewToolResultText(strings.TrimRight(out.String(), "\n")), nil
	})
}
