package tools

import (
	"context"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mark3labs/mcp-go/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"gitlab-mcp/tools/audit"
	"gitlab-mcp/tools/branches"
	"gitlab-mcp/tools/clone"
	"gitlab-mcp/tools/groups"
	i "gitlab-mcp/tools/internal"
	"gitlab-mcp/tools/issues"
	"gitlab-mcp/tools/labels"
	"gitlab-mcp/tools/mergerequests"
	"gitlab-mcp/tools/milestones"
	"gitlab-mcp/tools/pipelines"
	"gitlab-mcp/tools/projects"
	"gitlab-mcp/tools/repository"
	"gitlab-mcp/tools/tags"
	"gitlab-mcp/tools/users"
	"gitlab-mcp/types"
)

// Server interface defines the MCP server
type Server interface {
	AddTool(tool mcp.Tool, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error))
}

// ToolHandlers contains all MCP tool handlers
type ToolHandlers struct {
	client      types.RestClient
	cloneRunner types.CloneRunner
	storage     types.Storage
	logger      hclog.Logger
}

// New creates new tool handlers
func New(client types.RestClient, cloneRunner types.CloneRunner, storage types.Storage, logger hclog.Logger) *ToolHandlers {
	return &ToolHandlers{
		client:      client,
		cloneRunner: cloneRunner,
		storage:     storage,
		logger:      logger.Named("tools"),
	}
}

// RegisterTools registers all MCP tools with the server
func (th *ToolHandlers) RegisterTools(s Server) {
	all := []i.Tool{
		// Project tools
		projects.Create(th.client),
		projects.Delete(th.client),
		projects.List(th.client),
		projects.Search(th.client),
		projects.Update(th.client),
		projects.Fork(th.client),
		projects.Archive(th.client),
		projects.Unarchive(th.client),
		projects.Hooks(th.client),

		// Issue tools
		issues.List(th.client),
		issues.Create(th.client),
		issues.Update(th.client),
		issues.Close(th.client),

		// Merge request tools
		mergerequests.List(th.client),
		mergerequests.Create(th.client),
		mergerequests.Merge(th.client),

		// Branch tools
		branches.List(th.client),
		branches.Create(th.client),
		branches.Delete(th.client),
		branches.Compare(th.client),

		// Repository content tools
		repository.Tree(th.client),
		repository.FileGet(th.client),
		repository.FileCreate(th.client),
		repository.FileUpdate(th.client),
		repository.FileDelete(th.client),
		repository.CommitsList(th.client),
		repository.CommitsCreate(th.client),
		repository.CommitsRevert(th.client),
		repository.CommitsCherryPick(th.client),

		// Tag tools
		tags.List(th.client),
		tags.Create(th.client),
		tags.Delete(th.client),

		// Pipeline tools
		pipelines.List(th.client),
		pipelines.Jobs(th.client),
		pipelines.Trigger(th.client),

		// Group tools
		groups.List(th.client),
		groups.Members(th.client),

		// User, milestone and label tools
		users.Current(th.client),
		milestones.List(th.client),
		labels.List(th.client),

		// Local clone tools
		clone.Repository(th.client, th.cloneRunner),
		clone.Group(th.client, th.cloneRunner),

		// Audit tools
		audit.Timeline(th.storage),
	}

	for _, tool := range all {
		s.AddTool(tool.Tool, th.instrumented(tool.Tool.Name, tool.Handler))
	}
}

// instrumented wraps a tool handler with tracing and invocation recording.
// Recording failures are logged and never fail the call itself.
func (th *ToolHandlers) instrumented(name string, handler i.ToolHandler) i.ToolHandler {
	tracer := otel.Tracer("gitlab-mcp/tools")

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx, span := tracer.Start(ctx, name)
		defer span.End()
		span.SetAttributes(attribute.String("tool.name", name))

		started := time.Now()
		result, err := handler(ctx, request)

		record := types.InvocationRecord{
			Tool:     name,
			Status:   types.InvocationStatusOK,
			Duration: time.Since(started).Milliseconds(),
		}
		switch {
		case err != nil:
			record.Status = types.InvocationStatusError
			record.Error = err.Error()
			span.SetStatus(codes.Error, err.Error())
		case result != nil && result.IsError:
			record.Status = types.InvocationStatusError
			span.SetStatus(codes.Error, "tool returned an error result")
		}

		if recordErr := th.storage.RecordInvocation(ctx, record); recordErr != nil {
			th.logger.Warn("failed to record tool invocation", "tool", name, "error", recordErr)
		}

		return result, err
	}
}
