package tools

import (
	"context"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"gitlab-mcp/types"
)

type fakeServer struct {
	tools    []string
	handlers map[string]func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

func (f *fakeServer) AddTool(tool mcp.Tool, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)) {
	if f.handlers == nil {
		f.handlers = map[string]func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error){}
	}
	f.tools = append(f.tools, tool.Name)
	f.handlers[tool.Name] = handler
}

type fakeRestClient struct {
	types.RestClient

	getErr error
}

func (f *fakeRestClient) Get(_ context.Context, _ string, _ any) error {
	return f.getErr
}

type fakeStorage struct {
	types.Storage

	records   []types.InvocationRecord
	recordErr error
}

func (f *fakeStorage) RecordInvocation(_ context.Context, record types.InvocationRecord) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.records = append(f.records, record)
	return nil
}

type fakeCloneRunner struct{}

func (fakeCloneRunner) Clone(context.Context, string, string) error { return nil }

func newTestHandlers(client types.RestClient, storage types.Storage) *ToolHandlers {
	return New(client, fakeCloneRunner{}, storage, hclog.NewNullLogger())
}

func TestRegisterToolsRegistersUniqueNames(t *testing.T) {
	server := &fakeServer{}

	newTestHandlers(&fakeRestClient{}, &fakeStorage{}).RegisterTools(server)

	require.Len(t, server.tools, 43)

	seen := map[string]bool{}
	for _, name := range server.tools {
		require.False(t, seen[name], "duplicate tool name: %s", name)
		seen[name] = true
	}
	require.True(t, seen["projects-list"])
	require.True(t, seen["clone-repository"])
	require.True(t, seen["audit-timeline"])
}

func TestInstrumentedRecordsInvocation(t *testing.T) {
	server := &fakeServer{}
	storage := &fakeStorage{}

	newTestHandlers(&fakeRestClient{}, storage).RegisterTools(server)

	_, err := server.handlers["users-current"](context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)

	require.Len(t, storage.records, 1)
	require.Equal(t, "users-current", storage.records[0].Tool)
	require.Equal(t, types.InvocationStatusOK, storage.records[0].Status)
}

func TestInstrumentedRecordsErrorResults(t *testing.T) {
	server := &fakeServer{}
	storage := &fakeStorage{}

	newTestHandlers(&fakeRestClient{getErr: errors.New("boom")}, storage).RegisterTools(server)

	result, err := server.handlers["users-current"](context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.True(t, result.IsError)

	require.Len(t, storage.records, 1)
	require.Equal(t, types.InvocationStatusError, storage.records[0].Status)
}

func TestInstrumentedToleratesRecordingFailure(t *testing.T) {
	server := &fakeServer{}
	storage := &fakeStorage{recordErr: errors.New("disk full")}

	newTestHandlers(&fakeRestClient{}, storage).RegisterTools(server)

	result, err := server.handlers["users-current"](context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.False(t, result.IsError)
}
