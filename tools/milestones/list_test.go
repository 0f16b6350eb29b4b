package milestones

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"gitlab-mcp/types"
)

type fakeRestClient struct {
	types.RestClient

	getEndpoint string
	getResponse any
}

func (f *fakeRestClient) Get(_ context.Context, endpoint string, out any) error {
	f.getEndpoint = endpoint
	raw, err := json.Marshal(f.getResponse)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()

	request := mcp.CallToolRequest{}
	request.Params.Arguments = args

	result, err := handler(context.Background(), request)
	require.NoError(t, err)
	require.NotNil(t, result)

	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)

	return text.Text
}

func TestListFormatsMilestones(t *testing.T) {
	client := &fakeRestClient{getResponse: []types.Milestone{
		{Title: "v1.0", State: "active", DueDate: "2026-09-01"},
		{Title: "v1.1", State: "active"},
	}}

	result := callTool(t, List(client).Handler, map[string]any{"project_id": 42})

	require.False(t, result.IsError)
	require.Equal(t, "• v1.0 - active (Due: 2026-09-01)\n• v1.1 - active (Due: No due date)", resultText(t, result))
	require.Equal(t, "/projects/42/milestones?state=active", client.getEndpoint)
}

func TestListAcceptsAllState(t *testing.T) {
	client := &fakeRestClient{getResponse: []types.Milestone{{Title: "v1.0", State: "closed"}}}

	callTool(t, List(client).Handler, map[string]any{"project_id": 42, "state": "all"})

	require.Equal(t, "/projects/42/milestones?state=all", client.getEndpoint)

	enum, ok := List(client).Tool.InputSchema.Properties["state"].(map[string]any)["enum"].([]string)
	require.True(t, ok)
	require.Contains(t, enum, "all")
}

func TestListShowsEveryMilestone(t *testing.T) {
	milestones := make([]types.Milestone, 30)
	for n := range milestones {
		milestones[n] = types.Milestone{Title: fmt.Sprintf("sprint-%d", n), State: "active"}
	}
	client := &fakeRestClient{getResponse: milestones}

	result := callTool(t, List(client).Handler, map[string]any{"project_id": 42})

	require.Len(t, strings.Split(resultText(t, result), "\n"), 30)
}

func TestListEmpty(t *testing.T) {
	client := &fakeRestClient{getResponse: []types.Milestone{}}

	result := callTool(t, List(client).Handler, map[string]any{"project_id": 42, "state": "closed"})

	require.Equal(t, "No closed milestones found.", resultText(t, result))
}
