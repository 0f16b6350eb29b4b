package labels

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

	getResponse any
}

func (f *fakeRestClient) Get(_ context.Context, _ string, out any) error {
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

func TestListFormatsLabels(t *testing.T) {
	client := &fakeRestClient{getResponse: []types.Label{
		{Name: "bug", Color: "#d9534f"},
		{Name: "feature", Color: "#5cb85c"},
	}}

	result := callTool(t, List(client).Handler, map[string]any{"project_id": 42})

	require.False(t, result.IsError)
	require.Equal(t, "• bug (#d9534f)\n• feature (#5cb85c)", resultText(t, result))
}

func TestListShowsEveryLabel(t *testing.T) {
	labels := make([]types.Label, 40)
	for n := range labels {
		labels[n] = types.Label{Name: fmt.Sprintf("label-%d", n), Color: "#ffffff"}
	}
	client := &fakeRestClient{getResponse: labels}

	result := callTool(t, List(client).Handler, map[string]any{"project_id": 42})

	require.Len(t, strings.Split(resultText(t, result), "\n"), 40)
}

func TestListEmpty(t *testing.T) {
	client := &fakeRestClient{getResponse: []types.Label{}}

	result := callTool(t, List(client).Handler, map[string]any{"project_id": 42})

	require.Equal(t, "No labels found.", resultText(t, result))
}
