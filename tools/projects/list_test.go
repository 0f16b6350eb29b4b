package projects

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"gitlab-mcp/types"
)

type fakeRestClient struct {
	types.RestClient

	getEndpoint string
	getResponse any
	getErr      error
}

func (f *fakeRestClient) Get(_ context.Context, endpoint string, out any) error {
	f.getEndpoint = endpoint
	if f.getErr != nil {
		return f.getErr
	}
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

func TestListFormatsProjects(t *testing.T) {
	client := &fakeRestClient{getResponse: []types.Project{
		{ID: 1, Name: "api", PathWithNamespace: "acme/api"},
		{ID: 2, Name: "web", PathWithNamespace: "acme/web"},
	}}

	result := callTool(t, List(client).Handler, nil)

	require.False(t, result.IsError)
	require.Equal(t, "• api (acme/api) - ID: 1\n• web (acme/web) - ID: 2", resultText(t, result))
	require.Equal(t, "/projects?membership=true&per_page=100", client.getEndpoint)
}

func TestListOwnedFilter(t *testing.T) {
	client := &fakeRestClient{getResponse: []types.Project{{ID: 1, Name: "api", PathWithNamespace: "acme/api"}}}

	callTool(t, List(client).Handler, map[string]any{"owned": true})

	require.Equal(t, "/projects?membership=true&per_page=100&owned=true", client.getEndpoint)
}

func TestListTruncatesToTenProjects(t *testing.T) {
	projects := make([]types.Project, 25)
	for n := range projects {
		projects[n] = types.Project{ID: n, Name: fmt.Sprintf("project-%d", n), PathWithNamespace: fmt.Sprintf("acme/project-%d", n)}
	}
	client := &fakeRestClient{getResponse: projects}

	result := callTool(t, List(client).Handler, nil)

	require.Len(t, strings.Split(resultText(t, result), "\n"), 10)
}

func TestListEmpty(t *testing.T) {
	client := &fakeRestClient{getResponse: []types.Project{}}

	result := callTool(t, List(client).Handler, nil)

	require.Equal(t, "No projects found.", resultText(t, result))
}

func TestListReportsAPIError(t *testing.T) {
	client := &fakeRestClient{getErr: errors.New("GitLab API returned status 401")}

	result := callTool(t, List(client).Handler, nil)

	require.True(t, result.IsError)
	require.Contains(t, resultText(t, result), "status 401")
}
