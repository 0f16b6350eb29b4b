package repository

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mark3labs/mcp-go/mcp"
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

func TestFileGetDecodesContent(t *testing.T) {
	client := &fakeRestClient{getResponse: types.FileContent{
		FilePath: "README.md",
		Content:  base64.StdEncoding.EncodeToString([]byte("# Hello\n")),
	}}

	result := callTool(t, FileGet(client).Handler, map[string]any{
		"project_id": 42,
		"file_path":  "README.md",
	})

	require.False(t, result.IsError)
	require.Equal(t, "File: README.md\n\n# Hello\n", resultText(t, result))
	require.Equal(t, "/projects/42/repository/files/README.md?ref=main", client.getEndpoint)
}

func TestFileGetEscapesPathAndRef(t *testing.T) {
	client := &fakeRestClient{getResponse: types.FileContent{
		Content: base64.StdEncoding.EncodeToString([]byte("x")),
	}}

	callTool(t, FileGet(client).Handler, map[string]any{
		"project_id": 42,
		"file_path":  "docs/guide.md",
		"ref":        "feature/auth",
	})

	require.Equal(t, "/projects/42/repository/files/docs%2Fguide.md?ref=feature%2Fauth", client.getEndpoint)
}

func TestFileGetTruncatesLongContent(t *testing.T) {
	long := strings.Repeat("a", fileContentLimit+500)
	client := &fakeRestClient{getResponse: types.FileContent{
		Content: base64.StdEncoding.EncodeToString([]byte(long)),
	}}

	result := callTool(t, FileGet(client).Handler, map[string]any{
		"project_id": 42,
		"file_path":  "big.txt",
	})

	text := resultText(t, result)
	require.True(t, strings.HasSuffix(text, "..."))
	require.Equal(t, fileContentLimit, strings.Count(text, "a"))
}

func TestFileGetCountsCharactersNotBytes(t *testing.T) {
	// 1999 two-byte runes: under the character cap, well over it in bytes.
	content := strings.Repeat("é", fileContentLimit-1)
	client := &fakeRestClient{getResponse: types.FileContent{
		Content: base64.StdEncoding.EncodeToString([]byte(content)),
	}}

	result := callTool(t, FileGet(client).Handler, map[string]any{
		"project_id": 42,
		"file_path":  "notes.txt",
	})

	require.Equal(t, "File: notes.txt\n\n"+content, resultText(t, result))
}

func TestFileGetTruncatesMultiByteContentOnRuneBoundary(t *testing.T) {
	content := strings.Repeat("é", fileContentLimit+100)
	client := &fakeRestClient{getResponse: types.FileContent{
		Content: base64.StdEncoding.EncodeToString([]byte(content)),
	}}

	result := callTool(t, FileGet(client).Handler, map[string]any{
		"project_id": 42,
		"file_path":  "notes.txt",
	})

	text := resultText(t, result)
	require.True(t, strings.HasSuffix(text, "..."))
	require.True(t, utf8.ValidString(text))
	require.Equal(t, fileContentLimit, strings.Count(text, "é"))
}

func TestFileGetRejectsInvalidBase64(t *testing.T) {
	client := &fakeRestClient{getResponse: types.FileContent{Content: "not base64!!"}}

	result := callTool(t, FileGet(client).Handler, map[string]any{
		"project_id": 42,
		"file_path":  "bin",
	})

	require.True(t, result.IsError)
	require.Equal(t, "Unable to decode file content", resultText(t, result))
}
