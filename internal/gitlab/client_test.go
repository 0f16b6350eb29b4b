package gitlab

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, fallbackToken string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, fallbackToken, hclog.NewNullLogger())
	require.NoError(t, err)
	return client
}

func TestNewClientNormalizesBaseURL(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		rawURL   string
		expected string
	}{
		{
			name:     "default when empty",
			rawURL:   "",
			expected: "https://gitlab.com/api/v4",
		},
		{
			name:     "scheme defaults to https",
			rawURL:   "gitlab.example.com",
			expected: "https://gitlab.example.com/api/v4",
		},
		{
			name:     "trailing slash trimmed",
			rawURL:   "https://gitlab.example.com/",
			expected: "https://gitlab.example.com/api/v4",
		},
		{
			name:     "api prefix not duplicated",
			rawURL:   "https://gitlab.example.com/api/v4",
			expected: "https://gitlab.example.com/api/v4",
		},
		{
			name:     "http preserved",
			rawURL:   "http://localhost:8080",
			expected: "http://localhost:8080/api/v4",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client, err := NewClient(tc.rawURL, "token", hclog.NewNullLogger())
			require.NoError(t, err)
			require.Equal(t, tc.expected, client.BaseURL())
		})
	}
}

func TestResolveTokenPrecedence(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	client, err := NewClient(DefaultBaseURL, "env-token", hclog.NewNullLogger())
	require.NoError(t, err)

	// Fallback wins when no per-request token is set.
	token, err := client.ResolveToken(ctx)
	require.NoError(t, err)
	require.Equal(t, "env-token", token)

	// Context token beats the fallback.
	token, err = client.ResolveToken(ContextWithToken(ctx, "header-token"))
	require.NoError(t, err)
	require.Equal(t, "header-token", token)

	// No source at all is an error.
	bare, err := NewClient(DefaultBaseURL, "", hclog.NewNullLogger())
	require.NoError(t, err)
	_, err = bare.ResolveToken(ctx)
	require.ErrorIs(t, err, ErrNoToken)
}

func TestGetSendsHeadersAndDecodes(t *testing.T) {
	t.Parallel()

	var gotToken, gotAgent, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("PRIVATE-TOKEN")
		gotAgent = r.Header.Get("User-Agent")
		gotPath = r.URL.Path
		w.Write([]byte(`{"id": 42, "name": "demo"}`))
	}, "fallback")

	var out struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	err := client.Get(context.Background(), "/projects/42", &out)
	require.NoError(t, err)
	require.Equal(t, "fallback", gotToken)
	require.Equal(t, "gitlab-mcp", gotAgent)
	require.Equal(t, "/api/v4/projects/42", gotPath)
	require.Equal(t, 42, out.ID)
	require.Equal(t, "demo", out.Name)
}

func TestPostEncodesBody(t *testing.T) {
	t.Parallel()

	var gotMethod, gotBody, gotContentType string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotMethod = r.Method
		gotBody = string(buf)
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 7}`))
	}, "token")

	var out struct {
		ID int `json:"id"`
	}
	err := client.Post(context.Background(), "/projects", map[string]any{"name": "demo"}, &out)
	require.NoError(t, err)
	require.Equal(t, http.MethodPost, gotMethod)
	require.JSONEq(t, `{"name": "demo"}`, gotBody)
	require.Equal(t, "application/json", gotContentType)
	require.Equal(t, 7, out.ID)
}

func TestErrorNormalization(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "404 Project Not Found"}`))
	}, "token")

	err := client.Get(context.Background(), "/projects/999", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 404")
	require.Contains(t, err.Error(), "404 Project Not Found")
}

func TestEmptySuccessBody(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}, "token")

	require.NoError(t, client.Delete(context.Background(), "/projects/1", nil))
}

func TestContextFromRequest(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{
			name:     "private token header",
			headers:  map[string]string{"PRIVATE-TOKEN": "abc"},
			expected: "abc",
		},
		{
			name:     "gitlab token header",
			headers:  map[string]string{"GITLAB_TOKEN": "def"},
			expected: "def",
		},
		{
			name:     "bearer token",
			headers:  map[string]string{"Authorization": "Bearer ghi"},
			expected: "ghi",
		},
		{
			name:     "private token beats bearer",
			headers:  map[string]string{"PRIVATE-TOKEN": "abc", "Authorization": "Bearer ghi"},
			expected: "abc",
		},
		{
			name:     "no credential headers",
			headers:  map[string]string{"Accept": "text/event-stream"},
			expected: "",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/sse", nil)
			for k, v := range tc.headers {
				r.Header.Set(k, v)
			}

			ctx := ContextFromRequest(context.Background(), r)
			require.Equal(t, tc.expected, TokenFromContext(ctx))
		})
	}
}
