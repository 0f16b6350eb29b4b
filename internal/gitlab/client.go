// Package gitlab implements the uniform GitLab REST API v4 dispatcher. Every
// tool goes through a Client: one credential resolution, one header set, one
// HTTP call, one normalized error.
package gitlab

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goware/urlx"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

const (
	// DefaultBaseURL is used when no GitLab URL is configured.
	DefaultBaseURL = "https://gitlab.com"

	apiPrefix      = "/api/v4"
	userAgent      = "gitlab-mcp"
	requestTimeout = 30 * time.Second
)

// ErrNoToken is returned when no credential source yields a token.
var ErrNoToken = errors.New("no GitLab token configured: pass one per request or set GITLAB_TOKEN")

// Client dispatches requests against a single GitLab instance.
type Client struct {
	apiURL        *url.URL
	fallbackToken string
	httpClient    *http.Client
	logger        hclog.Logger
}

// NewClient builds a Client for the given instance URL. The URL may omit the
// scheme (https is assumed) and must not include the /api/v4 prefix; it is
// appended here. fallbackToken is the process-wide credential used when a
// request carries no token of its own and may be empty.
func NewClient(rawURL, fallbackToken string, logger hclog.Logger) (*Client, error) {
	if rawURL == "" {
		rawURL = DefaultBaseURL
	}
	// A bare hostname means https; urlx would otherwise assume http.
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}

	parsed, err := urlx.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid GitLab URL %q", rawURL)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		parsed.Scheme = "https"
	}

	parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	if !strings.HasSuffix(parsed.Path, apiPrefix) {
		parsed.Path += apiPrefix
	}

	return &Client{
		apiURL:        parsed,
		fallbackToken: fallbackToken,
		httpClient:    &http.Client{Timeout: requestTimeout},
		logger:        logger.Named("gitlab"),
	}, nil
}

// BaseURL returns the resolved API base URL, including the /api/v4 prefix.
func (c *Client) BaseURL() string {
	return c.apiURL.String()
}

// ResolveToken picks the credential for a request. Precedence: per-request
// token carried in ctx, then the process-wide fallback. Exactly one source
// wins; if neither is set the call fails with ErrNoToken.
func (c *Client) ResolveToken(ctx context.Context) (string, error) {
	if token := TokenFromContext(ctx); token != "" {
		return token, nil
	}
	if c.fallbackToken != "" {
		return c.fallbackToken, nil
	}
	return "", ErrNoToken
}

// Get performs a GET request against endpoint and decodes the response into out.
func (c *Client) Get(ctx context.Context, endpoint string, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

// Post performs a POST request with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPost, endpoint, body, out)
}

// Put performs a PUT request with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPut, endpoint, body, out)
}

// Delete performs a DELETE request. GitLab DELETE responses are empty on
// success, so there is nothing to decode; body is still sent when non-nil
// (file deletion carries commit details).
func (c *Client) Delete(ctx context.Context, endpoint string, body any) error {
	return c.do(ctx, http.MethodDelete, endpoint, body, nil)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	token, err := c.ResolveToken(ctx)
	if err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiURL.String()+endpoint, reqBody)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("PRIVATE-TOKEN", token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("dispatching request", "method", method, "endpoint", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s failed", method, endpoint)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "failed to read response for %s %s", method, endpoint)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Errorf("GitLab API returned status %d for %s %s: %s",
			resp.StatusCode, method, endpoint, compactBody(payload))
	}

	if out == nil || len(payload) == 0 {
		return nil
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return errors.Wrapf(err, "failed to decode response for %s %s", method, endpoint)
	}

	return nil
}

// compactBody trims an error payload to a single short line so the normalized
// error message stays readable.
func compactBody(payload []byte) string {
	const maxLen = 200

	s := strings.Join(strings.Fields(string(payload)), " ")
	if len(s) > maxLen {
		s = s[:maxLen] + "..."
	}
	return s
}
