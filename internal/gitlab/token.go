package gitlab

import (
	"context"
	"net/http"
	"strings"
)

type tokenContextKey struct{}

// Header names checked, in order, when lifting a per-request credential off
// an incoming transport request.
var tokenHeaders = []string{"PRIVATE-TOKEN", "GITLAB_TOKEN"}

// ContextWithToken attaches a per-request credential to ctx. It takes
// precedence over the client's process-wide fallback token.
func ContextWithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// TokenFromContext returns the per-request credential, or "" if none is set.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey{}).(string)
	return token
}

// ContextFromRequest lifts a credential off an HTTP request into the context.
// Used as the SSE / streamable-HTTP context func so connections can carry
// their own token instead of sharing the server's.
func ContextFromRequest(ctx context.Context, r *http.Request) context.Context {
	for _, header := range tokenHeaders {
		if token := r.Header.Get(header); token != "" {
			return ContextWithToken(ctx, token)
		}
	}
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return ContextWithToken(ctx, strings.TrimPrefix(auth, "Bearer "))
	}
	return ctx
}
