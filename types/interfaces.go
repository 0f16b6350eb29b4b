package types

import (
	"context"
)

// RestClient is the uniform GitLab API dispatcher used by every tool. Each
// method resolves a credential, performs a single HTTP call against the
// GitLab REST API v4, and decodes the JSON response into out when out is
// non-nil and the response carried a body.
type RestClient interface {
	Get(ctx context.Context, endpoint string, out any) error
	Post(ctx context.Context, endpoint string, body, out any) error
	Put(ctx context.Context, endpoint string, body, out any) error
	Delete(ctx context.Context, endpoint string, body any) error

	// ResolveToken returns the credential a call on ctx would use:
	// per-request context token first, process-wide fallback otherwise.
	ResolveToken(ctx context.Context) (string, error)
}

// CloneRunner executes git clone via an external git binary.
type CloneRunner interface {
	Clone(ctx context.Context, cloneURL, destination string) error
}

// Storage records tool invocations for the audit timeline.
type Storage interface {
	RecordInvocation(ctx context.Context, record InvocationRecord) error
	GetTimeline(ctx context.Context, query TimelineQuery) (*TimelineResponse, error)

	Close() error
}
