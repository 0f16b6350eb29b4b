// Package gitclone shells out to the git binary for repository clones.
package gitclone

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// ErrGitNotFound is returned when the git binary is not on PATH.
var ErrGitNotFound = errors.New("git command not found: please install Git")

const cloneTimeout = 5 * time.Minute

// Runner clones repositories synchronously with a per-clone timeout.
type Runner struct {
	logger hclog.Logger
}

// NewRunner creates a clone runner.
func NewRunner(logger hclog.Logger) *Runner {
	return &Runner{logger: logger.Named("gitclone")}
}

// Clone runs `git clone cloneURL destination`, waiting up to five minutes.
func (r *Runner) Clone(ctx context.Context, cloneURL, destination string) error {
	ctx, cancel := context.WithTimeout(ctx, cloneTimeout)
	defer cancel()

	r.logger.Debug("cloning repository", "destination", destination)

	cmd := exec.CommandContext(ctx, "git", "clone", cloneURL, destination)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errors.New("clone operation timed out (5 minutes)")
	}
	if errors.Is(err, exec.ErrNotFound) {
		return ErrGitNotFound
	}

	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return errors.Errorf("git clone failed: %s", msg)
	}
	return errors.Wrap(err, "git clone failed")
}

// AuthenticatedCloneURL injects a token into an HTTPS clone URL so private
// repositories can be cloned without interactive credentials. SSH URLs and
// empty tokens are passed through untouched.
func AuthenticatedCloneURL(httpURL, token string) string {
	if token == "" {
		return httpURL
	}
	return strings.Replace(httpURL, "https://", "https://gitlab-ci-token:"+token+"@", 1)
}
