// Package instructions provides embedded instructions.md content for MCP
// server integration, containing guidance for AI agents working with the
// GitLab tool surface.
package instructions

import (
	_ "embed"
)

//go:embed instructions.md
var instructions string

func Get() string {
	return instructions
}
