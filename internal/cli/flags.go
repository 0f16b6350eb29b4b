package cli

import "github.com/urfave/cli/v2"

// Common flags used across commands
var (
	// Server configuration flags
	PortFlag = &cli.IntFlag{
		Name:    "port",
		Aliases: []string{"p"},
		EnvVars: []string{"PORT"},
		Usage:   "Port to run the server on",
		Value:   8000,
	}

	ServerTypeFlag = &cli.StringFlag{
		Name:    "server-type",
		Aliases: []string{"t"},
		EnvVars: []string{"SERVER_TYPE"},
		Usage:   "Server type: stdio,sse,http",
		Value:   "stdio",
	}

	ServerHostnameFlag = &cli.StringFlag{
		Name:    "server-hostname",
		EnvVars: []string{"SERVER_HOSTNAME"},
		Usage:   "Server hostname",
		Value:   "localhost",
	}

	// GitLab connection flags
	GitLabURLFlag = &cli.StringFlag{
		Name:    "gitlab-url",
		EnvVars: []string{"GITLAB_URL"},
		Usage:   "Base URL of the GitLab instance",
		Value:   "https://gitlab.com",
	}

	GitLabTokenFlag = &cli.StringFlag{
		Name:    "gitlab-token",
		EnvVars: []string{"GITLAB_TOKEN"},
		Usage:   "Process-wide GitLab access token fallback; per-request header tokens take precedence",
	}

	// Storage flags
	DBDirFlag = &cli.StringFlag{
		Name:    "db-dir",
		EnvVars: []string{"DB_DIR"},
		Usage:   "Directory containing DB files for the invocation audit log",
		Value:   "./.state/",
	}

	// Observability flags
	ObservabilityVendorFlag = &cli.StringFlag{
		Name:    "observability-vendor",
		EnvVars: []string{"OBSERVABILITY_VENDOR"},
		Usage:   "Observability vendor: disabled,opentelemetry",
		Value:   "disabled",
	}

	LogLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		EnvVars: []string{"LOG_LEVEL"},
		Usage:   "Log level: trace,debug,info,warn,error",
		Value:   "info",
	}
)

// FlagSet contains predefined flag collections for different command types
type FlagSet struct {
	flags []cli.Flag
}

// NewFlagSet creates a new flag set
func NewFlagSet(flags ...cli.Flag) *FlagSet {
	return &FlagSet{flags: flags}
}

// Add appends additional flags to the set
func (fs *FlagSet) Add(flags ...cli.Flag) *FlagSet {
	fs.flags = append(fs.flags, flags...)
	return fs
}

// Flags returns the flag slice for use with cli.App
func (fs *FlagSet) Flags() []cli.Flag {
	return fs.flags
}

// ServerFlags returns the full flag set for the MCP server command.
func ServerFlags() []cli.Flag {
	return NewFlagSet(
		PortFlag,
		ServerTypeFlag,
		ServerHostnameFlag,
		GitLabURLFlag,
		GitLabTokenFlag,
		DBDirFlag,
		ObservabilityVendorFlag,
		LogLevelFlag,
	).Flags()
}
