package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	cliflags "gitlab-mcp/internal/cli"
	"gitlab-mcp/internal/observability"
)

func main() {
	app := &cli.App{
		Name:        "gitlab-mcp",
		Usage:       "GitLab MCP Server",
		Description: "MCP server exposing GitLab project, repository and CI/CD operations as tools",
		Flags:       cliflags.ServerFlags(),
		Action: func(c *cli.Context) error {
			vendor, err := observability.ParseVendor(c.String(cliflags.ObservabilityVendorFlag.Name))
			if err != nil {
				return err
			}

			config := &Config{
				Port:        c.Int(cliflags.PortFlag.Name),
				ServerType:  c.String(cliflags.ServerTypeFlag.Name),
				Hostname:    c.String(cliflags.ServerHostnameFlag.Name),
				GitLabURL:   c.String(cliflags.GitLabURLFlag.Name),
				GitLabToken: c.String(cliflags.GitLabTokenFlag.Name),
				DBDir:       c.String(cliflags.DBDirFlag.Name),
				LogLevel:    c.String(cliflags.LogLevelFlag.Name),
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			stopObservability := observability.Setup(ctx, "gitlab-mcp", vendor)()
			defer stopObservability()

			server, err := newServer(config)
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}

			errChan := make(chan error, 1)
			go func() {
				if err := server.start(ctx); err != nil {
					errChan <- err
				}
			}()

			var serverErr error
			select {
			case <-ctx.Done():
				log.Println("Received signal, shutting down...")
			case serverErr = <-errChan:
				log.Println("Server error, shutting down...")
				stop()
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			server.stop(ctx)

			log.Println("Server shut down")

			return serverErr
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}
