package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"gitlab-mcp/instructions"
	"gitlab-mcp/internal/filesystem"
	"gitlab-mcp/internal/gitclone"
	"gitlab-mcp/internal/gitlab"
	httpserver "gitlab-mcp/internal/server"
	"gitlab-mcp/storage"
	"gitlab-mcp/tools"
	"gitlab-mcp/types"
)

// Config holds configuration for the MCP server
type Config struct {
	Port        int
	ServerType  string
	Hostname    string
	GitLabURL   string
	GitLabToken string
	DBDir       string
	LogLevel    string
}

// Server wires the GitLab client, storage and tool handlers to an MCP server.
type Server struct {
	mcp          *server.MCPServer
	httpServer   *httpserver.Server
	toolHandlers *tools.ToolHandlers
	storage      types.Storage
	logger       hclog.Logger
	config       *Config
}

func newServer(config *Config) (*Server, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "gitlab-mcp",
		Level: hclog.LevelFromString(config.LogLevel),
	})

	if err := filesystem.EnsureDirs(config.DBDir); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(config.DBDir, "audit.db")
	auditStorage, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit storage: %w", err)
	}

	client, err := gitlab.NewClient(config.GitLabURL, config.GitLabToken, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitLab client: %w", err)
	}

	cloneRunner := gitclone.NewRunner(logger)
	toolHandlers := tools.New(client, cloneRunner, auditStorage, logger)

	s := &Server{
		toolHandlers: toolHandlers,
		storage:      auditStorage,
		logger:       logger,
		config:       config,
	}

	s.mcp = server.NewMCPServer(
		"gitlab-mcp",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithLogging(),
		server.WithInstructions(instructions.Get()),
	)

	toolHandlers.RegisterTools(s)

	return s, nil
}

// AddTool registers an MCP tool handler
func (s *Server) AddTool(tool mcp.Tool, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)) {
	s.mcp.AddTool(tool, handler)
}

// start serves the configured transport until the context is cancelled.
func (s *Server) start(ctx context.Context) error {
	log.Printf("Starting server in %s mode", s.config.ServerType)

	switch s.config.ServerType {
	case "stdio":
		return s.serveStdio(ctx)
	case "sse":
		return s.serveSSE(ctx)
	case "http":
		return s.serveHTTP(ctx)
	default:
		return fmt.Errorf("unknown server type: %s", s.config.ServerType)
	}
}

func (s *Server) serveStdio(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		errChan <- server.ServeStdio(s.mcp)
	}()

	select {
	case <-ctx.Done():
		log.Println("Context cancelled, shutting down stdio server")
		return ctx.Err()
	case err := <-errChan:
		return err
	}
}

func (s *Server) serveSSE(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Hostname, s.config.Port)

	sseServer := server.NewSSEServer(s.mcp,
		server.WithBaseURL(fmt.Sprintf("http://%s", addr)),
		server.WithSSEContextFunc(gitlab.ContextFromRequest),
	)

	s.httpServer = httpserver.New(addr)
	s.httpServer.Handle("/sse", sseServer.SSEHandler())
	s.httpServer.Handle("/message", sseServer.MessageHandler())

	return s.listenAndServe(ctx, addr)
}

func (s *Server) serveHTTP(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Hostname, s.config.Port)

	streamableServer := server.NewStreamableHTTPServer(s.mcp,
		server.WithHTTPContextFunc(gitlab.ContextFromRequest),
	)

	s.httpServer = httpserver.New(addr)
	s.httpServer.Handle("/mcp", streamableServer)

	return s.listenAndServe(ctx, addr)
}

func (s *Server) listenAndServe(ctx context.Context, addr string) error {
	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpServer.ListenAndServe()
	}()

	log.Printf("Listening on %s", addr)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-errChan:
		return err
	}
}

// stop gracefully shuts down the server
func (s *Server) stop(ctx context.Context) {
	log.Println("Stopping server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down HTTP server: %v", err)
		}
	}

	if s.storage != nil {
		if err := s.storage.Close(); err != nil {
			log.Printf("Error closing storage: %v", err)
		}
	}
}
