// Package server hosts the HTTP-based MCP transports behind a chi router.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	httpServer *http.Server
	router     *chi.Mux
}

// New creates an HTTP server with a health endpoint. Transport handlers (SSE,
// streamable HTTP) are mounted by the caller before serving.
func New(addr string) *Server {
	server := &Server{
		router: chi.NewRouter(),
	}

	server.router.Get("/health", server.healthHandler)

	server.httpServer = &http.Server{
		Addr:              addr,
		Handler:           server.router,
		ReadHeaderTimeout: 30 * time.Second,
	}

	return server
}

// Handle mounts an HTTP handler on the given pattern.
func (s *Server) Handle(pattern string, handler http.Handler) {
	s.router.Handle(pattern, handler)
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}
