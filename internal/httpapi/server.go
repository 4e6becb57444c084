// Package httpapi exposes the REST surface over the store contract. Handlers
// validate path and body input, call the store, and map the error taxonomy to
// transport responses; no backend detail reaches this package.
package httpapi

import (
	"context"
	"net/http"
	"sync"
	"time"

	"expensed/internal/store"
)

type Server struct {
	http.Server

	store       store.Store
	storageKind string
	rateLimiter *rateLimiter

	shutdownOnce sync.Once
}

// NewServer wires routes and middleware into a ready-to-run server. The store
// is the single injected dependency; storageKind is reported by the health
// endpoint.
func NewServer(addr string, s store.Store, storageKind string) *Server {
	mux := http.NewServeMux()

	srv := &Server{
		Server: http.Server{
			Addr:           addr,
			Handler:        mux,
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: 1 << 16,
		},
		store:       s,
		storageKind: storageKind,
		rateLimiter: newRateLimiter(),
	}

	mux.HandleFunc("GET /api/expenses", srv.withMiddleware(srv.handleListExpenses))
	mux.HandleFunc("GET /api/expenses/month/{year}/{month}", srv.withMiddleware(srv.handleListExpensesByMonth))
	mux.HandleFunc("GET /api/expenses/{id}", srv.withMiddleware(srv.handleGetExpense))
	mux.HandleFunc("POST /api/expenses", srv.withMiddleware(srv.handleCreateExpense))
	mux.HandleFunc("GET /api/health", srv.withMiddleware(srv.handleHealth))

	return srv
}

// Shutdown stops the listener and the rate limiter's cleanup goroutine.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		err = s.Server.Shutdown(ctx)
	})
	return err
}
