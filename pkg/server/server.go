// Package server exposes the frame pipeline over the pull-based HTTP chunk
// protocol.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/user/framecast/pkg/framestore"
	"github.com/user/framecast/pkg/ports"
	"github.com/user/framecast/pkg/publisher"
	"github.com/user/framecast/pkg/rotator"
)

// Server serves the two protocol actions (new_frame, get_chunk) over plain
// HTTP GET.
type Server struct {
	addr   string
	pub    *publisher.Publisher
	rot    *rotator.Rotator
	store  *framestore.Store
	logger ports.Logger

	httpServer *http.Server
}

// New creates a server bound to addr.
func New(addr string, pub *publisher.Publisher, rot *rotator.Rotator, store *framestore.Store, logger ports.Logger) *Server {
	s := &Server{
		addr:   addr,
		pub:    pub,
		rot:    rot,
		store:  store,
		logger: logger.WithComponent("http"),
	}
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler implementing the chunk protocol.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleGet)
	return mux
}

// ListenAndServe blocks serving requests until the context is cancelled,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	s.logger.Info("Listening on %s", s.addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	}
}
