package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Server serves the API on a TCP listener. Serve blocks until ctx is
// cancelled, then stops accepting connections, drains in-flight requests and
// ends upgraded scan connections.
type Server struct {
	address         string
	handler         http.Handler
	logger          *zap.Logger
	shutdownTimeout time.Duration
	drain           func()

	ready chan struct{}
	addr  net.Addr
}

type ServerConfig struct {
	Address         string
	Handler         http.Handler
	Logger          *zap.Logger
	ShutdownTimeout time.Duration
	// Drain, when set, is called after shutdown to wait for hijacked
	// connections the http.Server does not track.
	Drain func()
}

func NewServer(config ServerConfig) (*Server, error) {
	if config.Address == "" {
		return nil, errors.New("http server address is required")
	}
	if config.Handler == nil {
		return nil, errors.New("http server handler is required")
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Server{
		address:         config.Address,
		handler:         config.Handler,
		logger:          logger,
		shutdownTimeout: timeout,
		drain:           config.Drain,
		ready:           make(chan struct{}),
	}, nil
}

// Ready is closed once the listener is bound.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr is valid after Ready is closed.
func (s *Server) Addr() net.Addr {
	return s.addr
}

func (s *Server) Serve(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.address, err)
	}
	s.addr = listener.Addr()
	close(s.ready)

	baseCtx, cancelBase := context.WithCancel(context.WithoutCancel(ctx))
	defer cancelBase()

	server := &http.Server{
		Handler:           s.handler,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	s.logger.Info("http server listening", zap.String("address", s.addr.String()))

	serveDone := make(chan error, 1)
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveDone <- err
		}
		close(serveDone)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("http server shutting down")
	case err := <-serveDone:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	shutdownErr := server.Shutdown(shutdownCtx)
	cancelBase()
	if s.drain != nil {
		s.drain()
	}
	<-serveDone

	if shutdownErr != nil {
		s.logger.Error("http server shutdown error", zap.Error(shutdownErr))
		return fmt.Errorf("http server shutdown: %w", shutdownErr)
	}

	s.logger.Info("http server stopped")
	return nil
}
