package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	// ledger writes wait for a mined receipt before responding
	writeTimeout    = 2 * time.Minute
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 10 * time.Second
)

type HTTPServer struct {
	logs   *zap.SugaredLogger
	server *http.Server
}

func NewHTTP(logger *zap.SugaredLogger, handler http.Handler, port string) *HTTPServer {
	return &HTTPServer{
		logs: logger,
		server: &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       readTimeout,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       idleTimeout,
		},
	}
}

// Run starts serving in the background. The returned channel receives the
// error that stopped the server, http.ErrServerClosed after a Shutdown.
func (s *HTTPServer) Run() <-chan error {
	errChan := make(chan error, 1)
	go func() {
		s.logs.Infow("http server listening", "addr", s.server.Addr)
		errChan <- s.server.ListenAndServe()
	}()
	return errChan
}

func (s *HTTPServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logs.Infow("http server shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
