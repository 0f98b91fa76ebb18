package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Lutefd/travel-journal/internal/commons"
	"github.com/Lutefd/travel-journal/internal/service"
	"go.uber.org/zap"
)

type Server struct {
	port   int
	router http.Handler
	config Config
	logger *zap.SugaredLogger
}

func NewServer(config Config, logService service.LogServiceInterface, logger *zap.SugaredLogger) *Server {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	server := &Server{
		port:   int(config.ServerPort),
		config: config,
		logger: logger,
	}
	server.registerRoutes(logService)
	return server
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Infow("starting server", "port", s.port)
	ch := make(chan error, 1)
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.router,
		IdleTimeout:  commons.ServerIdleTimeout,
		ReadTimeout:  commons.ServerReadTimeout,
		WriteTimeout: commons.ServerWriteTimeout,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			ch <- fmt.Errorf("failed to start server: %w", err)
		}
		close(ch)
	}()

	select {
	case err := <-ch:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), commons.ServerShutdownGrace)
		defer cancel()

		s.logger.Infow("shutting down server")
		return server.Shutdown(shutdownCtx)
	}
}
