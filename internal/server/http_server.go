package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/julianstephens/happyhour/internal/logger"
)

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	addr      string
	router    *Router
	muxRouter *mux.Router
}

func NewHTTPServer(addr string, router *Router, muxRouter *mux.Router) *HTTPServer {
	return &HTTPServer{
		addr:      addr,
		router:    router,
		muxRouter: muxRouter,
	}
}

// New wires handler into a fresh mux router.
func New(addr string, handler Handler) *HTTPServer {
	muxRouter := mux.NewRouter()
	return NewHTTPServer(addr, NewRouter(handler, muxRouter), muxRouter)
}

// Start serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts
// down gracefully.
func (s *HTTPServer) Start(ctx context.Context) error {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.muxRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen on %s: %w", s.addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down the server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	logger.Info("Server exiting")
	return nil
}
