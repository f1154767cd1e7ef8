package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const readHeaderTimeout = 5 * time.Second

// Server exposes the registered collectors over HTTP.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	errCh      chan error
}

// Start serves the metrics of the default Prometheus registry at /metrics.
func Start(addr string, logger *zap.Logger) *Server {
	return StartWithGatherer(addr, prometheus.DefaultGatherer, logger)
}

func StartWithGatherer(addr string, gatherer prometheus.Gatherer, logger *zap.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	s := &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
		errCh:  make(chan error, 1),
	}

	go func() {
		s.logger.Info("Metrics server is starting", zap.String("addr", addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Metrics server failed", zap.Error(err))
			s.errCh <- err
		}
		close(s.errCh)
	}()

	return s
}

// Err is closed when the server stops and carries the error that stopped
// it, if any.
func (s *Server) Err() <-chan error {
	return s.errCh
}

// Stop gracefully shuts down the metrics server.
func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Stopping metrics server")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("Metrics server shutdown failed", zap.Error(err))
	} else {
		s.logger.Info("Metrics server stopped gracefully")
	}
}
