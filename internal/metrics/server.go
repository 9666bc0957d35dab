package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/loopcard/loyalty-backend/pkg/logging"
)

// Server exposes the Prometheus metrics endpoint on its own port
type Server struct {
	httpServer *http.Server
	logger     logging.Logger
}

func NewServer(port string, logger logging.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: mux,
		},
		logger: logger,
	}
}

// Start begins serving metrics and collecting system stats
func (s *Server) Start() {
	StartSystemMetricsCollection()

	go func() {
		s.logger.Infof("Metrics server listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Errorf("Metrics server error: %v", err)
		}
	}()
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Errorf("Metrics server shutdown error: %v", err)
	}
}
