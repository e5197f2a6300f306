package metrics_server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sionlog-blog-service/internal/logger"
)

// Server exposes the Prometheus scrape endpoint on its own port.
type Server struct {
	server *http.Server
	log    *logger.Logger
}

func NewServer(address string, port int, log *logger.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Server{
		server: &http.Server{
			Addr:        fmt.Sprintf("%s:%d", address, port),
			Handler:     mux,
			ReadTimeout: 5 * time.Second,
		},
		log: log,
	}
}

func (s *Server) Run() error {
	s.log.Info("Starting metrics server", slog.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
