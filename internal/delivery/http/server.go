package delivery_http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"sionlog-blog-service/internal/logger"
)

type Server struct {
	server *http.Server
	log    *logger.Logger
}

func NewServer(handler http.Handler, address string, port int, log *logger.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", address, port),
			Handler:      handler,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		log: log,
	}
}

func (s *Server) Run() error {
	s.log.Info("Starting HTTP server", slog.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
