package ws

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/kiryu-dev/tetris/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	watchEndpoint  = "/watch"
	healthEndpoint = "/health"
)

type server struct {
	srv      *http.Server
	hub      domain.HubUseCase
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

func New(addr string, hub domain.HubUseCase, logger *zap.Logger) *server {
	s := &server{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger: logger,
	}
	s.srv = &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}
	return s
}

func (s *server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+watchEndpoint, s.serveWs)
	mux.HandleFunc("GET "+healthEndpoint, s.healthCheck)
	return mux
}

func (s *server) ListenAndServe() error {
	s.logger.Info("starting listening address: " + s.srv.Addr)
	err := s.srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithMessage(err, "listen and serve")
	}
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	if err := s.srv.Shutdown(ctx); err != nil {
		return errors.WithMessage(err, "shutdown http server")
	}
	return nil
}
