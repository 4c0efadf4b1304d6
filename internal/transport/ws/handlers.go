package ws

import (
	"net/http"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/kiryu-dev/tetris/internal/domain"
	"go.uber.org/zap"
)

func (s *server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error(err.Error())
		return
	}
	client := newClient(conn, uuid.NewString())
	defer client.Close()
	s.logger.Info("new viewer connection", zap.String("viewer uuid", client.Uuid()), zap.String("remote", r.RemoteAddr))
	if err := s.hub.Handle(r.Context(), client); err != nil {
		s.logger.Warn(err.Error(), zap.String("viewer uuid", client.Uuid()))
	}
}

func (s *server) healthCheck(w http.ResponseWriter, _ *http.Request) {
	resp := domain.HealthCheckResponse{
		Phase:   s.hub.Phase(),
		Viewers: s.hub.Viewers(),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := jsoniter.NewEncoder(w).Encode(resp); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		s.logger.Warn(err.Error())
	}
}
