package webapi

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/kiryu-dev/tetris/internal/domain"
	"github.com/pkg/errors"
)

const (
	clientTimeout       = 5 * time.Second
	healthCheckEndpoint = "/health"
)

type repository struct {
	cli *http.Client
}

func New() repository {
	return repository{
		cli: &http.Client{Timeout: clientTimeout},
	}
}

// HealthCheck asks a running game at addr (scheme://host:port) for its phase
// and current spectator count.
func (r repository) HealthCheck(ctx context.Context, addr string) (*domain.HealthCheckResponse, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, addr+healthCheckEndpoint, nil)
	if err != nil {
		return nil, errors.WithMessage(err, "new get request")
	}
	resp, err := r.cli.Do(request)
	if err != nil {
		return nil, errors.WithMessagef(err, "call http endpoint '%s'", healthCheckEndpoint)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected response status '%s'", resp.Status)
	}
	result := new(domain.HealthCheckResponse)
	if err := jsoniter.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, errors.WithMessage(err, "decode json response body")
	}
	return result, nil
}
