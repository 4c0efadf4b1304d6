package session

import (
	"context"
	"time"

	"github.com/kiryu-dev/tetris/internal/domain"
	"go.uber.org/zap"
)

type EngineFactory func() domain.EngineUseCase

// useCase drives one game from a single goroutine: queued commands first,
// then gravity drained from the elapsed-time accumulator, then render.
type useCase struct {
	newEngine EngineFactory
	engine    domain.EngineUseCase
	queue     []domain.Command
	gravity   time.Duration
	elapsed   time.Duration
	sinks     []domain.Renderer
	logger    *zap.Logger
}

func New(newEngine EngineFactory, gravity time.Duration, logger *zap.Logger, sinks ...domain.Renderer) *useCase {
	return &useCase{
		newEngine: newEngine,
		engine:    newEngine(),
		gravity:   gravity,
		sinks:     sinks,
		logger:    logger,
	}
}

func (u *useCase) Enqueue(cmd domain.Command) {
	u.queue = append(u.queue, cmd)
}

func (u *useCase) Advance(ctx context.Context, dt time.Duration) domain.Snapshot {
	for _, cmd := range u.queue {
		if err := u.engine.Apply(cmd); err != nil {
			u.logger.Warn("apply command", zap.Error(err))
		}
	}
	u.queue = u.queue[:0]
	u.elapsed += dt
	for u.elapsed >= u.gravity {
		u.elapsed -= u.gravity
		if u.engine.Phase() == domain.Running {
			u.engine.Move(domain.Vertical, 1)
		}
	}
	return u.publish(ctx)
}

// Restart throws the current game away and starts a fresh one.
func (u *useCase) Restart(ctx context.Context) domain.Snapshot {
	u.logger.Info("restarting game", zap.Stringer("previous phase", u.engine.Phase()))
	u.engine = u.newEngine()
	u.queue = u.queue[:0]
	u.elapsed = 0
	return u.publish(ctx)
}

func (u *useCase) Snapshot() domain.Snapshot {
	return u.engine.Snapshot()
}

func (u *useCase) publish(ctx context.Context) domain.Snapshot {
	snapshot := u.engine.Snapshot()
	for _, sink := range u.sinks {
		if err := sink.Render(ctx, snapshot); err != nil {
			u.logger.Warn("render snapshot", zap.Error(err))
		}
	}
	return snapshot
}
