package hub

import (
	"context"
	"sync"

	"github.com/kiryu-dev/tetris/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

const viewerQueueBufSize = 8

type viewer struct {
	client domain.Client
	frames chan domain.FramePayload
}

// useCase fans rendered frames out to spectators. Render never blocks the
// game loop: a viewer whose queue is full misses the frame.
type useCase struct {
	viewers map[string]viewer
	last    *domain.FramePayload
	count   *atomic.Int64
	sent    *atomic.Uint64
	dropped *atomic.Uint64
	phase   *atomic.Uint32
	mu      *sync.RWMutex
	logger  *zap.Logger
}

func New(logger *zap.Logger) *useCase {
	return &useCase{
		viewers: make(map[string]viewer),
		count:   atomic.NewInt64(0),
		sent:    atomic.NewUint64(0),
		dropped: atomic.NewUint64(0),
		phase:   atomic.NewUint32(uint32(domain.Running)),
		mu:      &sync.RWMutex{},
		logger:  logger,
	}
}

func (u *useCase) Handle(ctx context.Context, client domain.Client) error {
	v := viewer{
		client: client,
		frames: make(chan domain.FramePayload, viewerQueueBufSize),
	}
	u.register(v)
	defer u.unregister(client.Uuid())
	err := client.WriteMessage(domain.Message{
		Type:    domain.Hello,
		Payload: domain.HelloPayload{ViewerUuid: client.Uuid()},
	})
	if err != nil {
		return errors.WithMessage(err, "send hello message")
	}
	done := make(chan error, 1)
	go func() {
		done <- client.Wait()
	}()
	for {
		select {
		case frame := <-v.frames:
			if err := client.WriteMessage(domain.Message{Type: domain.Frame, Payload: frame}); err != nil {
				return errors.WithMessage(err, "send frame message")
			}
		case err := <-done:
			if err == nil || errors.Is(err, domain.ErrConnectionClosed) {
				return nil
			}
			return errors.WithMessage(err, "wait for viewer")
		case <-ctx.Done():
			return nil
		}
	}
}

func (u *useCase) Render(_ context.Context, snapshot domain.Snapshot) error {
	frame := domain.NewFramePayload(snapshot)
	u.phase.Store(uint32(frame.Phase))
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.last != nil && sameFrame(*u.last, frame) {
		return nil
	}
	u.last = &frame
	for uuid, v := range u.viewers {
		select {
		case v.frames <- frame:
			u.sent.Inc()
		default:
			u.dropped.Inc()
			u.logger.Debug("frame dropped", zap.String("viewer uuid", uuid), zap.Error(domain.ErrViewerTooSlow))
		}
	}
	return nil
}

func (u *useCase) Viewers() int64 {
	return u.count.Load()
}

func (u *useCase) Phase() domain.Phase {
	return domain.Phase(u.phase.Load())
}

func (u *useCase) register(v viewer) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.viewers[v.client.Uuid()] = v
	u.count.Inc()
	if u.last != nil {
		v.frames <- *u.last
	}
	u.logger.Info("viewer joined", zap.String("viewer uuid", v.client.Uuid()), zap.Int64("viewers", u.count.Load()))
}

func (u *useCase) unregister(uuid string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.viewers[uuid]; !ok {
		return
	}
	delete(u.viewers, uuid)
	u.count.Dec()
	u.logger.Info("viewer left", zap.String("viewer uuid", uuid), zap.Int64("viewers", u.count.Load()),
		zap.Uint64("frames sent", u.sent.Load()), zap.Uint64("frames dropped", u.dropped.Load()))
}

func sameFrame(lhs, rhs domain.FramePayload) bool {
	if lhs.Board != rhs.Board || lhs.Phase != rhs.Phase {
		return false
	}
	if lhs.Piece == nil || rhs.Piece == nil {
		return lhs.Piece == rhs.Piece
	}
	return *lhs.Piece == *rhs.Piece
}
