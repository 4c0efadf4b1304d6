package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/kiryu-dev/tetris/internal/domain"
	"github.com/kiryu-dev/tetris/internal/usecase/engine"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEngine struct {
	calls []string
	phase domain.Phase
}

func (f *fakeEngine) Apply(cmd domain.Command) error {
	if cmd > domain.SoftDropStep {
		return errors.New("bad command")
	}
	f.calls = append(f.calls, fmt.Sprintf("apply %d", cmd))
	return nil
}

func (f *fakeEngine) Move(axis domain.Axis, offset int) {
	f.calls = append(f.calls, fmt.Sprintf("move %d %d", axis, offset))
}

func (f *fakeEngine) Rotate(dir domain.Rotation) {
	f.calls = append(f.calls, fmt.Sprintf("rotate %d", dir))
}

func (f *fakeEngine) Phase() domain.Phase {
	return f.phase
}

func (f *fakeEngine) Snapshot() domain.Snapshot {
	return domain.Snapshot{Phase: f.phase, Spawned: uint(len(f.calls))}
}

type recordingSink struct {
	frames []domain.Snapshot
	err    error
}

func (r *recordingSink) Render(_ context.Context, snapshot domain.Snapshot) error {
	r.frames = append(r.frames, snapshot)
	return r.err
}

func newFakeSession(sinks ...domain.Renderer) (*useCase, *[]*fakeEngine) {
	var engines []*fakeEngine
	factory := func() domain.EngineUseCase {
		e := &fakeEngine{}
		engines = append(engines, e)
		return e
	}
	return New(factory, time.Second, zap.NewNop(), sinks...), &engines
}

func TestAdvanceAppliesInputBeforeGravity(t *testing.T) {
	u, engines := newFakeSession()
	u.Enqueue(domain.MoveLeft)
	u.Enqueue(domain.RotateCW)

	u.Advance(context.Background(), time.Second)

	want := []string{
		fmt.Sprintf("apply %d", domain.MoveLeft),
		fmt.Sprintf("apply %d", domain.RotateCW),
		fmt.Sprintf("move %d 1", domain.Vertical),
	}
	assert.Equal(t, want, (*engines)[0].calls)
}

func TestAdvanceAccumulatesTime(t *testing.T) {
	u, engines := newFakeSession()
	gravityMoves := func() int {
		n := 0
		for _, c := range (*engines)[0].calls {
			if c == fmt.Sprintf("move %d 1", domain.Vertical) {
				n++
			}
		}
		return n
	}

	u.Advance(context.Background(), 400*time.Millisecond)
	assert.Equal(t, 0, gravityMoves())

	u.Advance(context.Background(), 2100*time.Millisecond)
	assert.Equal(t, 2, gravityMoves())

	u.Advance(context.Background(), 500*time.Millisecond)
	assert.Equal(t, 3, gravityMoves())
	assert.Equal(t, time.Duration(0), u.elapsed)
}

func TestAdvanceSkipsGravityWhenOver(t *testing.T) {
	u, engines := newFakeSession()
	(*engines)[0].phase = domain.Over

	u.Advance(context.Background(), 3*time.Second)

	assert.Empty(t, (*engines)[0].calls)
	assert.Equal(t, time.Duration(0), u.elapsed)
}

func TestAdvanceKeepsGoingPastBadCommand(t *testing.T) {
	u, engines := newFakeSession()
	u.Enqueue(domain.Command(99))
	u.Enqueue(domain.MoveRight)

	u.Advance(context.Background(), 0)

	assert.Equal(t, []string{fmt.Sprintf("apply %d", domain.MoveRight)}, (*engines)[0].calls)
	assert.Empty(t, u.queue)
}

func TestAdvancePublishesToEverySink(t *testing.T) {
	failing := &recordingSink{err: errors.New("gone")}
	healthy := &recordingSink{}
	u, _ := newFakeSession(failing, healthy)

	snapshot := u.Advance(context.Background(), time.Second)

	require.Len(t, failing.frames, 1)
	require.Len(t, healthy.frames, 1)
	assert.Equal(t, snapshot, healthy.frames[0])
}

func TestRestart(t *testing.T) {
	sink := &recordingSink{}
	u, engines := newFakeSession(sink)
	u.Enqueue(domain.MoveLeft)
	u.Advance(context.Background(), 700*time.Millisecond)
	u.Enqueue(domain.MoveRight)

	u.Restart(context.Background())
	u.Advance(context.Background(), 500*time.Millisecond)

	require.Len(t, *engines, 2)
	assert.Empty(t, (*engines)[1].calls)
	assert.Len(t, sink.frames, 3)
}

type sequence []int

func (s *sequence) Intn(n int) int {
	v := (*s)[0]
	if len(*s) > 1 {
		*s = (*s)[1:]
	}
	return v % n
}

func TestGravityLocksRealEngine(t *testing.T) {
	factory := func() domain.EngineUseCase {
		return engine.New(&sequence{3}, zap.NewNop())
	}
	u := New(factory, time.Second, zap.NewNop())

	u.Enqueue(domain.MoveLeft)
	u.Enqueue(domain.MoveLeft)
	snapshot := u.Advance(context.Background(), time.Duration(domain.Height-1)*time.Second)

	assert.Equal(t, domain.Yellow, snapshot.Board[domain.Height-1][0])
	assert.Equal(t, domain.Yellow, snapshot.Board[domain.Height-2][1])
	assert.Equal(t, uint(2), snapshot.Spawned)
	require.NotNil(t, snapshot.Piece)
	assert.Equal(t, 0, snapshot.Piece.Row)
}
