package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kiryu-dev/tetris/internal/domain"
	"go.uber.org/zap"
)

// r alone turns counter-clockwise, shift selects clockwise.
var keyBindings = map[string]domain.Command{
	"left":  domain.MoveLeft,
	"h":     domain.MoveLeft,
	"right": domain.MoveRight,
	"l":     domain.MoveRight,
	"down":  domain.SoftDropStep,
	"j":     domain.SoftDropStep,
	"r":     domain.RotateCCW,
	"R":     domain.RotateCW,
	"up":    domain.RotateCW,
}

type frameMsg time.Time

type model struct {
	ctx      context.Context
	session  domain.SessionUseCase
	interval time.Duration
	last     time.Time
	snapshot domain.Snapshot
	logger   *zap.Logger
}

func New(ctx context.Context, session domain.SessionUseCase, interval time.Duration, logger *zap.Logger) model {
	return model{
		ctx:      ctx,
		session:  session,
		interval: interval,
		snapshot: session.Snapshot(),
		logger:   logger,
	}
}

func (m model) Init() tea.Cmd {
	return frame(m.interval)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case frameMsg:
		now := time.Time(msg)
		var dt time.Duration
		if !m.last.IsZero() {
			dt = now.Sub(m.last)
		}
		m.last = now
		m.snapshot = m.session.Advance(m.ctx, dt)
		return m, frame(m.interval)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c", "esc":
		m.logger.Info("player quit", zap.Stringer("phase", m.snapshot.Phase))
		return m, tea.Quit
	case "n":
		if m.snapshot.Phase == domain.Over {
			m.snapshot = m.session.Restart(m.ctx)
		}
		return m, nil
	}
	if cmd, ok := keyBindings[key]; ok {
		m.session.Enqueue(cmd)
	}
	return m, nil
}

func (m model) View() string {
	return RenderFrame(m.snapshot.Board, m.snapshot.Piece, m.snapshot.Phase) + "\n" + renderStatus(m.snapshot) + "\n"
}

func frame(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
