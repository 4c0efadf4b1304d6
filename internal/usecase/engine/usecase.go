package engine

import (
	"github.com/kiryu-dev/tetris/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type useCase struct {
	board   domain.Board
	piece   domain.Piece
	phase   domain.Phase
	rng     domain.Randomizer
	spawned uint
	cleared uint
	logger  *zap.Logger
}

type Option func(u *useCase)

// WithBoard starts the game on a board that already holds locked blocks.
func WithBoard(board domain.Board) Option {
	return func(u *useCase) {
		u.board = board
	}
}

func New(rng domain.Randomizer, logger *zap.Logger, opts ...Option) *useCase {
	u := &useCase{
		phase:  domain.Running,
		rng:    rng,
		logger: logger,
	}
	for _, opt := range opts {
		opt(u)
	}
	u.spawnNext()
	return u
}

func (u *useCase) Apply(cmd domain.Command) error {
	switch cmd {
	case domain.RotateCW:
		u.Rotate(domain.Clockwise)
	case domain.RotateCCW:
		u.Rotate(domain.CounterClockwise)
	case domain.MoveLeft:
		u.Move(domain.Horizontal, -1)
	case domain.MoveRight:
		u.Move(domain.Horizontal, 1)
	case domain.SoftDropStep:
		u.Move(domain.Vertical, 1)
	default:
		return errors.WithMessagef(ErrUnknownCommand, "command '%d'", cmd)
	}
	return nil
}

// Check reports whether the active piece fits the board where it stands.
func (u *useCase) Check() domain.Placement {
	return u.check(u.piece)
}

func (u *useCase) check(piece domain.Piece) domain.Placement {
	for dy, row := range piece.Grid {
		for dx, cell := range row {
			if cell.Empty() {
				continue
			}
			y, x := piece.Row+dy, piece.Col+dx
			if y < 0 || y >= domain.Height {
				return domain.OutOfBoundsRow
			}
			if x < 0 || x >= domain.Width {
				return domain.OutOfBoundsCol
			}
			if !u.board[y][x].Empty() {
				return domain.Overlap
			}
		}
	}
	return domain.Ok
}

func (u *useCase) Rotate(dir domain.Rotation) {
	if u.phase == domain.Over {
		return
	}
	candidate := u.piece
	candidate.Shape = u.piece.Rotate(dir)
	if u.check(candidate) == domain.Ok {
		u.piece = candidate
	}
}

// Move nudges the piece by offset along axis. A blocked horizontal move is
// dropped, a blocked vertical move locks the piece where it stands.
func (u *useCase) Move(axis domain.Axis, offset int) {
	if u.phase == domain.Over {
		return
	}
	candidate := u.piece
	switch axis {
	case domain.Horizontal:
		candidate.Col += offset
	case domain.Vertical:
		candidate.Row += offset
	default:
		return
	}
	if u.check(candidate) == domain.Ok {
		u.piece = candidate
		return
	}
	if axis == domain.Horizontal {
		return
	}
	u.lock()
}

func (u *useCase) lock() {
	u.commit()
	if n := u.clearFullRows(); n > 0 {
		u.cleared += uint(n)
		u.logger.Debug("rows cleared", zap.Int("rows", n), zap.Uint("total", u.cleared))
	}
	u.spawnNext()
}

// commit writes the piece into the board. The piece must have passed check.
func (u *useCase) commit() {
	for dy, row := range u.piece.Grid {
		for dx, cell := range row {
			if cell.Empty() {
				continue
			}
			u.board[u.piece.Row+dy][u.piece.Col+dx] = cell
		}
	}
	u.logger.Debug("piece locked", zap.Int("row", u.piece.Row), zap.Int("col", u.piece.Col))
}

func (u *useCase) clearFullRows() int {
	write := domain.Height - 1
	for y := domain.Height - 1; y >= 0; y-- {
		if isFull(u.board[y]) {
			continue
		}
		u.board[write] = u.board[y]
		write--
	}
	removed := write + 1
	for ; write >= 0; write-- {
		u.board[write] = [domain.Width]domain.Cell{}
	}
	return removed
}

func isFull(row [domain.Width]domain.Cell) bool {
	for _, cell := range row {
		if cell.Empty() {
			return false
		}
	}
	return true
}

func (u *useCase) spawnNext() {
	u.piece = domain.Piece{
		Shape: domain.Pick(u.rng.Intn(domain.PieceCount)),
		Row:   0,
		Col:   (domain.Width - domain.FrameWidth) / 2,
	}
	u.spawned++
	if u.Check() != domain.Ok {
		u.phase = domain.Over
		u.logger.Info("game over", zap.Uint("spawned", u.spawned), zap.Uint("rows cleared", u.cleared))
	}
}

func (u *useCase) Phase() domain.Phase {
	return u.phase
}

func (u *useCase) Snapshot() domain.Snapshot {
	snapshot := domain.Snapshot{
		Board:        u.board,
		Phase:        u.phase,
		Spawned:      u.spawned,
		LinesCleared: u.cleared,
	}
	if u.phase == domain.Running {
		piece := u.piece
		snapshot.Piece = &piece
	}
	return snapshot
}
