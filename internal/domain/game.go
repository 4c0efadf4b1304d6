package domain

import (
	"context"
	"time"
)

const (
	Height     = 10
	Width      = 8
	FrameWidth = 4
)

type Cell byte

const (
	None = Cell(iota)
	LightBlue
	Blue
	Orange
	Yellow
	Green
	Purple
	Red
)

func (c Cell) Empty() bool {
	return c == None
}

// Board is the grid of locked blocks, row 0 is the top.
type Board [Height][Width]Cell

type Phase byte

const (
	Running = Phase(iota)
	Over
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Over:
		return "over"
	default:
		return "unknown"
	}
}

type Placement byte

const (
	Ok = Placement(iota)
	OutOfBoundsRow
	OutOfBoundsCol
	Overlap
)

type Rotation byte

const (
	Clockwise = Rotation(iota)
	CounterClockwise
)

type Axis byte

const (
	Horizontal = Axis(iota)
	Vertical
)

type Command byte

const (
	RotateCW = Command(iota)
	RotateCCW
	MoveLeft
	MoveRight
	SoftDropStep
)

// Piece is the falling piece; Row and Col locate its local (0,0) on the board.
type Piece struct {
	Shape
	Row int
	Col int
}

// Compose lays the piece over a copy of the board. Piece cells outside the
// board are skipped.
func Compose(board Board, piece *Piece) Board {
	if piece == nil {
		return board
	}
	for dy, row := range piece.Grid {
		for dx, cell := range row {
			y, x := piece.Row+dy, piece.Col+dx
			if cell.Empty() || y < 0 || y >= Height || x < 0 || x >= Width {
				continue
			}
			board[y][x] = cell
		}
	}
	return board
}

type Snapshot struct {
	Board        Board
	Piece        *Piece
	Phase        Phase
	Spawned      uint
	LinesCleared uint
}

// Randomizer is satisfied by *rand.Rand.
type Randomizer interface {
	Intn(n int) int
}

type Renderer interface {
	Render(ctx context.Context, snapshot Snapshot) error
}

type EngineUseCase interface {
	Apply(cmd Command) error
	Move(axis Axis, offset int)
	Rotate(dir Rotation)
	Phase() Phase
	Snapshot() Snapshot
}

type SessionUseCase interface {
	Enqueue(cmd Command)
	Advance(ctx context.Context, dt time.Duration) Snapshot
	Restart(ctx context.Context) Snapshot
	Snapshot() Snapshot
}
