package domain_test

import (
	"testing"

	"github.com/kiryu-dev/tetris/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCompose(t *testing.T) {
	var board domain.Board
	board[9][0] = domain.Red

	t.Run("no piece", func(t *testing.T) {
		assert.Equal(t, board, domain.Compose(board, nil))
	})
	t.Run("piece over board", func(t *testing.T) {
		piece := &domain.Piece{Shape: domain.Pick(3), Row: 8, Col: 6}

		got := domain.Compose(board, piece)

		want := board
		want[8][6], want[8][7] = domain.Yellow, domain.Yellow
		want[9][6], want[9][7] = domain.Yellow, domain.Yellow
		assert.Equal(t, want, got)
		assert.Equal(t, domain.None, board[8][6])
	})
	t.Run("cells off the board are skipped", func(t *testing.T) {
		piece := &domain.Piece{Shape: domain.Pick(0), Row: 0, Col: 6}

		got := domain.Compose(domain.Board{}, piece)

		assert.Equal(t, domain.LightBlue, got[0][6])
		assert.Equal(t, domain.LightBlue, got[0][7])
	})
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "running", domain.Running.String())
	assert.Equal(t, "over", domain.Over.String())
	assert.Equal(t, "unknown", domain.Phase(7).String())
}
