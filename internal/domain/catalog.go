package domain

const PieceCount = 7

type Grid [FrameWidth][FrameWidth]Cell

// Shape is a piece orientation inside the 4x4 frame. Size is the side of
// the square sub-grid that holds every block and that rotation turns.
type Shape struct {
	Grid Grid
	Size int
}

func (s Shape) Cells() int {
	n := 0
	for _, row := range s.Grid {
		for _, c := range row {
			if !c.Empty() {
				n++
			}
		}
	}
	return n
}

var catalog = [PieceCount]Shape{
	{ // I
		Grid: Grid{
			{LightBlue, LightBlue, LightBlue, LightBlue},
		},
		Size: 4,
	},
	{ // J
		Grid: Grid{
			{Blue, None, None},
			{Blue, Blue, Blue},
		},
		Size: 3,
	},
	{ // L
		Grid: Grid{
			{None, None, Orange},
			{Orange, Orange, Orange},
		},
		Size: 3,
	},
	{ // O
		Grid: Grid{
			{Yellow, Yellow},
			{Yellow, Yellow},
		},
		Size: 2,
	},
	{ // S
		Grid: Grid{
			{None, Green, Green},
			{Green, Green},
		},
		Size: 3,
	},
	{ // T
		Grid: Grid{
			{None, Purple},
			{Purple, Purple, Purple},
		},
		Size: 3,
	},
	{ // Z
		Grid: Grid{
			{Red, Red},
			{None, Red, Red},
		},
		Size: 3,
	},
}

// Pick returns a copy of the catalog entry, index must be in [0, PieceCount).
func Pick(index int) Shape {
	return catalog[index]
}

// Rotate turns the Size x Size sub-grid a quarter turn about its own frame.
// Cells outside the sub-grid are left as they are. Any dir other than
// Clockwise turns counter-clockwise.
func (s Shape) Rotate(dir Rotation) Shape {
	rotated := s
	n := s.Size
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if dir == Clockwise {
				rotated.Grid[y][x] = s.Grid[n-1-x][y]
			} else {
				rotated.Grid[y][x] = s.Grid[x][n-1-y]
			}
		}
	}
	return rotated
}
