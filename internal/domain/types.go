package domain

// Cell is the content of one board slot
type Cell uint8

const (
	Empty Cell = iota
	PlayerX
	PlayerO
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// FirstPlayer always opens the game and is restored on reset
const FirstPlayer = PlayerX

func (c Cell) String() string {
	switch c {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return " "
	}
}

// IsPlayer reports whether the cell is one of the two markers
func (c Cell) IsPlayer() bool {
	return c == PlayerX || c == PlayerO
}

// Opponent gives the other marker, Empty stays Empty
func (c Cell) Opponent() Cell {
	switch c {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

// Position is a (row, column) pair, row 0 is the top of the board
type Position struct {
	Row    int
	Column int
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove   Error = "invalid move"
	ErrColumnFull    Error = "column is full"
	ErrUnknownMarker Error = "unknown player marker"
)
