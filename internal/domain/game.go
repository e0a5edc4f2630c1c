package domain

// GameState owns the board and whose turn it is. It is not safe for
// concurrent use, one driving loop is expected to own it.
type GameState struct {
	board         Board
	currentPlayer Cell
	moveCount     int
}

func NewGameState() *GameState {
	return &GameState{
		board:         NewBoard(),
		currentPlayer: FirstPlayer,
	}
}

// IsValidMove is false for a column outside [0, Columns) or a full column
func (g *GameState) IsValidMove(column int) bool {
	return IsValidMove(&g.board, column)
}

// ApplyMove drops a disk for player into column. An invalid column or an
// unknown marker leaves the board and the turn untouched.
//
// The disk is placed as the given player, not as CurrentPlayer, callers
// wanting strict turns pass CurrentPlayer themselves.
func (g *GameState) ApplyMove(column int, player Cell) {
	g.drop(column, player)
}

// drop does the work for ApplyMove and also tells the caller where the disk landed
func (g *GameState) drop(column int, player Cell) (int, error) {
	if !player.IsPlayer() {
		return -1, ErrUnknownMarker
	}
	if !g.IsValidMove(column) {
		return -1, ErrInvalidMove
	}

	row, err := DropDisk(&g.board, column, player)
	if err != nil {
		return -1, err
	}

	g.moveCount++
	g.currentPlayer = g.currentPlayer.Opponent()
	return row, nil
}

// Drop is ApplyMove that reports the landing row, or an error when the
// move was ignored
func (g *GameState) Drop(column int, player Cell) (int, error) {
	return g.drop(column, player)
}

func (g *GameState) HasWon(player Cell) bool {
	return HasWon(&g.board, player)
}

// IsDraw only looks at the top row; a full board can also hold a win,
// so check HasWon first
func (g *GameState) IsDraw() bool {
	return IsBoardFull(&g.board)
}

// IsGameOver is relative to one player: that player has won, or the board is full
func (g *GameState) IsGameOver(player Cell) bool {
	return g.HasWon(player) || g.IsDraw()
}

// Status checks both markers, X first
func (g *GameState) Status() (GameStatus, Cell) {
	switch {
	case g.HasWon(PlayerX):
		return StatusWon, PlayerX
	case g.HasWon(PlayerO):
		return StatusWon, PlayerO
	case g.IsDraw():
		return StatusDraw, Empty
	}
	return StatusActive, Empty
}

func (g *GameState) Reset() {
	g.board = NewBoard()
	g.currentPlayer = FirstPlayer
	g.moveCount = 0
}

// Board returns a copy, mutating it does not touch the game
func (g *GameState) Board() Board {
	return g.board
}

func (g *GameState) Cell(row, column int) Cell {
	if row < 0 || row >= Rows || column < 0 || column >= Columns {
		return Empty
	}
	return g.board[row][column]
}

func (g *GameState) CurrentPlayer() Cell {
	return g.currentPlayer
}

func (g *GameState) MoveCount() int {
	return g.moveCount
}
