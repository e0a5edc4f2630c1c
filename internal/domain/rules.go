package domain

// the four directions a run can take, as (deltaRow, deltaCol),
// together with the range of starting cells that keep the run on the board
type direction struct {
	deltaRow, deltaCol int
	rowFrom, rowTo     int
	colFrom, colTo     int
}

var directions = [...]direction{
	// horizontal
	{0, 1, 0, Rows - 1, 0, Columns - ToWin},
	// vertical
	{1, 0, 0, Rows - ToWin, 0, Columns - 1},
	// diagonal going down and to the right
	{1, 1, 0, Rows - ToWin, 0, Columns - ToWin},
	// diagonal going down and to the left
	{1, -1, 0, Rows - ToWin, ToWin - 1, Columns - 1},
}

// HasWon scans every window of four on the board. The board is small
// (69 windows) so nothing is cached between calls.
func HasWon(board *Board, player Cell) bool {
	_, ok := WinningLine(board, player)
	return ok
}

// WinningLine returns the first run of four found for player, scanning
// horizontal, vertical, then both diagonals
func WinningLine(board *Board, player Cell) ([ToWin]Position, bool) {
	var line [ToWin]Position
	if !player.IsPlayer() {
		return line, false
	}

	for _, d := range directions {
		for row := d.rowFrom; row <= d.rowTo; row++ {
			for col := d.colFrom; col <= d.colTo; col++ {
				if runAt(board, row, col, d, player) {
					for i := 0; i < ToWin; i++ {
						line[i] = Position{Row: row + i*d.deltaRow, Column: col + i*d.deltaCol}
					}
					return line, true
				}
			}
		}
	}

	return line, false
}

func runAt(board *Board, row, col int, d direction, player Cell) bool {
	for i := 0; i < ToWin; i++ {
		if board[row+i*d.deltaRow][col+i*d.deltaCol] != player {
			return false
		}
	}
	return true
}
