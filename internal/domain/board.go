package domain

import "strings"

// Board is a fixed 6x7 grid, assigning it copies every cell
type Board [Rows][Columns]Cell

func NewBoard() Board {
	return Board{}
}

func IsValidMove(board *Board, column int) bool {
	if column < 0 || column >= Columns {
		return false
	}

	// here board[0] represents the top row (0 -> top and 5 -> bottom)
	return board[0][column] == Empty
}

func DropDisk(board *Board, column int, player Cell) (int, error) {
	if column < 0 || column >= Columns {
		return -1, ErrInvalidMove
	}

	// shifting the disk from top to bottom till it
	// reaches the end or another disk
	for row := Rows - 1; row >= 0; row-- {
		if board[row][column] == Empty {
			board[row][column] = player
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

func IsBoardFull(board *Board) bool {
	for c := 0; c < Columns; c++ {
		if board[0][c] == Empty {
			return false
		}
	}

	return true
}

// String gives a compact one line per row form, handy in logs and test failures
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if b[row][col] == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(b[row][col].String())
			}
		}
		if row < Rows-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
