// Package render draws a Connect Four board and the game messages as plain text.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iamasit07/connect-four/internal/domain"
)

const DefaultEmptyGlyph = "_"

type Renderer struct {
	w          io.Writer
	emptyGlyph string
}

func NewRenderer(w io.Writer, emptyGlyph string) *Renderer {
	if emptyGlyph == "" {
		emptyGlyph = DefaultEmptyGlyph
	}
	return &Renderer{w: w, emptyGlyph: emptyGlyph}
}

// FormatBoard lays the board out as a header of column numbers followed by
// one line per row, each prefixed with its row number. Once a player has four
// in a row, those four cells are drawn in lowercase.
func (r *Renderer) FormatBoard(board domain.Board) string {
	var sb strings.Builder
	winning := winningCells(&board)

	sb.WriteString(" ")
	for col := 0; col < domain.Columns; col++ {
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(col))
	}
	sb.WriteString("\n")

	for row := 0; row < domain.Rows; row++ {
		sb.WriteString(strconv.Itoa(row))
		for col := 0; col < domain.Columns; col++ {
			sb.WriteString(" ")
			cell := board[row][col]
			switch {
			case cell == domain.Empty:
				sb.WriteString(r.emptyGlyph)
			case winning[domain.Position{Row: row, Column: col}]:
				sb.WriteString(strings.ToLower(cell.String()))
			default:
				sb.WriteString(cell.String())
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// X is checked first, matching the order the game announces results in
func winningCells(board *domain.Board) map[domain.Position]bool {
	for _, player := range []domain.Cell{domain.PlayerX, domain.PlayerO} {
		if line, ok := domain.WinningLine(board, player); ok {
			cells := make(map[domain.Position]bool, len(line))
			for _, p := range line {
				cells[p] = true
			}
			return cells
		}
	}
	return nil
}

func (r *Renderer) Board(board domain.Board) error {
	_, err := io.WriteString(r.w, r.FormatBoard(board))
	return err
}

func (r *Renderer) Prompt(player domain.Cell) error {
	return r.line(fmt.Sprintf("Player %s's turn. Enter column (0-%d) to drop your piece:", player, domain.Columns-1))
}

func (r *Renderer) Invalid() error {
	return r.line("Invalid move! Please choose a valid column.")
}

func (r *Renderer) Win(player domain.Cell) error {
	return r.line(fmt.Sprintf("Player %s wins!", player))
}

func (r *Renderer) Draw() error {
	return r.line("It's a draw!")
}

func (r *Renderer) line(text string) error {
	_, err := fmt.Fprintln(r.w, text)
	return err
}
