package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardWith(player Cell, cells ...Position) Board {
	var b Board
	for _, p := range cells {
		b[p.Row][p.Column] = player
	}
	return b
}

func TestWinningLine(t *testing.T) {
	tests := []struct {
		name  string
		cells []Position
	}{
		{"horizontal top right", []Position{{0, 3}, {0, 4}, {0, 5}, {0, 6}}},
		{"horizontal bottom left", []Position{{5, 0}, {5, 1}, {5, 2}, {5, 3}}},
		{"vertical top", []Position{{0, 6}, {1, 6}, {2, 6}, {3, 6}}},
		{"vertical bottom", []Position{{2, 0}, {3, 0}, {4, 0}, {5, 0}}},
		{"diagonal down right", []Position{{2, 3}, {3, 4}, {4, 5}, {5, 6}}},
		{"diagonal down left", []Position{{0, 6}, {1, 5}, {2, 4}, {3, 3}}},
		{"diagonal down left corner", []Position{{2, 3}, {3, 2}, {4, 1}, {5, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(PlayerO, tt.cells...)

			line, ok := WinningLine(&b, PlayerO)
			require.True(t, ok)
			assert.ElementsMatch(t, tt.cells, line[:])

			assert.True(t, HasWon(&b, PlayerO))
			assert.False(t, HasWon(&b, PlayerX))
		})
	}
}

func TestHasWon_BrokenRuns(t *testing.T) {
	// Given: three X then an O, on each axis
	b := boardWith(PlayerX,
		Position{5, 0}, Position{5, 1}, Position{5, 2},
		Position{0, 6}, Position{1, 6}, Position{2, 6},
		Position{0, 0}, Position{1, 1}, Position{2, 2},
	)
	b[5][3] = PlayerO
	b[3][6] = PlayerO
	b[3][3] = PlayerO

	assert.False(t, HasWon(&b, PlayerX))
	assert.False(t, HasWon(&b, PlayerO))

	// runs do not wrap around the edge of the board
	wrap := boardWith(PlayerX, Position{4, 5}, Position{4, 6}, Position{3, 0}, Position{3, 1})
	assert.False(t, HasWon(&wrap, PlayerX))
}

func TestHasWon_EmptyNeverMatches(t *testing.T) {
	b := NewBoard()

	_, ok := WinningLine(&b, Empty)
	assert.False(t, ok)
	assert.False(t, HasWon(&b, PlayerX))
	assert.False(t, HasWon(&b, PlayerO))
}

func TestWindowCount(t *testing.T) {
	windows := 0
	for _, d := range directions {
		windows += (d.rowTo - d.rowFrom + 1) * (d.colTo - d.colFrom + 1)
	}
	assert.Equal(t, 69, windows)
}
