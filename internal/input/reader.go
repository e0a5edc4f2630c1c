package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrNotANumber = errors.New("input is not a column number")

// longest text quoted back in an ErrNotANumber message
const maxQuoted = 32

// Reader pulls one column choice per line, lines can be any length
type Reader struct {
	r *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadColumn returns io.EOF once the input is exhausted. The number is not
// range checked, that is up to the game.
func (r *Reader) ReadColumn() (int, error) {
	line, err := r.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}
		// a last line without a newline still counts
		if line == "" {
			return 0, io.EOF
		}
	}

	text := strings.TrimSpace(line)
	column, err := strconv.Atoi(text)
	if err != nil {
		if len(text) > maxQuoted {
			text = text[:maxQuoted] + "..."
		}
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, text)
	}
	return column, nil
}
