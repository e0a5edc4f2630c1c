package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/iamasit07/connect-four/internal/domain"
	"github.com/iamasit07/connect-four/internal/input"
)

type Outcome string

const (
	OutcomeXWins   Outcome = "x_wins"
	OutcomeOWins   Outcome = "o_wins"
	OutcomeDraw    Outcome = "draw"
	OutcomeAborted Outcome = "aborted"
)

// Display is whatever shows the game to the players
type Display interface {
	Board(board domain.Board) error
	Prompt(player domain.Cell) error
	Invalid() error
	Win(player domain.Cell) error
	Draw() error
}

// ColumnSource supplies one column choice per turn. io.EOF ends the game,
// input.ErrNotANumber is treated like an invalid column.
type ColumnSource interface {
	ReadColumn() (int, error)
}

// GameSession drives one game from the first prompt to the final message
type GameSession struct {
	GameID  string
	Game    *domain.GameState
	display Display
	source  ColumnSource
	logger  *zap.Logger
}

func NewGameSession(gameID string, display Display, source ColumnSource, logger *zap.Logger) *GameSession {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameSession{
		GameID:  gameID,
		Game:    domain.NewGameState(),
		display: display,
		source:  source,
		logger:  logger.With(zap.String("game_id", gameID)),
	}
}

// Run loops read -> validate -> apply -> check until someone wins, the board
// fills up or the input runs out. ctx is only looked at between turns.
func (gs *GameSession) Run(ctx context.Context) (Outcome, error) {
	gs.logger.Debug("game started", zap.String("first_player", gs.Game.CurrentPlayer().String()))

	if err := gs.display.Board(gs.Game.Board()); err != nil {
		return OutcomeAborted, fmt.Errorf("failed to display board: %w", err)
	}

	for !gs.Game.IsGameOver(gs.Game.CurrentPlayer()) {
		if err := ctx.Err(); err != nil {
			gs.logger.Debug("game cancelled", zap.Int("moves", gs.Game.MoveCount()))
			return OutcomeAborted, err
		}

		player := gs.Game.CurrentPlayer()
		if err := gs.display.Prompt(player); err != nil {
			return OutcomeAborted, fmt.Errorf("failed to prompt player: %w", err)
		}

		column, err := gs.source.ReadColumn()
		if err != nil && !errors.Is(err, input.ErrNotANumber) {
			if errors.Is(err, io.EOF) {
				gs.logger.Debug("input closed before the game ended", zap.Int("moves", gs.Game.MoveCount()))
				return OutcomeAborted, nil
			}
			return OutcomeAborted, fmt.Errorf("failed to read column: %w", err)
		}

		if err != nil || !gs.Game.IsValidMove(column) {
			gs.logger.Debug("rejected move",
				zap.String("player", player.String()),
				zap.Int("column", column),
				zap.Error(err),
			)
			if err := gs.display.Invalid(); err != nil {
				return OutcomeAborted, fmt.Errorf("failed to report invalid move: %w", err)
			}
			continue
		}

		row, err := gs.Game.Drop(column, player)
		if err != nil {
			// IsValidMove just passed, only a broken marker gets here
			return OutcomeAborted, fmt.Errorf("failed to apply move: %w", err)
		}
		gs.logger.Debug("move applied",
			zap.String("player", player.String()),
			zap.Int("column", column),
			zap.Int("row", row),
			zap.Int("move", gs.Game.MoveCount()),
		)

		if err := gs.display.Board(gs.Game.Board()); err != nil {
			return OutcomeAborted, fmt.Errorf("failed to display board: %w", err)
		}

		if outcome, done := gs.outcome(); done {
			return outcome, gs.announce(outcome)
		}
	}

	// only reachable when the game was already over before the first prompt
	outcome, _ := gs.outcome()
	return outcome, gs.announce(outcome)
}

func (gs *GameSession) outcome() (Outcome, bool) {
	switch status, winner := gs.Game.Status(); {
	case status == domain.StatusWon && winner == domain.PlayerX:
		return OutcomeXWins, true
	case status == domain.StatusWon:
		return OutcomeOWins, true
	case status == domain.StatusDraw:
		return OutcomeDraw, true
	}
	return OutcomeAborted, false
}

func (gs *GameSession) announce(outcome Outcome) error {
	var err error
	switch outcome {
	case OutcomeXWins:
		err = gs.display.Win(domain.PlayerX)
	case OutcomeOWins:
		err = gs.display.Win(domain.PlayerO)
	case OutcomeDraw:
		err = gs.display.Draw()
	}

	gs.logger.Debug("game finished",
		zap.String("outcome", string(outcome)),
		zap.Int("moves", gs.Game.MoveCount()),
		zap.Stringer("board", gs.Game.Board()),
	)

	if err != nil {
		return fmt.Errorf("failed to announce result: %w", err)
	}
	return nil
}
