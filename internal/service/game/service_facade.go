package game

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/iamasit07/connect-four/internal/input"
	"github.com/iamasit07/connect-four/internal/render"
	"github.com/iamasit07/connect-four/pkg/uid"
)

// Service is the entry point for running games on a text stream (facade)
type Service struct {
	EmptyGlyph string
	Logger     *zap.Logger
}

func NewService(emptyGlyph string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		EmptyGlyph: emptyGlyph,
		Logger:     logger,
	}
}

// NewSession wires a fresh game to in and out under a new game id
func (s *Service) NewSession(in io.Reader, out io.Writer) *GameSession {
	return NewGameSession(
		uid.GenerateGameID(),
		render.NewRenderer(out, s.EmptyGlyph),
		input.NewReader(in),
		s.Logger,
	)
}

func (s *Service) Play(ctx context.Context, in io.Reader, out io.Writer) (Outcome, error) {
	return s.NewSession(in, out).Run(ctx)
}
