package service

import (
	"context"
	"fmt"
	"time"

	"jeopardy/internal/domain"
	"jeopardy/internal/repository"

	"go.uber.org/zap"
)

const historyLimit = 5

// GameService manages game sessions per owner and logs dealt boards
type GameService struct {
	source   repository.CategorySource
	boards   *BoardService
	gameRepo repository.GameRepository
	sessions *SessionRegistry
	width    int
	logger   *zap.Logger
}

// NewGameService creates a new game service
func NewGameService(
	source repository.CategorySource,
	boards *BoardService,
	gameRepo repository.GameRepository,
	width int,
	logger *zap.Logger,
) *GameService {
	return &GameService{
		source:   source,
		boards:   boards,
		gameRepo: gameRepo,
		sessions: NewSessionRegistry(),
		width:    width,
		logger:   logger,
	}
}

// Start deals a new board for owner, creating the session if needed
func (s *GameService) Start(ctx context.Context, owner string) (*Session, error) {
	session := s.sessions.GetOrCreate(owner, func() *Session {
		return NewSession(s.source, s.boards, s.width, s.logger.With(zap.String("owner", owner)))
	})

	if err := session.Start(ctx); err != nil {
		s.logger.Error("Failed to start game", zap.String("owner", owner), zap.Error(err))
		return session, err
	}

	s.record(owner, session)
	return session, nil
}

// Restart discards the owner's board and deals a fresh one
func (s *GameService) Restart(ctx context.Context, owner string) (*Session, error) {
	session, ok := s.sessions.Get(owner)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	if err := session.Restart(ctx); err != nil {
		s.logger.Error("Failed to restart game", zap.String("owner", owner), zap.Error(err))
		return session, err
	}

	s.record(owner, session)
	return session, nil
}

// Session returns the owner's session
func (s *GameService) Session(owner string) (*Session, error) {
	session, ok := s.sessions.Get(owner)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// Reveal advances the owner's clue at (row, col)
func (s *GameService) Reveal(owner string, row, col int) (*CellReveal, error) {
	session, err := s.Session(owner)
	if err != nil {
		return nil, err
	}
	return session.Reveal(row, col)
}

// End drops the owner's session and reports whether one existed
func (s *GameService) End(owner string) bool {
	return s.sessions.Delete(owner)
}

// EvictIdle drops sessions nobody has touched for longer than maxIdle
func (s *GameService) EvictIdle(maxIdle time.Duration) int {
	evicted := s.sessions.EvictIdle(maxIdle)
	if evicted > 0 {
		s.logger.Info("Evicted idle sessions",
			zap.Int("evicted", evicted),
			zap.Int("remaining", s.sessions.Len()),
		)
	}
	return evicted
}

// History returns the owner's most recent boards
func (s *GameService) History(owner string) ([]domain.GameRecord, error) {
	games, err := s.gameRepo.GetRecentGames(owner, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return games, nil
}

// record logs the dealt board; failures do not affect the game
func (s *GameService) record(owner string, session *Session) {
	board := session.Board()
	if board == nil {
		return
	}
	if err := s.gameRepo.RecordGame(owner, board.CategoryIDs(), board.Titles()); err != nil {
		s.logger.Warn("Failed to record game", zap.String("owner", owner), zap.Error(err))
	}
}
