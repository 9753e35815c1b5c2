package service

import (
	"context"
	"sync"

	"jeopardy/internal/domain"
	"jeopardy/internal/repository"

	"go.uber.org/zap"
)

// CellReveal is the result of revealing one board cell
type CellReveal struct {
	Row   int
	Col   int
	Title string
	domain.Reveal
}

// Session owns one game's board and its NotStarted/Ready lifecycle
type Session struct {
	source repository.CategorySource
	boards *BoardService
	width  int
	logger *zap.Logger

	// startMux serializes Start/Restart; mux guards state and board
	startMux sync.Mutex
	mux      sync.RWMutex
	state    domain.SessionState
	board    *domain.Board
}

// NewSession creates a session that deals boards of width categories
func NewSession(source repository.CategorySource, boards *BoardService, width int, logger *zap.Logger) *Session {
	return &Session{
		source: source,
		boards: boards,
		width:  width,
		logger: logger,
		state:  domain.SessionNotStarted,
	}
}

// State returns the current lifecycle state
func (s *Session) State() domain.SessionState {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.state
}

// Board returns a snapshot of the current board, or nil when the session is not ready
func (s *Session) Board() *domain.Board {
	s.mux.RLock()
	defer s.mux.RUnlock()
	if s.board == nil {
		return nil
	}
	return s.board.Clone()
}

// Start discards any existing board and deals a new one.
// The build is not cancelled by ctx; on failure the session stays NotStarted.
func (s *Session) Start(ctx context.Context) error {
	s.startMux.Lock()
	defer s.startMux.Unlock()

	s.clear()

	ids := s.source.SelectCategoryIdentifiers(s.width)
	s.logger.Info("Starting game", zap.Ints("category_ids", ids))

	board, err := s.boards.BuildBoard(context.WithoutCancel(ctx), ids)
	if err != nil {
		return &domain.SessionStartError{Err: err}
	}

	s.mux.Lock()
	s.board = board
	s.state = domain.SessionReady
	s.mux.Unlock()

	s.logger.Info("Game ready", zap.Strings("titles", board.Titles()))
	return nil
}

// Restart drops the current board entirely and starts over with fresh categories
func (s *Session) Restart(ctx context.Context) error {
	s.logger.Info("Restarting game")
	return s.Start(ctx)
}

// Reveal advances the clue at (row, col) one step
func (s *Session) Reveal(row, col int) (*CellReveal, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.state != domain.SessionReady || s.board == nil {
		return nil, domain.ErrNotReady
	}

	clue, err := s.board.CellAt(row, col)
	if err != nil {
		return nil, err
	}

	cat, err := s.board.Category(col)
	if err != nil {
		return nil, err
	}

	result := clue.Reveal()
	if !result.Changed {
		s.logger.Debug("Reveal ignored, clue already answered", zap.Int("row", row), zap.Int("col", col))
	}

	return &CellReveal{Row: row, Col: col, Title: cat.Title, Reveal: result}, nil
}

func (s *Session) clear() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.board = nil
	s.state = domain.SessionNotStarted
}
