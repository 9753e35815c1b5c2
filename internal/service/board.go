package service

import (
	"context"

	"jeopardy/internal/domain"
	"jeopardy/internal/repository"

	"go.uber.org/zap"
)

// BoardService builds boards from a category source
type BoardService struct {
	source repository.CategorySource
	height int
	logger *zap.Logger
}

// NewBoardService creates a new board service for boards of the given height
func NewBoardService(source repository.CategorySource, height int, logger *zap.Logger) *BoardService {
	return &BoardService{
		source: source,
		height: height,
		logger: logger,
	}
}

// BuildBoard fetches each category in order, one at a time, so columns fill left to right.
// A single failed fetch aborts the build and no board is returned.
func (s *BoardService) BuildBoard(ctx context.Context, ids []int) (*domain.Board, error) {
	categories := make([]domain.Category, 0, len(ids))

	for col, id := range ids {
		cat, err := s.source.FetchCategory(ctx, id)
		if err != nil {
			s.logger.Error("Failed to fetch category",
				zap.Int("category_id", id),
				zap.Int("column", col),
				zap.Error(err),
			)
			return nil, &domain.BoardBuildError{Column: col, Err: err}
		}

		s.logger.Debug("Category fetched",
			zap.Int("category_id", id),
			zap.Int("column", col),
			zap.String("title", cat.Title),
			zap.Int("clues", len(cat.Clues)),
		)
		categories = append(categories, *cat)
	}

	return domain.NewBoard(s.height, categories), nil
}
