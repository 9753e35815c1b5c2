package service

import (
	"jeopardy/internal/repository"

	"go.uber.org/zap"
)

// StatsService handles retention of the game log
type StatsService struct {
	gameRepo      repository.GameRepository
	retentionDays int
	logger        *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(gameRepo repository.GameRepository, retentionDays int, logger *zap.Logger) *StatsService {
	return &StatsService{
		gameRepo:      gameRepo,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// CleanupOldData removes logged games older than the retention period
func (s *StatsService) CleanupOldData() error {
	s.logger.Info("Starting cleanup of old games", zap.Int("retention_days", s.retentionDays))

	err := s.gameRepo.CleanOldGames(s.retentionDays)
	if err != nil {
		s.logger.Error("Failed to cleanup old games", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully")
	return nil
}
