package repository

import (
	"context"

	"jeopardy/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
}

// GameRepository defines operations on the log of dealt boards
type GameRepository interface {
	RecordGame(owner string, categoryIDs []int, titles []string) error
	GetRecentGames(owner string, limit int) ([]domain.GameRecord, error)
	CleanOldGames(days int) error
}

// CategorySource supplies trivia categories from a remote provider
type CategorySource interface {
	// SelectCategoryIdentifiers samples count identifiers with replacement
	SelectCategoryIdentifiers(count int) []int
	// FetchCategory loads one category with all clues hidden
	FetchCategory(ctx context.Context, id int) (*domain.Category, error)
}
