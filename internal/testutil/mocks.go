package testutil

import (
	"context"

	"jeopardy/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockGameRepository is a mock for GameRepository
type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) RecordGame(owner string, categoryIDs []int, titles []string) error {
	args := m.Called(owner, categoryIDs, titles)
	return args.Error(0)
}

func (m *MockGameRepository) GetRecentGames(owner string, limit int) ([]domain.GameRecord, error) {
	args := m.Called(owner, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GameRecord), args.Error(1)
}

func (m *MockGameRepository) CleanOldGames(days int) error {
	args := m.Called(days)
	return args.Error(0)
}

// MockCategorySource is a mock for CategorySource
type MockCategorySource struct {
	mock.Mock
}

func (m *MockCategorySource) SelectCategoryIdentifiers(count int) []int {
	args := m.Called(count)
	return args.Get(0).([]int)
}

// FetchCategory returns a fresh copy of the stubbed category on every call
func (m *MockCategorySource) FetchCategory(ctx context.Context, id int) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	cat := args.Get(0).(*domain.Category)
	cp := *cat
	cp.Clues = append([]domain.Clue(nil), cat.Clues...)
	return &cp, args.Error(1)
}
