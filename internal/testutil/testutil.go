package testutil

import (
	"fmt"
	"time"

	"jeopardy/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestCategory creates a category with n hidden clues "q<id>-<i>" / "a<id>-<i>"
func NewTestCategory(id int, title string, n int) *domain.Category {
	pairs := make([]domain.ClueData, n)
	for i := 0; i < n; i++ {
		pairs[i] = domain.ClueData{
			Question: fmt.Sprintf("q%d-%d", id, i),
			Answer:   fmt.Sprintf("a%d-%d", id, i),
		}
	}
	return domain.NewCategory(id, title, pairs)
}

// NewTestGameRecord creates a logged game
func NewTestGameRecord(id int, owner string, titles ...string) domain.GameRecord {
	ids := make([]int, len(titles))
	for i := range titles {
		ids[i] = i + 1
	}
	return domain.GameRecord{
		ID:          id,
		Owner:       owner,
		CategoryIDs: ids,
		Titles:      titles,
		StartedAt:   time.Now(),
	}
}
