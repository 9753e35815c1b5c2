package postgres

import (
	"database/sql"

	"jeopardy/internal/domain"

	"github.com/lib/pq"
)

// GameRepo implements repository.GameRepository
type GameRepo struct {
	db *sql.DB
}

// NewGameRepo creates a new game repository
func NewGameRepo(db *sql.DB) *GameRepo {
	return &GameRepo{db: db}
}

// RecordGame stores the categories dealt to an owner
func (r *GameRepo) RecordGame(owner string, categoryIDs []int, titles []string) error {
	ids := make([]int64, len(categoryIDs))
	for i, id := range categoryIDs {
		ids[i] = int64(id)
	}

	query := `
		INSERT INTO games (owner, category_ids, titles)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(query, owner, pq.Array(ids), pq.Array(titles))
	return err
}

// GetRecentGames returns the owner's latest games, newest first
func (r *GameRepo) GetRecentGames(owner string, limit int) ([]domain.GameRecord, error) {
	query := `
		SELECT id, owner, category_ids, titles, started_at
		FROM games
		WHERE owner = $1
		ORDER BY started_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(query, owner, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []domain.GameRecord
	for rows.Next() {
		var g domain.GameRecord
		var ids pq.Int64Array
		var titles pq.StringArray
		if err := rows.Scan(&g.ID, &g.Owner, &ids, &titles, &g.StartedAt); err != nil {
			return nil, err
		}
		g.CategoryIDs = make([]int, len(ids))
		for i, id := range ids {
			g.CategoryIDs[i] = int(id)
		}
		g.Titles = []string(titles)
		games = append(games, g)
	}

	return games, rows.Err()
}

// CleanOldGames deletes games older than specified days
func (r *GameRepo) CleanOldGames(days int) error {
	query := `
		DELETE FROM games
		WHERE started_at < NOW() - INTERVAL '1 day' * $1
	`
	_, err := r.db.Exec(query, days)
	return err
}
