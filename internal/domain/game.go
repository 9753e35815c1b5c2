package domain

import "time"

// GameRecord is a log entry for one board that was dealt to an owner
type GameRecord struct {
	ID          int
	Owner       string
	CategoryIDs []int
	Titles      []string
	StartedAt   time.Time
}
