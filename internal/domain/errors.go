package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotReady is returned for board operations on a session without a board
	ErrNotReady = errors.New("game is not ready")
	// ErrSessionNotFound is returned when no session exists for an owner
	ErrSessionNotFound = errors.New("game session not found")
)

// FetchError means a single category could not be fetched or was malformed
type FetchError struct {
	CategoryID int
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch category %d: %v", e.CategoryID, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// BoardBuildError aborts a board build after a failed category fetch
type BoardBuildError struct {
	Column int
	Err    error
}

func (e *BoardBuildError) Error() string {
	return fmt.Sprintf("build board column %d: %v", e.Column, e.Err)
}

func (e *BoardBuildError) Unwrap() error { return e.Err }

// SessionStartError surfaces a failed board build to the session layer
type SessionStartError struct {
	Err error
}

func (e *SessionStartError) Error() string {
	return fmt.Sprintf("start session: %v", e.Err)
}

func (e *SessionStartError) Unwrap() error { return e.Err }

// IndexError means a cell lookup fell outside the board
type IndexError struct {
	Row int
	Col int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("no clue at row %d, column %d", e.Row, e.Col)
}
