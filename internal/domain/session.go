package domain

// SessionState is the lifecycle state of a game session
type SessionState string

const (
	SessionNotStarted SessionState = "not_started"
	SessionReady      SessionState = "ready"
)
