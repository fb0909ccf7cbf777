package repository

import (
	"context"

	"immo-assistant/internal/model"
)

// SessionStore persists chat sessions: the accumulated preferences and the
// append-only message log of each session
type SessionStore interface {
	// CreateSession stores the initial preferences of a new session
	CreateSession(ctx context.Context, sessionID string, prefs model.UserPreferences) error
	// GetPreferences returns nil, nil when the session does not exist
	GetPreferences(ctx context.Context, sessionID string) (*model.UserPreferences, error)
	SavePreferences(ctx context.Context, sessionID string, prefs model.UserPreferences) error
	// AppendMessages adds messages to the end of the session log, in order
	AppendMessages(ctx context.Context, sessionID string, messages ...model.Message) error
	// ListMessages returns the session log oldest first
	ListMessages(ctx context.Context, sessionID string) ([]model.Message, error)
	Close() error
}
