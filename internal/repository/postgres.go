package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"immo-assistant/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS chat_sessions (
	session_id  TEXT PRIMARY KEY,
	preferences JSONB NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS chat_messages (
	id          TEXT PRIMARY KEY,
	session_id  TEXT NOT NULL REFERENCES chat_sessions (session_id) ON DELETE CASCADE,
	sender      TEXT NOT NULL,
	text        TEXT NOT NULL,
	suggestions JSONB,
	attachment  JSONB,
	created_at  TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_chat_messages_session ON chat_messages (session_id, id);
`

// PostgresStore keeps sessions in PostgreSQL
type PostgresStore struct {
	db *sqlx.DB
}

// connect opens and pings the database; tests swap it out
var connect = sqlx.ConnectContext

// NewPostgresStore connects to PostgreSQL and creates the schema if needed.
// dsn is handed to lib/pq unchanged, in URL or key=value form.
func NewPostgresStore(ctx context.Context, dsn string, maxConn, maxIdleConn int) (*PostgresStore, error) {
	db, err := connect(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	store := NewPostgresStoreFromDB(db)
	if err := store.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// NewPostgresStoreFromDB wraps an open connection
func NewPostgresStoreFromDB(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the session tables
func (r *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the database connection
func (r *PostgresStore) Close() error {
	return r.db.Close()
}

// CreateSession inserts a new session row
func (r *PostgresStore) CreateSession(ctx context.Context, sessionID string, prefs model.UserPreferences) error {
	query := `INSERT INTO chat_sessions (session_id, preferences) VALUES ($1, $2)`
	if _, err := r.db.ExecContext(ctx, query, sessionID, prefs); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetPreferences loads the preferences of a session
func (r *PostgresStore) GetPreferences(ctx context.Context, sessionID string) (*model.UserPreferences, error) {
	var prefs model.UserPreferences
	query := `SELECT preferences FROM chat_sessions WHERE session_id = $1`
	err := r.db.GetContext(ctx, &prefs, query, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	return &prefs, nil
}

// SavePreferences upserts the preferences of a session
func (r *PostgresStore) SavePreferences(ctx context.Context, sessionID string, prefs model.UserPreferences) error {
	query := `
		INSERT INTO chat_sessions (session_id, preferences)
		VALUES ($1, $2)
		ON CONFLICT (session_id)
		DO UPDATE SET preferences = EXCLUDED.preferences, updated_at = NOW()
	`
	if _, err := r.db.ExecContext(ctx, query, sessionID, prefs); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// AppendMessages inserts messages in one transaction
func (r *PostgresStore) AppendMessages(ctx context.Context, sessionID string, messages ...model.Message) error {
	if len(messages) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO chat_messages (id, session_id, sender, text, suggestions, attachment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for _, m := range messages {
		_, err := tx.ExecContext(ctx, query, m.ID, sessionID, string(m.Sender), m.Text, m.Suggestions, m.Attachment, m.Timestamp)
		if err != nil {
			return fmt.Errorf("failed to append message %s: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListMessages returns the session log ordered by message id
func (r *PostgresStore) ListMessages(ctx context.Context, sessionID string) ([]model.Message, error) {
	messages := []model.Message{}
	query := `
		SELECT id, sender, text, suggestions, attachment, created_at
		FROM chat_messages
		WHERE session_id = $1
		ORDER BY id
	`
	if err := r.db.SelectContext(ctx, &messages, query, sessionID); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}
