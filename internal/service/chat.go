package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"immo-assistant/internal/model"
	"immo-assistant/internal/repository"
)

var (
	// ErrEmptyMessage is returned for a blank chat message
	ErrEmptyMessage = errors.New("message is required")
	// ErrSessionNotFound is returned when a session id is unknown
	ErrSessionNotFound = errors.New("session not found")
)

// ChatService runs conversations whose state lives in a SessionStore.
// It owns no preference state itself.
type ChatService struct {
	store    repository.SessionStore
	engine   *Engine
	language string
	logger   *zap.Logger
	now      func() time.Time

	mu      sync.Mutex // guards entropy
	entropy *ulid.MonotonicEntropy

	turns [sessionLockStripes]sync.Mutex // serialises turns per session
}

const sessionLockStripes = 64

// NewChatService creates a chat service. language seeds the preferences of new sessions.
func NewChatService(store repository.SessionStore, engine *Engine, language string, logger *zap.Logger) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{
		store:    store,
		engine:   engine,
		language: language,
		logger:   logger,
		now:      time.Now,
		entropy:  ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

// StartSession creates a session and logs the welcome message
func (s *ChatService) StartSession(ctx context.Context) (*model.SessionResponse, error) {
	sessionID := uuid.New().String()
	prefs := model.NewUserPreferences(s.language)

	if err := s.store.CreateSession(ctx, sessionID, prefs); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	welcome := s.newMessage(model.SenderAssistant, s.engine.Welcome(prefs))
	if err := s.store.AppendMessages(ctx, sessionID, welcome); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	s.logger.Info("Session started", zap.String("session_id", sessionID))
	return &model.SessionResponse{SessionID: sessionID, Preferences: prefs}, nil
}

// Chat handles one user turn. An empty or unknown session id starts a new session.
// Turns on the same session are serialised within this process only; several
// replicas sharing a store must route a session to a single replica.
func (s *ChatService) Chat(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	sessionID := req.SessionID
	var prefs *model.UserPreferences
	if sessionID != "" {
		unlock := s.lockSession(sessionID)
		defer unlock()

		var err error
		if prefs, err = s.store.GetPreferences(ctx, sessionID); err != nil {
			return nil, fmt.Errorf("load session %s: %w", sessionID, err)
		}
	}
	if prefs == nil {
		started, err := s.StartSession(ctx)
		if err != nil {
			return nil, err
		}
		sessionID = started.SessionID
		prefs = &started.Preferences
	}

	turn := s.engine.HandleTurn(text, *prefs, req.PageContext)

	userMsg := s.newMessage(model.SenderUser, model.Reply{Text: text})
	reply := s.newMessage(model.SenderAssistant, turn.Reply)
	if err := s.store.AppendMessages(ctx, sessionID, userMsg, reply); err != nil {
		return nil, fmt.Errorf("append messages: %w", err)
	}
	if err := s.store.SavePreferences(ctx, sessionID, turn.Preferences); err != nil {
		return nil, fmt.Errorf("save preferences: %w", err)
	}

	return &model.ChatResponse{
		SessionID:   sessionID,
		Topic:       turn.Topic,
		Reply:       reply,
		Preferences: turn.Preferences,
	}, nil
}

// Messages returns the conversation log of a session
func (s *ChatService) Messages(ctx context.Context, sessionID string) ([]model.Message, error) {
	if _, err := s.Preferences(ctx, sessionID); err != nil {
		return nil, err
	}
	messages, err := s.store.ListMessages(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

// Preferences returns what has been learned in a session
func (s *ChatService) Preferences(ctx context.Context, sessionID string) (*model.UserPreferences, error) {
	prefs, err := s.store.GetPreferences(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	if prefs == nil {
		return nil, ErrSessionNotFound
	}
	return prefs, nil
}

// lockSession holds the stripe of sessionID until the returned func is called
func (s *ChatService) lockSession(sessionID string) func() {
	m := &s.turns[xxhash.Sum64String(sessionID)%sessionLockStripes]
	m.Lock()
	return m.Unlock
}

func (s *ChatService) newMessage(sender model.Sender, reply model.Reply) model.Message {
	now := s.now()
	return model.Message{
		ID:          s.newID(now),
		Text:        reply.Text,
		Sender:      sender,
		Timestamp:   now,
		Suggestions: model.JSONArray(reply.Suggestions),
		Attachment:  reply.Attachment,
	}
}

// newID returns a ULID; ids minted in the same millisecond still sort in creation order
func (s *ChatService) newID(at time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(at), s.entropy).String()
}
