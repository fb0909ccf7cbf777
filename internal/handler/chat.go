package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"immo-assistant/internal/model"
	"immo-assistant/internal/service"
)

// ChatHandler handles chat-related HTTP requests
type ChatHandler struct {
	chat   *service.ChatService
	logger *zap.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chat *service.ChatService, logger *zap.Logger) *ChatHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatHandler{
		chat:   chat,
		logger: logger,
	}
}

// Register mounts the chat routes on api
func (h *ChatHandler) Register(api *gin.RouterGroup) {
	api.POST("/sessions", h.StartSession)
	api.GET("/sessions/:id/messages", h.Messages)
	api.GET("/sessions/:id/preferences", h.Preferences)
	api.POST("/chat", h.Chat)
	api.POST("/chat/stream", h.ChatStream)
}

// StartSession handles POST /api/v1/sessions
func (h *ChatHandler) StartSession(c *gin.Context) {
	session, err := h.chat.StartSession(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to start session", err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// Chat handles POST /api/v1/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	response, err := h.chat.Chat(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, "Chat failed", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ChatStream handles POST /api/v1/chat/stream - SSE chat turn.
// Events: start, topic, reply, done (or error).
func (h *ChatHandler) ChatStream(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// Set SSE headers
	c.Header("Content-Type", "text/event-stream; charset=utf-8")
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Streaming not supported"})
		return
	}

	sendSSE(c, "start", map[string]any{"session_id": req.SessionID})
	flusher.Flush()

	response, err := h.chat.Chat(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("Chat stream failed", zap.Error(err))
		sendSSE(c, "error", map[string]any{"error": err.Error()})
		flusher.Flush()
		return
	}

	sendSSE(c, "topic", map[string]any{"session_id": response.SessionID, "topic": response.Topic})
	flusher.Flush()

	sendSSE(c, "reply", response)
	flusher.Flush()

	sendSSE(c, "done", nil)
	flusher.Flush()
}

// Messages handles GET /api/v1/sessions/:id/messages
func (h *ChatHandler) Messages(c *gin.Context) {
	sessionID := c.Param("id")
	messages, err := h.chat.Messages(c.Request.Context(), sessionID)
	if err != nil {
		h.fail(c, "Failed to get messages", err)
		return
	}

	c.JSON(http.StatusOK, model.MessagesResponse{
		SessionID: sessionID,
		Messages:  messages,
	})
}

// Preferences handles GET /api/v1/sessions/:id/preferences
func (h *ChatHandler) Preferences(c *gin.Context) {
	prefs, err := h.chat.Preferences(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "Failed to get preferences", err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// fail maps service errors to status codes
func (h *ChatHandler) fail(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	default:
		h.logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg + ": " + err.Error()})
	}
}

// sendSSE sends a Server-Sent Event
func sendSSE(c *gin.Context, event string, data any) {
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			fmt.Fprintf(c.Writer, "event: error\ndata: {\"error\": \"JSON marshal failed\"}\n\n")
			return
		}
		fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event, string(jsonData))
	} else {
		fmt.Fprintf(c.Writer, "event: %s\ndata: {}\n\n", event)
	}
}
