package handlers

import (
	"net/http"

	"meetwise/config"
	"meetwise/models"
	"meetwise/services/conversation"
	"meetwise/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatRequest is the input for one conversational turn.
type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
	Timezone  string `json:"timezone"`
}

// ChatResponse carries the assistant reply plus the structured turn results a
// client needs to render slots and confirmation prompts.
type ChatResponse struct {
	SessionID         string                      `json:"session_id"`
	Reply             string                      `json:"reply"`
	NeedsConfirmation bool                        `json:"needs_confirmation"`
	Confirmation      *models.ConfirmationPayload `json:"confirmation,omitempty"`
	AvailableSlots    []models.FreeSlot           `json:"available_slots,omitempty"`
}

// ChatHandler exposes the conversation core over HTTP.
type ChatHandler struct {
	Orchestrator *conversation.Orchestrator
	Sessions     conversation.SessionStore
}

func NewChatHandler(orc *conversation.Orchestrator, sessions conversation.SessionStore) *ChatHandler {
	return &ChatHandler{Orchestrator: orc, Sessions: sessions}
}

// HandleChat runs one turn: load session, process, persist, reply.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	logger := utils.GetLogger()

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	timezone := req.Timezone
	if timezone == "" {
		timezone = config.AppConfig.DefaultTimezone
	}

	state, err := h.Sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		logger.Error("failed to load session", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
		return
	}

	out := h.Orchestrator.ProcessTurn(c.Request.Context(), models.TurnInput{
		Text:         req.Message,
		SessionID:    sessionID,
		UserTimezone: timezone,
		History:      state.History,
		Context:      state.Context,
	})

	state.History = out.History
	state.Context = out.Context
	state.PendingConfirmation = out.Confirmation
	if err := h.Sessions.Set(c.Request.Context(), sessionID, state); err != nil {
		logger.Error("failed to save session", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save session"})
		return
	}

	c.JSON(http.StatusOK, ChatResponse{
		SessionID:         sessionID,
		Reply:             lastAssistantMessage(out.History),
		NeedsConfirmation: out.NeedsConfirmation,
		Confirmation:      out.Confirmation,
		AvailableSlots:    out.AvailableSlots,
	})
}

// GetHistory returns the full transcript of a session.
func (h *ChatHandler) GetHistory(c *gin.Context) {
	sessionID := c.Param("sessionID")
	state, err := h.Sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "history": state.History})
}

// ClearSession drops the session's history, context, and pending confirmation.
func (h *ChatHandler) ClearSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Sessions.Clear(c.Request.Context(), sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to clear session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "status": "cleared"})
}

func lastAssistantMessage(history []models.ChatMessage) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == "assistant" {
			return history[i].Content
		}
	}
	return ""
}
