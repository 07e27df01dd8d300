package handlers

import (
	"errors"
	"net/http"
	"time"

	"meetwise/models"
	"meetwise/services/booking"
	"meetwise/services/conversation"
	"meetwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConfirmRequest resolves a pending booking proposal.
type ConfirmRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Accept    *bool  `json:"accept" binding:"required"`
}

// ConfirmHandler executes or cancels the session's pending confirmation.
type ConfirmHandler struct {
	Bookings booking.BookingService
	Sessions conversation.SessionStore
}

func NewConfirmHandler(bookings booking.BookingService, sessions conversation.SessionStore) *ConfirmHandler {
	return &ConfirmHandler{Bookings: bookings, Sessions: sessions}
}

func (h *ConfirmHandler) HandleConfirm(c *gin.Context) {
	logger := utils.GetLogger()

	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	state, err := h.Sessions.Get(c.Request.Context(), req.SessionID)
	if err != nil {
		logger.Error("failed to load session", zap.String("sessionID", req.SessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load session"})
		return
	}
	if state.PendingConfirmation == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "no booking awaiting confirmation for this session"})
		return
	}

	if !*req.Accept {
		state.PendingConfirmation = nil
		h.appendAndSave(c, req.SessionID, state,
			"No problem, I won't book that. Is there anything else I can help you with?")
		return
	}

	record, err := h.Bookings.Confirm(c.Request.Context(), req.SessionID, *state.PendingConfirmation)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSlotTaken):
			state.PendingConfirmation = nil
			h.appendAndSave(c, req.SessionID, state,
				"I'm sorry, that slot was just taken. Would you like me to look for another time?")
		case errors.Is(err, booking.ErrSlotInPast):
			state.PendingConfirmation = nil
			h.appendAndSave(c, req.SessionID, state,
				"That time has already passed. Would you like me to suggest some upcoming slots?")
		default:
			logger.Error("booking confirmation failed", zap.String("sessionID", req.SessionID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "booking failed", "details": err.Error()})
		}
		return
	}

	state.PendingConfirmation = nil
	reply := "You're all set! I've booked your " + record.Title + " for " +
		utils.FormatFriendly(localStart(record)) + "."
	h.appendAndSaveWithBooking(c, req.SessionID, state, reply, record)
}

// ListBookings returns all bookings made in a session.
func (h *ConfirmHandler) ListBookings(c *gin.Context) {
	sessionID := c.Param("sessionID")
	records, err := h.Bookings.ListBySession(c.Request.Context(), sessionID)
	if err != nil {
		utils.GetLogger().Error("failed to list bookings", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "bookings": records})
}

func (h *ConfirmHandler) appendAndSave(c *gin.Context, sessionID string, state *conversation.SessionState, reply string) {
	h.appendAndSaveWithBooking(c, sessionID, state, reply, nil)
}

func (h *ConfirmHandler) appendAndSaveWithBooking(c *gin.Context, sessionID string, state *conversation.SessionState, reply string, record *models.BookingRecord) {
	state.History = append(state.History, models.ChatMessage{Role: "assistant", Content: reply})
	if err := h.Sessions.Set(c.Request.Context(), sessionID, state); err != nil {
		utils.GetLogger().Error("failed to save session", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save session"})
		return
	}

	resp := gin.H{"session_id": sessionID, "reply": reply}
	if record != nil {
		resp["booking"] = record
	}
	c.JSON(http.StatusOK, resp)
}

// localStart renders the booking start in the user's own timezone, falling
// back to UTC when the zone name does not resolve.
func localStart(record *models.BookingRecord) time.Time {
	loc, err := time.LoadLocation(record.UserTimezone)
	if err != nil {
		return record.StartUTC
	}
	return record.StartUTC.In(loc)
}
