// File: travix/handlers/trip.go
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"travix/models"
	"travix/services/intelligence"
	"travix/services/trip"
	"travix/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// turnTimeout bounds a whole turn, including model calls and searches.
const turnTimeout = 45 * time.Second

// TripHandler exposes the trip planner over HTTP. Store is optional; without
// it callers must echo the context back themselves.
type TripHandler struct {
	Service trip.TripService
	Store   intelligence.ContextStore
	Logger  *zap.Logger
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(svc trip.TripService, store intelligence.ContextStore, logger *zap.Logger) *TripHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TripHandler{
		Service: svc,
		Store:   store,
		Logger:  logger,
	}
}

// turnBody is the wire form of a turn. Context is a pointer so a missing
// context can be told apart from an empty one.
type turnBody struct {
	Message   string               `json:"message"`
	Context   *models.TripContext  `json:"context"`
	SessionID string               `json:"sessionId"`
	Selection *models.Selection    `json:"selection"`
	History   []models.ChatMessage `json:"history"`
}

// HandleTurn runs one conversational turn.
func (h *TripHandler) HandleTurn(c *gin.Context) {
	var body turnBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), turnTimeout)
	defer cancel()

	req := models.TurnRequest{
		Message:   body.Message,
		SessionID: body.SessionID,
		Selection: body.Selection,
		History:   body.History,
	}
	switch {
	case body.Context != nil:
		req.Context = *body.Context
	case body.SessionID != "" && h.Store != nil:
		stored, found, err := h.Store.Get(ctx, body.SessionID)
		if err != nil {
			h.Logger.Error("Failed to load trip context", zap.String("sessionID", body.SessionID), zap.Error(err))
		} else if found {
			req.Context = stored
		}
	}

	res, err := h.Service.ProcessTurn(ctx, req)
	if err != nil {
		if errors.Is(err, trip.ErrEmptyMessage) || errors.Is(err, trip.ErrInvalidContext) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid turn", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process turn", err.Error())
		return
	}

	if body.SessionID != "" && h.Store != nil {
		if err := h.Store.Set(ctx, body.SessionID, res.Context); err != nil {
			h.Logger.Error("Failed to store trip context", zap.String("sessionID", body.SessionID), zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, res)
}

// ClearSession drops a stored conversation context.
func (h *TripHandler) ClearSession(c *gin.Context) {
	if h.Store == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Session storage is not configured", "")
		return
	}
	sessionID := c.Param("sessionID")
	if err := h.Store.Clear(c.Request.Context(), sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to clear session", err.Error())
		return
	}
	h.Logger.Info("Cleared trip session", zap.String("sessionID", sessionID))
	c.JSON(http.StatusOK, gin.H{"message": "Session cleared"})
}
