package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobswipe/internal/service"
)

// SwipeHandler mantiene dependencias para endpoints de interacciones.
type SwipeHandler struct {
	logger *zap.Logger
	swipes *service.SwipeService
}

// NewSwipeHandler crea una instancia de SwipeHandler con dependencias necesarias.
func NewSwipeHandler(logger *zap.Logger, swipes *service.SwipeService) *SwipeHandler {
	return &SwipeHandler{
		logger: logger,
		swipes: swipes,
	}
}

// CreateSwipe maneja POST /api/swipes.
func (h *SwipeHandler) CreateSwipe(c *gin.Context) {
	var req struct {
		UserID       string   `json:"user_id" binding:"required"`
		JobListingID string   `json:"job_listing_id" binding:"required"`
		Kind         string   `json:"kind" binding:"required"`
		DeckPosition *int     `json:"deck_position"`
		SessionID    string   `json:"session_id"`
		AspectJudged string   `json:"aspect_judged"`
		DwellSeconds *float64 `json:"dwell_seconds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create swipe request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if !authorizedFor(c, req.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	itx, err := h.swipes.RecordSwipe(c.Request.Context(), service.SwipeInput{
		UserID:       req.UserID,
		JobListingID: req.JobListingID,
		Kind:         req.Kind,
		DeckPosition: req.DeckPosition,
		SessionID:    req.SessionID,
		AspectJudged: req.AspectJudged,
		DwellSeconds: req.DwellSeconds,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInteraction):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid interaction kind"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, service.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "job listing not found"})
		default:
			h.logger.Error("create swipe failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record swipe"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"interaction": itx})
}

// ListUserSwipes maneja GET /api/users/:id/swipes.
func (h *SwipeHandler) ListUserSwipes(c *gin.Context) {
	userID := c.Param("id")
	if !authorizedFor(c, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	skip := parseIntQuery(c, "skip", 0, 0, 1<<30)
	limit := parseIntQuery(c, "limit", 50, 1, 100)

	items, err := h.swipes.History(c.Request.Context(), userID, skip, limit)
	if err != nil {
		h.logger.Error("list swipes failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list swipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"interactions": items})
}
