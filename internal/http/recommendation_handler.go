package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobswipe/internal/service"
)

// RecommendationHandler mantiene dependencias para endpoints de
// recomendaciones.
type RecommendationHandler struct {
	logger *zap.Logger
	recs   *service.RecommendationService
}

// NewRecommendationHandler crea una instancia con dependencias necesarias.
func NewRecommendationHandler(logger *zap.Logger, recs *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		logger: logger,
		recs:   recs,
	}
}

// GetRecommendations maneja GET /api/users/:id/recommendations.
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	userID := c.Param("id")
	if !authorizedFor(c, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < service.MinRecommendationLimit || v > service.MaxRecommendationLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 50"})
			return
		}
		limit = v
	}

	recs, err := h.recs.RecommendForUser(c.Request.Context(), userID, limit)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logger.Error("get recommendations failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get recommendations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}
