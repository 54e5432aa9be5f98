package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"jobswipe/internal/domain"
	"jobswipe/internal/repository"
	"jobswipe/internal/service"
)

const defaultImportance = 3

// UserHandler mantiene dependencias para endpoints de perfiles.
type UserHandler struct {
	logger  *zap.Logger
	users   repository.UserRepository
	jwtServ *service.JWTService
}

// NewUserHandler crea una instancia de UserHandler con dependencias necesarias.
func NewUserHandler(logger *zap.Logger, users repository.UserRepository, jwtServ *service.JWTService) *UserHandler {
	return &UserHandler{
		logger:  logger,
		users:   users,
		jwtServ: jwtServ,
	}
}

// CreateUser maneja POST /api/users (onboarding).
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req struct {
		Location              string   `json:"location" binding:"required"`
		Latitude              *float64 `json:"latitude"`
		Longitude             *float64 `json:"longitude"`
		Industry              string   `json:"industry"`
		Occupation            string   `json:"occupation"`
		Skills                []string `json:"skills"`
		LocationImportance    int      `json:"location_importance" binding:"omitempty,min=1,max=5"`
		IndustryImportance    int      `json:"industry_importance" binding:"omitempty,min=1,max=5"`
		SalaryImportance      int      `json:"salary_importance" binding:"omitempty,min=1,max=5"`
		GrowthImportance      int      `json:"growth_importance" binding:"omitempty,min=1,max=5"`
		FlexibilityImportance int      `json:"flexibility_importance" binding:"omitempty,min=1,max=5"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create user request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	now := time.Now().UTC()
	user := domain.UserProfile{
		ID:                    uuid.NewString(),
		Location:              req.Location,
		Latitude:              req.Latitude,
		Longitude:             req.Longitude,
		Industry:              req.Industry,
		Occupation:            req.Occupation,
		Skills:                req.Skills,
		LocationImportance:    importanceOrDefault(req.LocationImportance),
		IndustryImportance:    importanceOrDefault(req.IndustryImportance),
		SalaryImportance:      importanceOrDefault(req.SalaryImportance),
		GrowthImportance:      importanceOrDefault(req.GrowthImportance),
		FlexibilityImportance: importanceOrDefault(req.FlexibilityImportance),
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := h.users.Create(c.Request.Context(), user); err != nil {
		h.logger.Error("create user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
		return
	}

	resp := gin.H{"user": user}
	if h.jwtServ != nil && h.jwtServ.Enabled() {
		tokens, err := h.jwtServ.GeneratePair(user.ID)
		if err != nil {
			h.logger.Error("jwt issue failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue tokens"})
			return
		}
		resp["tokens"] = tokens
	}

	c.JSON(http.StatusCreated, resp)
}

// GetUser maneja GET /api/users/:id.
func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Param("id")
	if !authorizedFor(c, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logger.Error("get user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdatePreferences maneja PUT /api/users/:id/preferences. Solo los
// campos presentes en el cuerpo se actualizan.
func (h *UserHandler) UpdatePreferences(c *gin.Context) {
	userID := c.Param("id")
	if !authorizedFor(c, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	var req struct {
		Location              *string   `json:"location"`
		Latitude              *float64  `json:"latitude"`
		Longitude             *float64  `json:"longitude"`
		Industry              *string   `json:"industry"`
		Occupation            *string   `json:"occupation"`
		Skills                *[]string `json:"skills"`
		LocationImportance    *int      `json:"location_importance" binding:"omitempty,min=1,max=5"`
		IndustryImportance    *int      `json:"industry_importance" binding:"omitempty,min=1,max=5"`
		SalaryImportance      *int      `json:"salary_importance" binding:"omitempty,min=1,max=5"`
		GrowthImportance      *int      `json:"growth_importance" binding:"omitempty,min=1,max=5"`
		FlexibilityImportance *int      `json:"flexibility_importance" binding:"omitempty,min=1,max=5"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update preferences request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.logger.Error("get user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update preferences"})
		return
	}

	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Latitude != nil {
		user.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		user.Longitude = req.Longitude
	}
	if req.Industry != nil {
		user.Industry = *req.Industry
	}
	if req.Occupation != nil {
		user.Occupation = *req.Occupation
	}
	if req.Skills != nil {
		user.Skills = *req.Skills
	}
	if req.LocationImportance != nil {
		user.LocationImportance = *req.LocationImportance
	}
	if req.IndustryImportance != nil {
		user.IndustryImportance = *req.IndustryImportance
	}
	if req.SalaryImportance != nil {
		user.SalaryImportance = *req.SalaryImportance
	}
	if req.GrowthImportance != nil {
		user.GrowthImportance = *req.GrowthImportance
	}
	if req.FlexibilityImportance != nil {
		user.FlexibilityImportance = *req.FlexibilityImportance
	}
	user.UpdatedAt = time.Now().UTC()

	if err := h.users.Update(c.Request.Context(), user); err != nil {
		h.logger.Error("update preferences failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update preferences"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// RefreshToken maneja POST /api/auth/refresh.
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	tokens, err := h.jwtServ.RefreshPair(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tokens": tokens})
}

func importanceOrDefault(v int) int {
	if v == 0 {
		return defaultImportance
	}
	return v
}
