package http

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"jobswipe/internal/repository"
	"jobswipe/internal/service"
)

// JobHandler mantiene dependencias para endpoints de avisos.
type JobHandler struct {
	logger *zap.Logger
	jobs   repository.JobRepository
	users  repository.UserRepository
	engine service.MatchEngine
}

// NewJobHandler crea una instancia de JobHandler con dependencias necesarias.
func NewJobHandler(logger *zap.Logger, jobs repository.JobRepository, users repository.UserRepository) *JobHandler {
	return &JobHandler{
		logger: logger,
		jobs:   jobs,
		users:  users,
		engine: service.DefaultMatchEngine,
	}
}

// ListJobs maneja GET /api/jobs. Con user_id cada aviso lleva su
// match_score y la pagina se ordena por puntaje descendente.
func (h *JobHandler) ListJobs(c *gin.Context) {
	skip := parseIntQuery(c, "skip", 0, 0, 1<<30)
	limit := parseIntQuery(c, "limit", 20, 1, 100)

	filter := repository.SearchFilter{
		LocationContains: c.Query("location"),
		IndustryContains: c.Query("industry"),
	}
	if raw := c.Query("min_salary"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinSalary = &v
		}
	}

	jobs, err := h.jobs.Search(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("search jobs failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list jobs"})
		return
	}
	total := len(jobs)

	if userID := c.Query("user_id"); userID != "" {
		user, err := h.users.GetByID(c.Request.Context(), userID)
		if err == nil {
			for i := range jobs {
				score := h.engine.Score(user, jobs[i])
				jobs[i].MatchScore = &score
			}
			sort.SliceStable(jobs, func(i, j int) bool {
				return *jobs[i].MatchScore > *jobs[j].MatchScore
			})
		} else if !errors.Is(err, pgx.ErrNoRows) {
			h.logger.Error("get user for job scoring failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list jobs"})
			return
		}
	}

	if skip > len(jobs) {
		skip = len(jobs)
	}
	end := skip + limit
	if end > len(jobs) {
		end = len(jobs)
	}

	c.JSON(http.StatusOK, gin.H{
		"total": total,
		"skip":  skip,
		"limit": limit,
		"jobs":  jobs[skip:end],
	})
}

// GetJob maneja GET /api/jobs/:id.
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobs.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
			return
		}
		h.logger.Error("get job failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get job"})
		return
	}

	if userID := c.Query("user_id"); userID != "" {
		if user, err := h.users.GetByID(c.Request.Context(), userID); err == nil {
			score := h.engine.Score(user, job)
			job.MatchScore = &score
		}
	}

	c.JSON(http.StatusOK, gin.H{"job": job})
}

func parseIntQuery(c *gin.Context, name string, def, min, max int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
