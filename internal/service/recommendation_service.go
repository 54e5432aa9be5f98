package service

import (
	"context"
	"errors"
	"sort"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"jobswipe/internal/domain"
	"jobswipe/internal/metrics"
	"jobswipe/internal/repository"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrJobNotFound  = errors.New("job not found")
)

// Limites del parametro N de recomendaciones, validados por el handler.
const (
	MinRecommendationLimit = 1
	MaxRecommendationLimit = 50
)

// candidateOverfetch multiplica N al recuperar candidatos para que el
// orden final se decida por puntaje y no por orden de recuperacion.
const candidateOverfetch = 3

// RecommendationService filtra, puntua y ordena avisos para un usuario.
type RecommendationService struct {
	logger       *zap.Logger
	users        repository.UserRepository
	jobs         repository.JobRepository
	interactions repository.InteractionRepository
	cache        RecommendationCache
	engine       MatchEngine
}

func NewRecommendationService(
	logger *zap.Logger,
	users repository.UserRepository,
	jobs repository.JobRepository,
	interactions repository.InteractionRepository,
	cache RecommendationCache,
) *RecommendationService {
	return &RecommendationService{
		logger:       logger,
		users:        users,
		jobs:         jobs,
		interactions: interactions,
		cache:        cache,
		engine:       DefaultMatchEngine,
	}
}

// RecommendForUser resuelve el perfil y su conjunto de avisos ya vistos, y
// delega en Recommend. Sirve desde cache cuando hay una tanda fresca.
func (s *RecommendationService) RecommendForUser(ctx context.Context, userID string, limit int) ([]domain.Recommendation, error) {
	if s.cache != nil {
		if recs, ok := s.cache.Get(ctx, userID, limit); ok {
			metrics.RecommendationCacheHits.Inc()
			return recs, nil
		}
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	seen, err := s.interactions.ListSeenJobIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	recs, err := s.Recommend(ctx, user, seen, limit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, userID, limit, recs)
	}
	return recs, nil
}

// Recommend devuelve hasta limit avisos no vistos ordenados por puntaje
// descendente. Los empates conservan el orden de recuperacion.
func (s *RecommendationService) Recommend(ctx context.Context, user domain.UserProfile, excludeIDs []string, limit int) ([]domain.Recommendation, error) {
	if limit < MinRecommendationLimit {
		limit = MinRecommendationLimit
	}
	if limit > MaxRecommendationLimit {
		limit = MaxRecommendationLimit
	}

	filter := repository.CandidateFilter{
		ExcludeIDs: excludeIDs,
		Limit:      limit * candidateOverfetch,
	}
	if user.HasCoordinates() {
		filter.RequireCoordinates = true
	}
	if user.Industry != "" {
		filter.IndustryContains = user.Industry
	}

	jobs, err := s.jobs.ListCandidates(ctx, filter)
	if err != nil {
		return nil, err
	}

	recs := make([]domain.Recommendation, 0, len(jobs))
	for _, job := range jobs {
		score, reasons := s.engine.ScoreJob(user, job)
		recs = append(recs, domain.Recommendation{
			Job:        job,
			MatchScore: score,
			Reasons:    reasons,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].MatchScore > recs[j].MatchScore
	})

	if len(recs) > limit {
		recs = recs[:limit]
	}

	s.logger.Debug("recommendations ranked",
		zap.String("user_id", user.ID),
		zap.Int("candidates", len(jobs)),
		zap.Int("returned", len(recs)),
	)

	metrics.RecommendationsServed.Add(float64(len(recs)))
	return recs, nil
}
