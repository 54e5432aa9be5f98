package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"jobswipe/internal/domain"
	"jobswipe/internal/metrics"
	"jobswipe/internal/repository"
)

var ErrInvalidInteraction = errors.New("invalid interaction kind")

const defaultLearnEvery = 3

// SwipeService registra interacciones usuario-aviso y dispara el
// aprendizaje de preferencias cada N interacciones accepted/rejected.
type SwipeService struct {
	logger       *zap.Logger
	users        repository.UserRepository
	jobs         repository.JobRepository
	interactions repository.InteractionRepository
	learner      *PreferenceLearner
	cache        RecommendationCache
	learnEvery   int
}

func NewSwipeService(
	logger *zap.Logger,
	users repository.UserRepository,
	jobs repository.JobRepository,
	interactions repository.InteractionRepository,
	learner *PreferenceLearner,
	cache RecommendationCache,
	learnEvery int,
) *SwipeService {
	if learnEvery <= 0 {
		learnEvery = defaultLearnEvery
	}
	return &SwipeService{
		logger:       logger,
		users:        users,
		jobs:         jobs,
		interactions: interactions,
		learner:      learner,
		cache:        cache,
		learnEvery:   learnEvery,
	}
}

// SwipeInput es el contenido de una interaccion entrante.
type SwipeInput struct {
	UserID       string
	JobListingID string
	Kind         string
	DeckPosition *int
	SessionID    string
	AspectJudged string
	DwellSeconds *float64
}

// RecordSwipe valida y persiste una interaccion. Cada learnEvery
// interacciones accepted/rejected (contando la actual) recalcula las
// preferencias aprendidas del usuario.
func (s *SwipeService) RecordSwipe(ctx context.Context, input SwipeInput) (domain.Interaction, error) {
	if !domain.IsValidInteractionKind(input.Kind) {
		return domain.Interaction{}, ErrInvalidInteraction
	}

	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Interaction{}, ErrUserNotFound
		}
		return domain.Interaction{}, err
	}
	if _, err := s.jobs.GetByID(ctx, input.JobListingID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Interaction{}, ErrJobNotFound
		}
		return domain.Interaction{}, err
	}

	itx := domain.Interaction{
		ID:           uuid.NewString(),
		UserID:       input.UserID,
		JobListingID: input.JobListingID,
		Kind:         input.Kind,
		DeckPosition: input.DeckPosition,
		SessionID:    input.SessionID,
		AspectJudged: input.AspectJudged,
		DwellSeconds: input.DwellSeconds,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.interactions.Create(ctx, itx); err != nil {
		return domain.Interaction{}, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, input.UserID)
	}
	metrics.SwipesRecorded.WithLabelValues(input.Kind).Inc()

	if input.Kind == domain.InteractionAccepted || input.Kind == domain.InteractionRejected {
		count, err := s.interactions.CountByKinds(ctx, input.UserID, domain.LearnableKinds)
		if err != nil {
			s.logger.Warn("swipe count failed", zap.Error(err))
			return itx, nil
		}
		if count%s.learnEvery == 0 {
			if _, err := s.learner.LearnFromSwipes(ctx, input.UserID); err != nil {
				// El swipe ya quedo registrado; el aprendizaje se
				// reintenta en la proxima corrida.
				s.logger.Warn("preference learning failed", zap.Error(err))
			}
		}
	}

	return itx, nil
}

// History devuelve el historial de interacciones del usuario, mas
// recientes primero.
func (s *SwipeService) History(ctx context.Context, userID string, offset, limit int) ([]domain.Interaction, error) {
	return s.interactions.ListByUser(ctx, userID, offset, limit)
}
