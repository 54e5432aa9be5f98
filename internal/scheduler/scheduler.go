// Package scheduler corre las tareas periodicas del servicio: el barrido
// de re-aprendizaje de preferencias y la purga de avisos vencidos.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"jobswipe/internal/repository"
	"jobswipe/internal/service"
)

// activityWindow limita el barrido a usuarios con swipes recientes.
const activityWindow = 24 * time.Hour

// Scheduler envuelve robfig/cron y coordina las corridas periodicas.
type Scheduler struct {
	cron         *cron.Cron
	logger       *zap.Logger
	learner      *service.PreferenceLearner
	jobs         repository.JobRepository
	interactions repository.InteractionRepository
	relearnSpec  string
	pruneSpec    string
}

func New(
	logger *zap.Logger,
	learner *service.PreferenceLearner,
	jobs repository.JobRepository,
	interactions repository.InteractionRepository,
	relearnSpec, pruneSpec string,
) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		logger:       logger,
		learner:      learner,
		jobs:         jobs,
		interactions: interactions,
		relearnSpec:  relearnSpec,
		pruneSpec:    pruneSpec,
	}
}

// Start registra las tareas y arranca el cron.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.relearnSpec, func() {
		s.runRelearn(ctx)
	}); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(s.pruneSpec, func() {
		s.runPrune(ctx)
	}); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started",
		zap.String("relearn_spec", s.relearnSpec),
		zap.String("prune_spec", s.pruneSpec),
	)
	return nil
}

// Stop detiene el cron sin esperar tareas en curso.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("scheduler stopped")
}

// runRelearn recalcula preferencias para los usuarios con actividad de
// swipes reciente, cubriendo los casos donde el disparo cada N swipes no
// llego a correr.
func (s *Scheduler) runRelearn(ctx context.Context) {
	since := time.Now().UTC().Add(-activityWindow)
	userIDs, err := s.interactions.ListActiveUserIDs(ctx, since)
	if err != nil {
		s.logger.Error("relearn sweep: list active users", zap.Error(err))
		return
	}
	for _, userID := range userIDs {
		if _, err := s.learner.LearnFromSwipes(ctx, userID); err != nil {
			s.logger.Warn("relearn sweep: learn failed",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
	}
	s.logger.Info("relearn sweep complete", zap.Int("users", len(userIDs)))
}

// runPrune borra avisos vencidos sin interacciones registradas.
func (s *Scheduler) runPrune(ctx context.Context) {
	removed, err := s.jobs.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		s.logger.Error("prune expired listings", zap.Error(err))
		return
	}
	s.logger.Info("expired listings pruned", zap.Int64("removed", removed))
}
