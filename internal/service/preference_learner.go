package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"jobswipe/internal/domain"
	"jobswipe/internal/metrics"
	"jobswipe/internal/repository"
)

const defaultLearnWindow = 30

// PreferenceLearner recalcula las preferencias implicitas de un usuario a
// partir de su historial reciente de swipes accepted/rejected.
type PreferenceLearner struct {
	logger       *zap.Logger
	users        repository.UserRepository
	jobs         repository.JobRepository
	interactions repository.InteractionRepository
	window       int
}

func NewPreferenceLearner(
	logger *zap.Logger,
	users repository.UserRepository,
	jobs repository.JobRepository,
	interactions repository.InteractionRepository,
	window int,
) *PreferenceLearner {
	if window <= 0 {
		window = defaultLearnWindow
	}
	return &PreferenceLearner{
		logger:       logger,
		users:        users,
		jobs:         jobs,
		interactions: interactions,
		window:       window,
	}
}

// LearnFromSwipes recalcula por completo las preferencias aprendidas desde
// las ultimas interacciones accepted/rejected y las persiste. Sin
// interacciones calificables es un no-op, no un error.
func (l *PreferenceLearner) LearnFromSwipes(ctx context.Context, userID string) (*domain.LearnedPreferences, error) {
	user, err := l.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	recent, err := l.interactions.ListRecentByKinds(ctx, userID, domain.LearnableKinds, l.window)
	if err != nil {
		return nil, err
	}
	if len(recent) == 0 {
		return user.LearnedPreferences, nil
	}

	var acceptedIDs, rejectedIDs []string
	for _, itx := range recent {
		switch itx.Kind {
		case domain.InteractionAccepted:
			acceptedIDs = append(acceptedIDs, itx.JobListingID)
		case domain.InteractionRejected:
			rejectedIDs = append(rejectedIDs, itx.JobListingID)
		}
	}

	acceptedJobs, err := l.jobs.ListByIDs(ctx, acceptedIDs)
	if err != nil {
		return nil, err
	}
	// Los avisos rechazados se resuelven por simetria; todavia no se
	// deriva ninguna estadistica de ellos.
	if _, err := l.jobs.ListByIDs(ctx, rejectedIDs); err != nil {
		return nil, err
	}

	if len(acceptedJobs) == 0 {
		// Nada que derivar: las preferencias previas quedan como estan,
		// pero el perfil registra que el aprendizaje corrio.
		if err := l.users.UpdateLearnedPreferences(ctx, userID, user.LearnedPreferences); err != nil {
			return nil, err
		}
		return user.LearnedPreferences, nil
	}

	prefs := derivePreferences(acceptedJobs)
	if err := l.users.UpdateLearnedPreferences(ctx, userID, prefs); err != nil {
		return nil, err
	}

	l.logger.Info("learned preferences updated",
		zap.String("user_id", userID),
		zap.Int("accepted", len(acceptedIDs)),
		zap.Int("rejected", len(rejectedIDs)),
	)
	metrics.PreferenceLearnerRuns.Inc()

	return prefs, nil
}

// derivePreferences construye el mapeo de preferencias desde cero, solo
// con los avisos aceptados.
func derivePreferences(accepted []domain.JobListing) *domain.LearnedPreferences {
	prefs := &domain.LearnedPreferences{}

	var salarySum float64
	var salaryCount int
	industries := make(map[string]int)
	remoteCount := 0
	var opportunitySum float64
	var opportunityCount int

	for _, job := range accepted {
		if job.SalaryMin != nil {
			salarySum += *job.SalaryMin
			salaryCount++
		}
		if job.Industry != "" {
			industries[job.Industry]++
		}
		if job.RemoteWork {
			remoteCount++
		}
		if job.OpportunityScore != nil {
			opportunitySum += *job.OpportunityScore
			opportunityCount++
		}
	}

	if salaryCount > 0 {
		mean := salarySum / float64(salaryCount)
		prefs.PreferredMinSalary = &mean
	}
	if len(industries) > 0 {
		prefs.PreferredIndustries = industries
	}
	affinity := float64(remoteCount) / float64(len(accepted))
	prefs.RemoteAffinity = &affinity
	if opportunityCount > 0 {
		mean := opportunitySum / float64(opportunityCount)
		prefs.PreferredOpportunityScore = &mean
	}

	return prefs
}
