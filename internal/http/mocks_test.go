package http

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"jobswipe/internal/domain"
	"jobswipe/internal/repository"
)

// Mocks minimos de repositorio para los tests de handlers.

type stubUserRepo struct {
	users   map[string]domain.UserProfile
	created []domain.UserProfile
	updated []domain.UserProfile
}

func newStubUserRepo(users ...domain.UserProfile) *stubUserRepo {
	repo := &stubUserRepo{users: make(map[string]domain.UserProfile)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (s *stubUserRepo) Create(_ context.Context, user domain.UserProfile) error {
	s.users[user.ID] = user
	s.created = append(s.created, user)
	return nil
}

func (s *stubUserRepo) GetByID(_ context.Context, id string) (domain.UserProfile, error) {
	user, ok := s.users[id]
	if !ok {
		return domain.UserProfile{}, pgx.ErrNoRows
	}
	return user, nil
}

func (s *stubUserRepo) Update(_ context.Context, user domain.UserProfile) error {
	s.users[user.ID] = user
	s.updated = append(s.updated, user)
	return nil
}

func (s *stubUserRepo) UpdateLearnedPreferences(_ context.Context, id string, prefs *domain.LearnedPreferences) error {
	user := s.users[id]
	user.LearnedPreferences = prefs
	s.users[id] = user
	return nil
}

type stubJobRepo struct {
	jobs       map[string]domain.JobListing
	candidates []domain.JobListing
	searched   []domain.JobListing
}

func newStubJobRepo(jobs ...domain.JobListing) *stubJobRepo {
	repo := &stubJobRepo{jobs: make(map[string]domain.JobListing)}
	for _, j := range jobs {
		repo.jobs[j.ID] = j
	}
	return repo
}

func (s *stubJobRepo) Create(_ context.Context, job domain.JobListing) error {
	s.jobs[job.ID] = job
	return nil
}

func (s *stubJobRepo) GetByID(_ context.Context, id string) (domain.JobListing, error) {
	job, ok := s.jobs[id]
	if !ok {
		return domain.JobListing{}, pgx.ErrNoRows
	}
	return job, nil
}

func (s *stubJobRepo) ListByIDs(_ context.Context, ids []string) ([]domain.JobListing, error) {
	out := make([]domain.JobListing, 0, len(ids))
	for _, id := range ids {
		if job, ok := s.jobs[id]; ok {
			out = append(out, job)
		}
	}
	return out, nil
}

func (s *stubJobRepo) ListCandidates(_ context.Context, filter repository.CandidateFilter) ([]domain.JobListing, error) {
	excluded := make(map[string]struct{}, len(filter.ExcludeIDs))
	for _, id := range filter.ExcludeIDs {
		excluded[id] = struct{}{}
	}
	out := make([]domain.JobListing, 0, len(s.candidates))
	for _, job := range s.candidates {
		if _, skip := excluded[job.ID]; skip {
			continue
		}
		out = append(out, job)
	}
	return out, nil
}

func (s *stubJobRepo) Search(_ context.Context, _ repository.SearchFilter) ([]domain.JobListing, error) {
	return s.searched, nil
}

func (s *stubJobRepo) Count(_ context.Context) (int, error) {
	return len(s.jobs), nil
}

func (s *stubJobRepo) DeleteExpired(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

type stubInteractionRepo struct {
	created []domain.Interaction
	history []domain.Interaction
	seen    []string
	count   int
}

func (s *stubInteractionRepo) Create(_ context.Context, itx domain.Interaction) error {
	s.created = append(s.created, itx)
	return nil
}

func (s *stubInteractionRepo) ListRecentByKinds(_ context.Context, _ string, _ []string, _ int) ([]domain.Interaction, error) {
	return nil, nil
}

func (s *stubInteractionRepo) CountByKinds(_ context.Context, _ string, _ []string) (int, error) {
	return s.count, nil
}

func (s *stubInteractionRepo) ListSeenJobIDs(_ context.Context, _ string) ([]string, error) {
	return s.seen, nil
}

func (s *stubInteractionRepo) ListByUser(_ context.Context, _ string, _, _ int) ([]domain.Interaction, error) {
	return s.history, nil
}

func (s *stubInteractionRepo) ListActiveUserIDs(_ context.Context, _ time.Time) ([]string, error) {
	return nil, nil
}
