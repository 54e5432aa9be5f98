package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"jobswipe/internal/domain"
	"jobswipe/internal/repository"
)

// Mocks de repositorio en memoria para los tests de servicio. Solo
// implementan lo que los servicios realmente ejercitan.

type mockUserRepo struct {
	users        map[string]domain.UserProfile
	savedPrefs   *domain.LearnedPreferences
	prefsUpdates int
}

func newMockUserRepo(users ...domain.UserProfile) *mockUserRepo {
	repo := &mockUserRepo{users: make(map[string]domain.UserProfile)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (m *mockUserRepo) Create(_ context.Context, user domain.UserProfile) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (domain.UserProfile, error) {
	user, ok := m.users[id]
	if !ok {
		return domain.UserProfile{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) Update(_ context.Context, user domain.UserProfile) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) UpdateLearnedPreferences(_ context.Context, id string, prefs *domain.LearnedPreferences) error {
	user := m.users[id]
	user.LearnedPreferences = prefs
	m.users[id] = user
	m.savedPrefs = prefs
	m.prefsUpdates++
	return nil
}

type mockJobRepo struct {
	jobs       map[string]domain.JobListing
	candidates []domain.JobListing
	lastFilter repository.CandidateFilter
}

func newMockJobRepo(jobs ...domain.JobListing) *mockJobRepo {
	repo := &mockJobRepo{jobs: make(map[string]domain.JobListing)}
	for _, j := range jobs {
		repo.jobs[j.ID] = j
	}
	return repo
}

func (m *mockJobRepo) Create(_ context.Context, job domain.JobListing) error {
	m.jobs[job.ID] = job
	return nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id string) (domain.JobListing, error) {
	job, ok := m.jobs[id]
	if !ok {
		return domain.JobListing{}, pgx.ErrNoRows
	}
	return job, nil
}

func (m *mockJobRepo) ListByIDs(_ context.Context, ids []string) ([]domain.JobListing, error) {
	out := make([]domain.JobListing, 0, len(ids))
	for _, id := range ids {
		if job, ok := m.jobs[id]; ok {
			out = append(out, job)
		}
	}
	return out, nil
}

func (m *mockJobRepo) ListCandidates(_ context.Context, filter repository.CandidateFilter) ([]domain.JobListing, error) {
	m.lastFilter = filter
	excluded := make(map[string]struct{}, len(filter.ExcludeIDs))
	for _, id := range filter.ExcludeIDs {
		excluded[id] = struct{}{}
	}
	out := make([]domain.JobListing, 0, len(m.candidates))
	for _, job := range m.candidates {
		if _, skip := excluded[job.ID]; skip {
			continue
		}
		out = append(out, job)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (m *mockJobRepo) Search(_ context.Context, _ repository.SearchFilter) ([]domain.JobListing, error) {
	return m.candidates, nil
}

func (m *mockJobRepo) Count(_ context.Context) (int, error) {
	return len(m.jobs), nil
}

func (m *mockJobRepo) DeleteExpired(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

type mockInteractionRepo struct {
	created []domain.Interaction
	recent  []domain.Interaction
	seen    []string
	count   int
}

func (m *mockInteractionRepo) Create(_ context.Context, itx domain.Interaction) error {
	m.created = append(m.created, itx)
	return nil
}

func (m *mockInteractionRepo) ListRecentByKinds(_ context.Context, _ string, _ []string, limit int) ([]domain.Interaction, error) {
	if limit > 0 && len(m.recent) > limit {
		return m.recent[:limit], nil
	}
	return m.recent, nil
}

func (m *mockInteractionRepo) CountByKinds(_ context.Context, _ string, _ []string) (int, error) {
	return m.count, nil
}

func (m *mockInteractionRepo) ListSeenJobIDs(_ context.Context, _ string) ([]string, error) {
	return m.seen, nil
}

func (m *mockInteractionRepo) ListByUser(_ context.Context, _ string, offset, limit int) ([]domain.Interaction, error) {
	if offset >= len(m.created) {
		return nil, nil
	}
	out := m.created[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockInteractionRepo) ListActiveUserIDs(_ context.Context, _ time.Time) ([]string, error) {
	ids := make([]string, 0, len(m.created))
	seen := make(map[string]struct{})
	for _, itx := range m.created {
		if _, ok := seen[itx.UserID]; ok {
			continue
		}
		seen[itx.UserID] = struct{}{}
		ids = append(ids, itx.UserID)
	}
	return ids, nil
}

type mockCache struct {
	entries     map[string]cachedRecommendations
	invalidated []string
	sets        int
}

func newMockCache() *mockCache {
	return &mockCache{entries: make(map[string]cachedRecommendations)}
}

func (m *mockCache) Get(_ context.Context, userID string, limit int) ([]domain.Recommendation, bool) {
	entry, ok := m.entries[userID]
	if !ok || entry.Limit != limit {
		return nil, false
	}
	return entry.Recommendations, true
}

func (m *mockCache) Set(_ context.Context, userID string, limit int, recs []domain.Recommendation) {
	m.entries[userID] = cachedRecommendations{Limit: limit, Recommendations: recs}
	m.sets++
}

func (m *mockCache) Invalidate(_ context.Context, userID string) {
	m.invalidated = append(m.invalidated, userID)
	delete(m.entries, userID)
}
