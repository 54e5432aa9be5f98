package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"jobswipe/internal/domain"
)

// UserRepository define el contrato de persistencia para perfiles.
type UserRepository interface {
	Create(ctx context.Context, user domain.UserProfile) error
	GetByID(ctx context.Context, id string) (domain.UserProfile, error)
	Update(ctx context.Context, user domain.UserProfile) error
	UpdateLearnedPreferences(ctx context.Context, id string, prefs *domain.LearnedPreferences) error
}

// PgUserRepository implementa UserRepository usando pgxpool.
type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

const userColumns = `
	id, location, latitude, longitude, industry, occupation, skills,
	location_importance, industry_importance, salary_importance,
	growth_importance, flexibility_importance, learned_preferences,
	created_at, updated_at
`

func (r *PgUserRepository) Create(ctx context.Context, user domain.UserProfile) error {
	const query = `
		INSERT INTO user_profiles (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Location,
		user.Latitude,
		user.Longitude,
		nullIfEmpty(user.Industry),
		nullIfEmpty(user.Occupation),
		user.Skills,
		user.LocationImportance,
		user.IndustryImportance,
		user.SalaryImportance,
		user.GrowthImportance,
		user.FlexibilityImportance,
		user.LearnedPreferences,
		user.CreatedAt,
		user.UpdatedAt,
	)
	return err
}

func (r *PgUserRepository) GetByID(ctx context.Context, id string) (domain.UserProfile, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM user_profiles
		WHERE id = $1
	`
	var u domain.UserProfile
	var industry, occupation *string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Location,
		&u.Latitude,
		&u.Longitude,
		&industry,
		&occupation,
		&u.Skills,
		&u.LocationImportance,
		&u.IndustryImportance,
		&u.SalaryImportance,
		&u.GrowthImportance,
		&u.FlexibilityImportance,
		&u.LearnedPreferences,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return domain.UserProfile{}, err
	}
	u.Industry = deref(industry)
	u.Occupation = deref(occupation)
	return u, nil
}

func (r *PgUserRepository) Update(ctx context.Context, user domain.UserProfile) error {
	const query = `
		UPDATE user_profiles
		SET location = $2,
			latitude = $3,
			longitude = $4,
			industry = $5,
			occupation = $6,
			skills = $7,
			location_importance = $8,
			industry_importance = $9,
			salary_importance = $10,
			growth_importance = $11,
			flexibility_importance = $12,
			updated_at = $13
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Location,
		user.Latitude,
		user.Longitude,
		nullIfEmpty(user.Industry),
		nullIfEmpty(user.Occupation),
		user.Skills,
		user.LocationImportance,
		user.IndustryImportance,
		user.SalaryImportance,
		user.GrowthImportance,
		user.FlexibilityImportance,
		time.Now().UTC(),
	)
	return err
}

func (r *PgUserRepository) UpdateLearnedPreferences(ctx context.Context, id string, prefs *domain.LearnedPreferences) error {
	const query = `
		UPDATE user_profiles
		SET learned_preferences = $2,
			updated_at = $3
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, id, prefs, time.Now().UTC())
	return err
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
