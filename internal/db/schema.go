package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema define las tablas del servicio. Todas las sentencias son
// idempotentes: Migrate puede correr en cada arranque.
const schema = `
CREATE TABLE IF NOT EXISTS user_profiles (
	id UUID PRIMARY KEY,
	location TEXT NOT NULL,
	latitude DOUBLE PRECISION,
	longitude DOUBLE PRECISION,
	industry TEXT,
	occupation TEXT,
	skills JSONB,
	location_importance INT NOT NULL DEFAULT 3,
	industry_importance INT NOT NULL DEFAULT 3,
	salary_importance INT NOT NULL DEFAULT 3,
	growth_importance INT NOT NULL DEFAULT 3,
	flexibility_importance INT NOT NULL DEFAULT 3,
	learned_preferences JSONB,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS job_listings (
	id UUID PRIMARY KEY,
	external_id TEXT UNIQUE,
	title TEXT NOT NULL,
	company TEXT,
	description TEXT,
	location TEXT,
	city TEXT,
	state TEXT,
	zip_code TEXT,
	latitude DOUBLE PRECISION,
	longitude DOUBLE PRECISION,
	industry TEXT,
	occupation TEXT,
	occupation_code TEXT,
	salary_min DOUBLE PRECISION,
	salary_max DOUBLE PRECISION,
	salary_currency TEXT NOT NULL DEFAULT 'USD',
	employment_type TEXT,
	required_skills JSONB,
	opportunity_score DOUBLE PRECISION,
	access_score DOUBLE PRECISION,
	wage_score DOUBLE PRECISION,
	mobility_score DOUBLE PRECISION,
	job_quality_score DOUBLE PRECISION,
	remote_work BOOLEAN NOT NULL DEFAULT FALSE,
	posted_date TIMESTAMPTZ,
	expires_date TIMESTAMPTZ,
	url TEXT,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_job_listings_industry ON job_listings (industry);

CREATE TABLE IF NOT EXISTS interactions (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES user_profiles(id),
	job_listing_id UUID NOT NULL REFERENCES job_listings(id),
	kind TEXT NOT NULL,
	deck_position INT,
	session_id TEXT,
	aspect_judged TEXT,
	dwell_seconds DOUBLE PRECISION,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_interactions_user_created ON interactions (user_id, created_at DESC);
`

// Migrate aplica el esquema sobre la base de datos.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
