package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobswipe/internal/domain"
)

// InteractionRepository define el contrato de persistencia para
// interacciones. La tabla es append-only: no hay update ni delete.
type InteractionRepository interface {
	Create(ctx context.Context, itx domain.Interaction) error
	ListRecentByKinds(ctx context.Context, userID string, kinds []string, limit int) ([]domain.Interaction, error)
	CountByKinds(ctx context.Context, userID string, kinds []string) (int, error)
	ListSeenJobIDs(ctx context.Context, userID string) ([]string, error)
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]domain.Interaction, error)
	ListActiveUserIDs(ctx context.Context, since time.Time) ([]string, error)
}

// PgInteractionRepository implementa InteractionRepository usando pgxpool.
type PgInteractionRepository struct {
	pool *pgxpool.Pool
}

func NewPgInteractionRepository(pool *pgxpool.Pool) *PgInteractionRepository {
	return &PgInteractionRepository{pool: pool}
}

const interactionColumns = `
	id, user_id, job_listing_id, kind, deck_position, session_id,
	aspect_judged, dwell_seconds, created_at
`

func (r *PgInteractionRepository) Create(ctx context.Context, itx domain.Interaction) error {
	const query = `
		INSERT INTO interactions (` + interactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		itx.ID,
		itx.UserID,
		itx.JobListingID,
		itx.Kind,
		itx.DeckPosition,
		nullIfEmpty(itx.SessionID),
		nullIfEmpty(itx.AspectJudged),
		itx.DwellSeconds,
		itx.CreatedAt,
	)
	return err
}

func (r *PgInteractionRepository) ListRecentByKinds(ctx context.Context, userID string, kinds []string, limit int) ([]domain.Interaction, error) {
	const query = `
		SELECT ` + interactionColumns + `
		FROM interactions
		WHERE user_id = $1 AND kind = ANY($2)
		ORDER BY created_at DESC
		LIMIT $3
	`
	rows, err := r.pool.Query(ctx, query, userID, kinds, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInteractions(rows)
}

func (r *PgInteractionRepository) CountByKinds(ctx context.Context, userID string, kinds []string) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM interactions
		WHERE user_id = $1 AND kind = ANY($2)
	`
	var n int
	err := r.pool.QueryRow(ctx, query, userID, kinds).Scan(&n)
	return n, err
}

func (r *PgInteractionRepository) ListSeenJobIDs(ctx context.Context, userID string) ([]string, error) {
	const query = `
		SELECT DISTINCT job_listing_id
		FROM interactions
		WHERE user_id = $1
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PgInteractionRepository) ListByUser(ctx context.Context, userID string, offset, limit int) ([]domain.Interaction, error) {
	const query = `
		SELECT ` + interactionColumns + `
		FROM interactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3
	`
	rows, err := r.pool.Query(ctx, query, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInteractions(rows)
}

func (r *PgInteractionRepository) ListActiveUserIDs(ctx context.Context, since time.Time) ([]string, error) {
	const query = `
		SELECT DISTINCT user_id
		FROM interactions
		WHERE kind = ANY($1) AND created_at >= $2
	`
	rows, err := r.pool.Query(ctx, query, domain.LearnableKinds, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanInteractions(rows pgx.Rows) ([]domain.Interaction, error) {
	var items []domain.Interaction
	for rows.Next() {
		var itx domain.Interaction
		var sessionID, aspectJudged *string
		if err := rows.Scan(
			&itx.ID,
			&itx.UserID,
			&itx.JobListingID,
			&itx.Kind,
			&itx.DeckPosition,
			&sessionID,
			&aspectJudged,
			&itx.DwellSeconds,
			&itx.CreatedAt,
		); err != nil {
			return nil, err
		}
		itx.SessionID = deref(sessionID)
		itx.AspectJudged = deref(aspectJudged)
		items = append(items, itx)
	}
	return items, rows.Err()
}
