package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobswipe/internal/domain"
)

// CandidateFilter son los pre-filtros gruesos del selector de
// recomendaciones. Las condiciones de coordenadas e industria se combinan
// con OR; si ninguna aplica se toman todos los candidatos.
type CandidateFilter struct {
	IndustryContains   string
	RequireCoordinates bool
	ExcludeIDs         []string
	Limit              int
}

// SearchFilter son los filtros explicitos del listado de avisos.
type SearchFilter struct {
	LocationContains string
	IndustryContains string
	MinSalary        *float64
}

// JobRepository define el contrato de persistencia para avisos.
type JobRepository interface {
	Create(ctx context.Context, job domain.JobListing) error
	GetByID(ctx context.Context, id string) (domain.JobListing, error)
	ListByIDs(ctx context.Context, ids []string) ([]domain.JobListing, error)
	ListCandidates(ctx context.Context, filter CandidateFilter) ([]domain.JobListing, error)
	Search(ctx context.Context, filter SearchFilter) ([]domain.JobListing, error)
	Count(ctx context.Context) (int, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// PgJobRepository implementa JobRepository usando pgxpool.
type PgJobRepository struct {
	pool *pgxpool.Pool
}

func NewPgJobRepository(pool *pgxpool.Pool) *PgJobRepository {
	return &PgJobRepository{pool: pool}
}

const jobColumns = `
	id, external_id, title, company, description, location, city, state,
	zip_code, latitude, longitude, industry, occupation, occupation_code,
	salary_min, salary_max, salary_currency, employment_type, required_skills,
	opportunity_score, access_score, wage_score, mobility_score,
	job_quality_score, remote_work, posted_date, expires_date, url, created_at
`

func (r *PgJobRepository) Create(ctx context.Context, job domain.JobListing) error {
	const query = `
		INSERT INTO job_listings (` + jobColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29)
	`
	_, err := r.pool.Exec(ctx, query,
		job.ID,
		nullIfEmpty(job.ExternalID),
		job.Title,
		nullIfEmpty(job.Company),
		nullIfEmpty(job.Description),
		nullIfEmpty(job.Location),
		nullIfEmpty(job.City),
		nullIfEmpty(job.State),
		nullIfEmpty(job.ZipCode),
		job.Latitude,
		job.Longitude,
		nullIfEmpty(job.Industry),
		nullIfEmpty(job.Occupation),
		nullIfEmpty(job.OccupationCode),
		job.SalaryMin,
		job.SalaryMax,
		job.SalaryCurrency,
		nullIfEmpty(job.EmploymentType),
		job.RequiredSkills,
		job.OpportunityScore,
		job.AccessScore,
		job.WageScore,
		job.MobilityScore,
		job.JobQualityScore,
		job.RemoteWork,
		job.PostedDate,
		job.ExpiresDate,
		nullIfEmpty(job.URL),
		job.CreatedAt,
	)
	return err
}

func (r *PgJobRepository) GetByID(ctx context.Context, id string) (domain.JobListing, error) {
	const query = `
		SELECT ` + jobColumns + `
		FROM job_listings
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanJob(row)
}

func (r *PgJobRepository) ListByIDs(ctx context.Context, ids []string) ([]domain.JobListing, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	const query = `
		SELECT ` + jobColumns + `
		FROM job_listings
		WHERE id = ANY($1)
	`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *PgJobRepository) ListCandidates(ctx context.Context, filter CandidateFilter) ([]domain.JobListing, error) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(`SELECT ` + jobColumns + ` FROM job_listings`)

	var conds []string
	var orConds []string
	if filter.RequireCoordinates {
		orConds = append(orConds, "(latitude IS NOT NULL AND longitude IS NOT NULL)")
	}
	if filter.IndustryContains != "" {
		args = append(args, filter.IndustryContains)
		orConds = append(orConds, fmt.Sprintf("industry ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if len(orConds) > 0 {
		conds = append(conds, "("+strings.Join(orConds, " OR ")+")")
	}
	if len(filter.ExcludeIDs) > 0 {
		args = append(args, filter.ExcludeIDs)
		conds = append(conds, fmt.Sprintf("NOT (id = ANY($%d))", len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY created_at, id")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	}

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *PgJobRepository) Search(ctx context.Context, filter SearchFilter) ([]domain.JobListing, error) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(`SELECT ` + jobColumns + ` FROM job_listings`)

	var conds []string
	if filter.LocationContains != "" {
		args = append(args, filter.LocationContains)
		conds = append(conds, fmt.Sprintf("location ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if filter.IndustryContains != "" {
		args = append(args, filter.IndustryContains)
		conds = append(conds, fmt.Sprintf("industry ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if filter.MinSalary != nil {
		args = append(args, *filter.MinSalary)
		conds = append(conds, fmt.Sprintf("salary_min >= $%d", len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY created_at, id")

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *PgJobRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM job_listings`).Scan(&n)
	return n, err
}

func (r *PgJobRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	const query = `
		DELETE FROM job_listings
		WHERE expires_date IS NOT NULL
		  AND expires_date < $1
		  AND NOT EXISTS (
			SELECT 1 FROM interactions i WHERE i.job_listing_id = job_listings.id
		  )
	`
	tag, err := r.pool.Exec(ctx, query, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanJob(row pgx.Row) (domain.JobListing, error) {
	var j domain.JobListing
	var externalID, company, description, location, city, state, zipCode *string
	var industry, occupation, occupationCode, employmentType, url *string
	err := row.Scan(
		&j.ID,
		&externalID,
		&j.Title,
		&company,
		&description,
		&location,
		&city,
		&state,
		&zipCode,
		&j.Latitude,
		&j.Longitude,
		&industry,
		&occupation,
		&occupationCode,
		&j.SalaryMin,
		&j.SalaryMax,
		&j.SalaryCurrency,
		&employmentType,
		&j.RequiredSkills,
		&j.OpportunityScore,
		&j.AccessScore,
		&j.WageScore,
		&j.MobilityScore,
		&j.JobQualityScore,
		&j.RemoteWork,
		&j.PostedDate,
		&j.ExpiresDate,
		&url,
		&j.CreatedAt,
	)
	if err != nil {
		return domain.JobListing{}, err
	}
	j.ExternalID = deref(externalID)
	j.Company = deref(company)
	j.Description = deref(description)
	j.Location = deref(location)
	j.City = deref(city)
	j.State = deref(state)
	j.ZipCode = deref(zipCode)
	j.Industry = deref(industry)
	j.Occupation = deref(occupation)
	j.OccupationCode = deref(occupationCode)
	j.EmploymentType = deref(employmentType)
	j.URL = deref(url)
	return j, nil
}

func scanJobs(rows pgx.Rows) ([]domain.JobListing, error) {
	var jobs []domain.JobListing
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
