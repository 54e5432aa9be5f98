// Comando seed: aplica el schema y carga un lote de avisos de ejemplo
// para desarrollo local. Es idempotente; si la tabla ya tiene avisos no
// inserta nada.
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"jobswipe/internal/config"
	"jobswipe/internal/db"
	"jobswipe/internal/domain"
	"jobswipe/internal/repository"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	jobs := repository.NewPgJobRepository(pool)

	count, err := jobs.Count(ctx)
	if err != nil {
		log.Fatalf("count jobs: %v", err)
	}
	if count > 0 {
		log.Printf("job_listings already has %d rows, skipping seed", count)
		return
	}

	for _, job := range sampleJobs() {
		if err := jobs.Create(ctx, job); err != nil {
			log.Fatalf("seed job %q: %v", job.Title, err)
		}
	}
	log.Printf("seeded %d job listings", len(sampleJobs()))
}

func sampleJobs() []domain.JobListing {
	now := time.Now().UTC()
	return []domain.JobListing{
		{
			ID:               uuid.NewString(),
			Title:            "Software Engineer",
			Company:          "TechCorp",
			Description:      "Build scalable web applications with a modern stack.",
			Location:         "San Francisco, CA",
			City:             "San Francisco",
			State:            "CA",
			Latitude:         f(37.7749),
			Longitude:        f(-122.4194),
			Industry:         "Technology",
			Occupation:       "Software Developer",
			SalaryMin:        f(120000),
			SalaryMax:        f(180000),
			SalaryCurrency:   "USD",
			EmploymentType:   "full-time",
			RequiredSkills:   []string{"Python", "JavaScript", "React", "SQL"},
			OpportunityScore: f(4.5),
			AccessScore:      f(4.0),
			WageScore:        f(4.8),
			MobilityScore:    f(4.2),
			JobQualityScore:  f(4.6),
			RemoteWork:       true,
			PostedDate:       t(now.AddDate(0, 0, -3)),
			CreatedAt:        now,
		},
		{
			ID:               uuid.NewString(),
			Title:            "Data Analyst",
			Company:          "DataViz Inc",
			Description:      "Turn raw financial data into dashboards and reports.",
			Location:         "New York, NY",
			City:             "New York",
			State:            "NY",
			Latitude:         f(40.7128),
			Longitude:        f(-74.0060),
			Industry:         "Finance",
			Occupation:       "Data Analyst",
			SalaryMin:        f(80000),
			SalaryMax:        f(110000),
			SalaryCurrency:   "USD",
			EmploymentType:   "full-time",
			RequiredSkills:   []string{"SQL", "Python", "Tableau", "Excel"},
			OpportunityScore: f(3.8),
			AccessScore:      f(3.5),
			WageScore:        f(3.9),
			MobilityScore:    f(3.6),
			JobQualityScore:  f(4.0),
			RemoteWork:       false,
			PostedDate:       t(now.AddDate(0, 0, -7)),
			CreatedAt:        now,
		},
		{
			ID:               uuid.NewString(),
			Title:            "UX Designer",
			Company:          "Design Studio",
			Description:      "Design intuitive product experiences end to end.",
			Location:         "Austin, TX",
			City:             "Austin",
			State:            "TX",
			Latitude:         f(30.2672),
			Longitude:        f(-97.7431),
			Industry:         "Design",
			Occupation:       "UX Designer",
			SalaryMin:        f(90000),
			SalaryMax:        f(130000),
			SalaryCurrency:   "USD",
			EmploymentType:   "full-time",
			RequiredSkills:   []string{"Figma", "User Research", "Prototyping"},
			OpportunityScore: f(4.1),
			AccessScore:      f(3.9),
			WageScore:        f(4.0),
			MobilityScore:    f(4.3),
			JobQualityScore:  f(4.2),
			RemoteWork:       true,
			PostedDate:       t(now.AddDate(0, 0, -1)),
			CreatedAt:        now,
		},
		{
			ID:               uuid.NewString(),
			Title:            "Registered Nurse",
			Company:          "City General Hospital",
			Description:      "Provide direct patient care in a fast-paced unit.",
			Location:         "Chicago, IL",
			City:             "Chicago",
			State:            "IL",
			Latitude:         f(41.8781),
			Longitude:        f(-87.6298),
			Industry:         "Healthcare",
			Occupation:       "Registered Nurse",
			SalaryMin:        f(70000),
			SalaryMax:        f(95000),
			SalaryCurrency:   "USD",
			EmploymentType:   "full-time",
			RequiredSkills:   []string{"Patient Care", "EMR", "Critical Thinking"},
			OpportunityScore: f(4.3),
			AccessScore:      f(4.1),
			WageScore:        f(3.7),
			MobilityScore:    f(4.0),
			JobQualityScore:  f(4.4),
			RemoteWork:       false,
			PostedDate:       t(now.AddDate(0, 0, -5)),
			CreatedAt:        now,
		},
		{
			ID:               uuid.NewString(),
			Title:            "Marketing Manager",
			Company:          "BrandBoost",
			Description:      "Own the growth funnel for a consumer brand.",
			Location:         "Los Angeles, CA",
			City:             "Los Angeles",
			State:            "CA",
			Latitude:         f(34.0522),
			Longitude:        f(-118.2437),
			Industry:         "Marketing",
			Occupation:       "Marketing Manager",
			SalaryMin:        f(95000),
			SalaryMax:        f(140000),
			SalaryCurrency:   "USD",
			EmploymentType:   "full-time",
			RequiredSkills:   []string{"SEO", "Content Strategy", "Analytics"},
			OpportunityScore: f(3.6),
			AccessScore:      f(3.4),
			WageScore:        f(3.8),
			MobilityScore:    f(3.5),
			JobQualityScore:  f(3.7),
			RemoteWork:       true,
			PostedDate:       t(now.AddDate(0, 0, -10)),
			CreatedAt:        now,
		},
		{
			ID:               uuid.NewString(),
			Title:            "Warehouse Associate",
			Company:          "LogiFlow",
			Description:      "Pick, pack and ship orders in a distribution center.",
			Location:         "Phoenix, AZ",
			City:             "Phoenix",
			State:            "AZ",
			Latitude:         f(33.4484),
			Longitude:        f(-112.0740),
			Industry:         "Logistics",
			Occupation:       "Warehouse Worker",
			SalaryMin:        f(35000),
			SalaryMax:        f(45000),
			SalaryCurrency:   "USD",
			EmploymentType:   "full-time",
			RequiredSkills:   []string{"Forklift", "Inventory Management"},
			OpportunityScore: f(2.8),
			AccessScore:      f(3.2),
			WageScore:        f(2.5),
			MobilityScore:    f(2.9),
			JobQualityScore:  f(2.7),
			RemoteWork:       false,
			PostedDate:       t(now.AddDate(0, 0, -2)),
			CreatedAt:        now,
		},
	}
}

func f(v float64) *float64 { return &v }

func t(v time.Time) *time.Time { return &v }
