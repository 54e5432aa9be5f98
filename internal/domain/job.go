package domain

import "time"

// JobListing es un aviso de empleo. Inmutable para el motor de matching;
// solo el seeder y la purga de vencidos lo tocan.
type JobListing struct {
	ID          string `json:"id"`
	ExternalID  string `json:"external_id,omitempty"`
	Title       string `json:"title"`
	Company     string `json:"company,omitempty"`
	Description string `json:"description,omitempty"`

	Location  string   `json:"location,omitempty"`
	City      string   `json:"city,omitempty"`
	State     string   `json:"state,omitempty"`
	ZipCode   string   `json:"zip_code,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	Industry       string `json:"industry,omitempty"`
	Occupation     string `json:"occupation,omitempty"`
	OccupationCode string `json:"occupation_code,omitempty"`

	SalaryMin      *float64 `json:"salary_min,omitempty"`
	SalaryMax      *float64 `json:"salary_max,omitempty"`
	SalaryCurrency string   `json:"salary_currency"`
	EmploymentType string   `json:"employment_type,omitempty"`

	RequiredSkills []string `json:"required_skills,omitempty"`

	// Indice de oportunidad, escala 0-5. Todos los campos son opcionales:
	// un sub-score ausente significa "senal no aplicable", nunca cero.
	OpportunityScore *float64 `json:"opportunity_score,omitempty"`
	AccessScore      *float64 `json:"access_score,omitempty"`
	WageScore        *float64 `json:"wage_score,omitempty"`
	MobilityScore    *float64 `json:"mobility_score,omitempty"`
	JobQualityScore  *float64 `json:"job_quality_score,omitempty"`

	RemoteWork bool `json:"remote_work"`

	PostedDate  *time.Time `json:"posted_date,omitempty"`
	ExpiresDate *time.Time `json:"expires_date,omitempty"`
	URL         string     `json:"url,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	// MatchScore se calcula bajo demanda cuando la consulta incluye un
	// usuario; no se persiste.
	MatchScore *float64 `json:"match_score,omitempty"`
}

// HasCoordinates indica si el aviso tiene latitud y longitud completas.
func (j JobListing) HasCoordinates() bool {
	return j.Latitude != nil && j.Longitude != nil
}
