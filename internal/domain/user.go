package domain

import "time"

// UserProfile representa a un buscador de empleo con sus preferencias
// explicitas de onboarding y las preferencias aprendidas de sus swipes.
type UserProfile struct {
	ID        string   `json:"id"`
	Location  string   `json:"location"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	Industry   string   `json:"industry,omitempty"`
	Occupation string   `json:"occupation,omitempty"`
	Skills     []string `json:"skills,omitempty"`

	// Pesos de importancia explicitos, escala 1-5. Nunca cambian
	// automaticamente: solo el usuario los edita.
	LocationImportance    int `json:"location_importance"`
	IndustryImportance    int `json:"industry_importance"`
	SalaryImportance      int `json:"salary_importance"`
	GrowthImportance      int `json:"growth_importance"`
	FlexibilityImportance int `json:"flexibility_importance"`

	LearnedPreferences *LearnedPreferences `json:"learned_preferences,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasCoordinates indica si el perfil tiene latitud y longitud completas.
func (u UserProfile) HasCoordinates() bool {
	return u.Latitude != nil && u.Longitude != nil
}

// LearnedPreferences son estadisticas derivadas del historial reciente de
// swipes. Campos opcionales explicitos: ausencia y cero no son lo mismo.
// Se recalculan por completo en cada corrida del aprendizaje, nunca se
// mezclan con valores anteriores.
type LearnedPreferences struct {
	PreferredMinSalary        *float64       `json:"preferred_min_salary,omitempty"`
	PreferredIndustries       map[string]int `json:"preferred_industries,omitempty"`
	RemoteAffinity            *float64       `json:"remote_affinity,omitempty"`
	PreferredOpportunityScore *float64       `json:"preferred_opportunity_score,omitempty"`
}
