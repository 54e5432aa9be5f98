package service

import (
	"fmt"
	"math"
	"strings"

	"jobswipe/internal/domain"
)

// MatchEngine encapsula el calculo de afinidad usuario-aviso y la
// generacion de razones. Es puro: no hace I/O ni guarda estado.
type MatchEngine struct{}

// DefaultMatchEngine permite uso directo sin instanciar.
var DefaultMatchEngine = MatchEngine{}

const (
	// Banda salarial asumida para normalizar salary_min.
	salaryBandFloor = 30000.0
	salaryBandWidth = 120000.0

	// Las habilidades pesan 2 fijo, independiente de los pesos 1-5 del
	// usuario. Asimetria intencional: no normalizar.
	skillsWeight = 2.0

	// Puntaje cuando ningun factor aplica.
	neutralScore = 50.0

	// Un aviso presencial conserva algo de puntaje de flexibilidad.
	onSiteFlexibilityScore = 30.0

	maxReasons               = 3
	nearbyMilesThreshold     = 25.0
	highOpportunityThreshold = 4.0
)

// Score calcula la afinidad entre un perfil y un aviso como promedio
// ponderado sobre los factores aplicables. Devuelve un valor en [0,100]
// redondeado a 2 decimales; nunca falla: cada factor ausente simplemente
// no participa.
func (MatchEngine) Score(user domain.UserProfile, job domain.JobListing) float64 {
	var score, totalWeight float64

	// Ubicacion: solo con coordenadas de ambos lados. El puntaje decae con
	// la distancia (50 millas = 75%, 200+ millas = 0).
	if user.HasCoordinates() && job.HasCoordinates() {
		distance := Distance(user.Latitude, user.Longitude, job.Latitude, job.Longitude)
		locationScore := 100 - distance/2
		if locationScore < 0 {
			locationScore = 0
		}
		score += locationScore * float64(user.LocationImportance)
		totalWeight += float64(user.LocationImportance)
	}

	// Industria: credito total si la industria del usuario es substring de
	// la del aviso; el peso cuenta aunque no haya match.
	if user.Industry != "" && job.Industry != "" {
		if industryMatches(user.Industry, job.Industry) {
			score += 100 * float64(user.IndustryImportance)
		}
		totalWeight += float64(user.IndustryImportance)
	}

	// Salario: normalizado sobre la banda 30k-150k, recortado a [0,100].
	if job.SalaryMin != nil {
		salaryScore := (*job.SalaryMin - salaryBandFloor) / salaryBandWidth * 100
		if salaryScore > 100 {
			salaryScore = 100
		}
		if salaryScore < 0 {
			salaryScore = 0
		}
		score += salaryScore * float64(user.SalaryImportance)
		totalWeight += float64(user.SalaryImportance)
	}

	// Crecimiento: sub-score de movilidad 0-5 escalado a 0-100.
	if job.MobilityScore != nil {
		score += *job.MobilityScore * 20 * float64(user.GrowthImportance)
		totalWeight += float64(user.GrowthImportance)
	}

	// Flexibilidad: siempre aplica.
	if job.RemoteWork {
		score += 100 * float64(user.FlexibilityImportance)
	} else {
		score += onSiteFlexibilityScore * float64(user.FlexibilityImportance)
	}
	totalWeight += float64(user.FlexibilityImportance)

	// Habilidades: proporcion de requisitos cubiertos, peso fijo 2.
	if len(user.Skills) > 0 && len(job.RequiredSkills) > 0 {
		jobSkills := lowerSet(job.RequiredSkills)
		overlap := overlapCount(user.Skills, jobSkills)
		ratio := float64(overlap) / float64(len(jobSkills))
		score += ratio * 100 * skillsWeight
		totalWeight += skillsWeight
	}

	if totalWeight <= 0 {
		return neutralScore
	}
	return round2(score / totalWeight)
}

// Reasons deriva hasta tres razones legibles para recomendar un aviso, en
// orden fijo de prioridad. Si ninguna aplica devuelve una razon generica.
func (MatchEngine) Reasons(user domain.UserProfile, job domain.JobListing) []string {
	reasons := make([]string, 0, maxReasons)

	if user.Industry != "" && job.Industry != "" && industryMatches(user.Industry, job.Industry) {
		reasons = append(reasons, fmt.Sprintf("Matches your preferred industry: %s", job.Industry))
	}

	if job.OpportunityScore != nil && *job.OpportunityScore >= highOpportunityThreshold {
		reasons = append(reasons, fmt.Sprintf("High opportunity score: %.1f/5.0", *job.OpportunityScore))
	}

	if job.RemoteWork {
		reasons = append(reasons, "Offers remote work flexibility")
	}

	if len(user.Skills) > 0 && len(job.RequiredSkills) > 0 {
		if overlap := overlapCount(user.Skills, lowerSet(job.RequiredSkills)); overlap > 0 {
			reasons = append(reasons, fmt.Sprintf("Matches %d of your skills", overlap))
		}
	}

	if user.HasCoordinates() && job.HasCoordinates() {
		distance := Distance(user.Latitude, user.Longitude, job.Latitude, job.Longitude)
		if distance < nearbyMilesThreshold {
			reasons = append(reasons, fmt.Sprintf("Close to your location (%.1f miles)", distance))
		}
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Matches your overall preferences")
	}
	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}

// ScoreJob combina puntaje y razones para un par usuario-aviso.
func (e MatchEngine) ScoreJob(user domain.UserProfile, job domain.JobListing) (float64, []string) {
	return e.Score(user, job), e.Reasons(user, job)
}

func industryMatches(userIndustry, jobIndustry string) bool {
	return strings.Contains(strings.ToLower(jobIndustry), strings.ToLower(userIndustry))
}

func lowerSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = struct{}{}
	}
	return set
}

func overlapCount(skills []string, jobSkills map[string]struct{}) int {
	seen := make(map[string]struct{}, len(skills))
	count := 0
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		if _, ok := jobSkills[lower]; ok {
			count++
		}
	}
	return count
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
