package domain

// Recommendation es un aviso puntuado para un usuario, con hasta tres
// razones legibles que justifican la sugerencia.
type Recommendation struct {
	Job        JobListing `json:"job"`
	MatchScore float64    `json:"match_score"`
	Reasons    []string   `json:"reasons"`
}
