package domain

import "time"

// Tipos de interaccion usuario-aviso. Solo accepted y rejected alimentan
// el aprendizaje de preferencias.
const (
	InteractionShown    = "shown"
	InteractionAccepted = "accepted"
	InteractionRejected = "rejected"
	InteractionViewed   = "viewed"
)

// LearnableKinds son los tipos de interaccion que consume el aprendizaje.
var LearnableKinds = []string{InteractionAccepted, InteractionRejected}

// IsValidInteractionKind valida un tipo de interaccion entrante.
func IsValidInteractionKind(kind string) bool {
	switch kind {
	case InteractionShown, InteractionAccepted, InteractionRejected, InteractionViewed:
		return true
	}
	return false
}

// Interaction es un registro append-only de exposicion o respuesta de un
// usuario ante un aviso. Nunca se muta ni se borra.
type Interaction struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	JobListingID string `json:"job_listing_id"`
	Kind         string `json:"kind"`

	// Contexto opcional del momento en que se mostro el aviso.
	DeckPosition *int     `json:"deck_position,omitempty"`
	SessionID    string   `json:"session_id,omitempty"`
	AspectJudged string   `json:"aspect_judged,omitempty"`
	DwellSeconds *float64 `json:"dwell_seconds,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
