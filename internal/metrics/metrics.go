package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SwipesRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobswipe_swipes_recorded_total",
			Help: "Total number of interactions recorded, by kind",
		},
		[]string{"kind"},
	)

	RecommendationsServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jobswipe_recommendations_served_total",
			Help: "Total number of job recommendations returned",
		},
	)

	RecommendationCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jobswipe_recommendation_cache_hits_total",
			Help: "Total number of recommendation requests served from cache",
		},
	)

	PreferenceLearnerRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jobswipe_preference_learner_runs_total",
			Help: "Total number of learned-preference recomputations",
		},
	)
)
