package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuracion del servicio.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret            string `env:"JWT_SECRET"`
	JWTAccessTTLMinutes  int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"15"`
	JWTRefreshTTLMinutes int    `env:"JWT_REFRESH_TTL_MINUTES" envDefault:"43200"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:3001"`

	// Cadencia del aprendizaje implicito: se dispara cada LearnEvery
	// interacciones accepted/rejected, sobre una ventana de LearnWindow.
	LearnEvery  int `env:"LEARN_EVERY" envDefault:"3"`
	LearnWindow int `env:"LEARN_WINDOW" envDefault:"30"`

	RecommendationCacheTTLSeconds int `env:"RECOMMENDATION_CACHE_TTL_SECONDS" envDefault:"120"`

	SchedulerEnabled bool   `env:"SCHEDULER_ENABLED" envDefault:"true"`
	RelearnCronSpec  string `env:"RELEARN_CRON_SPEC" envDefault:"@every 6h"`
	PruneCronSpec    string `env:"PRUNE_CRON_SPEC" envDefault:"@every 24h"`
}

// LoadConfig carga la configuracion desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
