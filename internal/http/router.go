package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"jobswipe/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	userH *UserHandler,
	jobH *JobHandler,
	swipeH *SwipeHandler,
	recH *RecommendationHandler,
	jwtSvc *service.JWTService,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), corsMiddleware(corsOrigins), jsonContentTypeMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	users := api.Group("/users")
	users.POST("", userH.CreateUser)

	// Rutas con alcance de usuario: protegidas solo si hay JWT
	// configurado; sin secreto la API opera en modo abierto.
	userScoped := users.Group("/:id")
	if jwtSvc != nil && jwtSvc.Enabled() {
		userScoped.Use(JWTAuthMiddleware(jwtSvc))
	}
	userScoped.GET("", userH.GetUser)
	userScoped.PUT("/preferences", userH.UpdatePreferences)
	userScoped.GET("/swipes", swipeH.ListUserSwipes)
	userScoped.GET("/recommendations", recH.GetRecommendations)

	api.GET("/jobs", jobH.ListJobs)
	api.GET("/jobs/:id", jobH.GetJob)

	swipes := api.Group("/swipes")
	if jwtSvc != nil && jwtSvc.Enabled() {
		swipes.Use(JWTAuthMiddleware(jwtSvc))
	}
	swipes.POST("", swipeH.CreateSwipe)

	if jwtSvc != nil && jwtSvc.Enabled() {
		api.POST("/auth/refresh", userH.RefreshToken)
	}

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// corsMiddleware habilita acceso desde los origenes del frontend.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if _, ok := allowed[origin]; ok {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
