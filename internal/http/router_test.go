package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobswipe/internal/service"
)

func fullTestRouter(jwtSvc *service.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	users := newStubUserRepo()
	jobs := newStubJobRepo()
	interactions := &stubInteractionRepo{}

	learner := service.NewPreferenceLearner(logger, users, jobs, interactions, 30)
	recSvc := service.NewRecommendationService(logger, users, jobs, interactions, nil)
	swipeSvc := service.NewSwipeService(logger, users, jobs, interactions, learner, nil, 3)

	return NewRouter(
		logger,
		NewUserHandler(logger, users, jwtSvc),
		NewJobHandler(logger, jobs, users),
		NewSwipeHandler(logger, swipeSvc),
		NewRecommendationHandler(logger, recSvc),
		jwtSvc,
		[]string{"http://localhost:3000"},
	)
}

func TestRouter_Health(t *testing.T) {
	r := fullTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	r := fullTestRouter(nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/jobs", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("expected allowed origin echoed, got %q", got)
	}

	// Un origen desconocido no recibe cabeceras CORS.
	req = httptest.NewRequest(http.MethodOptions, "/api/jobs", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no CORS header for unknown origin, got %q", got)
	}
}

func TestRouter_OpenModeSkipsAuth(t *testing.T) {
	r := fullTestRouter(nil)

	// Sin JWT configurado las rutas de usuario no exigen token.
	req := httptest.NewRequest(http.MethodGet, "/api/users/ghost", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 (handler reached), got %d", w.Code)
	}
}

func TestRouter_JWTModeProtectsUserRoutes(t *testing.T) {
	jwtSvc := service.NewJWTService("test-secret", 15*time.Minute, time.Hour)
	r := fullTestRouter(jwtSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/users/user-1/recommendations", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	// refresh solo existe con JWT habilitado.
	req = httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code == http.StatusNotFound {
		t.Fatalf("expected refresh route registered, got 404")
	}
}
