package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"uniformes/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Env:                "test",
		RateLimitPerMinute: 1000,
		CORSAllowedOrigins: "*",
		FrontendDir:        t.TempDir(),
		PDFStoragePath:     t.TempDir(),
		RecentLaundryLimit: 10,
	}
}

func okHealth(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) }

func TestEngine_Rutas(t *testing.T) {
	r := Engine(testConfig(t), Services{}, okHealth)

	registradas := map[string]bool{}
	for _, ri := range r.Routes() {
		registradas[ri.Method+" "+ri.Path] = true
	}
	for _, want := range []string{
		"POST /api/users",
		"GET /api/users/:dni",
		"POST /api/deliveries",
		"GET /api/deliveries/:id/pdf",
		"GET /api/deliveries/report",
		"GET /api/delivery/report",
		"POST /api/laundry",
		"GET /api/laundry",
		"GET /api/laundry/guide/:guide",
		"GET /api/laundry/:key/status",
		"POST /api/laundry/return",
		"GET /api/laundry/report",
		"GET /api/reports/laundry",
		"GET /api/stats",
		"POST /api/uniform-returns",
		"GET /api/uniform-returns/report",
		"GET /health",
		"GET /metrics",
		"GET /swagger/*any",
	} {
		assert.True(t, registradas[want], want)
	}
}

func TestEngine_SinSwaggerEnProduccion(t *testing.T) {
	cfg := testConfig(t)
	cfg.Env = "production"
	defer gin.SetMode(gin.TestMode)

	r := Engine(cfg, Services{}, okHealth)

	for _, ri := range r.Routes() {
		assert.NotEqual(t, "/swagger/*any", ri.Path)
	}
}

func TestEngine_InfraEndpoints(t *testing.T) {
	r := Engine(testConfig(t), Services{}, okHealth)

	for _, path := range []string{"/health", "/metrics"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Ruta no encontrada"}`, w.Body.String())
}
