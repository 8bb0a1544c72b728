package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/habitflow-backend/internal/config"
)

var testCORS = config.CORSConfig{
	AllowedOrigins:   "https://app.habitflow.dev, https://admin.habitflow.dev",
	AllowedMethods:   "GET,POST,PATCH,DELETE,OPTIONS",
	AllowedHeaders:   "Authorization,Content-Type",
	AllowCredentials: true,
	MaxAge:           600,
}

func TestCORS_Preflight(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run for preflight")
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/habits/x/check-ins", nil)
	req.Header.Set("Origin", "https://admin.habitflow.dev")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	CORS(testCORS)(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://admin.habitflow.dev", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, testCORS.AllowedMethods, rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, testCORS.AllowedHeaders, rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	t.Parallel()

	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	CORS(testCORS)(handler).ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", rec.Header().Get("Vary"))
}

func TestCORS_Wildcard(t *testing.T) {
	t.Parallel()

	cfg := config.CORSConfig{AllowedOrigins: "*"}
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/today", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	CORS(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_PlainOptionsReachesHandler(t *testing.T) {
	t.Parallel()

	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	CORS(testCORS)(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodOptions, "/live", nil))

	assert.True(t, called)
}
