package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lumiere/lumiere/internal/config"
	"github.com/lumiere/lumiere/internal/storage"
	"github.com/lumiere/lumiere/internal/testutil"
)

func setupTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{}
	return NewServer(storage.NewMemoryStore(), cfg, testutil.NewTestLogger(t))
}

func TestHealthCheck(t *testing.T) {
	s := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	s.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("HealthCheck status = %d, want %d", rec.Code, http.StatusOK)
	}

	var response map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["status"] != "ok" {
		t.Errorf("HealthCheck status = %q, want %q", response["status"], "ok")
	}
}

func TestGetStatus(t *testing.T) {
	s := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	rec := httptest.NewRecorder()

	s.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("GetStatus status = %d, want %d", rec.Code, http.StatusOK)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if _, ok := response["version"]; !ok {
		t.Error("GetStatus missing version field")
	}
	if _, ok := response["session"]; !ok {
		t.Error("GetStatus missing session field")
	}
}

func TestCatalogAPI(t *testing.T) {
	s := setupTestServer(t)

	tests := []struct {
		path string
	}{
		{"/api/v1/catalog"},
		{"/api/v1/catalog?shelf=premiers"},
		{"/api/v1/categories"},
		{"/api/v1/collections"},
		{"/api/v1/sport"},
		{"/api/v1/channels"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			s.echo.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Errorf("GET %s status = %d, want %d", tt.path, rec.Code, http.StatusOK)
			}
		})
	}
}

func TestCatalogAPI_GetItemNotFound(t *testing.T) {
	s := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/nope", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Get unknown item status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestSearchAPI(t *testing.T) {
	s := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/search?q=the", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Search status = %d, want %d. Body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var results []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &results); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(results) == 0 {
		t.Error("Search returned no results for a common query")
	}
}

func TestRecommendationFlow(t *testing.T) {
	s := setupTestServer(t)

	// Track a view, then expect stats to reflect it.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/profile/viewed/1", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("Track view status = %d, want %d. Body: %s", rec.Code, http.StatusNoContent, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/profile/stats", nil)
	rec = httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	var stats map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if stats["totalViewed"].(float64) != 1 {
		t.Errorf("Stats totalViewed = %v, want 1", stats["totalViewed"])
	}
}

func TestExperimentSelection(t *testing.T) {
	s := setupTestServer(t)

	body := `{"id":"t1","name":"Test","active":true,"endDate":0,"variants":[{"id":"a","name":"A","weight":100}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/experiments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Create experiment status = %d, want %d. Body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/experiments/t1/variant", nil)
	req.Header.Set("User-Agent", "test-agent")
	rec = httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Select variant status = %d, want %d. Body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var variant map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &variant)
	if variant["id"] != "a" {
		t.Errorf("Selected variant = %v, want a", variant["id"])
	}
}

func TestPagesAPI(t *testing.T) {
	s := setupTestServer(t)

	// Built-in home page is served when nothing is stored.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/pages/home", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Get home page status = %d, want %d", rec.Code, http.StatusOK)
	}

	// Saving an invalid config is rejected.
	req = httptest.NewRequest(http.MethodPut, "/api/v1/pages/custom", strings.NewReader(`{"name":"Custom","blocks":[]}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Save invalid page status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	// Unknown page with no built-in is a 404.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/pages/nope", nil)
	rec = httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Get unknown page status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestSecurityHeaders(t *testing.T) {
	s := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("Missing X-Content-Type-Options header")
	}
	if rec.Header().Get("Cache-Control") == "" {
		t.Error("API responses should disable caching")
	}
}
